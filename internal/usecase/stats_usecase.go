package usecase

import (
	"context"
	"time"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"go.uber.org/zap"
)

// StatsUseCase - сводная статистика планирования с коротким кешем
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// GetStatistics возвращает агрегаты планирования по режимам
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.TripStatistics, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetStats(ctx)
		if err != nil {
			uc.logger.Warn("Stats cache lookup failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Error("Failed to get trip statistics", zap.Error(err))
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
		}
	}

	return stats, nil
}
