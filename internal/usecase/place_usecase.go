package usecase

import (
	"context"
	"time"

	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceUseCase - поиск мест через внешний сервис с кешированием результатов
type PlaceUseCase struct {
	placeRepo repository.PlaceRepository
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

func NewPlaceUseCase(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo: placeRepo,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// SearchPlace ищет лучшее совпадение по текстовому запросу.
// Ошибки кеша не прерывают поиск - кеш считается необязательным ускорителем.
func (uc *PlaceUseCase) SearchPlace(ctx context.Context, req dto.PlaceSearchRequest) (*dto.PlaceSearchResponse, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetPlace(ctx, req.Query, req.Region)
		if err != nil {
			uc.logger.Warn("Place cache lookup failed", zap.Error(err))
		} else if cached != nil {
			out := dto.ConvertPlace(*cached)
			return &dto.PlaceSearchResponse{Place: &out, Cached: true}, nil
		}
	}

	place, err := uc.placeRepo.FindPlace(ctx, req.Query, req.Region)
	if err != nil {
		uc.logger.Error("Place search failed",
			zap.String("query", req.Query),
			zap.Error(err))
		return nil, err
	}
	if place == nil {
		return nil, errors.ErrPlaceNotFound.WithDetails(map[string]interface{}{
			"query": req.Query,
		})
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetPlace(ctx, req.Query, req.Region, place, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache place", zap.Error(err))
		}
	}

	out := dto.ConvertPlace(*place)
	return &dto.PlaceSearchResponse{Place: &out, Cached: false}, nil
}
