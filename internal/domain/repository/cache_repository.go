package repository

import (
	"context"
	"time"

	"github.com/trip-planner/internal/domain"
)

// CacheRepository определяет методы работы с кешем
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// GetPlace возвращает закешированный результат поиска места (nil при промахе)
	GetPlace(ctx context.Context, query, region string) (*domain.Place, error)
	// SetPlace сохраняет результат поиска места
	SetPlace(ctx context.Context, query, region string, place *domain.Place, ttl time.Duration) error

	// GetStats / SetStats - кеш сводной статистики планирования
	GetStats(ctx context.Context) (*domain.TripStatistics, error)
	SetStats(ctx context.Context, stats *domain.TripStatistics, ttl time.Duration) error
}
