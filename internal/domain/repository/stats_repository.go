package repository

import (
	"context"

	"github.com/trip-planner/internal/domain"
)

// StatsRepository определяет методы хранилища статистики планирования
type StatsRepository interface {
	// RecordTrip учитывает одно событие планирования в агрегатах режима
	RecordTrip(ctx context.Context, event *domain.TripPlannedEvent) error

	// GetStatistics возвращает сводную статистику по всем режимам
	GetStatistics(ctx context.Context) (*domain.TripStatistics, error)
}
