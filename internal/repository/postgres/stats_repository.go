package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"go.uber.org/zap"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStatsRepository создает новый экземпляр stats repository
func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// RecordTrip учитывает событие планирования в агрегатах режима.
// Upsert по mode, поэтому операция идемпотентна относительно схемы,
// но не относительно повторной доставки события.
func (r *statsRepository) RecordTrip(ctx context.Context, event *domain.TripPlannedEvent) error {
	failed := int64(0)
	if !event.Success {
		failed = 1
	}

	query := `
		INSERT INTO trip_stats (mode, trips, failed_trips, total_legs, total_duration_sec, total_distance_m, updated_at)
		VALUES ($1, 1, $2, $3, $4, $5, NOW())
		ON CONFLICT (mode) DO UPDATE SET
			trips = trip_stats.trips + 1,
			failed_trips = trip_stats.failed_trips + EXCLUDED.failed_trips,
			total_legs = trip_stats.total_legs + EXCLUDED.total_legs,
			total_duration_sec = trip_stats.total_duration_sec + EXCLUDED.total_duration_sec,
			total_distance_m = trip_stats.total_distance_m + EXCLUDED.total_distance_m,
			updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query,
		string(event.Mode),
		failed,
		int64(event.LegCount),
		int64(event.TotalDuration),
		int64(event.TotalDistance),
	)
	if err != nil {
		r.logger.Error("failed to record trip",
			zap.String("mode", string(event.Mode)),
			zap.Error(err))
		return fmt.Errorf("record trip: %w", err)
	}

	return nil
}

// GetStatistics возвращает сводную статистику по всем режимам
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.TripStatistics, error) {
	query := `
		SELECT
			mode,
			trips,
			failed_trips,
			total_legs,
			total_duration_sec,
			total_distance_m,
			CASE WHEN trips > 0
				THEN total_duration_sec::float / trips
				ELSE 0
			END AS avg_duration_sec
		FROM trip_stats
		ORDER BY mode`

	var byMode []domain.ModeStats
	if err := r.db.SelectContext(ctx, &byMode, query); err != nil {
		r.logger.Error("failed to get trip statistics", zap.Error(err))
		return nil, fmt.Errorf("get trip statistics: %w", err)
	}

	stats := &domain.TripStatistics{
		ByMode:      byMode,
		LastUpdated: time.Now(),
	}
	for _, m := range byMode {
		stats.TotalTrips += m.Trips
		stats.TotalFailed += m.FailedTrips
	}

	return stats, nil
}
