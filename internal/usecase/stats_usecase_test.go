package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/usecase"
)

func TestStatsUseCase_GetStatistics(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ttl := time.Minute

	stats := &domain.TripStatistics{
		TotalTrips:  12,
		TotalFailed: 2,
		ByMode: []domain.ModeStats{
			{Mode: "driving", Trips: 7, TotalDurationSec: 8400},
			{Mode: "transit", Trips: 5, TotalDurationSec: 9000},
		},
		LastUpdated: time.Now(),
	}

	t.Run("cache miss reads repository and fills cache", func(t *testing.T) {
		mockStats := &MockStatsRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetStats", ctx).Return(nil, nil)
		mockStats.On("GetStatistics", ctx).Return(stats, nil)
		mockCache.On("SetStats", ctx, stats, ttl).Return(nil)

		uc := usecase.NewStatsUseCase(mockStats, mockCache, ttl, logger)
		got, err := uc.GetStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(12), got.TotalTrips)
		mockCache.AssertCalled(t, "SetStats", ctx, stats, ttl)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		mockStats := &MockStatsRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetStats", ctx).Return(stats, nil)

		uc := usecase.NewStatsUseCase(mockStats, mockCache, ttl, logger)
		got, err := uc.GetStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(12), got.TotalTrips)
		mockStats.AssertNotCalled(t, "GetStatistics", mock.Anything)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		mockStats := &MockStatsRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetStats", ctx).Return(nil, nil)
		mockStats.On("GetStatistics", ctx).Return(nil, stderrors.New("db down"))

		uc := usecase.NewStatsUseCase(mockStats, mockCache, ttl, logger)
		got, err := uc.GetStatistics(ctx)

		assert.Nil(t, got)
		assert.Error(t, err)
	})
}
