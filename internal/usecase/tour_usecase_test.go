package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/pkg/utils"
	"github.com/trip-planner/internal/usecase"
)

func place(id string, lat, lng float64) domain.Place {
	return domain.Place{
		ID:   id,
		Name: id,
		Location: domain.Coordinate{
			Lat: lat,
			Lng: lng,
		},
	}
}

func TestTourUseCase_Optimize(t *testing.T) {
	uc := usecase.NewTourUseCase(zap.NewNop())
	start := place("start", 0, 0)

	t.Run("empty destinations", func(t *testing.T) {
		ordered := uc.Optimize(start, nil)
		assert.Empty(t, ordered)
	})

	t.Run("single destination", func(t *testing.T) {
		ordered := uc.Optimize(start, []domain.Place{place("a", 1, 1)})
		require.Len(t, ordered, 1)
		assert.Equal(t, "a", ordered[0].ID)
	})

	t.Run("straight line picks nearest first", func(t *testing.T) {
		destinations := []domain.Place{
			place("one", 0, 1),
			place("three", 0, 3),
			place("two", 0, 2),
		}

		ordered := uc.Optimize(start, destinations)

		require.Len(t, ordered, 3)
		assert.Equal(t, "one", ordered[0].ID)
		assert.Equal(t, "two", ordered[1].ID)
		assert.Equal(t, "three", ordered[2].ID)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		destinations := []domain.Place{
			place("a", 37.5796, 126.9770),
			place("b", 37.5512, 126.9882),
			place("c", 37.5704, 126.9996),
			place("d", 37.5759, 126.9768),
		}

		first := uc.Optimize(start, destinations)
		for i := 0; i < 10; i++ {
			again := uc.Optimize(start, destinations)
			require.Len(t, again, len(first))
			for j := range first {
				assert.Equal(t, first[j].ID, again[j].ID)
			}
		}
	})

	t.Run("tie broken by first encountered", func(t *testing.T) {
		// Две остановки на одинаковом расстоянии от старта
		destinations := []domain.Place{
			place("east", 0, 1),
			place("west", 0, -1),
		}

		ordered := uc.Optimize(start, destinations)

		require.Len(t, ordered, 2)
		assert.Equal(t, "east", ordered[0].ID)
	})

	t.Run("output is a permutation of input", func(t *testing.T) {
		destinations := []domain.Place{
			place("a", 10, 10),
			place("b", -5, 3),
			place("c", 48.8566, 2.3522),
			place("d", 35.6762, 139.6503),
			place("e", 0.5, 0.5),
		}

		ordered := uc.Optimize(start, destinations)

		require.Len(t, ordered, len(destinations))
		seen := make(map[string]bool)
		for _, p := range ordered {
			assert.False(t, seen[p.ID], "duplicate in output: %s", p.ID)
			seen[p.ID] = true
			assert.NotEqual(t, start.ID, p.ID)
		}
		for _, p := range destinations {
			assert.True(t, seen[p.ID], "missing from output: %s", p.ID)
		}
	})

	t.Run("greedy property holds at every step", func(t *testing.T) {
		destinations := []domain.Place{
			place("a", 2, 7),
			place("b", -3, 1),
			place("c", 5, -2),
			place("d", 1, 1),
			place("e", -1, -4),
		}

		ordered := uc.Optimize(start, destinations)
		require.Len(t, ordered, len(destinations))

		current := start.Location
		remaining := make(map[string]domain.Place)
		for _, p := range destinations {
			remaining[p.ID] = p
		}

		for _, chosen := range ordered {
			chosenDist := utils.HaversineDistance(
				current.Lat, current.Lng,
				chosen.Location.Lat, chosen.Location.Lng,
			)
			for _, candidate := range remaining {
				candDist := utils.HaversineDistance(
					current.Lat, current.Lng,
					candidate.Location.Lat, candidate.Location.Lng,
				)
				assert.LessOrEqual(t, chosenDist, candDist,
					"stop %s chosen over closer candidate %s", chosen.ID, candidate.ID)
			}
			delete(remaining, chosen.ID)
			current = chosen.Location
		}
	})

	t.Run("input slice not mutated", func(t *testing.T) {
		destinations := []domain.Place{
			place("far", 0, 3),
			place("near", 0, 1),
		}

		uc.Optimize(start, destinations)

		assert.Equal(t, "far", destinations[0].ID)
		assert.Equal(t, "near", destinations[1].ID)
	})
}
