package usecase

import (
	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/pkg/utils"
	"go.uber.org/zap"
)

// TourUseCase упорядочивает остановки жадным алгоритмом ближайшего соседа.
// Эвристика сознательно не заменена точным решением TSP: списки остановок
// короткие, а наблюдаемое поведение должно быть воспроизводимым.
type TourUseCase struct {
	logger *zap.Logger
}

func NewTourUseCase(logger *zap.Logger) *TourUseCase {
	return &TourUseCase{logger: logger}
}

// Optimize возвращает перестановку destinations: на каждом шаге выбирается
// ближайшая к текущей позиции непосещённая остановка. При равных расстояниях
// побеждает первая встреченная - порядок детерминирован при любом расписании.
// Функция тотальна: пустой список даёт пустой результат, старт не изменяется.
func (uc *TourUseCase) Optimize(start domain.Place, destinations []domain.Place) []domain.Place {
	if len(destinations) == 0 {
		return []domain.Place{}
	}

	pool := make([]domain.Place, len(destinations))
	copy(pool, destinations)

	ordered := make([]domain.Place, 0, len(destinations))
	current := start.Location

	for len(pool) > 0 {
		nearest := 0
		nearestDist := utils.HaversineDistance(
			current.Lat, current.Lng,
			pool[0].Location.Lat, pool[0].Location.Lng,
		)

		for i := 1; i < len(pool); i++ {
			d := utils.HaversineDistance(
				current.Lat, current.Lng,
				pool[i].Location.Lat, pool[i].Location.Lng,
			)
			if d < nearestDist {
				nearest = i
				nearestDist = d
			}
		}

		next := pool[nearest]
		pool = append(pool[:nearest], pool[nearest+1:]...)
		ordered = append(ordered, next)
		current = next.Location
	}

	uc.logger.Debug("Tour optimized",
		zap.Int("stops", len(ordered)),
		zap.String("first_stop", ordered[0].Name))

	return ordered
}
