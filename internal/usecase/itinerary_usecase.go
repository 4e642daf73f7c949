package usecase

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/utils"
	"go.uber.org/zap"
)

// ItineraryUseCase собирает полный маршрут из пошаговых запросов к провайдеру.
// Запросы по легам выполняются параллельно; итог ждёт завершения всех легов
// и либо содержит все леги, либо является ошибкой целиком.
type ItineraryUseCase struct {
	directionsRepo repository.DirectionsRepository
	logger         *zap.Logger
}

func NewItineraryUseCase(
	directionsRepo repository.DirectionsRepository,
	logger *zap.Logger,
) *ItineraryUseCase {
	return &ItineraryUseCase{
		directionsRepo: directionsRepo,
		logger:         logger,
	}
}

// FetchItinerary строит маршрут по последовательности [start] + orderedStops.
// Каждая соседняя пара точек маршрутизируется независимой горутиной; результаты
// пишутся в слоты по индексу лега, поэтому порядок склейки не зависит от
// порядка завершения сетевых вызовов. Ошибка любого лега делает ошибочным
// весь результат - частичный маршрут с пропусками не возвращается.
func (uc *ItineraryUseCase) FetchItinerary(
	ctx context.Context,
	start domain.Place,
	orderedStops []domain.Place,
	mode domain.TransportMode,
) (*domain.Itinerary, error) {
	if !mode.Valid() {
		return nil, errors.ErrInvalidTransportMode
	}

	points := make([]domain.Place, 0, 1+len(orderedStops))
	points = append(points, start)
	points = append(points, orderedStops...)

	if len(points) < 2 {
		return nil, errors.ErrInsufficientStops
	}

	legCount := len(points) - 1
	legs := make([]domain.RouteLeg, legCount)
	legErrs := make([]error, legCount)

	var wg sync.WaitGroup
	for i := 0; i < legCount; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			legs[idx], legErrs[idx] = uc.fetchLeg(ctx, points[idx], points[idx+1], mode)
		}(i)
	}
	wg.Wait()

	// Первая по индексу лега ошибка становится ошибкой всей операции
	for i, err := range legErrs {
		if err != nil {
			uc.logger.Warn("Leg fetch failed, discarding itinerary",
				zap.Int("leg_index", i),
				zap.Int("leg_count", legCount),
				zap.String("mode", string(mode)),
				zap.Error(err))
			return nil, err
		}
	}

	itinerary := &domain.Itinerary{Mode: mode}
	for _, leg := range legs {
		itinerary.Segments = append(itinerary.Segments, leg.Segments...)
		itinerary.Steps = append(itinerary.Steps, leg.Steps...)
		itinerary.TotalDuration += leg.Duration
		itinerary.TotalDistance += leg.Distance
	}
	itinerary.DurationText = utils.FormatDuration(itinerary.TotalDuration)
	itinerary.DistanceText = utils.FormatDistance(itinerary.TotalDistance)

	uc.logger.Info("Itinerary built",
		zap.String("mode", string(mode)),
		zap.Int("legs", legCount),
		zap.Int("total_duration", itinerary.TotalDuration),
		zap.Int("total_distance", itinerary.TotalDistance))

	return itinerary, nil
}

// fetchLeg маршрутизирует одну пару точек и классифицирует ответ провайдера
func (uc *ItineraryUseCase) fetchLeg(
	ctx context.Context,
	from, to domain.Place,
	mode domain.TransportMode,
) (domain.RouteLeg, error) {
	resp, err := uc.directionsRepo.GetDirections(ctx, from.Location, to.Location, mode)
	if err != nil {
		if stderrors.Is(err, errors.ErrMalformedProviderResponse) {
			return domain.RouteLeg{}, errors.ErrMalformedProviderResponse
		}
		return domain.RouteLeg{}, errors.ErrLegFetchFailed.WithDetails(map[string]interface{}{
			"from": from.Name,
			"to":   to.Name,
		})
	}

	if resp.Status != domain.DirectionsStatusOK {
		return domain.RouteLeg{}, errors.ErrLegFetchFailed.WithDetails(map[string]interface{}{
			"from":            from.Name,
			"to":              to.Name,
			"provider_status": resp.Status,
		})
	}

	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return domain.RouteLeg{}, errors.ErrNoRouteData
	}

	rawLeg := resp.Routes[0].Legs[0]
	return ParseLeg(&rawLeg, mode), nil
}
