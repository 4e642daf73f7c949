package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/utils"
	"github.com/trip-planner/internal/pkg/validator"
	"github.com/trip-planner/internal/usecase"
	"github.com/trip-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// TripHandler - обработчик планирования поездок
type TripHandler struct {
	plannerUC *usecase.PlannerUseCase
	tourUC    *usecase.TourUseCase
	logger    *zap.Logger
}

// NewTripHandler - создание нового TripHandler
func NewTripHandler(plannerUC *usecase.PlannerUseCase, tourUC *usecase.TourUseCase, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		plannerUC: plannerUC,
		tourUC:    tourUC,
		logger:    logger,
	}
}

// Plan godoc
// @Summary Построение маршрута поездки
// @Description Упорядочивает остановки жадным алгоритмом ближайшего соседа и строит полный маршрут через внешний провайдер. При ошибке маршрутизации ответ содержит deep link на внешнее картографическое приложение.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body dto.PlanTripRequest true "Параметры поездки"
// @Success 200 {object} utils.SuccessResponse{data=dto.ItineraryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/trips/plan [post]
func (h *TripHandler) Plan(c *fiber.Ctx) error {
	var req dto.PlanTripRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	mode := domain.TransportMode(req.Mode)
	trip := domain.TripRequest{Start: req.Start.ToPlace()}
	for _, d := range req.Destinations {
		trip.AddDestination(d.ToPlace())
	}

	ordered, itinerary, err := h.plannerUC.PlanTrip(c.Context(), req.SessionID, trip, mode)

	coords := make([]domain.Coordinate, 0, len(ordered))
	for _, p := range ordered {
		coords = append(coords, p.Location)
	}
	fallbackURL := utils.BuildExternalMapsURL(trip.Start.Location, coords, mode)

	if err != nil {
		return utils.SendError(c, withFallback(err, fallbackURL, mode))
	}

	resp := dto.ItineraryResponse{
		Mode:          string(itinerary.Mode),
		OrderedStops:  dto.ConvertPlaces(ordered),
		Segments:      itinerary.Segments,
		Steps:         itinerary.Steps,
		TotalDuration: itinerary.TotalDuration,
		TotalDistance: itinerary.TotalDistance,
		DurationText:  itinerary.DurationText,
		DistanceText:  itinerary.DistanceText,
		FallbackURL:   fallbackURL,
	}

	return utils.SendSuccess(c, resp, nil)
}

// Optimize godoc
// @Summary Упорядочивание остановок без маршрутизации
// @Description Возвращает остановки в порядке обхода (ближайший сосед от старта), не обращаясь к провайдеру маршрутов.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body dto.OptimizeTourRequest true "Старт и остановки"
// @Success 200 {object} utils.SuccessResponse{data=dto.OptimizeTourResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/trips/optimize [post]
func (h *TripHandler) Optimize(c *fiber.Ctx) error {
	var req dto.OptimizeTourRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	ordered := h.tourUC.Optimize(req.Start.ToPlace(), dto.ToPlaces(req.Destinations))

	return utils.SendSuccess(c, dto.OptimizeTourResponse{
		OrderedStops: dto.ConvertPlaces(ordered),
	}, &utils.Meta{Total: len(ordered)})
}

// withFallback дополняет ошибку маршрутизации запасной ссылкой на внешние
// карты и подсказкой для режимов с известными региональными ограничениями
func withFallback(err error, fallbackURL string, mode domain.TransportMode) error {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		return err
	}

	details := make(map[string]interface{}, len(appErr.Details)+2)
	for k, v := range appErr.Details {
		details[k] = v
	}
	details["fallback_url"] = fallbackURL
	if mode == domain.ModeDriving {
		details["hint"] = "Driving directions are restricted in some regions; try transit mode or open the route in an external maps app"
	}

	return appErr.WithDetails(details)
}
