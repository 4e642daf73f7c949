package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/utils"
	"github.com/trip-planner/internal/pkg/validator"
	"github.com/trip-planner/internal/usecase"
	"github.com/trip-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceHandler - обработчик поиска мест
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// Search godoc
// @Summary Поиск места по тексту
// @Description Возвращает лучшее совпадение по текстовому запросу через внешний сервис поиска мест. Результаты кешируются.
// @Tags Places
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Param region query string false "Код региона для смещения результатов"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlaceSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/places/search [get]
func (h *PlaceHandler) Search(c *fiber.Ctx) error {
	req := dto.PlaceSearchRequest{
		Query:  c.Query("q"),
		Region: c.Query("region"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.placeUC.SearchPlace(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
