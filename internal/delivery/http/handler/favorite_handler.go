package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/utils"
	"github.com/trip-planner/internal/pkg/validator"
	"github.com/trip-planner/internal/usecase"
	"github.com/trip-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// FavoriteHandler - обработчик избранных мест
type FavoriteHandler struct {
	favoriteUC *usecase.FavoriteUseCase
	logger     *zap.Logger
}

// NewFavoriteHandler - создание нового FavoriteHandler
func NewFavoriteHandler(favoriteUC *usecase.FavoriteUseCase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: favoriteUC,
		logger:     logger,
	}
}

// List godoc
// @Summary Список избранных мест пользователя
// @Description Возвращает сохранённые места пользователя для подбора остановок. Хранилище только для чтения.
// @Tags Favorites
// @Produce json
// @Param user_id query string true "Идентификатор пользователя"
// @Param tags query string false "Фильтр по меткам через запятую"
// @Success 200 {object} utils.SuccessResponse{data=dto.FavoritesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	req := dto.FavoritesRequest{
		UserID: c.Query("user_id"),
	}
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				req.Tags = append(req.Tags, tag)
			}
		}
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.favoriteUC.ListFavorites(c.Context(), req)
	if err != nil {
		return utils.SendError(c, errors.ErrDatabaseError)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}
