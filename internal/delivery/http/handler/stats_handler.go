package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/utils"
	"github.com/trip-planner/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler - обработчик статистики планирования
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler - создание нового StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Статистика планирования маршрутов
// @Description Возвращает агрегаты построенных маршрутов по режимам передвижения, накопленные воркером из журнала поездок.
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.TripStatistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		return utils.SendError(c, errors.ErrDatabaseError)
	}

	return utils.SendSuccess(c, stats, nil)
}
