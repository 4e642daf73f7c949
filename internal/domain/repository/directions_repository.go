package repository

import (
	"context"

	"github.com/trip-planner/internal/domain"
)

// DirectionsRepository определяет методы внешнего провайдера маршрутизации
type DirectionsRepository interface {
	// GetDirections возвращает сырой маршрут между двумя точками
	// в заданном режиме передвижения. Ответ возвращается как есть,
	// включая non-OK статусы провайдера - классификация на стороне use case.
	GetDirections(
		ctx context.Context,
		origin domain.Coordinate,
		destination domain.Coordinate,
		mode domain.TransportMode,
	) (*domain.DirectionsResponse, error)
}
