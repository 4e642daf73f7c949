package repository

import (
	"context"

	"github.com/trip-planner/internal/domain"
)

// PlaceRepository определяет методы поиска мест во внешнем сервисе
type PlaceRepository interface {
	// FindPlace возвращает лучшее совпадение по текстовому запросу.
	// region - необязательный код региона для смещения результатов.
	// Возвращает (nil, nil), если ничего не найдено.
	FindPlace(ctx context.Context, query, region string) (*domain.Place, error)
}
