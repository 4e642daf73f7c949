package repository

import (
	"context"

	"github.com/trip-planner/internal/domain"
)

// FavoriteRepository - read-only доступ к сохранённым местам пользователя.
// Сервис планирования только читает избранное для подбора остановок,
// запись выполняет владеющий сервис.
type FavoriteRepository interface {
	// ListByUser возвращает избранные места пользователя.
	// tags - необязательный фильтр по меткам (пустой список = все).
	ListByUser(ctx context.Context, userID string, tags []string) ([]domain.Place, error)
}
