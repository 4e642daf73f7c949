package usecase

import (
	"context"

	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// FavoriteUseCase - чтение избранных мест пользователя.
// Запись в избранное выполняет владеющий сервис, здесь только чтение
// для подбора кандидатов в остановки.
type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	logger       *zap.Logger
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	logger *zap.Logger,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

// ListFavorites возвращает избранные места пользователя с фильтром по меткам
func (uc *FavoriteUseCase) ListFavorites(ctx context.Context, req dto.FavoritesRequest) (*dto.FavoritesResponse, error) {
	places, err := uc.favoriteRepo.ListByUser(ctx, req.UserID, req.Tags)
	if err != nil {
		uc.logger.Error("Failed to list favorites",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		return nil, err
	}

	return &dto.FavoritesResponse{
		Places: dto.ConvertPlaces(places),
		Total:  len(places),
	}, nil
}
