package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
)

type favoriteRepository struct {
	db *DB
}

// NewFavoriteRepository создает новый экземпляр favorite repository
func NewFavoriteRepository(db *DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

type favoriteRow struct {
	PlaceID string         `db:"place_id"`
	Name    string         `db:"name"`
	Lat     float64        `db:"lat"`
	Lng     float64        `db:"lng"`
	Address string         `db:"address"`
	Tags    pq.StringArray `db:"tags"`
}

// ListByUser возвращает избранные места пользователя, отсортированные
// по дате добавления. Пустой список tags означает "без фильтра".
func (r *favoriteRepository) ListByUser(ctx context.Context, userID string, tags []string) ([]domain.Place, error) {
	query := `
		SELECT place_id, name, lat, lng, address, tags
		FROM favorite_places
		WHERE user_id = $1`
	args := []interface{}{userID}

	if len(tags) > 0 {
		query += ` AND tags && $2`
		args = append(args, pq.Array(tags))
	}

	query += ` ORDER BY created_at DESC`

	var rows []favoriteRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list favorites for user %s: %w", userID, err)
	}

	places := make([]domain.Place, 0, len(rows))
	for _, row := range rows {
		places = append(places, domain.Place{
			ID:   row.PlaceID,
			Name: row.Name,
			Location: domain.Coordinate{
				Lat: row.Lat,
				Lng: row.Lng,
			},
			Address: row.Address,
		})
	}

	return places, nil
}
