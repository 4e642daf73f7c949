package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewFavoriteRepositoryForTest creates a favorite repository with test database and logger
func NewFavoriteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.FavoriteRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewFavoriteRepository(pgDB)
}

// NewStatsRepositoryForTest creates a stats repository with test database and logger
func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewStatsRepository(pgDB, logger)
}
