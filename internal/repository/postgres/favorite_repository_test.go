package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/repository/postgres/testhelpers"
)

// FavoriteRepositoryTestSuite тестирует методы FavoriteRepository
type FavoriteRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.FavoriteRepository
	ctx    context.Context
}

func (s *FavoriteRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewFavoriteRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.ctx = context.Background()
}

func (s *FavoriteRepositoryTestSuite) SetupTest() {
	err := s.testDB.Cleanup(s.ctx)
	s.NoError(err)

	_, err = s.testDB.DB.ExecContext(s.ctx, `
		INSERT INTO favorite_places (user_id, place_id, name, lat, lng, address, tags) VALUES
		('user-1', 'place-palace', '경복궁', 37.579617, 126.977041, '서울특별시 종로구 사직로 161', '{"history","seoul"}'),
		('user-1', 'place-tower', 'N서울타워', 37.551169, 126.988227, '서울특별시 용산구 남산공원길 105', '{"view","seoul"}'),
		('user-1', 'place-beach', '해운대해수욕장', 35.158698, 129.160384, '부산광역시 해운대구', '{"beach","busan"}'),
		('user-2', 'place-market', '광장시장', 37.570379, 126.999561, '서울특별시 종로구', '{"food"}')
	`)
	s.NoError(err)
}

func (s *FavoriteRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *FavoriteRepositoryTestSuite) TestListByUser() {
	places, err := s.repo.ListByUser(s.ctx, "user-1", nil)
	s.NoError(err)
	s.Len(places, 3)
}

func (s *FavoriteRepositoryTestSuite) TestListByUserWithTagFilter() {
	places, err := s.repo.ListByUser(s.ctx, "user-1", []string{"seoul"})
	s.NoError(err)
	s.Len(places, 2)
	for _, p := range places {
		s.NotEqual("place-beach", p.ID)
	}
}

func (s *FavoriteRepositoryTestSuite) TestListByUserNoMatches() {
	places, err := s.repo.ListByUser(s.ctx, "user-1", []string{"mountain"})
	s.NoError(err)
	s.Empty(places)
}

func (s *FavoriteRepositoryTestSuite) TestListByUnknownUser() {
	places, err := s.repo.ListByUser(s.ctx, "nobody", nil)
	s.NoError(err)
	s.Empty(places)
}

func TestFavoriteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FavoriteRepositoryTestSuite))
}
