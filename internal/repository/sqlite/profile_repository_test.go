package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/repository"
	"github.com/vitorsp/perfboard/internal/repository/sqlite"
	"github.com/vitorsp/perfboard/internal/testutil"
)

type ProfileRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ProfileRepository
}

func (s *ProfileRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewProfileRepository(s.db)
}

func (s *ProfileRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ProfileRepositorySuite) TestCreateAndGet() {
	ctx := context.Background()

	id, err := s.repo.Create(ctx, models.Profile{Username: "magnus", Timezone: "Europe/Oslo"})
	s.Require().NoError(err)
	s.Assert().Greater(id, int64(0))

	p, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Equal("magnus", p.Username)
	s.Assert().Equal("Europe/Oslo", p.Timezone)
	s.Assert().False(p.Onboarded)
	s.Assert().Nil(p.LastSyncAt)
}

func (s *ProfileRepositorySuite) TestCreate_DefaultsTimezone() {
	ctx := context.Background()

	id, err := s.repo.Create(ctx, models.Profile{Username: "magnus"})
	s.Require().NoError(err)

	p, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Equal("UTC", p.Timezone)
}

func (s *ProfileRepositorySuite) TestGetByUsername_CaseInsensitive() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, models.Profile{Username: "Magnus"})
	s.Require().NoError(err)

	p, err := s.repo.GetByUsername(ctx, "magnus")
	s.Require().NoError(err)
	s.Assert().Equal("Magnus", p.Username)
}

func (s *ProfileRepositorySuite) TestGet_NotFound() {
	ctx := context.Background()

	p, err := s.repo.Get(ctx, 99999)
	s.Assert().ErrorIs(err, sql.ErrNoRows)
	s.Assert().Nil(p)
}

func (s *ProfileRepositorySuite) TestUpdate() {
	ctx := context.Background()

	id, err := s.repo.Create(ctx, models.Profile{Username: "magnus"})
	s.Require().NoError(err)

	err = s.repo.Update(ctx, models.Profile{
		ID:         id,
		Timezone:   "America/New_York",
		FIDEID:     "1503014",
		FIDERating: 2830,
		Onboarded:  true,
	})
	s.Require().NoError(err)

	p, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Equal("America/New_York", p.Timezone)
	s.Assert().Equal("1503014", p.FIDEID)
	s.Assert().Equal(2830, p.FIDERating)
	s.Assert().True(p.Onboarded)
}

func (s *ProfileRepositorySuite) TestTouchLastSync() {
	ctx := context.Background()

	id, err := s.repo.Create(ctx, models.Profile{Username: "magnus"})
	s.Require().NoError(err)

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.repo.TouchLastSync(ctx, id, at))

	p, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(p.LastSyncAt)
	s.Assert().True(p.LastSyncAt.Equal(at))
}

func (s *ProfileRepositorySuite) TestListAndDelete() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, models.Profile{Username: "magnus"})
	s.Require().NoError(err)
	id, err := s.repo.Create(ctx, models.Profile{Username: "hikaru"})
	s.Require().NoError(err)

	profiles, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Assert().Len(profiles, 2)

	s.Require().NoError(s.repo.Delete(ctx, id))

	profiles, err = s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(profiles, 1)
	s.Assert().Equal("magnus", profiles[0].Username)
}

func TestProfileRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositorySuite))
}
