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
	"github.com/vitorsp/perfboard/internal/stats"
	"github.com/vitorsp/perfboard/internal/testutil"
)

type GameRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.GameRepository
}

func (s *GameRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewGameRepository(s.db)
}

func (s *GameRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *GameRepositorySuite) createProfile(username string) int64 {
	_, err := s.db.Exec(`INSERT INTO profiles (username) VALUES (?)`, username)
	s.Require().NoError(err)

	var id int64
	err = s.db.QueryRow(`SELECT id FROM profiles WHERE username = ?`, username).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *GameRepositorySuite) TestInsertBatchAndList() {
	ctx := context.Background()
	profileID := s.createProfile("magnus")

	games := []models.Game{
		{
			ProfileID:  profileID,
			ChessComID: "game1",
			TimeClass:  "blitz",
			Result:     "win",
			PlayedAs:   "white",
			Opponent:   "opp1",
			PlayedAt:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ProfileID:  profileID,
			ChessComID: "game2",
			TimeClass:  "rapid",
			Result:     "loss",
			PlayedAs:   "black",
			Opponent:   "opp2",
			PlayedAt:   time.Date(2024, 3, 2, 11, 0, 0, 0, time.UTC),
		},
	}

	inserted, err := s.repo.InsertBatch(ctx, games)
	s.Require().NoError(err)
	s.Assert().Equal(2, inserted)

	listed, err := s.repo.List(ctx, models.GameFilter{ProfileID: profileID})
	s.Require().NoError(err)
	s.Require().Len(listed, 2)
	// Default ordering is played_at DESC
	s.Assert().Equal("game2", listed[0].ChessComID)
	s.Assert().Equal("game1", listed[1].ChessComID)
}

func (s *GameRepositorySuite) TestInsertBatch_SkipsDuplicates() {
	ctx := context.Background()
	profileID := s.createProfile("magnus")

	game := models.Game{
		ProfileID:  profileID,
		ChessComID: "dup1",
		Result:     "win",
		PlayedAt:   time.Now(),
	}

	inserted, err := s.repo.InsertBatch(ctx, []models.Game{game})
	s.Require().NoError(err)
	s.Assert().Equal(1, inserted)

	inserted, err = s.repo.InsertBatch(ctx, []models.Game{game})
	s.Require().NoError(err)
	s.Assert().Equal(0, inserted)

	count, err := s.repo.Count(ctx, models.GameFilter{ProfileID: profileID})
	s.Require().NoError(err)
	s.Assert().Equal(1, count)
}

func (s *GameRepositorySuite) TestList_Filters() {
	ctx := context.Background()
	profileID := s.createProfile("magnus")

	games := []models.Game{
		{ProfileID: profileID, ChessComID: "g1", TimeClass: "blitz", Result: "win", Opponent: "alice", PlayedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ProfileID: profileID, ChessComID: "g2", TimeClass: "blitz", Result: "loss", Opponent: "bob", PlayedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ProfileID: profileID, ChessComID: "g3", TimeClass: "rapid", Result: "win", Opponent: "alice", PlayedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	_, err := s.repo.InsertBatch(ctx, games)
	s.Require().NoError(err)

	blitz, err := s.repo.List(ctx, models.GameFilter{ProfileID: profileID, TimeClass: "blitz"})
	s.Require().NoError(err)
	s.Assert().Len(blitz, 2)

	wins, err := s.repo.List(ctx, models.GameFilter{ProfileID: profileID, Result: "win"})
	s.Require().NoError(err)
	s.Assert().Len(wins, 2)

	from := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	windowed, err := s.repo.List(ctx, models.GameFilter{ProfileID: profileID, From: &from, To: &to})
	s.Require().NoError(err)
	s.Require().Len(windowed, 1)
	s.Assert().Equal("g2", windowed[0].ChessComID)
}

func (s *GameRepositorySuite) TestGameLog_OrderedAndMapped() {
	ctx := context.Background()
	profileID := s.createProfile("magnus")

	games := []models.Game{
		{ProfileID: profileID, ChessComID: "g1", Result: "loss", PlayedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{ProfileID: profileID, ChessComID: "g2", Result: "win", PlayedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ProfileID: profileID, ChessComID: "g3", Result: "draw", PlayedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
	_, err := s.repo.InsertBatch(ctx, games)
	s.Require().NoError(err)

	log, err := s.repo.GameLog(ctx, profileID, nil, nil)
	s.Require().NoError(err)
	s.Require().Len(log, 3)

	s.Assert().Equal(stats.Win, log[0].Result)
	s.Assert().Equal(stats.Draw, log[1].Result)
	s.Assert().Equal(stats.Loss, log[2].Result)
	s.Assert().True(log[0].Timestamp < log[1].Timestamp)
	s.Assert().True(log[1].Timestamp < log[2].Timestamp)
}

func (s *GameRepositorySuite) TestSummary() {
	ctx := context.Background()
	profileID := s.createProfile("magnus")

	games := []models.Game{
		{ProfileID: profileID, ChessComID: "g1", Result: "win", PlayerRating: 1500, PlayedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ProfileID: profileID, ChessComID: "g2", Result: "win", PlayerRating: 1510, PlayedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ProfileID: profileID, ChessComID: "g3", Result: "draw", PlayerRating: 1505, PlayedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{ProfileID: profileID, ChessComID: "g4", Result: "loss", PlayerRating: 1495, PlayedAt: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)},
	}
	_, err := s.repo.InsertBatch(ctx, games)
	s.Require().NoError(err)

	summary, err := s.repo.Summary(ctx, profileID)
	s.Require().NoError(err)
	s.Assert().Equal(4, summary.TotalGames)
	s.Assert().Equal(2, summary.Wins)
	s.Assert().Equal(1, summary.Draws)
	s.Assert().Equal(1, summary.Losses)
	// (2 + 0.5) / 4 = 62.5
	s.Assert().InDelta(62.5, summary.WinRate, 0.001)
	s.Assert().Equal(1495, summary.CurrentRating)
}

func (s *GameRepositorySuite) TestSummary_NoGames() {
	ctx := context.Background()
	profileID := s.createProfile("magnus")

	summary, err := s.repo.Summary(ctx, profileID)
	s.Require().NoError(err)
	s.Assert().Equal(0, summary.TotalGames)
	s.Assert().Equal(0.0, summary.WinRate)
	s.Assert().Equal(0, summary.CurrentRating)
}

func (s *GameRepositorySuite) TestExistingChessComIDs() {
	ctx := context.Background()
	profileID := s.createProfile("magnus")

	games := []models.Game{
		{ProfileID: profileID, ChessComID: "a", Result: "win", PlayedAt: time.Now()},
		{ProfileID: profileID, ChessComID: "b", Result: "loss", PlayedAt: time.Now()},
	}
	_, err := s.repo.InsertBatch(ctx, games)
	s.Require().NoError(err)

	ids, err := s.repo.ExistingChessComIDs(ctx, profileID)
	s.Require().NoError(err)
	s.Assert().True(ids["a"])
	s.Assert().True(ids["b"])
	s.Assert().False(ids["c"])
}

func TestGameRepositorySuite(t *testing.T) {
	suite.Run(t, new(GameRepositorySuite))
}
