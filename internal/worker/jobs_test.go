package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vitorsp/perfboard/internal/chesscom"
	"github.com/vitorsp/perfboard/internal/events"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/testutil/mocks"
	"github.com/vitorsp/perfboard/internal/worker"
)

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturingPublisher) Publish(e events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *capturingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

const samplePGN = `[Event "Live Chess"]
[Site "Chess.com"]
[UTCDate "2024.03.10"]
[UTCTime "18:30:00"]
[White "magnus"]
[Black "rival"]
[Result "1-0"]

1. e4 e5 2. Nf3 Nc6 1-0`

func TestImportGamesJob_ImportsNewGames(t *testing.T) {
	gameRepo := new(mocks.MockGameRepository)
	profileRepo := new(mocks.MockProfileRepository)
	chessClient := new(mocks.MockChessClient)
	publisher := &capturingPublisher{}

	profile := models.Profile{ID: 1, Username: "magnus"}
	archive := "https://api.chess.com/pub/player/magnus/games/2024/03"

	chessClient.On("FetchArchives", mock.Anything, "magnus").Return([]string{archive}, nil)
	chessClient.On("FetchMonthly", mock.Anything, archive).Return([]chesscom.MonthlyGame{
		{
			URL:       "https://www.chess.com/game/live/101",
			PGN:       samplePGN,
			TimeClass: "blitz",
			EndTime:   time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC).Unix(),
			White:     chesscom.Player{Username: "magnus", Rating: 1500, Result: "win"},
			Black:     chesscom.Player{Username: "rival", Rating: 1480, Result: "checkmated"},
		},
		{
			URL:       "https://www.chess.com/game/live/100",
			PGN:       "",
			TimeClass: "blitz",
			EndTime:   time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC).Unix(),
			White:     chesscom.Player{Username: "rival", Rating: 1480, Result: "win"},
			Black:     chesscom.Player{Username: "magnus", Rating: 1500, Result: "resigned"},
		},
	}, nil)

	// Game 100 is already stored.
	gameRepo.On("ExistingChessComIDs", mock.Anything, int64(1)).Return(map[string]bool{"100": true}, nil)
	gameRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(games []models.Game) bool {
		return len(games) == 1 &&
			games[0].ChessComID == "101" &&
			games[0].Result == "win" &&
			games[0].PlayedAs == "white" &&
			games[0].Opponent == "rival"
	})).Return(1, nil)
	profileRepo.On("TouchLastSync", mock.Anything, int64(1), mock.Anything).Return(nil)

	job := &worker.ImportGamesJob{
		ID:          "job-1",
		GameRepo:    gameRepo,
		ProfileRepo: profileRepo,
		ChessClient: chessClient,
		Events:      publisher,
		Profile:     profile,
	}

	require.NoError(t, job.Run(context.Background()))

	gameRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
	assert.Equal(t, []string{events.TypeImportStarted, events.TypeImportFinished}, publisher.types())
}

func TestImportGamesJob_SkipsArchivesBeforeLastSync(t *testing.T) {
	gameRepo := new(mocks.MockGameRepository)
	profileRepo := new(mocks.MockProfileRepository)
	chessClient := new(mocks.MockChessClient)

	lastSync := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	profile := models.Profile{ID: 1, Username: "magnus", LastSyncAt: &lastSync}

	older := "https://api.chess.com/pub/player/magnus/games/2024/01"
	newer := "https://api.chess.com/pub/player/magnus/games/2024/03"

	chessClient.On("FetchArchives", mock.Anything, "magnus").Return([]string{older, newer}, nil)
	// Only the post-sync archive is fetched.
	chessClient.On("FetchMonthly", mock.Anything, newer).Return([]chesscom.MonthlyGame{}, nil)
	gameRepo.On("ExistingChessComIDs", mock.Anything, int64(1)).Return(map[string]bool{}, nil)

	job := &worker.ImportGamesJob{
		ID:          "job-2",
		GameRepo:    gameRepo,
		ProfileRepo: profileRepo,
		ChessClient: chessClient,
		Profile:     profile,
	}

	require.NoError(t, job.Run(context.Background()))
	chessClient.AssertNotCalled(t, "FetchMonthly", mock.Anything, older)
}

func TestImportGamesJob_PublishesFailure(t *testing.T) {
	gameRepo := new(mocks.MockGameRepository)
	profileRepo := new(mocks.MockProfileRepository)
	chessClient := new(mocks.MockChessClient)
	publisher := &capturingPublisher{}

	chessClient.On("FetchArchives", mock.Anything, "magnus").Return(nil, assert.AnError)

	job := &worker.ImportGamesJob{
		ID:          "job-3",
		GameRepo:    gameRepo,
		ProfileRepo: profileRepo,
		ChessClient: chessClient,
		Events:      publisher,
		Profile:     models.Profile{ID: 1, Username: "magnus"},
	}

	require.Error(t, job.Run(context.Background()))
	assert.Equal(t, []string{events.TypeImportStarted, events.TypeImportFailed}, publisher.types())
}
