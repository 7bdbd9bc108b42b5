package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitorsp/perfboard/internal/chesscom"
	"github.com/vitorsp/perfboard/internal/events"
	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/repository"
	"github.com/vitorsp/perfboard/internal/worker"
)

// ImportService enqueues background game imports
type ImportService interface {
	// ImportGames queues an import job for the profile and returns the
	// job's ID for client-side progress tracking.
	ImportGames(ctx context.Context, profile models.Profile) string
}

type importService struct {
	gameRepo      repository.GameRepository
	profileRepo   repository.ProfileRepository
	chessClient   chesscom.ClientInterface
	pool          *worker.Pool
	events        events.Publisher
	archiveLimit  int
	maxConcurrent int
}

// NewImportService creates a new ImportService
func NewImportService(
	gameRepo repository.GameRepository,
	profileRepo repository.ProfileRepository,
	chessClient chesscom.ClientInterface,
	pool *worker.Pool,
	publisher events.Publisher,
	archiveLimit, maxConcurrent int,
) ImportService {
	return &importService{
		gameRepo:      gameRepo,
		profileRepo:   profileRepo,
		chessClient:   chessClient,
		pool:          pool,
		events:        publisher,
		archiveLimit:  archiveLimit,
		maxConcurrent: maxConcurrent,
	}
}

func (s *importService) ImportGames(ctx context.Context, profile models.Profile) string {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"username":   profile.Username,
		"profile_id": profile.ID,
	})

	jobID := uuid.New().String()
	log.Info("queueing game import job: import_id=%s", jobID)

	s.pool.Submit(&worker.ImportGamesJob{
		ID:            jobID,
		GameRepo:      s.gameRepo,
		ProfileRepo:   s.profileRepo,
		ChessClient:   s.chessClient,
		Events:        s.events,
		Profile:       profile,
		ArchiveLimit:  s.archiveLimit,
		MaxConcurrent: s.maxConcurrent,
	})
	return jobID
}
