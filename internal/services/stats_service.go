package services

import (
	"context"
	"time"

	"github.com/vitorsp/perfboard/internal/errors"
	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/repository"
	"github.com/vitorsp/perfboard/internal/stats"
)

// StatsService runs the game-log aggregations for a profile's dashboard
// cards. All hour and weekday grouping happens in the profile's timezone.
type StatsService interface {
	Summary(ctx context.Context, profileID int64) (*models.SummaryStat, error)
	Hourly(ctx context.Context, profileID int64, from, to *time.Time) ([]stats.HourlyStat, error)
	DayOfWeek(ctx context.Context, profileID int64, from, to *time.Time) ([]stats.DayOfWeekStat, error)
	Heatmap(ctx context.Context, profileID int64, from, to *time.Time) ([]stats.HeatmapCell, error)
	Streaks(ctx context.Context, profileID int64, from, to *time.Time) ([]stats.StreakStat, error)
}

type statsService struct {
	profileRepo repository.ProfileRepository
	gameRepo    repository.GameRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(profileRepo repository.ProfileRepository, gameRepo repository.GameRepository) StatsService {
	return &statsService{profileRepo: profileRepo, gameRepo: gameRepo}
}

func (s *statsService) Summary(ctx context.Context, profileID int64) (*models.SummaryStat, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading summary: profile_id=%d", profileID)

	summary, err := s.gameRepo.Summary(ctx, profileID)
	if err != nil {
		log.Error("failed to load summary: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return summary, nil
}

// load resolves the profile's timezone and fetches its chronological game
// log, window-filtered at the database.
func (s *statsService) load(ctx context.Context, profileID int64, from, to *time.Time) ([]stats.GameLogEntry, *time.Location, error) {
	log := logger.FromContext(ctx)

	profile, err := s.profileRepo.Get(ctx, profileID)
	if err != nil {
		return nil, nil, errors.NewNotFoundError("profile", profileID)
	}

	entries, err := s.gameRepo.GameLog(ctx, profileID, from, to)
	if err != nil {
		log.Error("failed to load game log: %v", err)
		return nil, nil, errors.NewInternalError(err)
	}
	return entries, profile.Location(), nil
}

func (s *statsService) Hourly(ctx context.Context, profileID int64, from, to *time.Time) ([]stats.HourlyStat, error) {
	entries, loc, err := s.load(ctx, profileID, from, to)
	if err != nil {
		return nil, err
	}
	return stats.Hourly(entries, loc), nil
}

func (s *statsService) DayOfWeek(ctx context.Context, profileID int64, from, to *time.Time) ([]stats.DayOfWeekStat, error) {
	entries, loc, err := s.load(ctx, profileID, from, to)
	if err != nil {
		return nil, err
	}
	return stats.DayOfWeek(entries, loc), nil
}

func (s *statsService) Heatmap(ctx context.Context, profileID int64, from, to *time.Time) ([]stats.HeatmapCell, error) {
	entries, loc, err := s.load(ctx, profileID, from, to)
	if err != nil {
		return nil, err
	}
	return stats.Heatmap(entries, loc), nil
}

func (s *statsService) Streaks(ctx context.Context, profileID int64, from, to *time.Time) ([]stats.StreakStat, error) {
	entries, _, err := s.load(ctx, profileID, from, to)
	if err != nil {
		return nil, err
	}
	return stats.Streaks(entries), nil
}
