package services

import (
	"context"
	"database/sql"

	"github.com/vitorsp/perfboard/internal/errors"
	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/repository"
)

// GoalService handles performance goal business logic
type GoalService interface {
	ListGoals(ctx context.Context, profileID int64) ([]models.GoalProgress, error)
	CreateGoal(ctx context.Context, g models.Goal) (*models.Goal, error)
	DeleteGoal(ctx context.Context, profileID, goalID int64) error
}

type goalService struct {
	goalRepo repository.GoalRepository
	gameRepo repository.GameRepository
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo repository.GoalRepository, gameRepo repository.GameRepository) GoalService {
	return &goalService{goalRepo: goalRepo, gameRepo: gameRepo}
}

func validGoalMetric(metric string) bool {
	switch metric {
	case models.GoalMetricWinRate, models.GoalMetricRating, models.GoalMetricGamesPlayed:
		return true
	}
	return false
}

func (s *goalService) ListGoals(ctx context.Context, profileID int64) ([]models.GoalProgress, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing goals: profile_id=%d", profileID)

	goals, err := s.goalRepo.List(ctx, profileID)
	if err != nil {
		log.Error("failed to list goals: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if len(goals) == 0 {
		return nil, nil
	}

	summary, err := s.gameRepo.Summary(ctx, profileID)
	if err != nil {
		log.Error("failed to load summary for goal progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	progress := make([]models.GoalProgress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, goalProgress(g, summary))
	}
	return progress, nil
}

func goalProgress(g models.Goal, summary *models.SummaryStat) models.GoalProgress {
	var current float64
	switch g.Metric {
	case models.GoalMetricWinRate:
		current = summary.WinRate
	case models.GoalMetricRating:
		current = float64(summary.CurrentRating)
	case models.GoalMetricGamesPlayed:
		current = float64(summary.TotalGames)
	}

	percent := 0.0
	if g.Target > 0 {
		percent = current / g.Target * 100
		if percent > 100 {
			percent = 100
		}
		if percent < 0 {
			percent = 0
		}
	}
	return models.GoalProgress{
		Goal:     g,
		Current:  current,
		Percent:  percent,
		Achieved: current >= g.Target,
	}
}

func (s *goalService) CreateGoal(ctx context.Context, g models.Goal) (*models.Goal, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating goal: profile_id=%d, metric=%s", g.ProfileID, g.Metric)

	if !validGoalMetric(g.Metric) {
		return nil, errors.NewValidationError("metric", "must be one of win_rate, rating, games_played")
	}
	if g.Target <= 0 {
		return nil, errors.NewValidationError("target", "must be positive")
	}

	id, err := s.goalRepo.Create(ctx, g)
	if err != nil {
		log.Error("failed to create goal: %v", err)
		return nil, errors.NewInternalError(err)
	}

	created, err := s.goalRepo.Get(ctx, id)
	if err != nil {
		log.Error("failed to reload goal: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return created, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, profileID, goalID int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting goal: profile_id=%d, goal_id=%d", profileID, goalID)

	goal, err := s.goalRepo.Get(ctx, goalID)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("goal", goalID)
		}
		log.Error("failed to get goal: %v", err)
		return errors.NewInternalError(err)
	}
	if goal.ProfileID != profileID {
		return errors.NewNotFoundError("goal", goalID)
	}

	if err := s.goalRepo.Delete(ctx, goalID); err != nil {
		log.Error("failed to delete goal: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
