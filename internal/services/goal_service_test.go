package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vitorsp/perfboard/internal/errors"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/services"
	"github.com/vitorsp/perfboard/internal/testutil/mocks"
)

func TestGoalService_ListGoals_Progress(t *testing.T) {
	goalRepo := new(mocks.MockGoalRepository)
	gameRepo := new(mocks.MockGameRepository)
	svc := services.NewGoalService(goalRepo, gameRepo)

	goals := []models.Goal{
		{ID: 1, ProfileID: 7, Metric: models.GoalMetricWinRate, Target: 60},
		{ID: 2, ProfileID: 7, Metric: models.GoalMetricRating, Target: 2000},
		{ID: 3, ProfileID: 7, Metric: models.GoalMetricGamesPlayed, Target: 100},
	}
	summary := &models.SummaryStat{TotalGames: 150, WinRate: 54.5, CurrentRating: 1500}

	goalRepo.On("List", context.Background(), int64(7)).Return(goals, nil)
	gameRepo.On("Summary", context.Background(), int64(7)).Return(summary, nil)

	progress, err := svc.ListGoals(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, progress, 3)

	assert.Equal(t, 54.5, progress[0].Current)
	assert.InDelta(t, 90.83, progress[0].Percent, 0.01)
	assert.False(t, progress[0].Achieved)

	assert.Equal(t, 1500.0, progress[1].Current)
	assert.Equal(t, 75.0, progress[1].Percent)
	assert.False(t, progress[1].Achieved)

	assert.Equal(t, 150.0, progress[2].Current)
	assert.Equal(t, 100.0, progress[2].Percent) // capped
	assert.True(t, progress[2].Achieved)
}

func TestGoalService_ListGoals_EmptySkipsSummary(t *testing.T) {
	goalRepo := new(mocks.MockGoalRepository)
	gameRepo := new(mocks.MockGameRepository)
	svc := services.NewGoalService(goalRepo, gameRepo)

	goalRepo.On("List", context.Background(), int64(7)).Return([]models.Goal{}, nil)

	progress, err := svc.ListGoals(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, progress)
	gameRepo.AssertNotCalled(t, "Summary")
}

func TestGoalService_CreateGoal_Validation(t *testing.T) {
	goalRepo := new(mocks.MockGoalRepository)
	gameRepo := new(mocks.MockGameRepository)
	svc := services.NewGoalService(goalRepo, gameRepo)

	_, err := svc.CreateGoal(context.Background(), models.Goal{ProfileID: 7, Metric: "elo", Target: 10})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)

	_, err = svc.CreateGoal(context.Background(), models.Goal{ProfileID: 7, Metric: models.GoalMetricRating, Target: 0})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestGoalService_DeleteGoal_WrongProfile(t *testing.T) {
	goalRepo := new(mocks.MockGoalRepository)
	gameRepo := new(mocks.MockGameRepository)
	svc := services.NewGoalService(goalRepo, gameRepo)

	goalRepo.On("Get", context.Background(), int64(3)).
		Return(&models.Goal{ID: 3, ProfileID: 99}, nil)

	err := svc.DeleteGoal(context.Background(), 7, 3)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	goalRepo.AssertNotCalled(t, "Delete")
}
