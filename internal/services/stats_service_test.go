package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/services"
	"github.com/vitorsp/perfboard/internal/stats"
	"github.com/vitorsp/perfboard/internal/testutil/mocks"
)

func entryAt(t time.Time, r stats.Result) stats.GameLogEntry {
	return stats.GameLogEntry{Timestamp: t.Unix(), Result: r}
}

func TestStatsService_Hourly_UsesProfileTimezone(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepository)
	gameRepo := new(mocks.MockGameRepository)
	svc := services.NewStatsService(profileRepo, gameRepo)

	// 23:30 UTC is 01:30 in Helsinki (UTC+2 in winter), hour group 0.
	played := time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC)
	profile := &models.Profile{ID: 1, Username: "magnus", Timezone: "Europe/Helsinki"}

	profileRepo.On("Get", context.Background(), int64(1)).Return(profile, nil)
	gameRepo.On("GameLog", context.Background(), int64(1), (*time.Time)(nil), (*time.Time)(nil)).
		Return([]stats.GameLogEntry{entryAt(played, stats.Win)}, nil)

	hourly, err := svc.Hourly(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, hourly, 1)
	assert.Equal(t, 0, hourly[0].HourGroup)
	assert.Equal(t, 100.0, hourly[0].WinRate)

	profileRepo.AssertExpectations(t)
	gameRepo.AssertExpectations(t)
}

func TestStatsService_Heatmap_AlwaysFullGrid(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepository)
	gameRepo := new(mocks.MockGameRepository)
	svc := services.NewStatsService(profileRepo, gameRepo)

	profile := &models.Profile{ID: 1, Username: "magnus", Timezone: "UTC"}
	profileRepo.On("Get", context.Background(), int64(1)).Return(profile, nil)
	gameRepo.On("GameLog", context.Background(), int64(1), (*time.Time)(nil), (*time.Time)(nil)).
		Return([]stats.GameLogEntry{}, nil)

	cells, err := svc.Heatmap(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	assert.Len(t, cells, 84)
}

func TestStatsService_ProfileNotFound(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepository)
	gameRepo := new(mocks.MockGameRepository)
	svc := services.NewStatsService(profileRepo, gameRepo)

	profileRepo.On("Get", context.Background(), int64(42)).Return(nil, assert.AnError)

	_, err := svc.Hourly(context.Background(), 42, nil, nil)
	assert.Error(t, err)
}

func TestStatsService_Streaks_PassesWindow(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepository)
	gameRepo := new(mocks.MockGameRepository)
	svc := services.NewStatsService(profileRepo, gameRepo)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	profile := &models.Profile{ID: 1, Username: "magnus", Timezone: "UTC"}

	base := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	log := []stats.GameLogEntry{
		entryAt(base, stats.Win),
		entryAt(base.Add(time.Hour), stats.Win),
		entryAt(base.Add(2*time.Hour), stats.Loss),
	}

	profileRepo.On("Get", context.Background(), int64(1)).Return(profile, nil)
	gameRepo.On("GameLog", context.Background(), int64(1), &from, &to).Return(log, nil)

	streaks, err := svc.Streaks(context.Background(), 1, &from, &to)
	require.NoError(t, err)
	assert.NotEmpty(t, streaks)
	gameRepo.AssertExpectations(t)
}

func TestStatsService_Summary(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepository)
	gameRepo := new(mocks.MockGameRepository)
	svc := services.NewStatsService(profileRepo, gameRepo)

	gameRepo.On("Summary", context.Background(), int64(1)).
		Return(&models.SummaryStat{TotalGames: 10, Wins: 6, Draws: 2, Losses: 2, WinRate: 70.0, CurrentRating: 1500}, nil)

	summary, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 70.0, summary.WinRate)
}
