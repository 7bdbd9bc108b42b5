package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/stats"
)

// MockGameRepository is a mock implementation of repository.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) List(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockGameRepository) Count(ctx context.Context, filter models.GameFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockGameRepository) InsertBatch(ctx context.Context, games []models.Game) (int, error) {
	args := m.Called(ctx, games)
	return args.Int(0), args.Error(1)
}

func (m *MockGameRepository) GameLog(ctx context.Context, profileID int64, from, to *time.Time) ([]stats.GameLogEntry, error) {
	args := m.Called(ctx, profileID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stats.GameLogEntry), args.Error(1)
}

func (m *MockGameRepository) Summary(ctx context.Context, profileID int64) (*models.SummaryStat, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SummaryStat), args.Error(1)
}

func (m *MockGameRepository) ExistingChessComIDs(ctx context.Context, profileID int64) (map[string]bool, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}
