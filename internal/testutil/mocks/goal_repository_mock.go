package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vitorsp/perfboard/internal/models"
)

// MockGoalRepository is a mock implementation of repository.GoalRepository
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Get(ctx context.Context, id int64) (*models.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Goal), args.Error(1)
}

func (m *MockGoalRepository) List(ctx context.Context, profileID int64) ([]models.Goal, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Goal), args.Error(1)
}

func (m *MockGoalRepository) Create(ctx context.Context, g models.Goal) (int64, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGoalRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
