package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vitorsp/perfboard/internal/models"
)

// MockPortfolioRepository is a mock implementation of repository.PortfolioRepository
type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockPortfolioRepository) ListAccounts(ctx context.Context, profileID int64) ([]models.Account, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockPortfolioRepository) CreateAccount(ctx context.Context, a models.Account) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPortfolioRepository) DeleteAccount(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPortfolioRepository) ListFlows(ctx context.Context, accountID int64) ([]models.CashFlow, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CashFlow), args.Error(1)
}

func (m *MockPortfolioRepository) InsertFlow(ctx context.Context, f models.CashFlow) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPortfolioRepository) ListValuations(ctx context.Context, accountID int64) ([]models.Valuation, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Valuation), args.Error(1)
}

func (m *MockPortfolioRepository) InsertValuation(ctx context.Context, v models.Valuation) (int64, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(int64), args.Error(1)
}
