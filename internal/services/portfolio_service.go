package services

import (
	"context"
	"database/sql"

	"github.com/vitorsp/perfboard/internal/chart"
	"github.com/vitorsp/perfboard/internal/errors"
	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/portfolio"
	"github.com/vitorsp/perfboard/internal/repository"
)

// PortfolioService handles investing account business logic
type PortfolioService interface {
	ListAccounts(ctx context.Context, profileID int64) ([]models.Account, error)
	CreateAccount(ctx context.Context, a models.Account) (*models.Account, error)
	DeleteAccount(ctx context.Context, profileID, accountID int64) error

	ListFlows(ctx context.Context, profileID, accountID int64) ([]models.CashFlow, error)
	AddFlow(ctx context.Context, profileID int64, f models.CashFlow) (*models.CashFlow, error)
	AddValuation(ctx context.Context, profileID int64, v models.Valuation) (*models.Valuation, error)

	Performance(ctx context.Context, profileID, accountID int64) ([]models.PerformancePoint, error)
	PerformanceSeries(ctx context.Context, profileID, accountID int64, interval chart.Interval) ([]chart.Point, error)
	FeeSummaries(ctx context.Context, profileID, accountID int64) ([]models.FeeSummary, error)
}

type portfolioService struct {
	portfolioRepo repository.PortfolioRepository
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(portfolioRepo repository.PortfolioRepository) PortfolioService {
	return &portfolioService{portfolioRepo: portfolioRepo}
}

// ownedAccount loads the account and verifies it belongs to the profile.
func (s *portfolioService) ownedAccount(ctx context.Context, profileID, accountID int64) (*models.Account, error) {
	account, err := s.portfolioRepo.GetAccount(ctx, accountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("account", accountID)
		}
		return nil, errors.NewInternalError(err)
	}
	if account.ProfileID != profileID {
		return nil, errors.NewNotFoundError("account", accountID)
	}
	return account, nil
}

func (s *portfolioService) ListAccounts(ctx context.Context, profileID int64) ([]models.Account, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing accounts: profile_id=%d", profileID)

	accounts, err := s.portfolioRepo.ListAccounts(ctx, profileID)
	if err != nil {
		log.Error("failed to list accounts: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return accounts, nil
}

func (s *portfolioService) CreateAccount(ctx context.Context, a models.Account) (*models.Account, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating account: profile_id=%d, name=%s", a.ProfileID, a.Name)

	if a.Name == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}
	if a.Currency == "" {
		a.Currency = "EUR"
	}

	id, err := s.portfolioRepo.CreateAccount(ctx, a)
	if err != nil {
		log.Error("failed to create account: %v", err)
		return nil, errors.NewInternalError(err)
	}
	account, err := s.portfolioRepo.GetAccount(ctx, id)
	if err != nil {
		log.Error("failed to reload account: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return account, nil
}

func (s *portfolioService) DeleteAccount(ctx context.Context, profileID, accountID int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting account: profile_id=%d, account_id=%d", profileID, accountID)

	if _, err := s.ownedAccount(ctx, profileID, accountID); err != nil {
		return err
	}
	if err := s.portfolioRepo.DeleteAccount(ctx, accountID); err != nil {
		log.Error("failed to delete account: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *portfolioService) ListFlows(ctx context.Context, profileID, accountID int64) ([]models.CashFlow, error) {
	if _, err := s.ownedAccount(ctx, profileID, accountID); err != nil {
		return nil, err
	}
	flows, err := s.portfolioRepo.ListFlows(ctx, accountID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return flows, nil
}

func validFlowKind(kind string) bool {
	switch kind {
	case models.FlowDeposit, models.FlowWithdrawal, models.FlowFee:
		return true
	}
	return false
}

func (s *portfolioService) AddFlow(ctx context.Context, profileID int64, f models.CashFlow) (*models.CashFlow, error) {
	log := logger.FromContext(ctx)
	log.Debug("adding cash flow: account_id=%d, kind=%s", f.AccountID, f.Kind)

	if !validFlowKind(f.Kind) {
		return nil, errors.NewValidationError("kind", "must be one of deposit, withdrawal, fee")
	}
	if f.Amount <= 0 {
		return nil, errors.NewValidationError("amount", "must be positive")
	}
	if f.OccurredAt.IsZero() {
		return nil, errors.NewValidationError("occurred_at", "cannot be empty")
	}
	if _, err := s.ownedAccount(ctx, profileID, f.AccountID); err != nil {
		return nil, err
	}

	id, err := s.portfolioRepo.InsertFlow(ctx, f)
	if err != nil {
		log.Error("failed to insert cash flow: %v", err)
		return nil, errors.NewInternalError(err)
	}
	f.ID = id
	return &f, nil
}

func (s *portfolioService) AddValuation(ctx context.Context, profileID int64, v models.Valuation) (*models.Valuation, error) {
	log := logger.FromContext(ctx)
	log.Debug("adding valuation: account_id=%d", v.AccountID)

	if v.Value < 0 {
		return nil, errors.NewValidationError("value", "cannot be negative")
	}
	if v.MeasuredAt.IsZero() {
		return nil, errors.NewValidationError("measured_at", "cannot be empty")
	}
	if _, err := s.ownedAccount(ctx, profileID, v.AccountID); err != nil {
		return nil, err
	}

	id, err := s.portfolioRepo.InsertValuation(ctx, v)
	if err != nil {
		log.Error("failed to insert valuation: %v", err)
		return nil, errors.NewInternalError(err)
	}
	v.ID = id
	return &v, nil
}

func (s *portfolioService) loadPerformance(ctx context.Context, profileID, accountID int64) ([]models.PerformancePoint, error) {
	if _, err := s.ownedAccount(ctx, profileID, accountID); err != nil {
		return nil, err
	}
	valuations, err := s.portfolioRepo.ListValuations(ctx, accountID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	flows, err := s.portfolioRepo.ListFlows(ctx, accountID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return portfolio.Performance(valuations, flows), nil
}

func (s *portfolioService) Performance(ctx context.Context, profileID, accountID int64) ([]models.PerformancePoint, error) {
	return s.loadPerformance(ctx, profileID, accountID)
}

// PerformanceSeries buckets the cumulative return series for the chart
// component, one point per day or month.
func (s *portfolioService) PerformanceSeries(ctx context.Context, profileID, accountID int64, interval chart.Interval) ([]chart.Point, error) {
	points, err := s.loadPerformance(ctx, profileID, accountID)
	if err != nil {
		return nil, err
	}

	samples := make([]chart.Sample, 0, len(points))
	for _, p := range points {
		samples = append(samples, chart.Sample{At: p.MeasuredAt, Value: p.Cumulative})
	}
	return chart.BucketSeries(samples, interval, nil), nil
}

func (s *portfolioService) FeeSummaries(ctx context.Context, profileID, accountID int64) ([]models.FeeSummary, error) {
	if _, err := s.ownedAccount(ctx, profileID, accountID); err != nil {
		return nil, err
	}
	flows, err := s.portfolioRepo.ListFlows(ctx, accountID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return portfolio.FeeSummaries(flows), nil
}
