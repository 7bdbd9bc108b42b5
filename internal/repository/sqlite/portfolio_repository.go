package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/repository"
)

type portfolioRepository struct {
	db *sql.DB
}

// NewPortfolioRepository creates a new PortfolioRepository implementation
func NewPortfolioRepository(db *sql.DB) repository.PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	log := logger.FromContext(ctx).WithPrefix("portfolio_repo")
	log.Debug("getting account: id=%d", id)

	var a models.Account
	err := r.db.QueryRowContext(ctx, `
SELECT id, profile_id, name, broker, currency, created_at
FROM accounts
WHERE id = ?
`, id).Scan(&a.ID, &a.ProfileID, &a.Name, &a.Broker, &a.Currency, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found: id=%d", id)
		} else {
			log.Error("failed to get account: %v", err)
		}
		return nil, err
	}
	return &a, nil
}

func (r *portfolioRepository) ListAccounts(ctx context.Context, profileID int64) ([]models.Account, error) {
	log := logger.FromContext(ctx).WithPrefix("portfolio_repo")
	log.Debug("listing accounts: profile_id=%d", profileID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, profile_id, name, broker, currency, created_at
FROM accounts
WHERE profile_id = ?
ORDER BY created_at ASC
`, profileID)
	if err != nil {
		log.Error("failed to list accounts: %v", err)
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.ProfileID, &a.Name, &a.Broker, &a.Currency, &a.CreatedAt); err != nil {
			log.Error("failed to scan account row: %v", err)
			return nil, err
		}
		accounts = append(accounts, a)
	}
	log.Debug("found %d accounts", len(accounts))
	return accounts, rows.Err()
}

func (r *portfolioRepository) CreateAccount(ctx context.Context, a models.Account) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("portfolio_repo")
	log.Debug("creating account: profile_id=%d, name=%s", a.ProfileID, a.Name)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO accounts (profile_id, name, broker, currency)
VALUES (?, ?, ?, ?)
`, a.ProfileID, a.Name, a.Broker, a.Currency)
	if err != nil {
		log.Error("failed to create account: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get account id: %v", err)
		return 0, err
	}
	log.Debug("account created: id=%d", id)
	return id, nil
}

func (r *portfolioRepository) DeleteAccount(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("portfolio_repo")
	log.Debug("deleting account: id=%d", id)

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cash_flows WHERE account_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM valuations WHERE account_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
		return err
	})
	if err != nil {
		log.Error("failed to delete account: %v", err)
	}
	return err
}

func (r *portfolioRepository) ListFlows(ctx context.Context, accountID int64) ([]models.CashFlow, error) {
	log := logger.FromContext(ctx).WithPrefix("portfolio_repo")
	log.Debug("listing cash flows: account_id=%d", accountID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, account_id, kind, amount, occurred_at
FROM cash_flows
WHERE account_id = ?
ORDER BY occurred_at ASC
`, accountID)
	if err != nil {
		log.Error("failed to list cash flows: %v", err)
		return nil, err
	}
	defer rows.Close()

	var flows []models.CashFlow
	for rows.Next() {
		var f models.CashFlow
		if err := rows.Scan(&f.ID, &f.AccountID, &f.Kind, &f.Amount, &f.OccurredAt); err != nil {
			log.Error("failed to scan cash flow row: %v", err)
			return nil, err
		}
		flows = append(flows, f)
	}
	log.Debug("found %d cash flows", len(flows))
	return flows, rows.Err()
}

func (r *portfolioRepository) InsertFlow(ctx context.Context, f models.CashFlow) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("portfolio_repo")
	log.Debug("inserting cash flow: account_id=%d, kind=%s", f.AccountID, f.Kind)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO cash_flows (account_id, kind, amount, occurred_at)
VALUES (?, ?, ?, ?)
`, f.AccountID, f.Kind, f.Amount, f.OccurredAt)
	if err != nil {
		log.Error("failed to insert cash flow: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *portfolioRepository) ListValuations(ctx context.Context, accountID int64) ([]models.Valuation, error) {
	log := logger.FromContext(ctx).WithPrefix("portfolio_repo")
	log.Debug("listing valuations: account_id=%d", accountID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, account_id, value, measured_at
FROM valuations
WHERE account_id = ?
ORDER BY measured_at ASC
`, accountID)
	if err != nil {
		log.Error("failed to list valuations: %v", err)
		return nil, err
	}
	defer rows.Close()

	var valuations []models.Valuation
	for rows.Next() {
		var v models.Valuation
		if err := rows.Scan(&v.ID, &v.AccountID, &v.Value, &v.MeasuredAt); err != nil {
			log.Error("failed to scan valuation row: %v", err)
			return nil, err
		}
		valuations = append(valuations, v)
	}
	log.Debug("found %d valuations", len(valuations))
	return valuations, rows.Err()
}

func (r *portfolioRepository) InsertValuation(ctx context.Context, v models.Valuation) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("portfolio_repo")
	log.Debug("inserting valuation: account_id=%d", v.AccountID)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO valuations (account_id, value, measured_at)
VALUES (?, ?, ?)
`, v.AccountID, v.Value, v.MeasuredAt)
	if err != nil {
		log.Error("failed to insert valuation: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}
