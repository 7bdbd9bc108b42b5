// Package repository defines the persistence interfaces the services
// depend on. SQLite implementations live in the sqlite subpackage.
package repository

import (
	"context"
	"time"

	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/stats"
)

type ProfileRepository interface {
	Get(ctx context.Context, id int64) (*models.Profile, error)
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, p models.Profile) (int64, error)
	Update(ctx context.Context, p models.Profile) error
	Delete(ctx context.Context, id int64) error
	TouchLastSync(ctx context.Context, id int64, at time.Time) error
}

type GameRepository interface {
	List(ctx context.Context, filter models.GameFilter) ([]models.Game, error)
	Count(ctx context.Context, filter models.GameFilter) (int, error)
	InsertBatch(ctx context.Context, games []models.Game) (int, error)
	// GameLog returns the profile's (timestamp, result) log sorted
	// ascending by end time, the shape the stats aggregations consume.
	GameLog(ctx context.Context, profileID int64, from, to *time.Time) ([]stats.GameLogEntry, error)
	Summary(ctx context.Context, profileID int64) (*models.SummaryStat, error)
	ExistingChessComIDs(ctx context.Context, profileID int64) (map[string]bool, error)
}

type GoalRepository interface {
	Get(ctx context.Context, id int64) (*models.Goal, error)
	List(ctx context.Context, profileID int64) ([]models.Goal, error)
	Create(ctx context.Context, g models.Goal) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type PortfolioRepository interface {
	GetAccount(ctx context.Context, id int64) (*models.Account, error)
	ListAccounts(ctx context.Context, profileID int64) ([]models.Account, error)
	CreateAccount(ctx context.Context, a models.Account) (int64, error)
	DeleteAccount(ctx context.Context, id int64) error

	ListFlows(ctx context.Context, accountID int64) ([]models.CashFlow, error)
	InsertFlow(ctx context.Context, f models.CashFlow) (int64, error)

	ListValuations(ctx context.Context, accountID int64) ([]models.Valuation, error)
	InsertValuation(ctx context.Context, v models.Valuation) (int64, error)
}
