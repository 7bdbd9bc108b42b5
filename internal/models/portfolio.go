package models

import "time"

// Cash flow kinds
const (
	FlowDeposit    = "deposit"
	FlowWithdrawal = "withdrawal"
	FlowFee        = "fee"
)

type Account struct {
	ID        int64     `json:"id"`
	ProfileID int64     `json:"profile_id"`
	Name      string    `json:"name"`
	Broker    string    `json:"broker"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

type CashFlow struct {
	ID         int64     `json:"id"`
	AccountID  int64     `json:"account_id"`
	Kind       string    `json:"kind"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Valuation struct {
	ID         int64     `json:"id"`
	AccountID  int64     `json:"account_id"`
	Value      float64   `json:"value"`
	MeasuredAt time.Time `json:"measured_at"`
}

type FeeSummary struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type PerformancePoint struct {
	MeasuredAt time.Time `json:"measured_at"`
	Value      float64   `json:"value"`
	Return     float64   `json:"return"`     // period return, percent
	Cumulative float64   `json:"cumulative"` // chained return since first valuation, percent
}
