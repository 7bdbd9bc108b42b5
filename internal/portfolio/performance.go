// Package portfolio holds the pure calculations of the investing vertical:
// time-weighted account performance from valuations and cash flows, and
// yearly fee summaries.
package portfolio

import (
	"math"
	"sort"
	"time"

	"github.com/vitorsp/perfboard/internal/models"
)

// Performance computes a time-weighted return series over the account's
// valuations. Deposits and withdrawals between two valuations are treated
// as external flows landing at the end of the period, so the period return
// is (V1 - net flow) / V0 - 1. Fees are not external flows; they stay in
// the series as performance drag. Returns are percentages rounded to two
// decimals; Cumulative chains the period returns from the first valuation.
func Performance(valuations []models.Valuation, flows []models.CashFlow) []models.PerformancePoint {
	if len(valuations) == 0 {
		return nil
	}

	sorted := append([]models.Valuation(nil), valuations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MeasuredAt.Before(sorted[j].MeasuredAt) })

	out := make([]models.PerformancePoint, 0, len(sorted))
	out = append(out, models.PerformancePoint{
		MeasuredAt: sorted[0].MeasuredAt,
		Value:      sorted[0].Value,
	})

	growth := 1.0
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]

		net := netExternalFlow(flows, prev.MeasuredAt, cur.MeasuredAt)
		var r float64
		if prev.Value > 0 {
			r = (cur.Value-net)/prev.Value - 1
		}
		growth *= 1 + r

		out = append(out, models.PerformancePoint{
			MeasuredAt: cur.MeasuredAt,
			Value:      cur.Value,
			Return:     round2(r * 100),
			Cumulative: round2((growth - 1) * 100),
		})
	}
	return out
}

// netExternalFlow sums deposits minus withdrawals with from < t <= to.
func netExternalFlow(flows []models.CashFlow, from, to time.Time) float64 {
	net := 0.0
	for _, f := range flows {
		if !f.OccurredAt.After(from) || f.OccurredAt.After(to) {
			continue
		}
		switch f.Kind {
		case models.FlowDeposit:
			net += f.Amount
		case models.FlowWithdrawal:
			net -= f.Amount
		}
	}
	return net
}

// FeeSummaries totals fee-kind cash flows per calendar year, ascending.
func FeeSummaries(flows []models.CashFlow) []models.FeeSummary {
	byYear := map[int]*models.FeeSummary{}
	for _, f := range flows {
		if f.Kind != models.FlowFee {
			continue
		}
		year := f.OccurredAt.Year()
		s := byYear[year]
		if s == nil {
			s = &models.FeeSummary{Year: year}
			byYear[year] = s
		}
		s.Total += f.Amount
		s.Count++
	}

	out := make([]models.FeeSummary, 0, len(byYear))
	for _, s := range byYear {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
