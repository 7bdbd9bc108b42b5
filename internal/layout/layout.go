// Package layout implements the reorderable dashboard card grid: a saved
// per-dashboard ordering of card IDs, a drag-move primitive, and the merge
// of a saved order with the current card catalog.
package layout

// Dashboard verticals.
const (
	DashboardChess     = "chess"
	DashboardInvesting = "investing"
)

// Card catalogs per dashboard. The saved order is reconciled against
// these, so shipping a new card appends it without wiping saved layouts.
var catalogs = map[string][]string{
	DashboardChess: {
		"summary", "hourly", "day_of_week", "heatmap", "streaks", "goals", "fide",
	},
	DashboardInvesting: {
		"accounts", "performance", "fees", "cash_flows",
	},
}

// Catalog returns the default card order for a dashboard, or nil for an
// unknown dashboard.
func Catalog(dashboard string) []string {
	cards, ok := catalogs[dashboard]
	if !ok {
		return nil
	}
	out := make([]string, len(cards))
	copy(out, cards)
	return out
}

// Move returns a new order with the card at index from re-inserted at
// index to. Out-of-range indices leave the order unchanged.
func Move(ids []string, from, to int) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	card := out[from]
	out = append(out[:from], out[from+1:]...)
	rest := append(out[:to:to], append([]string{card}, out[to:]...)...)
	return rest
}

// Merge reconciles a saved order with the current catalog: saved IDs that
// still exist keep their position, unknown saved IDs are dropped, and
// cards added since the layout was saved are appended in catalog order.
func Merge(saved, catalog []string) []string {
	known := make(map[string]bool, len(catalog))
	for _, id := range catalog {
		known[id] = true
	}

	out := make([]string, 0, len(catalog))
	seen := make(map[string]bool, len(catalog))
	for _, id := range saved {
		if known[id] && !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	for _, id := range catalog {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}
