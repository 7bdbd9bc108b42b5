package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitorsp/perfboard/internal/layout"
)

func TestMove(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}

	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"backward", 3, 1, []string{"a", "d", "b", "c"}},
		{"same index", 1, 1, []string{"a", "b", "c", "d"}},
		{"from out of range", 9, 1, []string{"a", "b", "c", "d"}},
		{"to out of range", 1, -1, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.Move(ids, tt.from, tt.to))
		})
	}
}

func TestMove_DoesNotMutateInput(t *testing.T) {
	ids := []string{"a", "b", "c"}
	_ = layout.Move(ids, 0, 2)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestMerge_KeepsSavedOrderDropsUnknownAppendsNew(t *testing.T) {
	catalog := []string{"summary", "hourly", "heatmap", "streaks"}
	saved := []string{"heatmap", "retired_card", "summary", "heatmap"}

	got := layout.Merge(saved, catalog)

	assert.Equal(t, []string{"heatmap", "summary", "hourly", "streaks"}, got)
}

func TestMerge_EmptySavedYieldsCatalog(t *testing.T) {
	catalog := []string{"a", "b"}
	assert.Equal(t, catalog, layout.Merge(nil, catalog))
}

func TestCatalog(t *testing.T) {
	chess := layout.Catalog(layout.DashboardChess)
	assert.Contains(t, chess, "heatmap")
	assert.Contains(t, chess, "streaks")

	investing := layout.Catalog(layout.DashboardInvesting)
	assert.Contains(t, investing, "performance")

	assert.Nil(t, layout.Catalog("nope"))

	// Catalog returns a copy; callers may reorder freely.
	chess[0] = "mutated"
	assert.NotEqual(t, chess[0], layout.Catalog(layout.DashboardChess)[0])
}
