package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorsp/perfboard/internal/layout"
	"github.com/vitorsp/perfboard/internal/prefs"
	"github.com/vitorsp/perfboard/internal/services"
)

func TestPreferenceService_GetLayout_DefaultsToCatalog(t *testing.T) {
	svc := services.NewPreferenceService(prefs.NewMemory())

	ids, err := svc.GetLayout(context.Background(), 1, layout.DashboardChess)
	require.NoError(t, err)
	assert.Equal(t, layout.Catalog(layout.DashboardChess), ids)
}

func TestPreferenceService_SaveAndGetLayout(t *testing.T) {
	svc := services.NewPreferenceService(prefs.NewMemory())
	ctx := context.Background()

	saved, err := svc.SaveLayout(ctx, 1, layout.DashboardInvesting,
		[]string{"fees", "accounts", "bogus", "performance", "cash_flows"})
	require.NoError(t, err)
	// Unknown IDs are dropped.
	assert.Equal(t, []string{"fees", "accounts", "performance", "cash_flows"}, saved)

	loaded, err := svc.GetLayout(ctx, 1, layout.DashboardInvesting)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestPreferenceService_GetLayout_CorruptFallsBack(t *testing.T) {
	store := prefs.NewMemory()
	svc := services.NewPreferenceService(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, 1, "layout.chess", "{not json"))

	ids, err := svc.GetLayout(ctx, 1, layout.DashboardChess)
	require.NoError(t, err)
	assert.Equal(t, layout.Catalog(layout.DashboardChess), ids)
}

func TestPreferenceService_UnknownDashboard(t *testing.T) {
	svc := services.NewPreferenceService(prefs.NewMemory())

	_, err := svc.GetLayout(context.Background(), 1, "gardening")
	assert.Error(t, err)
}

func TestPreferenceService_SetEmptyKey(t *testing.T) {
	svc := services.NewPreferenceService(prefs.NewMemory())

	err := svc.Set(context.Background(), 1, "", "v")
	assert.Error(t, err)
}
