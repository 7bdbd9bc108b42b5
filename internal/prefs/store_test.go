package prefs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorsp/perfboard/internal/prefs"
)

func TestMemory_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemory()

	_, ok, err := store.Get(ctx, 1, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, 1, "theme", "dark"))

	v, ok, err := store.Get(ctx, 1, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	// Keys are namespaced per profile.
	_, ok, err = store.Get(ctx, 2, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Remove(ctx, 1, "theme"))
	_, ok, err = store.Get(ctx, 1, "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_List(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemory()
	require.NoError(t, store.Set(ctx, 1, "theme", "dark"))
	require.NoError(t, store.Set(ctx, 1, "goal_banner", "hidden"))
	require.NoError(t, store.Set(ctx, 2, "theme", "light"))

	all, err := store.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"theme": "dark", "goal_banner": "hidden"}, all)
}

func TestNotifyingStore_PublishesOnWrite(t *testing.T) {
	ctx := context.Background()
	notifier := &prefs.Notifier{}
	store := &prefs.NotifyingStore{Store: prefs.NewMemory(), Notifier: notifier}

	var got []prefs.Change
	cancel := notifier.Subscribe(func(c prefs.Change) {
		got = append(got, c)
	})

	require.NoError(t, store.Set(ctx, 7, "theme", "dark"))
	require.NoError(t, store.Remove(ctx, 7, "theme"))

	require.Len(t, got, 2)
	assert.Equal(t, prefs.Change{ProfileID: 7, Key: "theme", Value: "dark"}, got[0])
	assert.Equal(t, prefs.Change{ProfileID: 7, Key: "theme", Removed: true}, got[1])

	cancel()
	require.NoError(t, store.Set(ctx, 7, "theme", "light"))
	assert.Len(t, got, 2, "cancelled listeners must not receive changes")
}

func TestNotifier_MultipleListeners(t *testing.T) {
	notifier := &prefs.Notifier{}
	var a, b int
	notifier.Subscribe(func(prefs.Change) { a++ })
	cancelB := notifier.Subscribe(func(prefs.Change) { b++ })

	notifier.Publish(prefs.Change{Key: "x"})
	cancelB()
	notifier.Publish(prefs.Change{Key: "y"})

	assert.Equal(t, 2, a)
	assert.Equal(t, 1, b)
}
