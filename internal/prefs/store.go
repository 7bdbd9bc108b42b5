// Package prefs is the server-side replacement for the dashboard's
// browser-local preference storage: a per-profile key-value store plus an
// observer list that fans writes out to interested parties (persisted
// layout, goal widgets, connected websocket clients).
package prefs

import (
	"context"
	"sync"
)

// Store is the injected key-value abstraction. Keys are namespaced per
// profile; values are opaque strings (callers JSON-encode structured
// values themselves).
type Store interface {
	Get(ctx context.Context, profileID int64, key string) (value string, ok bool, err error)
	Set(ctx context.Context, profileID int64, key, value string) error
	Remove(ctx context.Context, profileID int64, key string) error
	List(ctx context.Context, profileID int64) (map[string]string, error)
}

// Change describes one committed preference write.
type Change struct {
	ProfileID int64  `json:"profile_id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Removed   bool   `json:"removed"`
}

// Listener receives committed changes. Listeners run synchronously on the
// writing goroutine and must not block.
type Listener func(Change)

// Notifier is an explicit observer list for preference changes.
type Notifier struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[int]Listener
}

// Subscribe registers a listener and returns its cancel function.
func (n *Notifier) Subscribe(fn Listener) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listeners == nil {
		n.listeners = make(map[int]Listener)
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// Publish delivers a change to every registered listener.
func (n *Notifier) Publish(c Change) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, fn := range n.listeners {
		fn(c)
	}
}

// NotifyingStore decorates a Store so successful writes publish a Change.
type NotifyingStore struct {
	Store
	Notifier *Notifier
}

func (s *NotifyingStore) Set(ctx context.Context, profileID int64, key, value string) error {
	if err := s.Store.Set(ctx, profileID, key, value); err != nil {
		return err
	}
	s.Notifier.Publish(Change{ProfileID: profileID, Key: key, Value: value})
	return nil
}

func (s *NotifyingStore) Remove(ctx context.Context, profileID int64, key string) error {
	if err := s.Store.Remove(ctx, profileID, key); err != nil {
		return err
	}
	s.Notifier.Publish(Change{ProfileID: profileID, Key: key, Removed: true})
	return nil
}
