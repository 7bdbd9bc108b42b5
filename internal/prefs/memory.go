package prefs

import (
	"context"
	"sync"
)

type memoryKey struct {
	profileID int64
	key       string
}

// Memory is an in-process Store used in tests and as a fallback before a
// profile has persisted anything.
type Memory struct {
	mu     sync.RWMutex
	values map[memoryKey]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[memoryKey]string)}
}

func (m *Memory) Get(_ context.Context, profileID int64, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[memoryKey{profileID, key}]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, profileID int64, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[memoryKey{profileID, key}] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, profileID int64, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, memoryKey{profileID, key})
	return nil
}

func (m *Memory) List(_ context.Context, profileID int64) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string)
	for k, v := range m.values {
		if k.profileID == profileID {
			out[k.key] = v
		}
	}
	return out, nil
}
