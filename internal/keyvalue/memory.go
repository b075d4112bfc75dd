package keyvalue

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store. It is the default medium for tests and
// local development; contents last for the process lifetime only.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]string)}
}

// Get returns the slot contents or ErrNotFound.
func (m *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.slots[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set overwrites the slot contents.
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = value
	return nil
}
