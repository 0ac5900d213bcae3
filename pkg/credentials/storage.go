package credentials

import (
	"context"
	"sync"
)

// Storage is a persistent key-value slot for the AI credential, surviving
// process restarts. Get returns ErrNotFound when no credential has been
// stored yet.
type Storage interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string) error
}

// MemoryStorage implements Storage in process memory.
// Useful for tests and for sessions that should not persist the credential.
type MemoryStorage struct {
	mu    sync.RWMutex
	value string
	set   bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Get(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return "", ErrNotFound
	}
	return m.value, nil
}

func (m *MemoryStorage) Set(ctx context.Context, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	m.set = true
	return nil
}
