// Package storetest provides an in-memory domain.TokenStore for tests.
package storetest

import (
	"sync"

	"eatgo/internal/domain"
)

// Memory keeps items in a map. SaveErr and RemoveErr, when set, are returned
// by the corresponding calls without touching the map.
type Memory struct {
	mu    sync.Mutex
	items map[string]string

	SaveErr   error
	RemoveErr error
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

func (m *Memory) SaveItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.items[key] = value
	return nil
}

func (m *Memory) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	delete(m.items, key)
	return nil
}

func (m *Memory) LoadItem(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

var _ domain.TokenStore = (*Memory)(nil)
