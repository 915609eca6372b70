// internal/storage/storage.go
//
// Key/value persistence contract for game history and saved progress, plus
// the in-memory implementation. The store mirrors a browser's localStorage
// surface: string keys, string values, reads that may simply find nothing.
//
// Characteristics of the memory store:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits; used for tests and ephemeral runs.

package storage

import "sync"

// Store is the persistence interface injected into the stats engine.
// Implementations may be backed by memory (this package), SQLite, etc.
type Store interface {
	// Get retrieves the value for key. The second return is false when the
	// key is absent or the value cannot be read.
	Get(key string) (string, bool)

	// Set writes or replaces the value for key.
	Set(key, value string) error
}

// Memory is a map-backed Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory constructs an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
