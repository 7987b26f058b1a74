package credential

import (
	"strings"
	"sync"
)

// Store holds the process-wide upstream credential. It is read when a
// submission is relayed and written on explicit save, so a credential
// entered once serves every session in the same runtime instance.
type Store interface {
	Get() (string, bool)
	Set(value string)
}

// MemoryStore implements Store with a mutex-guarded value.
type MemoryStore struct {
	mu    sync.RWMutex
	value string
}

// NewMemoryStore returns a store seeded with the given credential.
// An empty seed leaves the store unconfigured.
func NewMemoryStore(seed string) *MemoryStore {
	return &MemoryStore{value: strings.TrimSpace(seed)}
}

// Get returns the stored credential and whether one is configured.
func (s *MemoryStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.value != ""
}

// Set replaces the stored credential. No local validation is performed;
// validity is only discovered on first use against the upstream service.
func (s *MemoryStore) Set(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = strings.TrimSpace(value)
}
