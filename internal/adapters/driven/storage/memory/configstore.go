package memory

import (
	"sync"

	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map. Save and Load do nothing.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates an empty in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// Get returns the raw value stored under key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// GetString returns "" unless the value is a string.
func (s *ConfigStore) GetString(key string) string {
	return lookup[string](s, key)
}

// GetBool returns false unless the value is a bool.
func (s *ConfigStore) GetBool(key string) bool {
	return lookup[bool](s, key)
}

// GetInt converts any stored number to int.
func (s *ConfigStore) GetInt(key string) int {
	n, _ := number(s, key)
	return int(n)
}

// GetFloat converts any stored number to float64.
func (s *ConfigStore) GetFloat(key string) float64 {
	n, _ := number(s, key)
	return n
}

// Set stores value under key.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

// Save is a no-op.
func (s *ConfigStore) Save() error { return nil }

// Load is a no-op.
func (s *ConfigStore) Load() error { return nil }

// Path returns ":memory:".
func (s *ConfigStore) Path() string { return ":memory:" }

func lookup[T any](s *ConfigStore, key string) T {
	v, _ := s.Get(key)
	t, _ := v.(T)
	return t
}

func number(s *ConfigStore, key string) (float64, bool) {
	v, _ := s.Get(key)
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
