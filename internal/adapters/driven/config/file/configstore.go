package file

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

const configHeader = "# LegalMind settings. Edit with `legalmind settings` or by hand.\n\n"

// ConfigStore keeps settings in ~/.legalmind/config.toml.
//
// Values are held under flat dot keys ("llm.model") and written back as
// nested TOML tables ([llm] model = ...).
type ConfigStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
}

// NewConfigStore opens the config file in dir, or in ~/.legalmind when dir
// is empty. A missing file is an empty configuration.
func NewConfigStore(dir string) (*ConfigStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dir = filepath.Join(home, ".legalmind")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	s := &ConfigStore{
		path:   filepath.Join(dir, "config.toml"),
		values: make(map[string]any),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the raw value stored under key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// GetString returns "" for missing or non-string values.
func (s *ConfigStore) GetString(key string) string {
	v, _ := s.Get(key)
	str, _ := v.(string)
	return str
}

// GetInt returns 0 for missing or non-integer values.
func (s *ConfigStore) GetInt(key string) int {
	v, _ := s.Get(key)
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// GetBool returns false for missing or non-boolean values.
func (s *ConfigStore) GetBool(key string) bool {
	v, _ := s.Get(key)
	b, _ := v.(bool)
	return b
}

// GetFloat accepts TOML floats and integers, so "temperature = 1" reads as 1.0.
func (s *ConfigStore) GetFloat(key string) float64 {
	v, _ := s.Get(key)
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

// Set stores value under key and writes the file.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.write()
}

// Save writes the file.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write()
}

// Load replaces the in-memory values with the file's contents.
func (s *ConfigStore) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		data, err = nil, nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	tree := map[string]any{}
	if err := toml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}

	flat := make(map[string]any)
	flatten("", tree, flat)

	s.mu.Lock()
	s.values = flat
	s.mu.Unlock()
	return nil
}

// Path returns the config file path.
func (s *ConfigStore) Path() string {
	return s.path
}

// write replaces the file through a temp file. The caller holds mu.
func (s *ConfigStore) write() error {
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	if err := toml.NewEncoder(&buf).Encode(nest(s.values)); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

// nest turns {"a.b": 1} into {"a": {"b": 1}}.
func nest(flat map[string]any) map[string]any {
	root := make(map[string]any)
	for key, value := range flat {
		parts := strings.Split(key, ".")
		table := root
		for _, p := range parts[:len(parts)-1] {
			child, ok := table[p].(map[string]any)
			if !ok {
				child = make(map[string]any)
				table[p] = child
			}
			table = child
		}
		table[parts[len(parts)-1]] = value
	}
	return root
}

// flatten turns {"a": {"b": 1}} into {"a.b": 1}, writing into out.
func flatten(prefix string, tree, out map[string]any) {
	for key, value := range tree {
		if prefix != "" {
			key = prefix + "." + key
		}
		if table, ok := value.(map[string]any); ok {
			flatten(key, table, out)
			continue
		}
		out[key] = value
	}
}
