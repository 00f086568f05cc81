package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
	"github.com/custodia-labs/legalmind/internal/logger"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

const promptExt = ".txt"

// builtinPrompts seed the prompt directory and stand in for missing files.
var builtinPrompts = map[string]string{
	driven.PromptBaseIdentity: domain.DefaultBaseIdentity,
	driven.PromptRepositories: domain.DefaultRepositories,
}

type cachedPrompt struct {
	text    string
	modTime time.Time
}

// PromptStore serves the assistant's prompts from editable text files.
//
// The directory is seeded with the built-in prompts on the first Load.
// A file is re-read whenever its modification time changes, so edits reach
// a running chat session without a restart.
type PromptStore struct {
	dir string

	mu     sync.Mutex
	seeded bool
	cache  map[string]cachedPrompt
}

// NewPromptStore creates a prompt store rooted at dir, or at
// ~/.legalmind/prompts when dir is empty. Nothing is written until Load.
func NewPromptStore(dir string) (*PromptStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dir = filepath.Join(home, ".legalmind", "prompts")
	}
	return &PromptStore{dir: dir, cache: make(map[string]cachedPrompt)}, nil
}

// Load returns the named prompt with trailing whitespace removed.
// Built-in prompts are returned when their file is missing or unreadable.
func (s *PromptStore) Load(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		s.seeded = true
		if err := s.seed(); err != nil {
			logger.Warn("Prompt directory not seeded: %v", err)
		}
	}

	text, err := s.read(name)
	if err == nil {
		return text, nil
	}
	delete(s.cache, name)
	if builtin, ok := builtinPrompts[name]; ok {
		return builtin, nil
	}
	return "", fmt.Errorf("load prompt %q: %w", name, err)
}

// Reload forgets every cached prompt.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]cachedPrompt)
	s.mu.Unlock()
}

// Dir returns the prompt directory.
func (s *PromptStore) Dir() string {
	return s.dir
}

func (s *PromptStore) path(name string) string {
	return filepath.Join(s.dir, name+promptExt)
}

func (s *PromptStore) read(name string) (string, error) {
	info, err := os.Stat(s.path(name))
	if err != nil {
		return "", err
	}
	if c, ok := s.cache[name]; ok && c.modTime.Equal(info.ModTime()) {
		return c.text, nil
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return "", err
	}
	// Leading whitespace is part of the base identity.
	text := strings.TrimRight(string(data), " \t\r\n")
	s.cache[name] = cachedPrompt{text: text, modTime: info.ModTime()}
	return text, nil
}

// seed writes the built-in prompts and a README, keeping existing files.
func (s *PromptStore) seed() error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create prompt directory: %w", err)
	}
	files := map[string]string{"README.md": promptReadme}
	for name, text := range builtinPrompts {
		files[name+promptExt] = text
	}
	for file, text := range files {
		if err := writeIfMissing(filepath.Join(s.dir, file), text); err != nil {
			return err
		}
	}
	return nil
}

func writeIfMissing(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if os.IsExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

const promptReadme = `# LegalMind prompts

Every system prompt LegalMind sends starts with these files:

- base_identity.txt: who the assistant is and how it reasons
- repositories.txt: the evidence, insights and arguments it can draw on

Edits apply to the next message, including inside a running chat.
Delete a file to go back to the built-in text. Evidence, insights and
arguments are always appended after these prompts.
`
