package jsonfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// unsafeNameChars matches characters not allowed in stored file names.
var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// BlobStore keeps raw evidence files in a directory.
// Files are named <unix-millis>-<original name> so uploads never collide.
type BlobStore struct {
	dir string
	now func() time.Time
}

// NewBlobStore creates a blob store in dir.
// If dir is empty, defaults to ~/.legalmind/data/evidence.
func NewBlobStore(dir string) (*BlobStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dir = filepath.Join(home, ".legalmind", "data", "evidence")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create evidence directory: %w", err)
	}

	return &BlobStore{dir: dir, now: time.Now}, nil
}

// Put writes content and returns the file path.
func (s *BlobStore) Put(filename string, content []byte) (string, error) {
	base := unsafeNameChars.ReplaceAllString(filepath.Base(filename), "_")
	name := strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + base
	path := filepath.Join(s.dir, name)

	// Two uploads of the same name within a millisecond get a suffix.
	for i := 1; ; i++ {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			break
		}
		path = filepath.Join(s.dir, fmt.Sprintf("%s.%d", name, i))
	}

	if err := writeAtomic(path, content); err != nil {
		return "", err
	}
	return path, nil
}

// Remove deletes a stored file. Missing files are ignored.
func (s *BlobStore) Remove(location string) error {
	err := os.Remove(location)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", location, err)
	}
	return nil
}
