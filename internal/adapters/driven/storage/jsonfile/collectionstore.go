package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"net/url"
	"path/filepath"
	"sync"
	"time"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure CollectionStore implements the interface.
var _ driven.CollectionStore = (*CollectionStore)(nil)

// CollectionStore keeps each collection in <dir>/<escaped key>.json.
// Keys are path-escaped so distinct keys never share a file.
type CollectionStore struct {
	mu  sync.Mutex
	dir string
}

// record is the on-disk form of a document.
type record struct {
	ID          string         `json:"id"`
	Document    string         `json:"document"`
	Metadata    map[string]any `json:"metadata"`
	Fingerprint string         `json:"fingerprint,omitempty"`
	Embedding   []float32      `json:"embedding,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// NewCollectionStore creates a JSON collection store in dir.
// If dir is empty, defaults to ~/.legalmind/data/collections.
func NewCollectionStore(dir string) (*CollectionStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dir = filepath.Join(home, ".legalmind", "data", "collections")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create collections directory: %w", err)
	}

	return &CollectionStore{dir: dir}, nil
}

// Dir returns the directory holding collection files.
func (s *CollectionStore) Dir() string {
	return s.dir
}

// Append adds a document to the end of a collection.
func (s *CollectionStore) Append(_ context.Context, key string, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(key)
	if err != nil {
		return err
	}

	metadata := doc.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	records = append(records, record{
		ID:          doc.ID,
		Document:    doc.Content,
		Metadata:    metadata,
		Fingerprint: doc.Fingerprint,
		Embedding:   doc.Embedding,
		CreatedAt:   doc.CreatedAt,
	})

	return s.write(key, records)
}

// LoadAll returns every document of a collection in insertion order.
func (s *CollectionStore) LoadAll(_ context.Context, key string) ([]domain.Document, error) {
	s.mu.Lock()
	records, err := s.read(key)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, len(records))
	for i, r := range records {
		docs[i] = domain.Document{
			ID:            r.ID,
			CollectionKey: key,
			Content:       r.Document,
			Metadata:      r.Metadata,
			Fingerprint:   r.Fingerprint,
			Embedding:     r.Embedding,
			CreatedAt:     r.CreatedAt,
		}
	}
	return docs, nil
}

// Delete removes a document from a collection.
func (s *CollectionStore) Delete(_ context.Context, key, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(key)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID != documentID {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return s.write(key, kept)
}

func (s *CollectionStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

// read returns an empty slice for a collection that was never written.
func (s *CollectionStore) read(key string) ([]record, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return []record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", key, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", key, err)
	}
	return records, nil
}

func (s *CollectionStore) write(key string, records []record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	return writeAtomic(s.path(key), data)
}

// writeAtomic writes data to a temp file in the same directory and
// renames it over path.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
