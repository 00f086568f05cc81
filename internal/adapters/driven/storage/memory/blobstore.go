package memory

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// BlobStore is an in-memory implementation of driven.BlobStore.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	seq   int
}

// NewBlobStore creates a new in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{
		blobs: make(map[string][]byte),
	}
}

// Put stores content and returns a synthetic location.
func (s *BlobStore) Put(filename string, content []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	location := fmt.Sprintf("memory://%d-%s", s.seq, filename)
	s.blobs[location] = append([]byte(nil), content...)
	return location, nil
}

// Remove deletes a blob.
func (s *BlobStore) Remove(location string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, location)
	return nil
}

// Len returns the number of stored blobs.
func (s *BlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
