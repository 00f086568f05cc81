package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure CollectionStore implements the interface.
var _ driven.CollectionStore = (*CollectionStore)(nil)

// CollectionStore is an in-memory implementation of driven.CollectionStore.
type CollectionStore struct {
	mu          sync.RWMutex
	collections map[string][]domain.Document
}

// NewCollectionStore creates a new in-memory collection store.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{
		collections: make(map[string][]domain.Document),
	}
}

// Append adds a document to the end of a collection.
func (s *CollectionStore) Append(_ context.Context, key string, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[key] = append(s.collections[key], doc)
	return nil
}

// LoadAll returns a copy of a collection in insertion order.
func (s *CollectionStore) LoadAll(_ context.Context, key string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.collections[key]
	result := make([]domain.Document, len(docs))
	copy(result, docs)
	return result, nil
}

// Delete removes a document from a collection.
func (s *CollectionStore) Delete(_ context.Context, key, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[key]
	kept := docs[:0]
	for i := range docs {
		if docs[i].ID != documentID {
			kept = append(kept, docs[i])
		}
	}
	s.collections[key] = kept
	return nil
}
