package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure InsightStore implements the interface.
var _ driven.InsightStore = (*InsightStore)(nil)

// InsightStore is an in-memory implementation of driven.InsightStore.
type InsightStore struct {
	mu       sync.RWMutex
	insights []domain.Insight
}

// NewInsightStore creates a new in-memory insight store.
func NewInsightStore() *InsightStore {
	return &InsightStore{}
}

// Save stores a new entry.
func (s *InsightStore) Save(_ context.Context, insight domain.Insight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insights = append(s.insights, insight)
	return nil
}

// List returns a case's entries of one category, newest first.
func (s *InsightStore) List(_ context.Context, caseID string, category domain.Category) ([]domain.Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []domain.Insight{}
	for i := len(s.insights) - 1; i >= 0; i-- {
		in := s.insights[i]
		if in.CaseID == caseID && in.Category == category {
			result = append(result, in)
		}
	}
	return result, nil
}

// SetCompleted updates the completed flag.
func (s *InsightStore) SetCompleted(_ context.Context, id string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.insights {
		if s.insights[i].ID == id {
			s.insights[i].Completed = completed
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete removes an entry.
func (s *InsightStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.insights[:0]
	for _, in := range s.insights {
		if in.ID != id {
			kept = append(kept, in)
		}
	}
	s.insights = kept
	return nil
}
