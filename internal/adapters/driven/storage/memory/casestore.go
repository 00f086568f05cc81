package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure CaseStore implements the interface.
var _ driven.CaseStore = (*CaseStore)(nil)

// CaseStore is an in-memory implementation of driven.CaseStore.
type CaseStore struct {
	mu    sync.RWMutex
	cases map[string]domain.Case
}

// NewCaseStore creates a new in-memory case store.
func NewCaseStore() *CaseStore {
	return &CaseStore{
		cases: make(map[string]domain.Case),
	}
}

// Save stores or updates a case.
func (s *CaseStore) Save(_ context.Context, c domain.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cases[c.ID] = c
	return nil
}

// Get retrieves a case by ID.
func (s *CaseStore) Get(_ context.Context, id string) (*domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cases[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// List returns all cases, newest first.
func (s *CaseStore) List(_ context.Context) ([]domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Case, 0, len(s.cases))
	for id := range s.cases {
		result = append(result, s.cases[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Count returns the number of cases.
func (s *CaseStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cases), nil
}
