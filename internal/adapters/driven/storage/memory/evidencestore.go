package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure EvidenceStore implements the interface.
var _ driven.EvidenceStore = (*EvidenceStore)(nil)

// EvidenceStore is an in-memory implementation of driven.EvidenceStore.
type EvidenceStore struct {
	mu       sync.RWMutex
	evidence []domain.Evidence
}

// NewEvidenceStore creates a new in-memory evidence store.
func NewEvidenceStore() *EvidenceStore {
	return &EvidenceStore{}
}

// Save stores an evidence record.
func (s *EvidenceStore) Save(_ context.Context, ev domain.Evidence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evidence = append(s.evidence, ev)
	return nil
}

// Get retrieves an evidence record by ID.
func (s *EvidenceStore) Get(_ context.Context, id string) (*domain.Evidence, error) {
	return s.find(func(ev domain.Evidence) bool { return ev.ID == id })
}

// GetByChecksum looks up a fingerprint across all cases and roles.
func (s *EvidenceStore) GetByChecksum(_ context.Context, checksum string) (*domain.Evidence, error) {
	return s.find(func(ev domain.Evidence) bool { return ev.Checksum == checksum })
}

// List returns a case's evidence, newest first.
func (s *EvidenceStore) List(_ context.Context, caseID string) ([]domain.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []domain.Evidence{}
	for i := len(s.evidence) - 1; i >= 0; i-- {
		if s.evidence[i].CaseID == caseID {
			result = append(result, s.evidence[i])
		}
	}
	return result, nil
}

// Delete removes an evidence record.
func (s *EvidenceStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.evidence[:0]
	for _, ev := range s.evidence {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	s.evidence = kept
	return nil
}

func (s *EvidenceStore) find(match func(domain.Evidence) bool) (*domain.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ev := range s.evidence {
		if match(ev) {
			found := ev
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}
