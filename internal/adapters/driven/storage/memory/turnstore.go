package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure TurnStore implements the interface.
var _ driven.TurnStore = (*TurnStore)(nil)

// TurnStore is an in-memory implementation of driven.TurnStore.
// Turns are kept per case in append order.
type TurnStore struct {
	mu    sync.RWMutex
	turns map[string][]domain.Turn
}

// NewTurnStore creates a new in-memory turn store.
func NewTurnStore() *TurnStore {
	return &TurnStore{
		turns: make(map[string][]domain.Turn),
	}
}

// Append stores a turn.
func (s *TurnStore) Append(_ context.Context, turn domain.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[turn.CaseID] = append(s.turns[turn.CaseID], turn)
	return nil
}

// List returns all turns of a case, oldest first.
func (s *TurnStore) List(_ context.Context, caseID string) ([]domain.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := s.turns[caseID]
	result := make([]domain.Turn, len(turns))
	copy(result, turns)
	return result, nil
}

// Recent returns at most limit turns of a case, newest first.
func (s *TurnStore) Recent(_ context.Context, caseID string, limit int) ([]domain.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		return []domain.Turn{}, nil
	}
	turns := s.turns[caseID]
	result := make([]domain.Turn, 0, limit)
	for i := len(turns) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, turns[i])
	}
	return result, nil
}

// LastByRole returns the newest turn of a case authored by role.
func (s *TurnStore) LastByRole(_ context.Context, caseID string, role domain.TurnRole) (*domain.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := s.turns[caseID]
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == role {
			t := turns[i]
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}
