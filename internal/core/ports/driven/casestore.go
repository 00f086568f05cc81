package driven

import (
	"context"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// CaseStore persists cases.
type CaseStore interface {
	// Save stores a new case or updates an existing one.
	Save(ctx context.Context, c domain.Case) error

	// Get retrieves a case by ID.
	// Returns domain.ErrNotFound if the case does not exist.
	Get(ctx context.Context, id string) (*domain.Case, error)

	// List returns all cases, newest first.
	List(ctx context.Context) ([]domain.Case, error)

	// Count returns the number of cases.
	Count(ctx context.Context) (int, error)
}
