package driving

import (
	"context"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// CaseService manages cases.
type CaseService interface {
	// Create adds a new case.
	Create(ctx context.Context, title, description string) (*domain.Case, error)

	// Get retrieves a case by ID.
	Get(ctx context.Context, id string) (*domain.Case, error)

	// List returns all cases, newest first.
	List(ctx context.Context) ([]domain.Case, error)

	// EnsureDefault seeds a sample case when none exist and returns the
	// newest case.
	EnsureDefault(ctx context.Context) (*domain.Case, error)
}
