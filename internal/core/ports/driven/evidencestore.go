package driven

import (
	"context"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// EvidenceStore persists evidence upload records.
type EvidenceStore interface {
	// Save stores an evidence record.
	Save(ctx context.Context, ev domain.Evidence) error

	// Get retrieves an evidence record by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Evidence, error)

	// GetByChecksum looks up a fingerprint across all cases and roles.
	// Returns domain.ErrNotFound if no evidence has that checksum.
	GetByChecksum(ctx context.Context, checksum string) (*domain.Evidence, error)

	// List returns a case's evidence, newest first.
	List(ctx context.Context, caseID string) ([]domain.Evidence, error)

	// Delete removes an evidence record.
	Delete(ctx context.Context, id string) error
}
