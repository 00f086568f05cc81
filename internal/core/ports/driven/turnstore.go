package driven

import (
	"context"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// TurnStore persists dialogue turns.
type TurnStore interface {
	// Append stores a turn. Turns are never updated.
	Append(ctx context.Context, turn domain.Turn) error

	// List returns all turns of a case, oldest first.
	List(ctx context.Context, caseID string) ([]domain.Turn, error)

	// Recent returns at most limit turns of a case, newest first.
	Recent(ctx context.Context, caseID string, limit int) ([]domain.Turn, error)

	// LastByRole returns the newest turn of a case authored by role.
	// Returns domain.ErrNotFound if there is none.
	LastByRole(ctx context.Context, caseID string, role domain.TurnRole) (*domain.Turn, error)
}
