package driven

import (
	"context"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// InsightStore persists saved insights, arguments and todos.
type InsightStore interface {
	// Save stores a new entry.
	Save(ctx context.Context, insight domain.Insight) error

	// List returns a case's entries of one category, newest first.
	List(ctx context.Context, caseID string, category domain.Category) ([]domain.Insight, error)

	// SetCompleted updates the completed flag.
	// Returns domain.ErrNotFound if the entry does not exist.
	SetCompleted(ctx context.Context, id string, completed bool) error

	// Delete removes an entry.
	Delete(ctx context.Context, id string) error
}
