package driving

import (
	"context"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// InsightService manages saved insights, arguments and todos.
type InsightService interface {
	// Create saves a new entry.
	Create(ctx context.Context, caseID, content string, category domain.Category, tags []string) (*domain.Insight, error)

	// List returns a case's entries of one category, newest first.
	List(ctx context.Context, caseID string, category domain.Category) ([]domain.Insight, error)

	// SetCompleted marks an entry as done or not done.
	SetCompleted(ctx context.Context, id string, completed bool) error

	// Delete removes an entry.
	Delete(ctx context.Context, id string) error
}
