package driven

import (
	"context"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// CollectionStore persists documents grouped into named collections.
// Collections are created implicitly on first Append.
type CollectionStore interface {
	// Append adds a document to the end of a collection.
	// The write is atomic: a partially written document is never visible.
	Append(ctx context.Context, key string, doc domain.Document) error

	// LoadAll returns every document of a collection in insertion order.
	// An unknown collection yields an empty slice and no error.
	LoadAll(ctx context.Context, key string) ([]domain.Document, error)

	// Delete removes a document from a collection.
	// Removing an unknown document is not an error.
	Delete(ctx context.Context, key, documentID string) error
}
