package driving

import (
	"context"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// RetrievalService ranks collection documents against a query.
type RetrievalService interface {
	// Rank returns at most topN documents of the collection ordered by
	// descending relevance. Unknown collections yield no results.
	Rank(ctx context.Context, collectionKey, query string, topN int) ([]domain.RankedDocument, error)
}
