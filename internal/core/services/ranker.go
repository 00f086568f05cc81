package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
	"github.com/custodia-labs/legalmind/internal/logger"
)

// Ensure Ranker implements the interface.
var _ driving.RetrievalService = (*Ranker)(nil)

// Ranker scores the documents of a collection against a query.
type Ranker struct {
	store            driven.CollectionStore
	embeddingService driven.EmbeddingService
	scorer           domain.ScorerKind
}

// NewRanker creates a new ranker using lexical scoring.
// The embeddingService parameter is optional (can be nil).
func NewRanker(store driven.CollectionStore, embeddingService driven.EmbeddingService) *Ranker {
	return &Ranker{
		store:            store,
		embeddingService: embeddingService,
		scorer:           domain.ScorerLexical,
	}
}

// SetScorer selects the scoring algorithm.
// Invalid kinds are ignored.
func (r *Ranker) SetScorer(kind domain.ScorerKind) {
	if kind.IsValid() {
		r.scorer = kind
	}
}

// Rank returns at most topN documents of the collection ordered by
// descending score. Ties keep insertion order.
func (r *Ranker) Rank(
	ctx context.Context, collectionKey, query string, topN int,
) ([]domain.RankedDocument, error) {
	if topN <= 0 {
		return []domain.RankedDocument{}, nil
	}

	docs, err := r.store.LoadAll(ctx, collectionKey)
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", collectionKey, err)
	}
	logger.Debug("Ranking %d documents in %s (scorer=%s)", len(docs), collectionKey, r.scorer)

	if len(docs) == 0 {
		return []domain.RankedDocument{}, nil
	}

	if r.scorer == domain.ScorerEmbedding {
		ranked, err := r.rankByEmbedding(ctx, docs, query, topN)
		if err == nil {
			return ranked, nil
		}
		logger.Warn("Embedding scorer unavailable, using lexical: %v", err)
	}

	return LexicalRank(docs, query, topN), nil
}

// LexicalRank scores documents by the number of distinct lowercase query
// terms contained in their lowercase content.
func LexicalRank(docs []domain.Document, query string, topN int) []domain.RankedDocument {
	if topN <= 0 || len(docs) == 0 {
		return []domain.RankedDocument{}
	}

	terms := QueryTerms(query)
	ranked := make([]domain.RankedDocument, len(docs))
	for i := range docs {
		content := strings.ToLower(docs[i].Content)
		score := 0
		for _, term := range terms {
			if strings.Contains(content, term) {
				score++
			}
		}
		ranked[i] = domain.RankedDocument{
			Document: docs[i],
			Score:    float64(score),
			Distance: lexicalDistance(score, len(terms)),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return truncateRanked(ranked, topN)
}

// QueryTerms lowercases a query and splits it on whitespace.
// Repeated terms are kept once, in first-occurrence order.
func QueryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	seen := make(map[string]bool, len(fields))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		terms = append(terms, f)
	}
	return terms
}

// lexicalDistance is 1 when the query has no terms.
func lexicalDistance(score, termCount int) float64 {
	if termCount == 0 {
		return 1
	}
	return 1 - float64(score)/float64(termCount)
}

// rankByEmbedding requires every document to carry an embedding of the
// query's dimensionality; anything else is reported as unavailable.
func (r *Ranker) rankByEmbedding(
	ctx context.Context, docs []domain.Document, query string, topN int,
) ([]domain.RankedDocument, error) {
	if r.embeddingService == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrEmbeddingUnavailable)
	}

	queryVec, err := r.embeddingService.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	ranked := make([]domain.RankedDocument, len(docs))
	for i := range docs {
		if len(docs[i].Embedding) != len(queryVec) {
			return nil, fmt.Errorf("%w: document %s has no compatible embedding",
				domain.ErrEmbeddingUnavailable, docs[i].ID)
		}
		sim := CosineSimilarity(queryVec, docs[i].Embedding)
		ranked[i] = domain.RankedDocument{
			Document: docs[i],
			Score:    sim,
			Distance: 1 - sim,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return truncateRanked(ranked, topN), nil
}

// CosineSimilarity returns the cosine of the angle between a and b.
// Mismatched or zero vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func truncateRanked(ranked []domain.RankedDocument, topN int) []domain.RankedDocument {
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
