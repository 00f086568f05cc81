package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/legalmind/internal/core/domain"
)

func seedCollection(t *testing.T, store *memory.CollectionStore, key string, docs ...domain.Document) {
	t.Helper()
	for _, d := range docs {
		require.NoError(t, store.Append(context.Background(), key, d))
	}
}

func TestRanker_ScoresByDistinctTermContainment(t *testing.T) {
	store := memory.NewCollectionStore()
	seedCollection(t, store, "plaintiff_1",
		domain.Document{ID: "d1", Content: "alpha beta"},
		domain.Document{ID: "d2", Content: "alpha"},
		domain.Document{ID: "d3", Content: "gamma"},
	)
	ranker := NewRanker(store, nil)

	ranked, err := ranker.Rank(context.Background(), "plaintiff_1", "Alpha BETA", 3)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, []string{"d1", "d2", "d3"}, rankedIDs(ranked))
	assert.Equal(t, []float64{2, 1, 0}, rankedScores(ranked))
	assert.InDelta(t, 0.0, ranked[0].Distance, 1e-9)
	assert.InDelta(t, 0.5, ranked[1].Distance, 1e-9)
	assert.InDelta(t, 1.0, ranked[2].Distance, 1e-9)
}

func TestRanker_StableTies(t *testing.T) {
	store := memory.NewCollectionStore()
	seedCollection(t, store, "k",
		domain.Document{ID: "first", Content: "contract"},
		domain.Document{ID: "none", Content: "unrelated"},
		domain.Document{ID: "second", Content: "the contract"},
	)
	ranker := NewRanker(store, nil)

	ranked, err := ranker.Rank(context.Background(), "k", "contract", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "none"}, rankedIDs(ranked))
}

func TestRanker_SubstringNotWholeWord(t *testing.T) {
	ranked := LexicalRank([]domain.Document{{ID: "d", Content: "Breach of contractual duty"}}, "contract", 1)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1.0, ranked[0].Score)
}

func TestRanker_RepeatedTermsCountOnce(t *testing.T) {
	ranked := LexicalRank([]domain.Document{{ID: "d", Content: "lease lease"}}, "lease lease rent", 1)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1.0, ranked[0].Score)
	assert.InDelta(t, 0.5, ranked[0].Distance, 1e-9)
}

func TestRanker_EdgeCases(t *testing.T) {
	store := memory.NewCollectionStore()
	seedCollection(t, store, "k",
		domain.Document{ID: "a", Content: "one"},
		domain.Document{ID: "b", Content: "two"},
	)
	ranker := NewRanker(store, nil)
	ctx := context.Background()

	t.Run("empty collection", func(t *testing.T) {
		ranked, err := ranker.Rank(ctx, "never_written", "anything", 3)
		require.NoError(t, err)
		assert.Empty(t, ranked)
	})

	t.Run("non-positive topN", func(t *testing.T) {
		ranked, err := ranker.Rank(ctx, "k", "one", 0)
		require.NoError(t, err)
		assert.Empty(t, ranked)

		ranked, err = ranker.Rank(ctx, "k", "one", -1)
		require.NoError(t, err)
		assert.Empty(t, ranked)
	})

	t.Run("whitespace query keeps insertion order", func(t *testing.T) {
		ranked, err := ranker.Rank(ctx, "k", "   \t ", 5)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, rankedIDs(ranked))
		for _, r := range ranked {
			assert.Equal(t, 0.0, r.Score)
			assert.Equal(t, 1.0, r.Distance)
		}
	})

	t.Run("topN limits results", func(t *testing.T) {
		ranked, err := ranker.Rank(ctx, "k", "two", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, rankedIDs(ranked))
	})
}

func TestRanker_StoreError(t *testing.T) {
	ranker := NewRanker(failingCollectionStore{}, nil)

	_, err := ranker.Rank(context.Background(), "k", "q", 3)
	assert.ErrorIs(t, err, errMockFailure)
}

func TestRanker_EmbeddingScorer(t *testing.T) {
	store := memory.NewCollectionStore()
	seedCollection(t, store, "k",
		domain.Document{ID: "far", Content: "x", Embedding: []float32{1, 0, 0}},
		domain.Document{ID: "near", Content: "y", Embedding: []float32{0, 1, 0}},
	)
	embedder := &mockEmbeddingService{vectors: map[string][]float32{"query": {0, 1, 0}}}
	ranker := NewRanker(store, embedder)
	ranker.SetScorer(domain.ScorerEmbedding)

	ranked, err := ranker.Rank(context.Background(), "k", "query", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"near", "far"}, rankedIDs(ranked))
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-6)
}

func TestRanker_EmbeddingScorerFallsBackToLexical(t *testing.T) {
	store := memory.NewCollectionStore()
	seedCollection(t, store, "k",
		domain.Document{ID: "a", Content: "no vector here"},
		domain.Document{ID: "b", Content: "lease terms"},
	)

	t.Run("missing embeddings", func(t *testing.T) {
		ranker := NewRanker(store, &mockEmbeddingService{})
		ranker.SetScorer(domain.ScorerEmbedding)

		ranked, err := ranker.Rank(context.Background(), "k", "lease", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, rankedIDs(ranked))
	})

	t.Run("no embedding service", func(t *testing.T) {
		ranker := NewRanker(store, nil)
		ranker.SetScorer(domain.ScorerEmbedding)

		ranked, err := ranker.Rank(context.Background(), "k", "lease", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, rankedIDs(ranked))
	})

	t.Run("embedding error", func(t *testing.T) {
		ranker := NewRanker(store, &mockEmbeddingService{err: errMockFailure})
		ranker.SetScorer(domain.ScorerEmbedding)

		ranked, err := ranker.Rank(context.Background(), "k", "lease", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, rankedIDs(ranked))
	})
}

func TestQueryTerms(t *testing.T) {
	assert.Equal(t, []string{"breach", "of", "contract"}, QueryTerms("  Breach of\tCONTRACT breach "))
	assert.Empty(t, QueryTerms(" \n "))
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 2}, []float32{2, 4}), 1e-6)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}

func rankedIDs(ranked []domain.RankedDocument) []string {
	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.Document.ID
	}
	return ids
}

func rankedScores(ranked []domain.RankedDocument) []float64 {
	scores := make([]float64, len(ranked))
	for i, r := range ranked {
		scores[i] = r.Score
	}
	return scores
}
