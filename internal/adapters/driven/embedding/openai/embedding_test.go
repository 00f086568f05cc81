package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmbeddingServer answers each input with a vector of [index, len(input)].
// Items are returned in reverse order to check index handling.
func newEmbeddingServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input []string `json:"input"`
			Model string   `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		data := make([]map[string]any, 0, len(req.Input))
		for i := len(req.Input) - 1; i >= 0; i-- {
			data = append(data, map[string]any{
				"object":    "embedding",
				"index":     i,
				"embedding": []float32{float32(i), float32(len(req.Input[i]))},
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"object": "list", "data": data, "model": req.Model})
	}))
}

func TestNewEmbeddingService_Defaults(t *testing.T) {
	svc, err := NewEmbeddingService(Config{APIKey: "sk-test"})
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, svc.ModelName())
	assert.Equal(t, 1536, svc.Dimensions())
	assert.NoError(t, svc.Close())

	_, err = NewEmbeddingService(Config{RequireAPIKey: true})
	assert.Error(t, err)
}

func TestEmbeddingService_EmbedBatch(t *testing.T) {
	server := newEmbeddingServer(t)
	defer server.Close()

	svc, err := NewEmbeddingService(Config{BaseURL: server.URL + "/v1", Model: "custom-model"})
	require.NoError(t, err)
	assert.Equal(t, 0, svc.Dimensions())

	vectors, err := svc.EmbedBatch(context.Background(), []string{"a", "bbb"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{0, 1}, {1, 3}}, vectors)
	assert.Equal(t, 2, svc.Dimensions())
}

func TestEmbeddingService_Embed(t *testing.T) {
	server := newEmbeddingServer(t)
	defer server.Close()

	svc, err := NewEmbeddingService(Config{BaseURL: server.URL + "/v1", Model: "nomic-embed-text"})
	require.NoError(t, err)

	vec, err := svc.Embed(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 5}, vec)
	assert.Equal(t, 768, svc.Dimensions())
	assert.NoError(t, svc.Ping(context.Background()))
}

func TestEmbeddingService_EmptyBatch(t *testing.T) {
	svc, err := NewEmbeddingService(Config{})
	require.NoError(t, err)

	vectors, err := svc.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vectors)
}

func TestEmbeddingService_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc, err := NewEmbeddingService(Config{BaseURL: server.URL + "/v1"})
	require.NoError(t, err)

	_, err = svc.Embed(context.Background(), "x")
	assert.Error(t, err)
	assert.Error(t, svc.Ping(context.Background()))
}
