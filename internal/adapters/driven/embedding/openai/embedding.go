// Package openai provides an embedding service adapter for OpenAI and
// OpenAI-compatible servers such as Ollama.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "text-embedding-3-small"
	DefaultTimeout = 60 * time.Second
)

// modelDimensions lists vector sizes of well-known embedding models.
var modelDimensions = map[string]int{
	"text-embedding-3-small": 1536,
	"text-embedding-3-large": 3072,
	"text-embedding-ada-002": 1536,
	"nomic-embed-text":       768,
	"mxbai-embed-large":      1024,
	"all-minilm":             384,
}

// Config holds configuration for the embedding service.
type Config struct {
	// APIKey is the API key. Required for OpenAI, ignored by Ollama.
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	BaseURL string

	// Model is the embedding model to use (default: text-embedding-3-small).
	Model string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration

	// RequireAPIKey rejects an empty APIKey. Set for the OpenAI cloud.
	RequireAPIKey bool
}

// EmbeddingService generates embeddings through the embeddings API.
type EmbeddingService struct {
	client *goopenai.Client
	model  string

	mu         sync.RWMutex
	dimensions int
}

// NewEmbeddingService creates a new embedding service.
func NewEmbeddingService(cfg Config) (*EmbeddingService, error) {
	if cfg.RequireAPIKey && cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	config := goopenai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	config.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &EmbeddingService{
		client:     goopenai.NewClientWithConfig(config),
		model:      cfg.Model,
		dimensions: modelDimensions[cfg.Model],
	}, nil
}

// Embed generates a vector embedding for the given text.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := s.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch generates embeddings for multiple texts in one request.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	resp, err := s.client.CreateEmbeddings(ctx, goopenai.EmbeddingRequest{
		Input: texts,
		Model: goopenai.EmbeddingModel(s.model),
	})
	if err != nil {
		return nil, fmt.Errorf("openai: create embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai: expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	vectors := make([][]float32, len(texts))
	for _, item := range resp.Data {
		if item.Index < 0 || item.Index >= len(texts) {
			return nil, fmt.Errorf("openai: embedding index %d out of range", item.Index)
		}
		vectors[item.Index] = item.Embedding
	}

	s.learnDimensions(vectors[0])
	return vectors, nil
}

// learnDimensions records the vector size of unknown models.
func (s *EmbeddingService) learnDimensions(vector []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dimensions == 0 {
		s.dimensions = len(vector)
	}
}

// Dimensions returns the embedding vector size, or 0 for an unknown
// model that has not produced a vector yet.
func (s *EmbeddingService) Dimensions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dimensions
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by embedding a short text.
func (s *EmbeddingService) Ping(ctx context.Context) error {
	if _, err := s.Embed(ctx, "ping"); err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	return nil
}

// Close releases resources.
func (s *EmbeddingService) Close() error {
	return nil
}
