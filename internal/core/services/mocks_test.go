package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

var errMockFailure = errors.New("mock failure")

// mockEmbeddingService returns a fixed vector per text.
type mockEmbeddingService struct {
	vectors map[string][]float32
	err     error
}

func (m *mockEmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	if v, ok := m.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 1}, nil
}

func (m *mockEmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := m.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (m *mockEmbeddingService) Dimensions() int              { return 3 }
func (m *mockEmbeddingService) ModelName() string            { return "mock-embed" }
func (m *mockEmbeddingService) Ping(_ context.Context) error { return nil }
func (m *mockEmbeddingService) Close() error                 { return nil }

// mockLLMService records the messages it was called with.
type mockLLMService struct {
	mu       sync.Mutex
	response string
	err      error
	block    bool
	calls    [][]driven.ChatMessage
	options  []driven.ChatOptions
}

func (m *mockLLMService) Chat(
	ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions,
) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, messages)
	m.options = append(m.options, opts)
	m.mu.Unlock()

	if m.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLMService) ModelName() string            { return "mock-llm" }
func (m *mockLLMService) Ping(_ context.Context) error { return m.err }
func (m *mockLLMService) Close() error                 { return nil }

func (m *mockLLMService) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// failingCollectionStore fails every operation.
type failingCollectionStore struct{}

func (failingCollectionStore) Append(context.Context, string, domain.Document) error {
	return errMockFailure
}

func (failingCollectionStore) LoadAll(context.Context, string) ([]domain.Document, error) {
	return nil, errMockFailure
}

func (failingCollectionStore) Delete(context.Context, string, string) error {
	return errMockFailure
}

// failingTurnStore fails on Append only.
type failingTurnStore struct {
	driven.TurnStore
}

func (failingTurnStore) Append(context.Context, domain.Turn) error {
	return errMockFailure
}

// staticPromptStore serves fixed prompt text.
type staticPromptStore struct {
	prompts map[string]string
}

func (s staticPromptStore) Load(name string) (string, error) {
	p, ok := s.prompts[name]
	if !ok {
		return "", domain.ErrNotFound
	}
	return p, nil
}

func (s staticPromptStore) Reload() {}

// staticExtractor returns the raw content as text.
type staticExtractor struct {
	err error
}

func (e staticExtractor) Extract(_ context.Context, raw *domain.RawEvidence) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return string(raw.Content), nil
}

func (e staticExtractor) Register(driven.Extractor) {}
