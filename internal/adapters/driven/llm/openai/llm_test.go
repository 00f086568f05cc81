package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// recordedRequest captures the JSON body of a chat completion call.
type recordedRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestServer(t *testing.T, reply string, got *recordedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/chat/completions":
			if got != nil {
				require.NoError(t, json.NewDecoder(r.Body).Decode(got))
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":     "cmpl-1",
				"object": "chat.completion",
				"choices": []map[string]any{{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": reply},
					"finish_reason": "stop",
				}},
			})
		case "/v1/models":
			_ = json.NewEncoder(w).Encode(map[string]any{"object": "list", "data": []any{}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestNewLLMService_Defaults(t *testing.T) {
	svc, err := NewLLMService(LLMConfig{APIKey: "sk-test"})
	require.NoError(t, err)

	assert.Equal(t, DefaultLLMModel, svc.ModelName())
	assert.Equal(t, DefaultBaseURL, svc.BaseURL())
	assert.NoError(t, svc.Close())
}

func TestNewLLMService_RequiresKey(t *testing.T) {
	_, err := NewLLMService(LLMConfig{RequireAPIKey: true})
	assert.Error(t, err)

	// Ollama runs without a key.
	_, err = NewLLMService(LLMConfig{BaseURL: "http://localhost:11434/v1"})
	assert.NoError(t, err)
}

func TestLLMService_Chat(t *testing.T) {
	var got recordedRequest
	server := newTestServer(t, "The lease is valid.", &got)
	defer server.Close()

	svc, err := NewLLMService(LLMConfig{APIKey: "sk-test", BaseURL: server.URL + "/v1", Model: "gpt-4o-mini"})
	require.NoError(t, err)

	out, err := svc.Chat(context.Background(), []driven.ChatMessage{
		{Role: driven.ChatRoleSystem, Content: "You are LegalMind"},
		{Role: driven.ChatRoleUser, Content: "earlier"},
		{Role: driven.ChatRoleAssistant, Content: "answer"},
		{Role: driven.ChatRoleUser, Content: "Is the lease valid?"},
	}, driven.ChatOptions{Temperature: 0.8, TopP: 0.9})
	require.NoError(t, err)

	assert.Equal(t, "The lease is valid.", out)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.InDelta(t, 0.8, got.Temperature, 0.0001)
	assert.InDelta(t, 0.9, got.TopP, 0.0001)
	require.Len(t, got.Messages, 4)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "assistant", got.Messages[2].Role)
	assert.Equal(t, "Is the lease valid?", got.Messages[3].Content)
}

func TestLLMService_ChatServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	svc, err := NewLLMService(LLMConfig{APIKey: "bad", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)

	_, err = svc.Chat(context.Background(), []driven.ChatMessage{{Role: driven.ChatRoleUser, Content: "hi"}}, driven.ChatOptions{})
	assert.Error(t, err)
	assert.Error(t, svc.Ping(context.Background()))
}

func TestLLMService_Ping(t *testing.T) {
	server := newTestServer(t, "", nil)
	defer server.Close()

	svc, err := NewLLMService(LLMConfig{BaseURL: server.URL + "/v1"})
	require.NoError(t, err)
	assert.NoError(t, svc.Ping(context.Background()))
}
