// Package openai provides an LLM service adapter for OpenAI and
// OpenAI-compatible servers such as Ollama.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultLLMModel   = "gpt-4o-mini"
	DefaultLLMTimeout = 120 * time.Second
)

// LLMConfig holds configuration for the OpenAI LLM service.
type LLMConfig struct {
	// APIKey is the API key. Required for OpenAI, ignored by Ollama.
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Point it at http://localhost:11434/v1 for Ollama.
	BaseURL string

	// Model is the LLM model to use (default: gpt-4o-mini).
	Model string

	// Timeout is the HTTP request timeout (default: 120s).
	Timeout time.Duration

	// RequireAPIKey rejects an empty APIKey. Set for the OpenAI cloud.
	RequireAPIKey bool
}

// LLMService answers chat requests through the chat completions API.
type LLMService struct {
	client  *goopenai.Client
	baseURL string
	model   string
}

// NewLLMService creates a new OpenAI-compatible LLM service.
func NewLLMService(cfg LLMConfig) (*LLMService, error) {
	if cfg.RequireAPIKey && cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultLLMTimeout
	}

	config := goopenai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	config.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &LLMService{
		client:  goopenai.NewClientWithConfig(config),
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}, nil
}

// Chat sends the conversation and returns the first choice's content.
func (s *LLMService) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	req := goopenai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    toChatCompletionMessages(messages),
		MaxTokens:   opts.MaxTokens,
		Temperature: float32(opts.Temperature),
		TopP:        float32(opts.TopP),
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

func toChatCompletionMessages(messages []driven.ChatMessage) []goopenai.ChatCompletionMessage {
	out := make([]goopenai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		role := goopenai.ChatMessageRoleUser
		switch msg.Role {
		case driven.ChatRoleSystem:
			role = goopenai.ChatMessageRoleSystem
		case driven.ChatRoleAssistant:
			role = goopenai.ChatMessageRoleAssistant
		}
		out[i] = goopenai.ChatCompletionMessage{Role: role, Content: msg.Content}
	}
	return out
}

// ModelName returns the name of the LLM model being used.
func (s *LLMService) ModelName() string {
	return s.model
}

// BaseURL returns the API endpoint in use.
func (s *LLMService) BaseURL() string {
	return s.baseURL
}

// Ping validates the service is reachable by listing models.
// This checks the credential without running inference.
func (s *LLMService) Ping(ctx context.Context) error {
	if _, err := s.client.ListModels(ctx); err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	return nil
}

// Close releases resources.
func (s *LLMService) Close() error {
	return nil
}
