// Package anthropic generates answers with Claude through the Messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL   = "https://api.anthropic.com"
	DefaultModel     = "claude-3-5-haiku-latest"
	DefaultTimeout   = 120 * time.Second
	DefaultMaxTokens = 1024

	apiVersion = "2023-06-01"
)

// Config holds configuration for the Anthropic LLM service.
type Config struct {
	APIKey  string // required
	BaseURL string
	Model   string
	Timeout time.Duration
}

// LLMService answers through POST /v1/messages.
type LLMService struct {
	http    *http.Client
	baseURL string
	apiKey  string
	model   string
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model       string    `json:"model"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature *float64  `json:"temperature,omitempty"`
	TopP        *float64  `json:"top_p,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewLLMService creates an Anthropic service. Only the API key is required.
func NewLLMService(cfg Config) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic: API key is required")
	}
	svc := &LLMService{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
	if svc.baseURL == "" {
		svc.baseURL = DefaultBaseURL
	}
	if svc.model == "" {
		svc.model = DefaultModel
	}
	if cfg.Timeout == 0 {
		svc.http.Timeout = DefaultTimeout
	}
	return svc, nil
}

// Chat sends system messages in the top-level system field and the rest as
// alternating turns. Consecutive turns from the same speaker are merged,
// because the API rejects two user turns in a row.
func (s *LLMService) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	req := messagesRequest{
		Model:     s.model,
		MaxTokens: opts.MaxTokens,
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = DefaultMaxTokens
	}

	var system []string
	for _, m := range messages {
		if m.Role == driven.ChatRoleSystem {
			system = append(system, m.Content)
			continue
		}
		if n := len(req.Messages); n > 0 && req.Messages[n-1].Role == m.Role {
			req.Messages[n-1].Content += "\n\n" + m.Content
			continue
		}
		req.Messages = append(req.Messages, message{Role: m.Role, Content: m.Content})
	}
	req.System = strings.Join(system, "\n\n")

	// Newer models reject temperature and top_p together; temperature wins.
	switch {
	case opts.Temperature > 0:
		req.Temperature = &opts.Temperature
	case opts.TopP > 0:
		req.TopP = &opts.TopP
	}

	var resp messagesResponse
	if err := s.call(ctx, http.MethodPost, "/v1/messages", req, &resp); err != nil {
		return "", err
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return text.String(), nil
}

// ModelName returns the configured model.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping lists models, which checks the key without running inference.
func (s *LLMService) Ping(ctx context.Context) error {
	return s.call(ctx, http.MethodGet, "/v1/models", nil, nil)
}

// Close releases resources.
func (s *LLMService) Close() error {
	return nil
}

// call performs one API request. A non-nil out receives the decoded body.
// Authentication failures wrap domain.ErrLLMUnavailable.
func (s *LLMService) call(ctx context.Context, method, path string, in, out any) error {
	body := io.Reader(http.NoBody)
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("anthropic: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("anthropic: create request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("anthropic: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("anthropic: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		detail := strings.TrimSpace(string(data))
		var apiErr errorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			detail = apiErr.Error.Message
		}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%w: anthropic rejected the API key: %s", domain.ErrLLMUnavailable, detail)
		}
		return fmt.Errorf("anthropic: status %d: %s", resp.StatusCode, detail)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("anthropic: decode response: %w", err)
	}
	return nil
}
