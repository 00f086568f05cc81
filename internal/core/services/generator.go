package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
	"github.com/custodia-labs/legalmind/internal/logger"
)

// Generator sends assembled prompts to the configured LLM.
// Calls are rate limited and bounded by a timeout.
type Generator struct {
	llm     driven.LLMService
	limiter *rate.Limiter
	timeout time.Duration
}

// NewGenerator creates a generator for llm.
// The llm parameter is optional (can be nil); Complete then reports
// domain.ErrLLMUnavailable. A non-positive rate disables limiting.
func NewGenerator(llm driven.LLMService, settings domain.GenerationSettings) *Generator {
	limit := rate.Inf
	burst := 1
	if settings.RatePerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(settings.RatePerMinute))
		burst = settings.RatePerMinute
	}

	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}

	return &Generator{
		llm:     llm,
		limiter: rate.NewLimiter(limit, burst),
		timeout: timeout,
	}
}

// Available returns true if an LLM is configured.
func (g *Generator) Available() bool {
	return g != nil && g.llm != nil
}

// Complete asks the model for a reply. The conversation sent is the system
// prompt, then window (oldest first), then message.
func (g *Generator) Complete(
	ctx context.Context,
	systemPrompt string,
	window []domain.Turn,
	message string,
	opts driven.ChatOptions,
) (string, error) {
	if !g.Available() {
		return "", domain.ErrLLMUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	messages := BuildChatMessages(systemPrompt, window, message)
	logger.Debug("Generating with %s: %d messages, timeout %s", g.llm.ModelName(), len(messages), g.timeout)

	resp, err := g.llm.Chat(ctx, messages, opts)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	resp = strings.TrimSpace(resp)
	if resp == "" {
		return domain.EmptyModelResponse, nil
	}
	return resp, nil
}

// BuildChatMessages lays out the conversation for the model.
func BuildChatMessages(systemPrompt string, window []domain.Turn, message string) []driven.ChatMessage {
	messages := make([]driven.ChatMessage, 0, len(window)+2)
	messages = append(messages, driven.ChatMessage{Role: driven.ChatRoleSystem, Content: systemPrompt})
	for _, t := range window {
		role := driven.ChatRoleUser
		if t.Role == domain.TurnAssistant {
			role = driven.ChatRoleAssistant
		}
		messages = append(messages, driven.ChatMessage{Role: role, Content: t.Content})
	}
	messages = append(messages, driven.ChatMessage{Role: driven.ChatRoleUser, Content: message})
	return messages
}
