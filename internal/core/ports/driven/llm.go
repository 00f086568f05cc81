package driven

import "context"

// LLMService is the generation backend used to answer case questions.
// This is an optional service - when nil, every answer comes from the
// deterministic offline fallback.
//
// Implementations may include:
//   - OpenAI (gpt-4o-mini, gpt-4o)
//   - Ollama via its OpenAI-compatible endpoint
//   - Anthropic (Claude)
type LLMService interface {
	// Chat conducts a multi-turn conversation. The first message may be a
	// system prompt; the remaining messages are in chronological order.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// Chat message roles.
const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// TopP is the nucleus sampling cutoff. Zero leaves the provider default.
	TopP float64
}
