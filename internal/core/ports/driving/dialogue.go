package driving

import (
	"context"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// DialogueService handles user messages for a case.
type DialogueService interface {
	// HandleMessage persists the message, then either commits the last
	// answer to memory or generates a new answer, and persists the reply.
	HandleMessage(ctx context.Context, caseID, message string) (*Reply, error)

	// History returns all turns of a case, oldest first.
	History(ctx context.Context, caseID string) ([]domain.Turn, error)
}

// Reply is the persisted assistant answer to a message.
type Reply struct {
	// TurnID identifies the persisted assistant turn.
	TurnID string

	// Response is the assistant text.
	Response string

	// Directive is how the message was classified.
	Directive domain.Directive

	// UsedFallback is true when the offline fallback produced the answer.
	UsedFallback bool
}
