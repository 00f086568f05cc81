package domain

import "time"

// TurnRole identifies who authored a turn.
type TurnRole string

// Turn roles.
const (
	TurnUser      TurnRole = "user"
	TurnAssistant TurnRole = "assistant"
)

// IsValid returns true if the turn role is recognised.
func (r TurnRole) IsValid() bool {
	return r == TurnUser || r == TurnAssistant
}

// Turn is one persisted message of a case dialogue.
// Turns are append-only and ordered by Timestamp within a case.
type Turn struct {
	ID        string
	CaseID    string
	Role      TurnRole
	Content   string
	Timestamp time.Time
}

// Reverse returns a copy of turns in the opposite order.
func Reverse(turns []Turn) []Turn {
	out := make([]Turn, len(turns))
	for i, t := range turns {
		out[len(turns)-1-i] = t
	}
	return out
}
