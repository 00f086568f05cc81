// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
)

// HistoryLoaded carries a case's stored turns.
type HistoryLoaded struct {
	Turns []domain.Turn
	Err   error
}

// MessageSent is emitted when the user submits a message.
type MessageSent struct {
	Content string
}

// ReplyReceived carries the assistant's persisted answer.
type ReplyReceived struct {
	Reply *driving.Reply
	Err   error
}

// InsightsLoaded carries a case's saved entries in display order.
type InsightsLoaded struct {
	Entries []domain.Insight
	Err     error
}

// EntryChanged is emitted after an entry is completed or deleted.
type EntryChanged struct {
	ID  string
	Err error
}

// ErrorOccurred is sent when an error needs to be displayed.
type ErrorOccurred struct {
	Err error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewChat is the case dialogue.
	ViewChat ViewType = iota
	// ViewInsights lists saved insights, arguments and todos.
	ViewInsights
)

// String returns the view name.
func (v ViewType) String() string {
	switch v {
	case ViewChat:
		return "chat"
	case ViewInsights:
		return "insights"
	default:
		return "unknown"
	}
}
