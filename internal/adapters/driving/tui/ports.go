// Package tui provides the interactive chat interface for legalmind.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Dialogue answers messages (required).
	Dialogue driving.DialogueService

	// Insight lists and updates saved entries (optional).
	Insight driving.InsightService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Dialogue == nil {
		return ErrMissingDialogueService
	}
	return nil
}
