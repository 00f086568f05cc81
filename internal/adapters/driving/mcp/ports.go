package mcp

import (
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the MCP server.
type Ports struct {
	// Dialogue answers questions about a case.
	Dialogue driving.DialogueService

	// Retrieval ranks evidence against a query.
	Retrieval driving.RetrievalService

	// Ingest accepts new evidence. Optional.
	Ingest driving.IngestService

	// Insight records insights and arguments. Optional.
	Insight driving.InsightService

	// Case lists cases. Optional.
	Case driving.CaseService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Dialogue == nil {
		return ErrMissingDialogueService
	}
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	return nil
}
