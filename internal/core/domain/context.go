package domain

import "strings"

// EvidenceSection is the retrieved evidence for one role.
type EvidenceSection struct {
	// Role is the evidence classification.
	Role Role

	// Documents are the ranked documents, best first.
	Documents []RankedDocument
}

// Text joins the section's document contents with blank lines.
func (s EvidenceSection) Text() string {
	parts := make([]string, len(s.Documents))
	for i, d := range s.Documents {
		parts[i] = d.Document.Content
	}
	return strings.Join(parts, "\n\n")
}

// ContextBundle is the composite assembled for a single query.
// It is built fresh per query and never persisted.
type ContextBundle struct {
	// CaseID is the case the bundle was assembled for.
	CaseID string

	// Query is the user message that drove retrieval.
	Query string

	// BaseIdentity is the fixed assistant identity text.
	BaseIdentity string

	// Overlay is the optional user-supplied instruction. Empty when unset.
	Overlay string

	// Repositories describes the repositories and goals available to the model.
	Repositories string

	// Evidence holds one section per role that returned documents,
	// in the order the roles were requested.
	Evidence []EvidenceSection

	// Insights are insight-category entries, newest first.
	Insights []Insight

	// Arguments are argument-category entries, newest first.
	Arguments []Insight

	// Window is the recent conversation, oldest first.
	Window []Turn
}

// HasEvidence returns true if any role contributed documents.
func (b *ContextBundle) HasEvidence() bool {
	for _, s := range b.Evidence {
		if len(s.Documents) > 0 {
			return true
		}
	}
	return false
}
