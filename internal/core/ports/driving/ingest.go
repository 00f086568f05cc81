package driving

import (
	"context"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// IngestService accepts evidence uploads into case collections.
type IngestService interface {
	// Ingest fingerprints an upload, rejects byte-identical duplicates and
	// stores accepted content in the role's collection for the case.
	Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error)

	// List returns a case's evidence, newest first.
	List(ctx context.Context, caseID string) ([]domain.Evidence, error)

	// Remove deletes an evidence record, its raw file and its collection document.
	Remove(ctx context.Context, evidenceID string) error
}

// IngestRequest is one upload.
type IngestRequest struct {
	// CaseID is the owning case (required).
	CaseID string

	// Role classifies the evidence (required).
	Role domain.Role

	// Filename is the declared file name.
	Filename string

	// MIMEType is the declared content type. Optional.
	MIMEType string

	// Content is the raw bytes (required).
	Content []byte
}

// IngestResult describes the outcome of an upload.
type IngestResult struct {
	// EvidenceID is the accepted or pre-existing evidence record.
	EvidenceID string

	// DocumentID is the accepted or pre-existing collection document.
	DocumentID string

	// Duplicate is true when identical bytes were already ingested.
	// No storage was modified.
	Duplicate bool

	// Filename is the stored file name.
	Filename string
}
