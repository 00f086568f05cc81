package driven

import (
	"context"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// Extractor turns raw upload bytes into plain text.
// Each extractor handles specific MIME types.
type Extractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific extractors return 50-89, fallbacks 1-9.
	Priority() int

	// Extract returns the text content of the upload.
	Extract(ctx context.Context, raw *domain.RawEvidence) (string, error)
}

// ExtractorRegistry selects the appropriate extractor for an upload.
type ExtractorRegistry interface {
	// Extract converts an upload using the best matching extractor.
	Extract(ctx context.Context, raw *domain.RawEvidence) (string, error)

	// Register adds an extractor to the registry.
	Register(extractor Extractor)
}
