package plaintext

import (
	"context"
	"strings"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text evidence: notes, transcripts, exports.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/csv",
		"text/tab-separated-values",
		"text/rtf",
		"application/json",
		"application/xml",
		"text/xml",
		"message/rfc822",
	}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 5 // Fallback extractor
}

// Extract returns the content decoded as UTF-8 with a leading byte order
// mark removed and line endings normalised.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawEvidence) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	text := strings.ToValidUTF8(string(raw.Content), "�")
	text = strings.TrimPrefix(text, "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return text, nil
}
