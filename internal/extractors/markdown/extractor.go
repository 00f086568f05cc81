package markdown

import (
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles markdown evidence such as case notes and briefs.
type Extractor struct{}

// New creates a new markdown extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50
}

// Extract returns the text with markdown formatting removed.
// Code spans keep their content; only the fences are dropped.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawEvidence) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}
	return stripMarkdown(strings.ReplaceAll(string(raw.Content), "\r\n", "\n")), nil
}

var (
	codeFence     = regexp.MustCompile("(?m)^```.*$")
	inlineCode    = regexp.MustCompile("`([^`]+)`")
	images        = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	links         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headings      = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	emphasis      = regexp.MustCompile(`(\*\*|__|\*|_)([^*_\n]+)(\*\*|__|\*|_)`)
	blockquote    = regexp.MustCompile(`(?m)^>\s?`)
	horizontal    = regexp.MustCompile(`(?m)^[ \t]*([-*_][ \t]*){3,}$`)
	listMarkers   = regexp.MustCompile(`(?m)^([ \t]*)[-*+][ \t]+`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// stripMarkdown removes common markdown syntax and keeps the prose.
func stripMarkdown(content string) string {
	content = codeFence.ReplaceAllString(content, "")
	content = inlineCode.ReplaceAllString(content, "$1")
	content = images.ReplaceAllString(content, "$1")
	content = links.ReplaceAllString(content, "$1")
	content = headings.ReplaceAllString(content, "")
	content = horizontal.ReplaceAllString(content, "")
	content = emphasis.ReplaceAllString(content, "$2")
	content = blockquote.ReplaceAllString(content, "")
	content = listMarkers.ReplaceAllString(content, "$1")
	content = multiNewlines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
