package html

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles HTML evidence such as saved web pages and emails.
type Extractor struct{}

// New creates a new HTML extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50
}

// Extract returns the readable text of the page, one block per line.
// The <title> is kept as the first line when present.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawEvidence) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	content := string(raw.Content)
	body := stripHTML(content)

	if title := pageTitle(content); title != "" && !strings.HasPrefix(body, title) {
		if body == "" {
			return title, nil
		}
		return title + "\n" + body, nil
	}
	return body, nil
}

var (
	titleTag       = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	droppedTags    = regexp.MustCompile(`(?is)<(script|style|noscript|head|svg)[^>]*>.*?</(script|style|noscript|head|svg)>`)
	htmlComments   = regexp.MustCompile(`(?s)<!--.*?-->`)
	openBlockTags  = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|td|th|blockquote|pre|table|section|article)[^>]*>`)
	closeBlockTags = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)>`)
	breakTags      = regexp.MustCompile(`(?i)<(br|hr)\s*/?>`)
	allTags        = regexp.MustCompile(`<[^>]+>`)
	multiSpaces    = regexp.MustCompile(`[ \t]+`)
)

func pageTitle(content string) string {
	m := titleTag.FindStringSubmatch(content)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(m[1]))
}

// stripHTML removes markup and returns non-empty trimmed lines.
func stripHTML(content string) string {
	content = droppedTags.ReplaceAllString(content, "")
	content = htmlComments.ReplaceAllString(content, "")
	content = openBlockTags.ReplaceAllString(content, "\n")
	content = closeBlockTags.ReplaceAllString(content, "\n")
	content = breakTags.ReplaceAllString(content, "\n")
	content = allTags.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = multiSpaces.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
