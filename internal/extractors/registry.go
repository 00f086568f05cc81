package extractors

import (
	"context"
	"mime"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
	"github.com/custodia-labs/legalmind/internal/extractors/docx"
	"github.com/custodia-labs/legalmind/internal/extractors/eml"
	"github.com/custodia-labs/legalmind/internal/extractors/html"
	"github.com/custodia-labs/legalmind/internal/extractors/markdown"
	"github.com/custodia-labs/legalmind/internal/extractors/plaintext"
	"github.com/custodia-labs/legalmind/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// extensionTypes covers extensions whose MIME type is not reliably known
// to the platform's mime database.
var extensionTypes = map[string]string{
	".txt":      "text/plain",
	".text":     "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".html":     "text/html",
	".htm":      "text/html",
	".xhtml":    "application/xhtml+xml",
	".docx":     docx.MIMEType,
	".csv":      "text/csv",
	".json":     "application/json",
	".eml":      eml.MIMEType,
}

// Registry selects the highest-priority extractor for an upload's MIME type.
type Registry struct {
	mu     sync.RWMutex
	byMIME map[string][]driven.Extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byMIME: make(map[string][]driven.Extractor)}
}

// NewDefaultRegistry creates a registry with every built-in extractor.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(html.New())
	r.Register(docx.New())
	r.Register(eml.New())
	return r
}

// Register adds an extractor for each MIME type it supports.
func (r *Registry) Register(extractor driven.Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, mt := range extractor.SupportedMIMETypes() {
		list := append(r.byMIME[mt], extractor)
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Priority() > list[j].Priority()
		})
		r.byMIME[mt] = list
	}
}

// Extract converts an upload with the best matching extractor.
// Unclaimed types, and extractor failures, fall back to UTF-8 decoding.
func (r *Registry) Extract(ctx context.Context, raw *domain.RawEvidence) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	mt := ResolveMIMEType(raw)
	if ext := r.lookup(mt); ext != nil {
		text, err := ext.Extract(ctx, raw)
		if err == nil {
			return text, nil
		}
		logger.Warn("extract %s as %s failed, decoding as text: %v", raw.Filename, mt, err)
	}

	return DecodeUTF8(raw.Content), nil
}

// Has reports whether an extractor is registered for the MIME type.
func (r *Registry) Has(mimeType string) bool {
	return r.lookup(mimeType) != nil
}

func (r *Registry) lookup(mimeType string) driven.Extractor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if list := r.byMIME[mimeType]; len(list) > 0 {
		return list[0]
	}
	return nil
}

// ResolveMIMEType returns the upload's declared type without parameters,
// or one derived from the file extension, or one sniffed from the content.
func ResolveMIMEType(raw *domain.RawEvidence) string {
	if raw.MIMEType != "" {
		if mt, _, err := mime.ParseMediaType(raw.MIMEType); err == nil {
			return mt
		}
	}

	ext := strings.ToLower(filepath.Ext(raw.Filename))
	if mt, ok := extensionTypes[ext]; ok {
		return mt
	}
	if mt := mime.TypeByExtension(ext); mt != "" {
		if parsed, _, err := mime.ParseMediaType(mt); err == nil {
			return parsed
		}
	}

	sniffed, _, _ := mime.ParseMediaType(http.DetectContentType(raw.Content))
	return sniffed
}

// DecodeUTF8 decodes bytes as UTF-8, replacing invalid sequences with U+FFFD.
func DecodeUTF8(content []byte) string {
	return strings.ToValidUTF8(string(content), "�")
}
