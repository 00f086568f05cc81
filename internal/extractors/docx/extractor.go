package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// MIMEType is the content type of Word documents.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles DOCX evidence such as contracts and letters.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{MIMEType}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 60
}

// Extract returns the document body, one paragraph per line.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawEvidence) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return "", fmt.Errorf("%w: not a docx archive: %v", domain.ErrInvalidInput, err)
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read document.xml: %w", err)
		}

		return parseDocumentXML(content)
	}

	return "", fmt.Errorf("%w: word/document.xml missing", domain.ErrInvalidInput)
}

// documentXML is the subset of word/document.xml that carries text.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []struct {
		Content string `xml:",chardata"`
	} `xml:"t"`
}

func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("%w: parse document.xml: %v", domain.ErrInvalidInput, err)
	}

	var b strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, r := range para.Runs {
			for _, t := range r.Text {
				b.WriteString(t.Content)
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}
