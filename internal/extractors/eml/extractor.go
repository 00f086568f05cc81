// Package eml extracts the headers and message text of saved emails.
package eml

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
	"github.com/custodia-labs/legalmind/internal/extractors/html"
)

// MIMEType is the registered type for saved email messages.
const MIMEType = "message/rfc822"

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles correspondence exported as .eml files.
type Extractor struct {
	html *html.Extractor
}

// New creates a new EML extractor.
func New() *Extractor {
	return &Extractor{html: html.New()}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{MIMEType}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50
}

// Extract returns the From, To, Date and Subject headers followed by the
// message body. Plain text parts win over HTML parts.
func (e *Extractor) Extract(ctx context.Context, raw *domain.RawEvidence) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	msg, err := mail.ReadMessage(bytes.NewReader(raw.Content))
	if err != nil {
		return "", fmt.Errorf("%w: not an email message: %v", domain.ErrInvalidInput, err)
	}

	var b strings.Builder
	for _, name := range []string{"From", "To", "Date", "Subject"} {
		if v := decodeHeader(msg.Header.Get(name)); v != "" {
			fmt.Fprintf(&b, "%s: %s\n", name, v)
		}
	}

	body, err := e.body(ctx, msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), msg.Body)
	if err != nil {
		return "", err
	}
	if body != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(body)
	}
	return strings.TrimSpace(b.String()), nil
}

func (e *Extractor) body(ctx context.Context, contentType, encoding string, r io.Reader) (string, error) {
	if contentType == "" {
		contentType = "text/plain"
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = "text/plain"
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return e.multipart(ctx, r, params["boundary"])
	}

	content, err := io.ReadAll(decode(r, encoding))
	if err != nil {
		return "", fmt.Errorf("%w: read message body: %v", domain.ErrInvalidInput, err)
	}

	if mediaType == "text/html" {
		return e.html.Extract(ctx, &domain.RawEvidence{MIMEType: mediaType, Content: content})
	}
	return strings.TrimSpace(string(content)), nil
}

func (e *Extractor) multipart(ctx context.Context, r io.Reader, boundary string) (string, error) {
	if boundary == "" {
		return "", nil
	}

	var text, htmlText []string
	mr := multipart.NewReader(r, boundary)
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Keep whatever parts were readable.
			break
		}

		mediaType, _, perr := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if perr != nil {
			mediaType = "text/plain"
		}
		if isAttachment(part) {
			part.Close()
			continue
		}

		content, err := e.body(ctx, part.Header.Get("Content-Type"), part.Header.Get("Content-Transfer-Encoding"), part)
		part.Close()
		if err != nil || content == "" {
			continue
		}

		switch {
		case mediaType == "text/html":
			htmlText = append(htmlText, content)
		case mediaType == "text/plain", strings.HasPrefix(mediaType, "multipart/"):
			text = append(text, content)
		}
	}

	if len(text) > 0 {
		return strings.Join(text, "\n"), nil
	}
	return strings.Join(htmlText, "\n"), nil
}

// decode undoes a transfer encoding. multipart.Reader already strips
// quoted-printable from parts, so it only matters for single-part bodies.
func decode(r io.Reader, encoding string) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, &newlineStripper{r: r})
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	default:
		return r
	}
}

func isAttachment(part *multipart.Part) bool {
	disposition, _, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	return err == nil && disposition == "attachment"
}

func decodeHeader(v string) string {
	if v == "" {
		return ""
	}
	decoded, err := new(mime.WordDecoder).DecodeHeader(v)
	if err != nil {
		return v
	}
	return decoded
}

// newlineStripper drops line breaks so wrapped base64 decodes cleanly.
type newlineStripper struct {
	r io.Reader
}

func (n *newlineStripper) Read(p []byte) (int, error) {
	for {
		c, err := n.r.Read(p)
		kept := 0
		for _, b := range p[:c] {
			if b != '\r' && b != '\n' {
				p[kept] = b
				kept++
			}
		}
		if kept > 0 || err != nil {
			return kept, err
		}
	}
}
