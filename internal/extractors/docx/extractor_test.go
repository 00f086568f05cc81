package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// buildDocx creates an in-memory DOCX archive with the given files.
func buildDocx(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, body := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

const documentXMLFixture = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Lease Agreement</w:t></w:r></w:p>
    <w:p><w:r><w:t>The tenant </w:t></w:r><w:r><w:t>shall pay rent.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtractor_Metadata(t *testing.T) {
	e := New()
	assert.Equal(t, []string{MIMEType}, e.SupportedMIMETypes())
	assert.Equal(t, 60, e.Priority())
}

func TestExtractor_Extract(t *testing.T) {
	content := buildDocx(t, map[string]string{"word/document.xml": documentXMLFixture})

	text, err := New().Extract(context.Background(), &domain.RawEvidence{Filename: "lease.docx", Content: content})
	require.NoError(t, err)
	assert.Equal(t, "Lease Agreement\nThe tenant shall pay rent.", text)
}

func TestExtractor_NotZip(t *testing.T) {
	_, err := New().Extract(context.Background(), &domain.RawEvidence{Content: []byte("plain")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtractor_MissingDocument(t *testing.T) {
	content := buildDocx(t, map[string]string{"docProps/core.xml": "<x/>"})

	_, err := New().Extract(context.Background(), &domain.RawEvidence{Content: content})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtractor_Nil(t *testing.T) {
	_, err := New().Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
