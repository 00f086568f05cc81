package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

func TestExtractor_Metadata(t *testing.T) {
	e := New()
	assert.Equal(t, []string{"text/html", "application/xhtml+xml"}, e.SupportedMIMETypes())
	assert.Equal(t, 50, e.Priority())
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"paragraphs", "<p>First</p><p>Second</p>", "First\nSecond"},
		{"script dropped", "<p>Keep</p><script>var x = 1;</script>", "Keep"},
		{"style dropped", "<style>p{color:red}</style><div>Text</div>", "Text"},
		{"comment dropped", "<!-- hidden --><span>shown</span>", "shown"},
		{"entities", "<p>Smith &amp; Jones &lt;LLP&gt;</p>", "Smith & Jones <LLP>"},
		{"breaks", "one<br/>two<br>three", "one\ntwo\nthree"},
		{"spaces", "<p>a    lot\tof   space</p>", "a lot of space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripHTML(tt.input))
		})
	}
}

func TestExtractor_TitleFirst(t *testing.T) {
	raw := &domain.RawEvidence{
		Filename: "notice.html",
		Content:  []byte("<html><head><title>Eviction Notice</title></head><body><h1>Notice</h1><p>Vacate by May.</p></body></html>"),
	}

	text, err := New().Extract(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Eviction Notice\nNotice\nVacate by May.", text)
}

func TestExtractor_TitleOnly(t *testing.T) {
	text, err := New().Extract(context.Background(), &domain.RawEvidence{
		Content: []byte("<title>Only</title>"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Only", text)
}

func TestExtractor_Nil(t *testing.T) {
	_, err := New().Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
