package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateContent_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "hello", TruncateContent("hello"))
}

func TestTruncateContent_LimitsToMaxLength(t *testing.T) {
	text := strings.Repeat("a", MaxContentLength+500)

	got := TruncateContent(text)

	assert.Len(t, got, MaxContentLength)
}

func TestTruncateContent_DoesNotSplitRunes(t *testing.T) {
	text := strings.Repeat("é", MaxContentLength+1)

	got := TruncateContent(text)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, MaxContentLength, utf8.RuneCountInString(got))
}

func TestCollectionKey(t *testing.T) {
	assert.Equal(t, "plaintiff_case-1", CollectionKey(RolePlaintiff, "case-1"))
	assert.Equal(t, "opposition_case-1", CollectionKey(RoleOpposition, "case-1"))
}

func TestEvidenceSection_Text(t *testing.T) {
	section := EvidenceSection{
		Role: RolePlaintiff,
		Documents: []RankedDocument{
			{Document: Document{Content: "first"}},
			{Document: Document{Content: "second"}},
		},
	}

	assert.Equal(t, "first\n\nsecond", section.Text())
	assert.Empty(t, EvidenceSection{}.Text())

	single := EvidenceSection{Documents: []RankedDocument{{Document: Document{Content: "only"}}}}
	assert.Equal(t, "only", single.Text())
}

func TestContextBundle_HasEvidence(t *testing.T) {
	b := &ContextBundle{}
	assert.False(t, b.HasEvidence())

	b.Evidence = []EvidenceSection{{Role: RolePlaintiff}}
	assert.False(t, b.HasEvidence())

	b.Evidence[0].Documents = []RankedDocument{{Document: Document{Content: "x"}}}
	assert.True(t, b.HasEvidence())
}

func TestReverse(t *testing.T) {
	turns := []Turn{{ID: "3"}, {ID: "2"}, {ID: "1"}}

	got := Reverse(turns)

	assert.Equal(t, []Turn{{ID: "1"}, {ID: "2"}, {ID: "3"}}, got)
	assert.Equal(t, "3", turns[0].ID, "input must not be modified")
}
