package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDirective(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Directive
	}{
		{"save that", "Save that please", DirectiveCommit},
		{"remember this", "please remember this analysis", DirectiveCommit},
		{"upper case", "REMEMBER THIS", DirectiveCommit},
		{"normal question", "What evidence supports this?", DirectiveNormal},
		{"partial phrase", "save the date", DirectiveNormal},
		{"empty", "", DirectiveNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDirective(tt.message))
		})
	}
}

func TestDirective_String(t *testing.T) {
	assert.Equal(t, "commit", DirectiveCommit.String())
	assert.Equal(t, "normal", DirectiveNormal.String())
}
