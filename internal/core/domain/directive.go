package domain

import "strings"

// Directive is the outcome of classifying an incoming user message.
type Directive int

const (
	// DirectiveNormal runs retrieval and generation.
	DirectiveNormal Directive = iota

	// DirectiveCommit stores the last assistant answer as an insight.
	DirectiveCommit
)

// String returns the string representation.
func (d Directive) String() string {
	switch d {
	case DirectiveCommit:
		return "commit"
	default:
		return "normal"
	}
}

// commitPhrases trigger DirectiveCommit when found in a lowercased message.
var commitPhrases = []string{"save that", "remember this"}

// ClassifyDirective decides how a user message is handled.
func ClassifyDirective(message string) Directive {
	lower := strings.ToLower(message)
	for _, phrase := range commitPhrases {
		if strings.Contains(lower, phrase) {
			return DirectiveCommit
		}
	}
	return DirectiveNormal
}
