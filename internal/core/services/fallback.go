package services

import (
	"fmt"
	"strings"
)

// fallbackPreviewLength is the number of evidence characters quoted in an
// evidence-bucket fallback response.
const fallbackPreviewLength = 300

const (
	noEvidenceResponse = "No evidence has been uploaded yet. " +
		"Please upload documents in the Evidence tab to enable AI analysis."

	argumentResponse = "To build a strong legal argument, we should:\n\n" +
		"1. Review all available evidence\n" +
		"2. Identify key facts and timeline\n" +
		"3. Research relevant case law\n" +
		"4. Develop counterarguments\n\n" +
		"(Mock response - configure OpenAI for full analysis)"

	evidenceResponseFormat = "Based on the evidence, here's my analysis:\n\n%s...\n\n" +
		"This is a mock response. Configure your OpenAI API key in Settings for full AI analysis."

	genericResponseFormat = "I understand you're asking about: \"%s\"\n\n" +
		"This is a mock response. To enable full AI-powered legal analysis:\n\n" +
		"1. Go to Settings tab\n" +
		"2. Enter your OpenAI API key\n" +
		"3. Upload evidence documents\n" +
		"4. Return here for detailed analysis\n\n" +
		"Your data stays 100%% local on your machine."
)

// Fallback produces a deterministic reply when no generation backend is
// available. It never fails and has no side effects.
//
// The query is classified by lowercase substring; the first matching
// bucket wins:
//
//  1. "evidence" or "document": a preview of evidenceText, or a request to
//     upload evidence when there is none
//  2. "argument" or "position": argument-building guidance
//  3. anything else: generic setup guidance echoing the query
func Fallback(query, evidenceText string) string {
	lower := strings.ToLower(query)

	switch {
	case strings.Contains(lower, "evidence") || strings.Contains(lower, "document"):
		if evidenceText == "" {
			return noEvidenceResponse
		}
		return fmt.Sprintf(evidenceResponseFormat, previewText(evidenceText, fallbackPreviewLength))

	case strings.Contains(lower, "argument") || strings.Contains(lower, "position"):
		return argumentResponse

	default:
		return fmt.Sprintf(genericResponseFormat, query)
	}
}

// previewText returns the first n characters of s without splitting a rune.
func previewText(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
