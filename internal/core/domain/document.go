package domain

import (
	"time"
	"unicode/utf8"
)

// MaxContentLength is the maximum number of characters of extracted text
// stored for a single document.
const MaxContentLength = 10000

// Metadata keys written by the ingestion gate.
const (
	MetaFilename = "filename"
	MetaRole     = "type"
	MetaChecksum = "checksum"
)

// Document is one ingested unit of evidence.
// Documents are immutable once appended to a collection.
type Document struct {
	// ID is the unique identifier assigned at ingestion.
	ID string

	// CollectionKey is the collection the document belongs to.
	CollectionKey string

	// Content is the extracted text, truncated to MaxContentLength.
	Content string

	// Metadata holds descriptive fields (filename, role, checksum).
	// It is opaque to the ranker.
	Metadata map[string]any

	// Fingerprint is the hex SHA-256 digest of the original raw bytes.
	Fingerprint string

	// Embedding is an optional vector used by the embedding scorer.
	Embedding []float32

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// TruncateContent limits text to MaxContentLength characters without
// splitting a multi-byte rune.
func TruncateContent(text string) string {
	if utf8.RuneCountInString(text) <= MaxContentLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:MaxContentLength])
}

// RankedDocument is a document returned by the relevance ranker.
type RankedDocument struct {
	// Document is the matched document.
	Document Document

	// Score is the relevance score (number of matching query terms for
	// the lexical scorer, cosine similarity for the embedding scorer).
	Score float64

	// Distance is 1 - normalised score. It is 1 when the query has no terms.
	Distance float64
}
