package domain

import "time"

// Evidence records one accepted upload and links it to the
// Document derived from it.
type Evidence struct {
	// ID is the unique evidence identifier.
	ID string

	// CaseID is the owning case.
	CaseID string

	// Filename is the original file name as uploaded.
	Filename string

	// Filepath is where the raw bytes were persisted.
	Filepath string

	// Role is the evidence classification.
	Role Role

	// Checksum is the fingerprint of the raw bytes.
	Checksum string

	// DocumentID is the collection document created from this upload.
	DocumentID string

	// UploadedAt is when the evidence was accepted.
	UploadedAt time.Time
}

// RawEvidence is an upload before text extraction.
type RawEvidence struct {
	// Filename is the declared file name.
	Filename string

	// MIMEType is the declared or detected content type.
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}
