package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
	"github.com/custodia-labs/legalmind/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService fingerprints uploads and stores accepted evidence.
type IngestService struct {
	// mu serialises the duplicate check with the writes that follow it.
	mu sync.Mutex

	evidence         driven.EvidenceStore
	collections      driven.CollectionStore
	blobs            driven.BlobStore
	extractors       driven.ExtractorRegistry
	embeddingService driven.EmbeddingService
}

// NewIngestService creates a new ingestion service.
// The embeddingService parameter is optional (can be nil); documents are
// then stored without embeddings.
func NewIngestService(
	evidence driven.EvidenceStore,
	collections driven.CollectionStore,
	blobs driven.BlobStore,
	extractors driven.ExtractorRegistry,
	embeddingService driven.EmbeddingService,
) *IngestService {
	return &IngestService{
		evidence:         evidence,
		collections:      collections,
		blobs:            blobs,
		extractors:       extractors,
		embeddingService: embeddingService,
	}
}

// Fingerprint returns the hex SHA-256 digest of raw bytes.
func Fingerprint(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Ingest stores an upload unless identical bytes were seen before in any
// case or role. Duplicates modify nothing and report the existing record.
func (s *IngestService) Ingest(ctx context.Context, req driving.IngestRequest) (*driving.IngestResult, error) {
	if err := validateIngest(req); err != nil {
		return nil, err
	}

	filename := filepath.Base(req.Filename)
	checksum := Fingerprint(req.Content)
	logger.Debug("Ingesting %s (%d bytes, sha256=%s)", filename, len(req.Content), checksum)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.evidence.GetByChecksum(ctx, checksum)
	switch {
	case err == nil:
		logger.Info("Duplicate upload %s matches evidence %s", filename, existing.ID)
		return &driving.IngestResult{
			EvidenceID: existing.ID,
			DocumentID: existing.DocumentID,
			Duplicate:  true,
			Filename:   existing.Filename,
		}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("check fingerprint: %w", err)
	}

	text, err := s.extractors.Extract(ctx, &domain.RawEvidence{
		Filename: filename,
		MIMEType: req.MIMEType,
		Content:  req.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filename, err)
	}

	location, err := s.blobs.Put(filename, req.Content)
	if err != nil {
		return nil, fmt.Errorf("store raw file: %w", err)
	}

	now := time.Now()
	key := domain.CollectionKey(req.Role, req.CaseID)
	doc := domain.Document{
		ID:            uuid.New().String(),
		CollectionKey: key,
		Content:       domain.TruncateContent(text),
		Metadata: map[string]any{
			domain.MetaFilename: filename,
			domain.MetaRole:     req.Role.String(),
			domain.MetaChecksum: checksum,
		},
		Fingerprint: checksum,
		CreatedAt:   now,
	}
	doc.Embedding = s.embed(ctx, doc.Content)

	if err := s.collections.Append(ctx, key, doc); err != nil {
		s.removeBlob(location)
		return nil, fmt.Errorf("append to %s: %w", key, err)
	}

	ev := domain.Evidence{
		ID:         uuid.New().String(),
		CaseID:     req.CaseID,
		Filename:   filename,
		Filepath:   location,
		Role:       req.Role,
		Checksum:   checksum,
		DocumentID: doc.ID,
		UploadedAt: now,
	}
	if err := s.evidence.Save(ctx, ev); err != nil {
		if delErr := s.collections.Delete(ctx, key, doc.ID); delErr != nil {
			logger.Warn("Rollback of document %s failed: %v", doc.ID, delErr)
		}
		s.removeBlob(location)
		return nil, fmt.Errorf("save evidence: %w", err)
	}

	logger.Info("Accepted %s into %s as %s", filename, key, doc.ID)
	return &driving.IngestResult{
		EvidenceID: ev.ID,
		DocumentID: doc.ID,
		Filename:   filename,
	}, nil
}

// List returns a case's evidence, newest first.
func (s *IngestService) List(ctx context.Context, caseID string) ([]domain.Evidence, error) {
	if caseID == "" {
		return nil, fmt.Errorf("%w: case ID is required", domain.ErrInvalidInput)
	}
	return s.evidence.List(ctx, caseID)
}

// Remove deletes an evidence record together with its collection
// document and raw file.
func (s *IngestService) Remove(ctx context.Context, evidenceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, err := s.evidence.Get(ctx, evidenceID)
	if err != nil {
		return fmt.Errorf("get evidence: %w", err)
	}

	key := domain.CollectionKey(ev.Role, ev.CaseID)
	if err := s.collections.Delete(ctx, key, ev.DocumentID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if err := s.evidence.Delete(ctx, ev.ID); err != nil {
		return fmt.Errorf("delete evidence: %w", err)
	}
	s.removeBlob(ev.Filepath)

	return nil
}

func (s *IngestService) embed(ctx context.Context, text string) []float32 {
	if s.embeddingService == nil || strings.TrimSpace(text) == "" {
		return nil
	}
	vec, err := s.embeddingService.Embed(ctx, text)
	if err != nil {
		logger.Warn("Embedding unavailable, storing document without vector: %v", err)
		return nil
	}
	return vec
}

func (s *IngestService) removeBlob(location string) {
	if location == "" {
		return
	}
	if err := s.blobs.Remove(location); err != nil {
		logger.Warn("Failed to remove raw file %s: %v", location, err)
	}
}

func validateIngest(req driving.IngestRequest) error {
	switch {
	case req.CaseID == "":
		return fmt.Errorf("%w: case ID is required", domain.ErrInvalidInput)
	case !req.Role.IsValid():
		return fmt.Errorf("%w: invalid role %q", domain.ErrInvalidInput, req.Role)
	case strings.TrimSpace(req.Filename) == "":
		return fmt.Errorf("%w: filename is required", domain.ErrInvalidInput)
	case len(req.Content) == 0:
		return fmt.Errorf("%w: file is empty", domain.ErrInvalidInput)
	}
	return nil
}
