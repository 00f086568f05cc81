package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
)

// Ensure CaseService implements the interface.
var _ driving.CaseService = (*CaseService)(nil)

// CaseService manages cases.
type CaseService struct {
	store driven.CaseStore
}

// NewCaseService creates a new case service.
func NewCaseService(store driven.CaseStore) *CaseService {
	return &CaseService{store: store}
}

// Create adds a new case.
func (s *CaseService) Create(ctx context.Context, title, description string) (*domain.Case, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: case title is required", domain.ErrInvalidInput)
	}

	now := time.Now()
	c := domain.Case{
		ID:          uuid.New().String(),
		Title:       title,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save case: %w", err)
	}
	return &c, nil
}

// Get retrieves a case by ID.
func (s *CaseService) Get(ctx context.Context, id string) (*domain.Case, error) {
	return s.store.Get(ctx, id)
}

// List returns all cases, newest first.
func (s *CaseService) List(ctx context.Context) ([]domain.Case, error) {
	return s.store.List(ctx)
}

// EnsureDefault seeds the sample case into an empty workspace and
// returns the newest case.
func (s *CaseService) EnsureDefault(ctx context.Context) (*domain.Case, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count cases: %w", err)
	}
	if count == 0 {
		return s.Create(ctx, domain.DefaultCaseTitle, domain.DefaultCaseDescription)
	}

	cases, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return &cases[0], nil
}
