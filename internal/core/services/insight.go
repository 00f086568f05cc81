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

// Ensure InsightService implements the interface.
var _ driving.InsightService = (*InsightService)(nil)

// InsightService manages saved insights, arguments and todos.
type InsightService struct {
	store driven.InsightStore
}

// NewInsightService creates a new insight service.
func NewInsightService(store driven.InsightStore) *InsightService {
	return &InsightService{store: store}
}

// Create saves a new entry.
func (s *InsightService) Create(
	ctx context.Context, caseID, content string, category domain.Category, tags []string,
) (*domain.Insight, error) {
	switch {
	case caseID == "":
		return nil, fmt.Errorf("%w: case ID is required", domain.ErrInvalidInput)
	case strings.TrimSpace(content) == "":
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	case !category.IsValid():
		return nil, fmt.Errorf("%w: invalid category %q", domain.ErrInvalidInput, category)
	}

	insight := domain.Insight{
		ID:        uuid.New().String(),
		CaseID:    caseID,
		Content:   content,
		Category:  category,
		Tags:      normaliseTags(tags),
		CreatedAt: time.Now(),
	}
	if err := s.store.Save(ctx, insight); err != nil {
		return nil, fmt.Errorf("save %s: %w", category, err)
	}
	return &insight, nil
}

// List returns a case's entries of one category, newest first.
func (s *InsightService) List(ctx context.Context, caseID string, category domain.Category) ([]domain.Insight, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: invalid category %q", domain.ErrInvalidInput, category)
	}
	return s.store.List(ctx, caseID, category)
}

// SetCompleted marks an entry as done or not done.
func (s *InsightService) SetCompleted(ctx context.Context, id string, completed bool) error {
	return s.store.SetCompleted(ctx, id, completed)
}

// Delete removes an entry.
func (s *InsightService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func normaliseTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
