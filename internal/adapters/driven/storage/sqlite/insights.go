package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// insightStore implements driven.InsightStore on the saved_insights table.
type insightStore struct {
	store *Store
}

var _ driven.InsightStore = (*insightStore)(nil)

// Save stores a new entry.
func (s *insightStore) Save(ctx context.Context, insight domain.Insight) error {
	tags := insight.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("marshalling tags: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO saved_insights (id, case_id, content, category, tags, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, insight.ID, insight.CaseID, insight.Content, string(insight.Category),
		string(tagsJSON), insight.Completed, insight.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving insight: %w", err)
	}
	return nil
}

// List returns a case's entries of one category, newest first.
func (s *insightStore) List(ctx context.Context, caseID string, category domain.Category) ([]domain.Insight, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, case_id, content, category, tags, completed, created_at
		FROM saved_insights WHERE case_id = ? AND category = ?
		ORDER BY created_at DESC, seq DESC
	`, caseID, string(category))
	if err != nil {
		return nil, fmt.Errorf("querying insights: %w", err)
	}
	defer rows.Close()

	insights := []domain.Insight{}
	for rows.Next() {
		var in domain.Insight
		var cat, tagsJSON string
		if err := rows.Scan(&in.ID, &in.CaseID, &in.Content, &cat, &tagsJSON, &in.Completed, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning insight: %w", err)
		}
		in.Category = domain.Category(cat)
		if err := json.Unmarshal([]byte(tagsJSON), &in.Tags); err != nil {
			return nil, fmt.Errorf("unmarshaling tags: %w", err)
		}
		insights = append(insights, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating insights: %w", err)
	}
	return insights, nil
}

// SetCompleted updates the completed flag.
func (s *insightStore) SetCompleted(ctx context.Context, id string, completed bool) error {
	res, err := s.store.db.ExecContext(ctx,
		"UPDATE saved_insights SET completed = ? WHERE id = ?", completed, id)
	if err != nil {
		return fmt.Errorf("updating insight: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating insight: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an entry.
func (s *insightStore) Delete(ctx context.Context, id string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM saved_insights WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting insight: %w", err)
	}
	return nil
}
