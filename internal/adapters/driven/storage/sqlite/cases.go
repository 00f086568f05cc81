package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// caseStore implements driven.CaseStore.
type caseStore struct {
	store *Store
}

var _ driven.CaseStore = (*caseStore)(nil)

// Save stores or updates a case.
func (s *caseStore) Save(ctx context.Context, c domain.Case) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO cases (id, title, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			updated_at = excluded.updated_at
	`, c.ID, c.Title, c.Description, c.CreatedAt.UTC(), c.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving case: %w", err)
	}
	return nil
}

// Get retrieves a case by ID.
func (s *caseStore) Get(ctx context.Context, id string) (*domain.Case, error) {
	var c domain.Case
	err := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, description, created_at, updated_at FROM cases WHERE id = ?
	`, id).Scan(&c.ID, &c.Title, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning case: %w", err)
	}
	return &c, nil
}

// List returns all cases, newest first.
func (s *caseStore) List(ctx context.Context) ([]domain.Case, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, description, created_at, updated_at
		FROM cases ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying cases: %w", err)
	}
	defer rows.Close()

	cases := []domain.Case{}
	for rows.Next() {
		var c domain.Case
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning case: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cases: %w", err)
	}
	return cases, nil
}

// Count returns the number of cases.
func (s *caseStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cases").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cases: %w", err)
	}
	return n, nil
}
