package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// turnStore implements driven.TurnStore on the messages table.
type turnStore struct {
	store *Store
}

var _ driven.TurnStore = (*turnStore)(nil)

// Append stores a turn.
func (s *turnStore) Append(ctx context.Context, turn domain.Turn) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO messages (id, case_id, role, content, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, turn.ID, turn.CaseID, string(turn.Role), turn.Content, turn.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("saving message: %w", err)
	}
	return nil
}

// List returns all turns of a case, oldest first.
func (s *turnStore) List(ctx context.Context, caseID string) ([]domain.Turn, error) {
	return s.query(ctx, `
		SELECT id, case_id, role, content, timestamp FROM messages
		WHERE case_id = ? ORDER BY timestamp ASC, seq ASC
	`, caseID)
}

// Recent returns at most limit turns of a case, newest first.
func (s *turnStore) Recent(ctx context.Context, caseID string, limit int) ([]domain.Turn, error) {
	if limit <= 0 {
		return []domain.Turn{}, nil
	}
	return s.query(ctx, `
		SELECT id, case_id, role, content, timestamp FROM messages
		WHERE case_id = ? ORDER BY timestamp DESC, seq DESC LIMIT ?
	`, caseID, limit)
}

// LastByRole returns the newest turn of a case authored by role.
func (s *turnStore) LastByRole(ctx context.Context, caseID string, role domain.TurnRole) (*domain.Turn, error) {
	var t domain.Turn
	var r string
	err := s.store.db.QueryRowContext(ctx, `
		SELECT id, case_id, role, content, timestamp FROM messages
		WHERE case_id = ? AND role = ? ORDER BY timestamp DESC, seq DESC LIMIT 1
	`, caseID, string(role)).Scan(&t.ID, &t.CaseID, &r, &t.Content, &t.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning message: %w", err)
	}
	t.Role = domain.TurnRole(r)
	return &t, nil
}

func (s *turnStore) query(ctx context.Context, query string, args ...any) ([]domain.Turn, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	turns := []domain.Turn{}
	for rows.Next() {
		var t domain.Turn
		var r string
		if err := rows.Scan(&t.ID, &t.CaseID, &r, &t.Content, &t.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		t.Role = domain.TurnRole(r)
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return turns, nil
}
