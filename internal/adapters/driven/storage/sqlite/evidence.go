package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// evidenceStore implements driven.EvidenceStore.
type evidenceStore struct {
	store *Store
}

var _ driven.EvidenceStore = (*evidenceStore)(nil)

const evidenceColumns = "id, case_id, filename, filepath, role, checksum, document_id, uploaded_at"

// Save stores an evidence record.
func (s *evidenceStore) Save(ctx context.Context, ev domain.Evidence) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO evidence (`+evidenceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, ev.ID, ev.CaseID, ev.Filename, ev.Filepath, string(ev.Role), ev.Checksum, ev.DocumentID, ev.UploadedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving evidence: %w", err)
	}
	return nil
}

// Get retrieves an evidence record by ID.
func (s *evidenceStore) Get(ctx context.Context, id string) (*domain.Evidence, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+evidenceColumns+" FROM evidence WHERE id = ?", id)
	return scanEvidence(row)
}

// GetByChecksum looks up a fingerprint across all cases and roles.
func (s *evidenceStore) GetByChecksum(ctx context.Context, checksum string) (*domain.Evidence, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+evidenceColumns+" FROM evidence WHERE checksum = ?", checksum)
	return scanEvidence(row)
}

// List returns a case's evidence, newest first.
func (s *evidenceStore) List(ctx context.Context, caseID string) ([]domain.Evidence, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+evidenceColumns+` FROM evidence
		WHERE case_id = ? ORDER BY uploaded_at DESC, rowid DESC
	`, caseID)
	if err != nil {
		return nil, fmt.Errorf("querying evidence: %w", err)
	}
	defer rows.Close()

	list := []domain.Evidence{}
	for rows.Next() {
		ev, err := scanEvidence(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evidence: %w", err)
	}
	return list, nil
}

// Delete removes an evidence record.
func (s *evidenceStore) Delete(ctx context.Context, id string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM evidence WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting evidence: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvidence(row rowScanner) (*domain.Evidence, error) {
	var ev domain.Evidence
	var role string
	err := row.Scan(&ev.ID, &ev.CaseID, &ev.Filename, &ev.Filepath, &role,
		&ev.Checksum, &ev.DocumentID, &ev.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning evidence: %w", err)
	}
	ev.Role = domain.Role(role)
	return &ev, nil
}
