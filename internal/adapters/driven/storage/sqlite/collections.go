package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
)

// collectionStore implements driven.CollectionStore on the documents table.
// Insertion order is the autoincrement seq column.
type collectionStore struct {
	store *Store
}

var _ driven.CollectionStore = (*collectionStore)(nil)

// Append adds a document to the end of a collection.
func (s *collectionStore) Append(ctx context.Context, key string, doc domain.Document) error {
	metadata := doc.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("marshalling metadata: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO documents (id, collection_key, content, metadata, fingerprint, embedding, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, key, doc.Content, string(metadataJSON), doc.Fingerprint,
		float32SliceToBytes(doc.Embedding), doc.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// LoadAll returns every document of a collection in insertion order.
func (s *collectionStore) LoadAll(ctx context.Context, key string) ([]domain.Document, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, collection_key, content, metadata, fingerprint, embedding, created_at
		FROM documents WHERE collection_key = ? ORDER BY seq ASC
	`, key)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		var doc domain.Document
		var metadataJSON string
		var embeddingBlob []byte
		if err := rows.Scan(&doc.ID, &doc.CollectionKey, &doc.Content, &metadataJSON,
			&doc.Fingerprint, &embeddingBlob, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		if metadataJSON != "" {
			if err := json.Unmarshal([]byte(metadataJSON), &doc.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshaling metadata: %w", err)
			}
		}
		doc.Embedding = bytesToFloat32Slice(embeddingBlob)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

// Delete removes a document from a collection.
func (s *collectionStore) Delete(ctx context.Context, key, documentID string) error {
	_, err := s.store.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection_key = ? AND id = ?", key, documentID)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}
