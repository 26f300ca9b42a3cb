package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"happenly/internal/domain"

	"github.com/google/uuid"
)

type documentStore struct {
	DB    *sql.DB
	newID func() string
}

// NewDocumentStore returns a domain.DocumentStore that keeps every collection in
// the documents table, one JSONB field-bag per row.
func NewDocumentStore(db *sql.DB) domain.DocumentStore {
	return &documentStore{
		DB:    db,
		newID: uuid.NewString,
	}
}

func (s *documentStore) List(ctx context.Context, collection string) ([]domain.Document, error) {
	query := `
		SELECT id, data
		FROM documents
		WHERE collection = $1
		ORDER BY created_at, id
	`
	rows, err := s.DB.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, err
		}
		docs = append(docs, domain.NewDocument(id, data))
	}
	return docs, rows.Err()
}

func (s *documentStore) Get(ctx context.Context, collection, id string) (domain.Document, error) {
	query := `
		SELECT data
		FROM documents
		WHERE collection = $1 AND id = $2
	`
	var data []byte
	err := s.DB.QueryRowContext(ctx, query, collection, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewDocument(id, nil), nil
		}
		return domain.Document{}, err
	}
	if data == nil {
		data = []byte("{}")
	}
	return domain.NewDocument(id, data), nil
}

func (s *documentStore) Add(ctx context.Context, collection string, fields any) (domain.DocumentRef, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return domain.DocumentRef{}, fmt.Errorf("encode document: %w", err)
	}
	id := s.newID()
	query := `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
	`
	if _, err := s.DB.ExecContext(ctx, query, collection, id, string(data)); err != nil {
		return domain.DocumentRef{}, err
	}
	return domain.DocumentRef{ID: id}, nil
}

func (s *documentStore) Set(ctx context.Context, collection, id string, fields any) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	query := `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = NOW()
	`
	_, err = s.DB.ExecContext(ctx, query, collection, id, string(data))
	return err
}

func (s *documentStore) Update(ctx context.Context, collection, id string, patch map[string]any) error {
	if patch == nil {
		patch = map[string]any{}
	}
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}
	query := `
		UPDATE documents
		SET data = data || $3::jsonb, updated_at = NOW()
		WHERE collection = $1 AND id = $2
	`
	result, err := s.DB.ExecContext(ctx, query, collection, id, string(data))
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *documentStore) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`
	_, err := s.DB.ExecContext(ctx, query, collection, id)
	return err
}
