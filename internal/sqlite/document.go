package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/keelson/sitedesk/internal/domain/document"
	"github.com/keelson/sitedesk/internal/repository"
)

// DocumentRepository implements document.Repository for SQLite
type DocumentRepository struct {
	db *DB
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document
func (r *DocumentRepository) Create(ctx context.Context, doc *document.Document) error {
	query := `INSERT INTO documents (id, project_id, name, type) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, doc.ID, doc.ProjectID, doc.Name, doc.Type)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", translateErr(err))
	}

	return nil
}

// Get retrieves a document by ID
func (r *DocumentRepository) Get(ctx context.Context, id string) (*document.Document, error) {
	query := `SELECT id, project_id, name, type FROM documents WHERE id = ?`

	var doc document.Document
	err := r.db.QueryRowContext(ctx, query, id).Scan(&doc.ID, &doc.ProjectID, &doc.Name, &doc.Type)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return &doc, nil
}

// List returns all documents
func (r *DocumentRepository) List(ctx context.Context) ([]document.Document, error) {
	query := `SELECT id, project_id, name, type FROM documents ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]document.Document, 0)
	for rows.Next() {
		var doc document.Document
		if err := rows.Scan(&doc.ID, &doc.ProjectID, &doc.Name, &doc.Type); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, nil
}

// Update rewrites the mutable columns of an existing document
func (r *DocumentRepository) Update(ctx context.Context, doc *document.Document) error {
	query := `UPDATE documents SET name = ?, type = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, doc.Name, doc.Type, doc.ID)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", translateErr(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a document
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
