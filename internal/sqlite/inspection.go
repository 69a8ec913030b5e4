package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/keelson/sitedesk/internal/domain/inspection"
	"github.com/keelson/sitedesk/internal/repository"
)

// InspectionRepository implements inspection.Repository for SQLite
type InspectionRepository struct {
	db *DB
}

// NewInspectionRepository creates a new InspectionRepository
func NewInspectionRepository(db *DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

// Create creates a new inspection
func (r *InspectionRepository) Create(ctx context.Context, insp *inspection.Inspection) error {
	query := `INSERT INTO inspections (id, project_id, title, status, notes) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, insp.ID, insp.ProjectID, insp.Title, insp.Status, insp.Notes)
	if err != nil {
		return fmt.Errorf("failed to create inspection: %w", translateErr(err))
	}

	return nil
}

// Get retrieves an inspection by ID
func (r *InspectionRepository) Get(ctx context.Context, id string) (*inspection.Inspection, error) {
	query := `SELECT id, project_id, title, status, notes FROM inspections WHERE id = ?`

	var insp inspection.Inspection
	err := r.db.QueryRowContext(ctx, query, id).Scan(&insp.ID, &insp.ProjectID, &insp.Title, &insp.Status, &insp.Notes)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection: %w", err)
	}

	return &insp, nil
}

// List returns all inspections
func (r *InspectionRepository) List(ctx context.Context) ([]inspection.Inspection, error) {
	query := `SELECT id, project_id, title, status, notes FROM inspections ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	defer rows.Close()

	inspections := make([]inspection.Inspection, 0)
	for rows.Next() {
		var insp inspection.Inspection
		if err := rows.Scan(&insp.ID, &insp.ProjectID, &insp.Title, &insp.Status, &insp.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan inspection: %w", err)
		}
		inspections = append(inspections, insp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inspection rows: %w", err)
	}

	return inspections, nil
}

// Update rewrites the mutable columns of an existing inspection
func (r *InspectionRepository) Update(ctx context.Context, insp *inspection.Inspection) error {
	query := `UPDATE inspections SET title = ?, status = ?, notes = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, insp.Title, insp.Status, insp.Notes, insp.ID)
	if err != nil {
		return fmt.Errorf("failed to update inspection: %w", translateErr(err))
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

// Delete removes an inspection
func (r *InspectionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inspections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inspection: %w", err)
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
