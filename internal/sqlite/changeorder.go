package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/keelson/sitedesk/internal/domain/changeorder"
	"github.com/keelson/sitedesk/internal/repository"
)

// ChangeOrderRepository implements changeorder.Repository for SQLite
type ChangeOrderRepository struct {
	db *DB
}

// NewChangeOrderRepository creates a new ChangeOrderRepository
func NewChangeOrderRepository(db *DB) *ChangeOrderRepository {
	return &ChangeOrderRepository{db: db}
}

// Create creates a new change order
func (r *ChangeOrderRepository) Create(ctx context.Context, co *changeorder.ChangeOrder) error {
	query := `INSERT INTO change_orders (id, project_id, title, status, amount) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, co.ID, co.ProjectID, co.Title, co.Status, co.Amount)
	if err != nil {
		return fmt.Errorf("failed to create change order: %w", translateErr(err))
	}

	return nil
}

// Get retrieves a change order by ID
func (r *ChangeOrderRepository) Get(ctx context.Context, id string) (*changeorder.ChangeOrder, error) {
	query := `SELECT id, project_id, title, status, amount FROM change_orders WHERE id = ?`

	var co changeorder.ChangeOrder
	err := r.db.QueryRowContext(ctx, query, id).Scan(&co.ID, &co.ProjectID, &co.Title, &co.Status, &co.Amount)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get change order: %w", err)
	}

	return &co, nil
}

// List returns all change orders
func (r *ChangeOrderRepository) List(ctx context.Context) ([]changeorder.ChangeOrder, error) {
	query := `SELECT id, project_id, title, status, amount FROM change_orders ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list change orders: %w", err)
	}
	defer rows.Close()

	orders := make([]changeorder.ChangeOrder, 0)
	for rows.Next() {
		var co changeorder.ChangeOrder
		if err := rows.Scan(&co.ID, &co.ProjectID, &co.Title, &co.Status, &co.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan change order: %w", err)
		}
		orders = append(orders, co)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating change order rows: %w", err)
	}

	return orders, nil
}

// Update rewrites the mutable columns of an existing change order
func (r *ChangeOrderRepository) Update(ctx context.Context, co *changeorder.ChangeOrder) error {
	query := `UPDATE change_orders SET title = ?, status = ?, amount = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, co.Title, co.Status, co.Amount, co.ID)
	if err != nil {
		return fmt.Errorf("failed to update change order: %w", translateErr(err))
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

// Delete removes a change order
func (r *ChangeOrderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM change_orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete change order: %w", err)
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
