package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/keelson/sitedesk/internal/domain/bid"
	"github.com/keelson/sitedesk/internal/repository"
)

// BidRepository implements bid.Repository for SQLite
type BidRepository struct {
	db *DB
}

// NewBidRepository creates a new BidRepository
func NewBidRepository(db *DB) *BidRepository {
	return &BidRepository{db: db}
}

// Create creates a new bid
func (r *BidRepository) Create(ctx context.Context, b *bid.Bid) error {
	query := `INSERT INTO bids (id, project_id, title, status, amount) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, b.ID, b.ProjectID, b.Title, b.Status, b.Amount)
	if err != nil {
		return fmt.Errorf("failed to create bid: %w", translateErr(err))
	}

	return nil
}

// Get retrieves a bid by ID
func (r *BidRepository) Get(ctx context.Context, id string) (*bid.Bid, error) {
	query := `SELECT id, project_id, title, status, amount FROM bids WHERE id = ?`

	var b bid.Bid
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.ProjectID, &b.Title, &b.Status, &b.Amount)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bid: %w", err)
	}

	return &b, nil
}

// List returns all bids
func (r *BidRepository) List(ctx context.Context) ([]bid.Bid, error) {
	query := `SELECT id, project_id, title, status, amount FROM bids ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	defer rows.Close()

	bids := make([]bid.Bid, 0)
	for rows.Next() {
		var b bid.Bid
		if err := rows.Scan(&b.ID, &b.ProjectID, &b.Title, &b.Status, &b.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan bid: %w", err)
		}
		bids = append(bids, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bid rows: %w", err)
	}

	return bids, nil
}

// Update rewrites the mutable columns of an existing bid
func (r *BidRepository) Update(ctx context.Context, b *bid.Bid) error {
	query := `UPDATE bids SET title = ?, status = ?, amount = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, b.Title, b.Status, b.Amount, b.ID)
	if err != nil {
		return fmt.Errorf("failed to update bid: %w", translateErr(err))
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

// Delete removes a bid
func (r *BidRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bids WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bid: %w", err)
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
