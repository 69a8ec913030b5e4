package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/keelson/sitedesk/internal/domain/account"
	"github.com/keelson/sitedesk/internal/repository"
)

// ProfileRepository implements account.Repository for SQLite
type ProfileRepository struct {
	db *DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, p *account.Profile) error {
	query := `INSERT INTO profiles (id, email, full_name, password_hash, role) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Email, p.FullName, p.PasswordHash, p.Role)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", translateErr(err))
	}

	return nil
}

// GetByEmail retrieves a profile by email address
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*account.Profile, error) {
	query := `SELECT id, email, full_name, password_hash, role FROM profiles WHERE email = ?`

	var p account.Profile
	err := r.db.QueryRowContext(ctx, query, email).Scan(&p.ID, &p.Email, &p.FullName, &p.PasswordHash, &p.Role)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}
