// Package bid holds contractor bids submitted against projects.
package bid

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/keelson/sitedesk/internal/repository"
)

var (
	// ErrBidNotFound indicates the bid doesn't exist.
	ErrBidNotFound = errors.New("bid not found")
	// ErrInvalidInput indicates invalid bid input.
	ErrInvalidInput = errors.New("invalid bid input")
)

// Bid represents a contractor bid on a project.
type Bid struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"project_id"`
	Title     string  `json:"title"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
}

// Repository provides persistence for bids.
type Repository interface {
	Create(ctx context.Context, b *Bid) error
	Get(ctx context.Context, id string) (*Bid, error)
	List(ctx context.Context) ([]Bid, error)
	Update(ctx context.Context, b *Bid) error
	Delete(ctx context.Context, id string) error
}

// Service handles bid operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new bid service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines bid creation inputs.
type CreateRequest struct {
	ProjectID string
	Title     string
	Status    string
	Amount    float64
}

// Create creates a new bid under a project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Bid, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.ProjectID) == "" {
		return nil, ErrInvalidInput
	}

	status := req.Status
	if strings.TrimSpace(status) == "" {
		status = "draft"
	}

	b := &Bid{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Status:    status,
		Amount:    req.Amount,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("creating bid: %w", err)
	}

	return b, nil
}

// UpdateRequest defines partial bid updates. Nil fields are left unchanged.
type UpdateRequest struct {
	Title  *string
	Status *string
	Amount *float64
}

// Update modifies an existing bid and returns the stored row.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Bid, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, fmt.Errorf("getting bid: %w", err)
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if strings.TrimSpace(b.Title) == "" {
		return nil, ErrInvalidInput
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("updating bid: %w", err)
	}

	return b, nil
}

// List returns all bids.
func (s *Service) List(ctx context.Context) ([]Bid, error) {
	return s.repo.List(ctx)
}

// Delete removes a bid.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBidNotFound
		}
		return fmt.Errorf("deleting bid: %w", err)
	}
	return nil
}
