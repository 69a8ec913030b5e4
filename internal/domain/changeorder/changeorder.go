// Package changeorder holds signed budget adjustments against projects.
package changeorder

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
	// ErrChangeOrderNotFound indicates the change order doesn't exist.
	ErrChangeOrderNotFound = errors.New("change order not found")
	// ErrInvalidInput indicates invalid change order input.
	ErrInvalidInput = errors.New("invalid change order input")
)

// ChangeOrder represents a signed budget delta on a project. A negative
// amount is a credit, a positive amount an added cost.
type ChangeOrder struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"project_id"`
	Title     string  `json:"title"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
}

// Repository provides persistence for change orders.
type Repository interface {
	Create(ctx context.Context, co *ChangeOrder) error
	Get(ctx context.Context, id string) (*ChangeOrder, error)
	List(ctx context.Context) ([]ChangeOrder, error)
	Update(ctx context.Context, co *ChangeOrder) error
	Delete(ctx context.Context, id string) error
}

// Service handles change order operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new change order service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines change order creation inputs.
type CreateRequest struct {
	ProjectID string
	Title     string
	Status    string
	Amount    float64
}

// Create creates a new change order under a project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*ChangeOrder, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.ProjectID) == "" {
		return nil, ErrInvalidInput
	}

	status := req.Status
	if strings.TrimSpace(status) == "" {
		status = "pending"
	}

	co := &ChangeOrder{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Status:    status,
		Amount:    req.Amount,
	}

	if err := s.repo.Create(ctx, co); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("creating change order: %w", err)
	}

	return co, nil
}

// UpdateRequest defines partial change order updates. Nil fields are left unchanged.
type UpdateRequest struct {
	Title  *string
	Status *string
	Amount *float64
}

// Update modifies an existing change order and returns the stored row.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*ChangeOrder, error) {
	co, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrChangeOrderNotFound
		}
		return nil, fmt.Errorf("getting change order: %w", err)
	}

	if req.Title != nil {
		co.Title = *req.Title
	}
	if req.Status != nil {
		co.Status = *req.Status
	}
	if req.Amount != nil {
		co.Amount = *req.Amount
	}
	if strings.TrimSpace(co.Title) == "" {
		return nil, ErrInvalidInput
	}

	if err := s.repo.Update(ctx, co); err != nil {
		return nil, fmt.Errorf("updating change order: %w", err)
	}

	return co, nil
}

// List returns all change orders.
func (s *Service) List(ctx context.Context) ([]ChangeOrder, error) {
	return s.repo.List(ctx)
}

// Delete removes a change order.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrChangeOrderNotFound
		}
		return fmt.Errorf("deleting change order: %w", err)
	}
	return nil
}
