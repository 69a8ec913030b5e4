// Package inspection holds quality and safety inspections on projects.
package inspection

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
	// ErrInspectionNotFound indicates the inspection doesn't exist.
	ErrInspectionNotFound = errors.New("inspection not found")
	// ErrInvalidInput indicates invalid inspection input.
	ErrInvalidInput = errors.New("invalid inspection input")
)

// Inspection represents a quality or safety inspection on a project.
type Inspection struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
}

// Repository provides persistence for inspections.
type Repository interface {
	Create(ctx context.Context, insp *Inspection) error
	Get(ctx context.Context, id string) (*Inspection, error)
	List(ctx context.Context) ([]Inspection, error)
	Update(ctx context.Context, insp *Inspection) error
	Delete(ctx context.Context, id string) error
}

// Service handles inspection operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new inspection service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines inspection creation inputs.
type CreateRequest struct {
	ProjectID string
	Title     string
	Status    string
	Notes     string
}

// Create creates a new inspection under a project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Inspection, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.ProjectID) == "" {
		return nil, ErrInvalidInput
	}

	status := req.Status
	if strings.TrimSpace(status) == "" {
		status = "pending"
	}

	insp := &Inspection{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Status:    status,
		Notes:     req.Notes,
	}

	if err := s.repo.Create(ctx, insp); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("creating inspection: %w", err)
	}

	return insp, nil
}

// UpdateRequest defines partial inspection updates. Nil fields are left unchanged.
type UpdateRequest struct {
	Title  *string
	Status *string
	Notes  *string
}

// Update modifies an existing inspection and returns the stored row.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Inspection, error) {
	insp, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInspectionNotFound
		}
		return nil, fmt.Errorf("getting inspection: %w", err)
	}

	if req.Title != nil {
		insp.Title = *req.Title
	}
	if req.Status != nil {
		insp.Status = *req.Status
	}
	if req.Notes != nil {
		insp.Notes = *req.Notes
	}
	if strings.TrimSpace(insp.Title) == "" {
		return nil, ErrInvalidInput
	}

	if err := s.repo.Update(ctx, insp); err != nil {
		return nil, fmt.Errorf("updating inspection: %w", err)
	}

	return insp, nil
}

// List returns all inspections.
func (s *Service) List(ctx context.Context) ([]Inspection, error) {
	return s.repo.List(ctx)
}

// Delete removes an inspection.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInspectionNotFound
		}
		return fmt.Errorf("deleting inspection: %w", err)
	}
	return nil
}
