package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/keelson/sitedesk/internal/domain/bid"
	"github.com/keelson/sitedesk/internal/domain/changeorder"
	"github.com/keelson/sitedesk/internal/domain/document"
	"github.com/keelson/sitedesk/internal/domain/inspection"
	"github.com/keelson/sitedesk/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name        string
	Description string
	Location    string
	Status      Status
	Phase       string
	Budget      float64
	ActualCost  float64
	Progress    int
	StartDate   string
	EndDate     string
}

// Create creates a new project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	status := req.Status
	if status == "" {
		status = StatusPlanning
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
	if req.Progress < 0 || req.Progress > 100 {
		return nil, fmt.Errorf("%w: progress must be 0-100", ErrInvalidInput)
	}

	phase := req.Phase
	if strings.TrimSpace(phase) == "" {
		phase = "Planning"
	}

	proj := &Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Status:      status,
		Phase:       phase,
		Budget:      req.Budget,
		ActualCost:  req.ActualCost,
		Progress:    req.Progress,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,

		// A fresh project has no sub-resources; empty slices keep the
		// JSON shape identical to fetched rows.
		Documents:    []document.Document{},
		Bids:         []bid.Bid{},
		ChangeOrders: []changeorder.ChangeOrder{},
		Inspections:  []inspection.Inspection{},
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return proj, nil
}

// UpdateRequest defines partial project updates. Nil fields are left unchanged.
type UpdateRequest struct {
	Name        *string
	Description *string
	Location    *string
	Status      *Status
	Phase       *string
	Budget      *float64
	ActualCost  *float64
	Progress    *int
	StartDate   *string
	EndDate     *string
}

// Update modifies an existing project and returns the stored row.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}

	if req.Name != nil {
		proj.Name = *req.Name
	}
	if req.Description != nil {
		proj.Description = *req.Description
	}
	if req.Location != nil {
		proj.Location = *req.Location
	}
	if req.Status != nil {
		proj.Status = *req.Status
	}
	if req.Phase != nil {
		proj.Phase = *req.Phase
	}
	if req.Budget != nil {
		proj.Budget = *req.Budget
	}
	if req.ActualCost != nil {
		proj.ActualCost = *req.ActualCost
	}
	if req.Progress != nil {
		proj.Progress = *req.Progress
	}
	if req.StartDate != nil {
		proj.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		proj.EndDate = *req.EndDate
	}

	if strings.TrimSpace(proj.Name) == "" {
		return nil, ErrInvalidInput
	}
	if !proj.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, proj.Status)
	}
	if proj.Progress < 0 || proj.Progress > 100 {
		return nil, fmt.Errorf("%w: progress must be 0-100", ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, proj); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return proj, nil
}

// Get fetches a project by ID with its nested collections.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns all projects with their nested collections.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

// Delete removes a project and, through the schema, its sub-resources.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}
