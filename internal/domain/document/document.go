// Package document holds project document records.
package document

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
	// ErrDocumentNotFound indicates the document doesn't exist.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrInvalidInput indicates invalid document input.
	ErrInvalidInput = errors.New("invalid document input")
)

// Document represents a file attached to a project.
type Document struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
}

// Repository provides persistence for documents.
type Repository interface {
	Create(ctx context.Context, doc *Document) error
	Get(ctx context.Context, id string) (*Document, error)
	List(ctx context.Context) ([]Document, error)
	Update(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id string) error
}

// Service handles document operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new document service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines document creation inputs.
type CreateRequest struct {
	ProjectID string
	Name      string
	Type      string
}

// Create creates a new document under a project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Document, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.ProjectID) == "" {
		return nil, ErrInvalidInput
	}

	docType := req.Type
	if strings.TrimSpace(docType) == "" {
		docType = "other"
	}

	doc := &Document{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Type:      docType,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("creating document: %w", err)
	}

	return doc, nil
}

// UpdateRequest defines partial document updates. Nil fields are left unchanged.
type UpdateRequest struct {
	Name *string
	Type *string
}

// Update modifies an existing document and returns the stored row.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}

	if req.Name != nil {
		doc.Name = *req.Name
	}
	if req.Type != nil {
		doc.Type = *req.Type
	}
	if strings.TrimSpace(doc.Name) == "" {
		return nil, ErrInvalidInput
	}

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("updating document: %w", err)
	}

	return doc, nil
}

// List returns all documents.
func (s *Service) List(ctx context.Context) ([]Document, error) {
	return s.repo.List(ctx)
}

// Delete removes a document.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}
