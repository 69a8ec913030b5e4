package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/keelson/sitedesk/internal/domain/bid"
	"github.com/keelson/sitedesk/internal/domain/changeorder"
	"github.com/keelson/sitedesk/internal/domain/document"
	"github.com/keelson/sitedesk/internal/domain/inspection"
	"github.com/keelson/sitedesk/internal/domain/project"
	"github.com/keelson/sitedesk/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	query := `
		INSERT INTO projects (id, name, description, status, phase, location, budget, actual_cost, progress, start_date, end_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		proj.ID,
		proj.Name,
		proj.Description,
		string(proj.Status),
		proj.Phase,
		proj.Location,
		proj.Budget,
		proj.ActualCost,
		proj.Progress,
		nullable(proj.StartDate),
		nullable(proj.EndDate),
	)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", translateErr(err))
	}

	return nil
}

// Get retrieves a project by ID with its nested collections
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `
		SELECT id, name, description, status, phase, location, budget, actual_cost, progress, start_date, end_date
		FROM projects
		WHERE id = ?
	`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if err := r.loadChildren(ctx, map[string]*project.Project{proj.ID: proj}); err != nil {
		return nil, err
	}

	return proj, nil
}

// List returns all projects ordered by name, each with its nested collections
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	query := `
		SELECT id, name, description, status, phase, location, budget, actual_cost, progress, start_date, end_date
		FROM projects
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]project.Project, 0)
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	// Build the pointer map only after the slice has stopped growing;
	// appends above may reallocate the backing array.
	byID := make(map[string]*project.Project, len(projects))
	for i := range projects {
		byID[projects[i].ID] = &projects[i]
	}

	if err := r.loadChildren(ctx, byID); err != nil {
		return nil, err
	}

	return projects, nil
}

// Update rewrites every mutable column of an existing project
func (r *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	query := `
		UPDATE projects
		SET name = ?, description = ?, status = ?, phase = ?, location = ?,
		    budget = ?, actual_cost = ?, progress = ?, start_date = ?, end_date = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		proj.Name,
		proj.Description,
		string(proj.Status),
		proj.Phase,
		proj.Location,
		proj.Budget,
		proj.ActualCost,
		proj.Progress,
		nullable(proj.StartDate),
		nullable(proj.EndDate),
		proj.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", translateErr(err))
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

// Delete removes a project; child rows cascade through the schema
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var proj project.Project
	var status string
	var startDate, endDate sql.NullString
	err := row.Scan(
		&proj.ID,
		&proj.Name,
		&proj.Description,
		&status,
		&proj.Phase,
		&proj.Location,
		&proj.Budget,
		&proj.ActualCost,
		&proj.Progress,
		&startDate,
		&endDate,
	)
	if err != nil {
		return nil, err
	}
	proj.Status = project.Status(status)
	proj.StartDate = startDate.String
	proj.EndDate = endDate.String
	proj.Documents = make([]document.Document, 0)
	proj.Bids = make([]bid.Bid, 0)
	proj.ChangeOrders = make([]changeorder.ChangeOrder, 0)
	proj.Inspections = make([]inspection.Inspection, 0)
	return &proj, nil
}

// loadChildren attaches every sub-resource row to its parent project.
// One query per child table regardless of the number of projects.
func (r *ProjectRepository) loadChildren(ctx context.Context, byID map[string]*project.Project) error {
	if len(byID) == 0 {
		return nil
	}

	docRows, err := r.db.QueryContext(ctx, `SELECT id, project_id, name, type FROM documents ORDER BY created_at`)
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}
	defer docRows.Close()
	for docRows.Next() {
		var d document.Document
		if err := docRows.Scan(&d.ID, &d.ProjectID, &d.Name, &d.Type); err != nil {
			return fmt.Errorf("failed to scan document: %w", err)
		}
		if proj, ok := byID[d.ProjectID]; ok {
			proj.Documents = append(proj.Documents, d)
		}
	}
	if err := docRows.Err(); err != nil {
		return fmt.Errorf("error iterating document rows: %w", err)
	}

	bidRows, err := r.db.QueryContext(ctx, `SELECT id, project_id, title, status, amount FROM bids ORDER BY created_at`)
	if err != nil {
		return fmt.Errorf("failed to load bids: %w", err)
	}
	defer bidRows.Close()
	for bidRows.Next() {
		var b bid.Bid
		if err := bidRows.Scan(&b.ID, &b.ProjectID, &b.Title, &b.Status, &b.Amount); err != nil {
			return fmt.Errorf("failed to scan bid: %w", err)
		}
		if proj, ok := byID[b.ProjectID]; ok {
			proj.Bids = append(proj.Bids, b)
		}
	}
	if err := bidRows.Err(); err != nil {
		return fmt.Errorf("error iterating bid rows: %w", err)
	}

	coRows, err := r.db.QueryContext(ctx, `SELECT id, project_id, title, status, amount FROM change_orders ORDER BY created_at`)
	if err != nil {
		return fmt.Errorf("failed to load change orders: %w", err)
	}
	defer coRows.Close()
	for coRows.Next() {
		var co changeorder.ChangeOrder
		if err := coRows.Scan(&co.ID, &co.ProjectID, &co.Title, &co.Status, &co.Amount); err != nil {
			return fmt.Errorf("failed to scan change order: %w", err)
		}
		if proj, ok := byID[co.ProjectID]; ok {
			proj.ChangeOrders = append(proj.ChangeOrders, co)
		}
	}
	if err := coRows.Err(); err != nil {
		return fmt.Errorf("error iterating change order rows: %w", err)
	}

	inspRows, err := r.db.QueryContext(ctx, `SELECT id, project_id, title, status, notes FROM inspections ORDER BY created_at`)
	if err != nil {
		return fmt.Errorf("failed to load inspections: %w", err)
	}
	defer inspRows.Close()
	for inspRows.Next() {
		var insp inspection.Inspection
		if err := inspRows.Scan(&insp.ID, &insp.ProjectID, &insp.Title, &insp.Status, &insp.Notes); err != nil {
			return fmt.Errorf("failed to scan inspection: %w", err)
		}
		if proj, ok := byID[insp.ProjectID]; ok {
			proj.Inspections = append(proj.Inspections, insp)
		}
	}
	if err := inspRows.Err(); err != nil {
		return fmt.Errorf("error iterating inspection rows: %w", err)
	}

	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
