package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keelson/sitedesk/internal/domain/bid"
	"github.com/keelson/sitedesk/internal/domain/document"
	"github.com/keelson/sitedesk/internal/domain/project"
	"github.com/keelson/sitedesk/internal/repository"
)

func newProject(id, name string) *project.Project {
	return &project.Project{
		ID:          id,
		Name:        name,
		Description: "A test project",
		Status:      project.StatusActive,
		Phase:       "Foundation",
		Location:    "Springfield",
		Budget:      1_000_000,
		ActualCost:  250_000,
		Progress:    25,
	}
}

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := newProject("p1", "Riverside Tower")
	require.NoError(t, repo.Create(ctx, proj))

	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Riverside Tower", retrieved.Name)
	require.Equal(t, project.StatusActive, retrieved.Status)
	require.Equal(t, 1_000_000.0, retrieved.Budget)
	require.NotNil(t, retrieved.Documents)
	require.Empty(t, retrieved.Documents)

	_, err = repo.Get(ctx, "nonexistent")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_GetLoadsChildren(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newProject("p1", "Riverside Tower")))
	require.NoError(t, NewDocumentRepository(db).Create(ctx, &document.Document{
		ID: "d1", ProjectID: "p1", Name: "Site plan", Type: "drawing",
	}))
	require.NoError(t, NewBidRepository(db).Create(ctx, &bid.Bid{
		ID: "b1", ProjectID: "p1", Title: "Framing", Status: "sent", Amount: 42_000,
	}))

	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, retrieved.Documents, 1)
	require.Equal(t, "Site plan", retrieved.Documents[0].Name)
	require.Len(t, retrieved.Bids, 1)
	require.Equal(t, 42_000.0, retrieved.Bids[0].Amount)
}

func TestProjectRepository_ListOrdersByNameWithChildren(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newProject("p1", "Zenith Plaza")))
	require.NoError(t, repo.Create(ctx, newProject("p2", "Aqueduct Repair")))
	require.NoError(t, NewDocumentRepository(db).Create(ctx, &document.Document{
		ID: "d1", ProjectID: "p2", Name: "Permit", Type: "other",
	}))

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "Aqueduct Repair", projects[0].Name)
	require.Equal(t, "Zenith Plaza", projects[1].Name)
	require.Len(t, projects[0].Documents, 1)
	require.Empty(t, projects[1].Documents)
}

// Children must land on the rows List returns even when appending the
// project slice reallocated its backing array mid-scan.
func TestProjectRepository_ListChildrenSurviveSliceGrowth(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	bids := NewBidRepository(db)
	ctx := context.Background()

	names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel", "India"}
	for i, name := range names {
		id := fmt.Sprintf("p%d", i)
		require.NoError(t, repo.Create(ctx, newProject(id, name)))
		require.NoError(t, bids.Create(ctx, &bid.Bid{
			ID: fmt.Sprintf("b%d", i), ProjectID: id, Title: name + " bid", Status: "draft", Amount: float64(i) * 1000,
		}))
	}

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, len(names))
	for _, proj := range projects {
		require.Len(t, proj.Bids, 1, "project %s lost its bid", proj.Name)
		require.Equal(t, proj.Name+" bid", proj.Bids[0].Title)
	}
}

func TestProjectRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := newProject("p1", "Riverside Tower")
	require.NoError(t, repo.Create(ctx, proj))

	proj.Name = "Riverside Tower II"
	proj.Status = project.StatusOnHold
	proj.Progress = 60
	require.NoError(t, repo.Update(ctx, proj))

	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Riverside Tower II", retrieved.Name)
	require.Equal(t, project.StatusOnHold, retrieved.Status)
	require.Equal(t, 60, retrieved.Progress)

	missing := newProject("ghost", "Ghost")
	require.ErrorIs(t, repo.Update(ctx, missing), repository.ErrNotFound)
}

func TestProjectRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newProject("p1", "Riverside Tower")))
	require.NoError(t, repo.Delete(ctx, "p1"))

	_, err := repo.Get(ctx, "p1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, "p1"), repository.ErrNotFound)
}
