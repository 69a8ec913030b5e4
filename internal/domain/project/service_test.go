package project_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/keelson/sitedesk/internal/domain/project"
	"github.com/keelson/sitedesk/internal/repository"
	"github.com/keelson/sitedesk/internal/repository/mocks"
)

func newService(repo *mocks.ProjectRepository) *project.Service {
	return project.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateProject(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	svc := newService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*project.Project")).Return(nil)

	proj, err := svc.Create(context.Background(), project.CreateRequest{
		Name:     "Riverside Tower",
		Location: "Portland, OR",
		Budget:   2_500_000,
	})
	require.NoError(t, err)
	require.NotEmpty(t, proj.ID)
	require.Equal(t, project.StatusPlanning, proj.Status, "status defaults to planning")
	require.Equal(t, "Planning", proj.Phase, "phase defaults")
	repo.AssertExpectations(t)
}

func TestCreateProjectValidation(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	svc := newService(repo)

	_, err := svc.Create(context.Background(), project.CreateRequest{Name: "   "})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(context.Background(), project.CreateRequest{
		Name:   "Riverside Tower",
		Status: "demolished",
	})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(context.Background(), project.CreateRequest{
		Name:     "Riverside Tower",
		Progress: 140,
	})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create")
}

func TestUpdateProjectPartial(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	svc := newService(repo)

	stored := &project.Project{
		ID:       "p1",
		Name:     "Riverside Tower",
		Status:   project.StatusActive,
		Budget:   2_500_000,
		Progress: 40,
	}
	repo.On("Get", mock.Anything, "p1").Return(stored, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*project.Project")).Return(nil)

	progress := 65
	proj, err := svc.Update(context.Background(), "p1", project.UpdateRequest{Progress: &progress})
	require.NoError(t, err)
	require.Equal(t, 65, proj.Progress)
	require.Equal(t, "Riverside Tower", proj.Name, "unset fields keep stored values")
	repo.AssertExpectations(t)
}

func TestUpdateProjectRejectsBadStatus(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	svc := newService(repo)

	repo.On("Get", mock.Anything, "p1").Return(&project.Project{
		ID: "p1", Name: "Riverside Tower", Status: project.StatusActive,
	}, nil)

	bad := project.Status("demolished")
	_, err := svc.Update(context.Background(), "p1", project.UpdateRequest{Status: &bad})
	require.ErrorIs(t, err, project.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateMissingProject(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	svc := newService(repo)

	repo.On("Get", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	name := "renamed"
	_, err := svc.Update(context.Background(), "ghost", project.UpdateRequest{Name: &name})
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestDeleteMissingProject(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	svc := newService(repo)

	repo.On("Delete", mock.Anything, "ghost").Return(repository.ErrNotFound)

	err := svc.Delete(context.Background(), "ghost")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestVariance(t *testing.T) {
	p := project.Project{Budget: 2_500_000, ActualCost: 2_750_000}
	require.InDelta(t, -250_000, p.Variance(), 0.01)
}
