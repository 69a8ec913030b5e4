package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keelson/sitedesk/internal/domain/project"
)

func loadedState(projects ...project.Project) *projectState {
	state := newProjectState()
	state.fetcher.Start("projects")
	state.fetcher.Succeed("projects", projects)
	state.setAll(projects)
	return state
}

func TestDashboardTotals(t *testing.T) {
	state := loadedState(
		project.Project{ID: "p1", Name: "A", Status: project.StatusActive, Budget: 1_500_000, ActualCost: 400_000, Progress: 30},
		project.Project{ID: "p2", Name: "B", Status: project.StatusPlanning, Budget: 1_000_000, ActualCost: 100_000, Progress: 5},
	)
	view := newDashboardPanel(state).View()

	require.Contains(t, view, "2", "project count")
	require.Contains(t, view, "$2.5M", "budgets summed in millions")
	require.Contains(t, view, "$0.5M", "actual costs summed in millions")
}

func TestDashboardUnknownStatusBucket(t *testing.T) {
	state := loadedState(
		project.Project{ID: "p1", Name: "A", Status: project.StatusActive},
		project.Project{ID: "p2", Name: "B", Status: project.Status("demolished")},
		project.Project{ID: "p3", Name: "C"},
	)
	view := newDashboardPanel(state).View()

	require.Contains(t, view, "Unknown")
	require.Contains(t, view, "active")
}

func TestDashboardRendersFetchError(t *testing.T) {
	state := newProjectState()
	state.fetcher.Start("projects")
	state.fetcher.Fail("projects", errTest{})

	view := newDashboardPanel(state).View()
	require.Contains(t, view, "Failed to load projects")
}

func TestDashboardViewIsIdempotent(t *testing.T) {
	state := loadedState(
		project.Project{ID: "p1", Name: "A", Status: project.StatusActive, Progress: 40},
	)
	panel := newDashboardPanel(state)
	require.Equal(t, panel.View(), panel.View(), "repeated renders are identical")
}

type errTest struct{}

func (errTest) Error() string { return "boom" }
