package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/keelson/sitedesk/internal/domain/project"
)

func fixtureProjects() []project.Project {
	return []project.Project{
		{ID: "p1", Name: "Downtown Office Complex", Location: "Portland", Status: project.StatusActive, Budget: 8_200_000, Progress: 75},
		{ID: "p2", Name: "Residential Tower A", Location: "Seattle", Status: project.StatusActive, Budget: 12_500_000, Progress: 45},
		{ID: "p3", Name: "Shopping Center Renovation", Location: "Tacoma", Status: project.StatusCompleted, Budget: 3_000_000, Progress: 100},
	}
}

func newFixturePanel() *projectsPanel {
	return newProjectsPanel(nil, loadedState(fixtureProjects()...))
}

func TestProjectsVisibleFiltersBySearchAndStatus(t *testing.T) {
	p := newFixturePanel()

	require.Len(t, p.visible(), 3, "no filter shows everything")

	p.search.SetValue("tower")
	require.Len(t, p.visible(), 1)
	require.Equal(t, "p2", p.visible()[0].ID)

	p.search.SetValue("seattle")
	require.Len(t, p.visible(), 1, "location matches too")

	p.search.SetValue("")
	for i, f := range statusFilters {
		if f == string(project.StatusCompleted) {
			p.statusIdx = i
		}
	}
	got := p.visible()
	require.Len(t, got, 1)
	require.Equal(t, "p3", got[0].ID)
}

func TestProjectsVisibleMemoizesUntilCollectionChanges(t *testing.T) {
	p := newFixturePanel()

	first := p.visible()
	second := p.visible()
	require.Same(t, &first[0], &second[0], "unchanged inputs reuse the cached slice")

	p.state.insert(project.Project{ID: "p4", Name: "Harbor Bridge", Status: project.StatusPlanning})
	require.Len(t, p.visible(), 4, "version bump invalidates the memo")
}

func TestProjectsSavedMessagePrependsAndReplaces(t *testing.T) {
	p := newFixturePanel()

	p.Update(itemSavedMsg{endpoint: "projects", created: true,
		item: project.Project{ID: "p9", Name: "New Yard", Status: project.StatusPlanning}})
	items := p.state.cache.Items()
	require.Equal(t, "p9", items[0].ID, "created project is prepended")

	p.Update(itemSavedMsg{endpoint: "projects",
		item: project.Project{ID: "p2", Name: "Residential Tower A - Phase 2", Status: project.StatusActive}})
	items = p.state.cache.Items()
	require.Equal(t, "Residential Tower A - Phase 2", items[2].Name, "update replaces in place")
	require.Len(t, items, 4)
}

func TestProjectsSavedMessageIgnoresOtherEndpoints(t *testing.T) {
	p := newFixturePanel()
	p.Update(itemSavedMsg{endpoint: "bids", created: true, item: project.Project{ID: "x"}})
	require.Len(t, p.state.cache.Items(), 3)
}

func TestProjectsDeleteConfirmFlow(t *testing.T) {
	p := newFixturePanel()

	p.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	require.Equal(t, panelConfirm, p.mode)

	p.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	require.Equal(t, panelList, p.mode, "n cancels the confirmation")

	p.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	cmd := p.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, cmd, "y issues the delete")
	require.True(t, p.busy)

	p.Update(itemDeletedMsg{endpoint: "projects", id: "p1"})
	require.False(t, p.busy)
	require.Len(t, p.state.cache.Items(), 2)
}

func TestProjectsDeleteKeepsCursorUnlessPastEnd(t *testing.T) {
	p := newFixturePanel()

	p.cursor = 1
	p.Update(itemDeletedMsg{endpoint: "projects", id: "p2"})
	require.Equal(t, 1, p.cursor, "deleting a middle row keeps the cursor row")

	p.cursor = 1
	p.Update(itemDeletedMsg{endpoint: "projects", id: "p3"})
	require.Equal(t, 0, p.cursor, "deleting the last row pulls the cursor back")
}

func TestProjectsEnterSelectsForDetail(t *testing.T) {
	p := newFixturePanel()
	p.cursor = 1

	cmd := p.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(selectProjectMsg)
	require.True(t, ok)
	require.Equal(t, "p2", msg.id)
}
