package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/keelson/sitedesk/internal/domain/bid"
	"github.com/keelson/sitedesk/internal/domain/changeorder"
	"github.com/keelson/sitedesk/internal/domain/inspection"
	"github.com/keelson/sitedesk/internal/domain/project"
)

func TestDetailSummaryVarianceCue(t *testing.T) {
	under := project.Project{ID: "p1", Name: "Under", Budget: 1000, ActualCost: 400}
	over := project.Project{ID: "p2", Name: "Over", Budget: 1000, ActualCost: 1600}
	d := newDetailPanel(loadedState(under, over))

	require.Contains(t, d.View("p1"), "under budget")
	require.Contains(t, d.View("p2"), "over budget")
}

func TestDetailUnknownProjectShowsLoading(t *testing.T) {
	d := newDetailPanel(loadedState())
	require.Contains(t, d.View("nope"), "Loading project details...")
}

func TestDetailTabNavigationAndBack(t *testing.T) {
	proj := project.Project{
		ID: "p1", Name: "Tabbed",
		Bids:         []bid.Bid{{ID: "b1", Title: "Concrete Work", Status: "awarded", Amount: 50_000}},
		ChangeOrders: []changeorder.ChangeOrder{{ID: "c1", Title: "Scope Cut", Status: "rejected", Amount: -5_000}},
		Inspections:  []inspection.Inspection{{ID: "i1", Title: "Framing", Status: "completed", Notes: "Passed"}},
	}
	d := newDetailPanel(loadedState(proj))

	d.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Contains(t, d.View("p1"), "No documents for this project.")

	d.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Contains(t, d.View("p1"), "Concrete Work")

	d.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Contains(t, d.View("p1"), "Scope Cut")

	d.Update(tea.KeyMsg{Type: tea.KeyRight})
	view := d.View("p1")
	require.Contains(t, view, "Framing")
	require.Contains(t, view, "Passed")

	cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(backMsg)
	require.True(t, ok, "esc hands control back")
	require.Equal(t, tabSummary, d.tab, "tab resets for the next visit")
}
