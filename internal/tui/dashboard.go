package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keelson/sitedesk/internal/domain/project"
)

// dashboardPanel renders summary cards and charts derived from the
// project collection. It holds no state of its own; every View call
// rebuilds the charts from the current collection, so stale renders
// cannot accumulate.
type dashboardPanel struct {
	state *projectState
}

func newDashboardPanel(state *projectState) *dashboardPanel {
	return &dashboardPanel{state: state}
}

func (d *dashboardPanel) View() string {
	if d.state.fetcher.Loading() {
		return dimStyle.Render("Loading dashboard...")
	}
	if msg := d.state.fetcher.Err(); msg != "" {
		return errorStyle.Render(msg)
	}

	projects := d.state.cache.Items()

	var totalBudget, totalActual float64
	for _, p := range projects {
		totalBudget += p.Budget
		totalActual += p.ActualCost
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Projects", fmt.Sprintf("%d", len(projects))),
		metricCard("Total Budget", formatMillions(totalBudget)),
		metricCard("Actual Cost", formatMillions(totalActual)),
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(cards)
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Progress") + "\n")
	b.WriteString(progressChart(projects))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Projects by Status") + "\n")
	b.WriteString(statusChart(projects))
	return b.String()
}

func metricCard(label, value string) string {
	return cardStyle.Render(dimStyle.Render(label) + "\n" + titleStyle.Render(value))
}

// progressChart draws one bar per project on a fixed 0-100 axis.
func progressChart(projects []project.Project) string {
	if len(projects) == 0 {
		return dimStyle.Render("No projects yet.")
	}
	var b strings.Builder
	for _, p := range projects {
		b.WriteString(fmt.Sprintf("%-24s %s %3d%%\n", truncate(p.Name, 24), progressBar(p.Progress, 30), p.Progress))
	}
	return b.String()
}

// statusChart shows the share of projects per status. Projects with an
// unrecognized status land in an explicit Unknown bucket.
func statusChart(projects []project.Project) string {
	if len(projects) == 0 {
		return dimStyle.Render("No projects yet.")
	}

	counts := map[string]int{}
	for _, p := range projects {
		if p.Status.Valid() {
			counts[string(p.Status)]++
		} else {
			counts["Unknown"]++
		}
	}

	order := make([]string, 0, len(project.Statuses)+1)
	for _, st := range project.Statuses {
		order = append(order, string(st))
	}
	order = append(order, "Unknown")

	var b strings.Builder
	for _, status := range order {
		n := counts[status]
		if n == 0 {
			continue
		}
		share := n * 100 / len(projects)
		b.WriteString(fmt.Sprintf("%-12s %s %d (%d%%)\n", status, strings.Repeat("■", n), n, share))
	}
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
