package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keelson/sitedesk/internal/domain/project"
)

// backMsg returns control from the detail panel to the caller.
type backMsg struct{}

type detailTab int

const (
	tabSummary detailTab = iota
	tabDocuments
	tabBids
	tabChangeOrders
	tabInspections
)

var detailTabs = []string{"Summary", "Documents", "Bids", "Change Orders", "Inspections"}

// detailPanel is a read-mostly tabbed view over one already-loaded
// project. It never mutates data; esc hands control back.
type detailPanel struct {
	state *projectState
	tab   detailTab
}

func newDetailPanel(state *projectState) *detailPanel {
	return &detailPanel{state: state}
}

func (d *detailPanel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "esc", "b":
		d.tab = tabSummary
		return func() tea.Msg { return backMsg{} }
	case "left", "h":
		if d.tab > 0 {
			d.tab--
		}
	case "right", "l", "tab":
		if int(d.tab) < len(detailTabs)-1 {
			d.tab++
		}
	}
	return nil
}

func (d *detailPanel) View(selectedID string) string {
	proj, ok := d.state.cache.Find(selectedID)
	if !ok {
		// Selected but not yet in the cache: loading, never an error.
		return dimStyle.Render("Loading project details...")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(proj.Name))
	b.WriteString("\n")

	tabs := make([]string, len(detailTabs))
	for i, name := range detailTabs {
		if detailTab(i) == d.tab {
			tabs[i] = navActiveStyle.Render(name)
		} else {
			tabs[i] = navStyle.Render(name)
		}
	}
	b.WriteString(strings.Join(tabs, "  ") + "\n\n")

	switch d.tab {
	case tabDocuments:
		b.WriteString(viewDocumentRows(proj))
	case tabBids:
		b.WriteString(viewAmountRows(len(proj.Bids), "No bids for this project.", func(i int) (string, string, float64) {
			return proj.Bids[i].Title, proj.Bids[i].Status, proj.Bids[i].Amount
		}))
	case tabChangeOrders:
		b.WriteString(viewAmountRows(len(proj.ChangeOrders), "No change orders for this project.", func(i int) (string, string, float64) {
			return proj.ChangeOrders[i].Title, proj.ChangeOrders[i].Status, proj.ChangeOrders[i].Amount
		}))
	case tabInspections:
		b.WriteString(viewInspectionRows(proj))
	default:
		b.WriteString(viewSummary(proj))
	}

	b.WriteString("\n\n" + dimStyle.Render("←/→ tabs • esc back"))
	return b.String()
}

func viewSummary(proj project.Project) string {
	variance := proj.Variance()
	varianceText := formatMoney(variance)
	if variance >= 0 {
		varianceText = favorableStyle.Render(varianceText + " under budget")
	} else {
		varianceText = unfavorableStyle.Render(varianceText + " over budget")
	}

	rows := []string{
		fmt.Sprintf("%-12s %s", "Description", proj.Description),
		fmt.Sprintf("%-12s %s", "Location", proj.Location),
		fmt.Sprintf("%-12s %s", "Status", badgeStyle.Render(string(proj.Status))),
		fmt.Sprintf("%-12s %s", "Phase", proj.Phase),
		fmt.Sprintf("%-12s %s", "Budget", formatMoney(proj.Budget)),
		fmt.Sprintf("%-12s %s", "Actual cost", formatMoney(proj.ActualCost)),
		fmt.Sprintf("%-12s %s", "Variance", varianceText),
		fmt.Sprintf("%-12s %s %d%%", "Progress", progressBar(proj.Progress, 20), proj.Progress),
	}
	return strings.Join(rows, "\n")
}

func viewDocumentRows(proj project.Project) string {
	if len(proj.Documents) == 0 {
		return dimStyle.Render("No documents for this project.")
	}
	var b strings.Builder
	for _, doc := range proj.Documents {
		b.WriteString(fmt.Sprintf("%-32s %s\n", doc.Name, badgeStyle.Render(doc.Type)))
	}
	return b.String()
}

// viewAmountRows renders bid/change-order rows, coloring each by the
// sign of its amount.
func viewAmountRows(n int, empty string, row func(int) (title, status string, amount float64)) string {
	if n == 0 {
		return dimStyle.Render(empty)
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		title, status, amount := row(i)
		amountText := formatMoney(amount)
		if amount >= 0 {
			amountText = favorableStyle.Render(amountText)
		} else {
			amountText = unfavorableStyle.Render(amountText)
		}
		b.WriteString(fmt.Sprintf("%-32s %-12s %s\n", title, badgeStyle.Render(status), amountText))
	}
	return b.String()
}

func viewInspectionRows(proj project.Project) string {
	if len(proj.Inspections) == 0 {
		return dimStyle.Render("No inspections for this project.")
	}
	var b strings.Builder
	for _, insp := range proj.Inspections {
		line := fmt.Sprintf("%-32s %s", insp.Title, badgeStyle.Render(insp.Status))
		if insp.Notes != "" {
			line += "  " + dimStyle.Render(insp.Notes)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
