// Package tui is the terminal dashboard over the sitedesk API.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/keelson/sitedesk/internal/client"
	"github.com/keelson/sitedesk/internal/domain/bid"
	"github.com/keelson/sitedesk/internal/domain/changeorder"
	"github.com/keelson/sitedesk/internal/domain/document"
	"github.com/keelson/sitedesk/internal/domain/inspection"
	"github.com/keelson/sitedesk/internal/domain/project"
)

// sectionPanel is a navigable resource view.
type sectionPanel interface {
	Activate() tea.Cmd
	Reset()
	SetProjects([]project.Project)
	Update(msg tea.Msg) tea.Cmd
	View() string
	Capturing() bool
}

// Model is the root controller: it decides between the login panel, the
// section views, and the project detail view.
type Model struct {
	client *client.Client

	authenticated     bool
	section           Section
	selectedProjectID string

	login     loginModel
	state     *projectState
	projects  *projectsPanel
	dashboard *dashboardPanel
	detail    *detailPanel
	panels    map[Section]sectionPanel

	width  int
	height int
}

// NewModel builds the root model. Authentication starts from whether a
// session token is already present.
func NewModel(c *client.Client) Model {
	state := newProjectState()

	return Model{
		client:        c,
		authenticated: c.Authenticated(),
		section:       SectionDashboard,
		login:         newLoginModel(c),
		state:         state,
		projects:      newProjectsPanel(c, state),
		dashboard:     newDashboardPanel(state),
		detail:        newDetailPanel(state),
		panels: map[Section]sectionPanel{
			SectionDocuments:    newDocumentsPanel(c),
			SectionBids:         newBidsPanel(c),
			SectionChangeOrders: newChangeOrdersPanel(c),
			SectionInspections:  newInspectionsPanel(c),
		},
	}
}

func (m Model) Init() tea.Cmd {
	if !m.authenticated {
		// No network calls happen while unauthenticated.
		return nil
	}
	return m.activateSection(m.section)
}

// activateSection kicks off whatever fetches the section needs. The
// project collection backs the dashboard, projects, and detail views
// and also feeds the project selectors of the sub-resource panels.
func (m Model) activateSection(s Section) tea.Cmd {
	cmds := []tea.Cmd{m.projects.Activate()}
	if panel, ok := m.panels[s]; ok {
		cmds = append(cmds, panel.Activate())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.authenticated {
			var cmd tea.Cmd
			m.login, cmd = m.login.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case loginResultMsg:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		if msg.err == nil {
			m.authenticated = true
			return m, tea.Batch(cmd, m.activateSection(m.section))
		}
		return m, cmd

	case registerResultMsg:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd

	case selectProjectMsg:
		m.selectedProjectID = msg.id
		return m, nil

	case backMsg:
		m.selectedProjectID = ""
		return m, nil

	case listLoadedMsg:
		if msg.endpoint == "projects" {
			if msg.err != nil {
				m.state.fetcher.Fail(msg.endpoint, msg.err)
				return m, nil
			}
			items, _ := msg.items.([]project.Project)
			m.state.fetcher.Succeed(msg.endpoint, items)
			m.state.setAll(m.state.fetcher.Items())
			m.shareProjects()
			return m, nil
		}
		return m, m.routeToPanels(msg)

	case itemSavedMsg, itemDeletedMsg:
		var cmd tea.Cmd
		if endpointOf(msg) == "projects" {
			cmd = m.projects.Update(msg)
			m.shareProjects()
			return m, cmd
		}
		return m, m.routeToPanels(msg)
	}

	return m, nil
}

func endpointOf(msg tea.Msg) string {
	switch msg := msg.(type) {
	case itemSavedMsg:
		return msg.endpoint
	case itemDeletedMsg:
		return msg.endpoint
	}
	return ""
}

// shareProjects pushes the current project collection into the panels
// that render a project selector.
func (m Model) shareProjects() {
	items := m.state.cache.Items()
	for _, panel := range m.panels {
		panel.SetProjects(items)
	}
}

func (m Model) routeToPanels(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.panels))
	for _, panel := range m.panels {
		if cmd := panel.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Section hotkeys work everywhere text input isn't active, and
	// switching sections drops any project selection.
	if !m.capturing() {
		switch msg.String() {
		case "1", "2", "3", "4", "5", "6":
			idx := int(msg.String()[0] - '1')
			return m.switchSection(Sections[idx])
		case "ctrl+o":
			return m.logout()
		}
	}

	// A selected project takes rendering priority over the section, so
	// remaining keys go to the detail view until it hands control back.
	if m.selectedProjectID != "" {
		return m, m.detail.Update(msg)
	}

	switch m.section {
	case SectionDashboard:
		return m, nil
	case SectionProjects:
		return m, m.projects.Update(msg)
	default:
		if panel, ok := m.panels[m.section]; ok {
			return m, panel.Update(msg)
		}
	}
	return m, nil
}

// capturing reports whether the active view owns raw text input, in
// which case section hotkeys stay out of the way.
func (m Model) capturing() bool {
	switch m.section {
	case SectionProjects:
		return m.projects.Capturing()
	case SectionDashboard:
		return false
	default:
		if panel, ok := m.panels[m.section]; ok {
			return panel.Capturing()
		}
	}
	return false
}

func (m Model) switchSection(s Section) (tea.Model, tea.Cmd) {
	m.section = s
	m.selectedProjectID = ""
	return m, m.activateSection(s)
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	_ = m.client.Logout()
	m.authenticated = false
	m.selectedProjectID = ""
	m.section = SectionDashboard
	m.state.reset()
	m.projects.Reset()
	for _, panel := range m.panels {
		panel.Reset()
	}
	m.login = newLoginModel(m.client)
	return m, nil
}

func (m Model) View() string {
	// Unauthenticated always renders the login panel, whatever the
	// rest of the state says.
	if !m.authenticated {
		return "\n" + m.login.View() + "\n"
	}

	var body string
	if m.selectedProjectID != "" {
		body = m.detail.View(m.selectedProjectID)
	} else {
		switch m.section {
		case SectionDashboard:
			body = m.dashboard.View()
		case SectionProjects:
			body = m.projects.View()
		default:
			if panel, ok := m.panels[m.section]; ok {
				body = panel.View()
			}
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewNav(), "", body, "", m.viewFooter())
}

func (m Model) viewNav() string {
	entries := make([]string, len(Sections))
	for i, s := range Sections {
		label := fmt.Sprintf("%d %s", i+1, s.Title())
		if s == m.section && m.selectedProjectID == "" {
			entries[i] = navActiveStyle.Render(label)
		} else {
			entries[i] = navStyle.Render(label)
		}
	}
	return strings.Join(entries, "   ")
}

func (m Model) viewFooter() string {
	return dimStyle.Render("1-6 sections • ctrl+o sign out • ctrl+c quit")
}

// newDocumentsPanel, newBidsPanel, newChangeOrdersPanel, and
// newInspectionsPanel bind the generic CRUD panel to each sub-resource.

func newDocumentsPanel(c *client.Client) *Panel[document.Document] {
	return NewPanel(c, PanelConfig[document.Document]{
		Title:         "Documents",
		Endpoint:      "documents",
		ProjectScoped: true,
		Fields: []Field{
			{Key: "name", Placeholder: "name"},
			{Key: "type", Placeholder: "type", Kind: FieldSelect,
				Options: []string{"drawing", "specification", "photo", "other"}},
		},
		ID:     func(d document.Document) string { return d.ID },
		Label:  func(d document.Document) string { return d.Name },
		Status: func(d document.Document) string { return d.Type },
		Amount: func(document.Document) (float64, bool) { return 0, false },
		Form: func(d document.Document) map[string]string {
			return map[string]string{"name": d.Name, "type": d.Type}
		},
	})
}

func newBidsPanel(c *client.Client) *Panel[bid.Bid] {
	return NewPanel(c, PanelConfig[bid.Bid]{
		Title:         "Bids",
		Endpoint:      "bids",
		ProjectScoped: true,
		Fields: []Field{
			{Key: "title", Placeholder: "title"},
			{Key: "amount", Placeholder: "amount", Kind: FieldNumber},
			{Key: "status", Placeholder: "status", Kind: FieldSelect,
				Options: []string{"draft", "sent", "received", "awarded"}},
		},
		ID:     func(b bid.Bid) string { return b.ID },
		Label:  func(b bid.Bid) string { return b.Title },
		Status: func(b bid.Bid) string { return b.Status },
		Amount: func(b bid.Bid) (float64, bool) { return b.Amount, true },
		Form: func(b bid.Bid) map[string]string {
			return map[string]string{
				"title":  b.Title,
				"amount": trimFloat(b.Amount),
				"status": b.Status,
			}
		},
	})
}

func newChangeOrdersPanel(c *client.Client) *Panel[changeorder.ChangeOrder] {
	return NewPanel(c, PanelConfig[changeorder.ChangeOrder]{
		Title:         "Change Orders",
		Endpoint:      "change_orders",
		ProjectScoped: true,
		Fields: []Field{
			{Key: "title", Placeholder: "title"},
			{Key: "amount", Placeholder: "amount", Kind: FieldNumber},
			{Key: "status", Placeholder: "status", Kind: FieldSelect,
				Options: []string{"pending", "approved", "rejected"}},
		},
		ID:     func(co changeorder.ChangeOrder) string { return co.ID },
		Label:  func(co changeorder.ChangeOrder) string { return co.Title },
		Status: func(co changeorder.ChangeOrder) string { return co.Status },
		Amount: func(co changeorder.ChangeOrder) (float64, bool) { return co.Amount, true },
		Form: func(co changeorder.ChangeOrder) map[string]string {
			return map[string]string{
				"title":  co.Title,
				"amount": trimFloat(co.Amount),
				"status": co.Status,
			}
		},
	})
}

func newInspectionsPanel(c *client.Client) *Panel[inspection.Inspection] {
	return NewPanel(c, PanelConfig[inspection.Inspection]{
		Title:         "Inspections",
		Endpoint:      "inspections",
		ProjectScoped: true,
		Fields: []Field{
			{Key: "title", Placeholder: "title"},
			{Key: "status", Placeholder: "status", Kind: FieldSelect,
				Options: []string{"pending", "completed", "failed"}},
			{Key: "notes", Placeholder: "notes"},
		},
		ID:     func(i inspection.Inspection) string { return i.ID },
		Label:  func(i inspection.Inspection) string { return i.Title },
		Status: func(i inspection.Inspection) string { return i.Status },
		Amount: func(inspection.Inspection) (float64, bool) { return 0, false },
		Form: func(i inspection.Inspection) map[string]string {
			return map[string]string{"title": i.Title, "status": i.Status, "notes": i.Notes}
		},
	})
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
