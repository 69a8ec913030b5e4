package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keelson/sitedesk/internal/client"
	"github.com/keelson/sitedesk/internal/domain/project"
	"github.com/keelson/sitedesk/internal/store"
)

// selectProjectMsg promotes a project to the root controller's
// selection, switching the main view to the detail panel.
type selectProjectMsg struct {
	id string
}

// projectState is the shared project collection: the dashboard, the
// projects panel, and the detail panel all read from it. version bumps
// on every change so filtered views know when to recompute.
type projectState struct {
	fetcher client.Fetcher[project.Project]
	cache   *store.Collection[project.Project]
	version int
}

func newProjectState() *projectState {
	return &projectState{
		cache: store.NewCollection(func(p project.Project) string { return p.ID }),
	}
}

func (s *projectState) setAll(items []project.Project) {
	s.cache.Set(items)
	s.version++
}

func (s *projectState) insert(p project.Project) {
	s.cache.Insert(p)
	s.version++
}

func (s *projectState) replace(p project.Project) {
	s.cache.Replace(p)
	s.version++
}

func (s *projectState) remove(id string) {
	s.cache.Remove(id)
	s.version++
}

func (s *projectState) reset() {
	s.fetcher.Reset()
	s.cache.Set(nil)
	s.version++
}

// statusFilters cycles "all" plus each project status.
var statusFilters = func() []string {
	out := []string{"all"}
	for _, st := range project.Statuses {
		out = append(out, string(st))
	}
	return out
}()

// projectsPanel lists, filters, and edits the project collection.
type projectsPanel struct {
	client *client.Client
	state  *projectState

	search    textinput.Model
	statusIdx int
	searching bool

	// filtered is recomputed only when the collection, search text, or
	// status filter changes.
	filtered     []project.Project
	memoVersion  int
	memoSearch   string
	memoStatus   string
	memoValid    bool

	cursor    int
	mode      panelMode
	editingID string
	inputs    []textinput.Model
	statusSel int
	focus     int
	busy      bool
	alert     string
}

// Project form fields, in display order.
const (
	projFieldName = iota
	projFieldDescription
	projFieldLocation
	projFieldBudget
	projFieldStatus // rendered as a selector, not a text input
	projFieldProgress
	projFieldCount
)

var projectFieldMeta = []struct {
	key         string
	placeholder string
}{
	{"name", "name"},
	{"description", "description"},
	{"location", "location"},
	{"budget", "budget"},
	{"status", "status"},
	{"progress", "progress"},
}

func newProjectsPanel(c *client.Client, state *projectState) *projectsPanel {
	search := textinput.New()
	search.Placeholder = "search name or location"
	return &projectsPanel{client: c, state: state, search: search}
}

// Activate starts the shared project fetch when needed.
func (p *projectsPanel) Activate() tea.Cmd {
	if !p.state.fetcher.Start("projects") {
		return nil
	}
	return loadProjectsCmd(p.client)
}

func (p *projectsPanel) Reset() {
	p.mode = panelList
	p.cursor = 0
	p.alert = ""
	p.busy = false
	p.searching = false
	p.search.SetValue("")
	p.statusIdx = 0
	p.memoValid = false
}

// Capturing reports whether the panel owns raw text input.
func (p *projectsPanel) Capturing() bool {
	return p.mode == panelForm || p.searching
}

// visible returns the filtered project list, recomputing only when the
// source collection, the search text, or the status filter changed.
func (p *projectsPanel) visible() []project.Project {
	search := strings.ToLower(strings.TrimSpace(p.search.Value()))
	status := statusFilters[p.statusIdx]
	if p.memoValid && p.memoVersion == p.state.version &&
		p.memoSearch == search && p.memoStatus == status {
		return p.filtered
	}

	out := []project.Project{}
	for _, proj := range p.state.cache.Items() {
		if search != "" &&
			!strings.Contains(strings.ToLower(proj.Name), search) &&
			!strings.Contains(strings.ToLower(proj.Location), search) {
			continue
		}
		if status != "all" && string(proj.Status) != status {
			continue
		}
		out = append(out, proj)
	}

	p.filtered = out
	p.memoVersion = p.state.version
	p.memoSearch = search
	p.memoStatus = status
	p.memoValid = true
	return out
}

func (p *projectsPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)

	case itemSavedMsg:
		if msg.endpoint != "projects" {
			return nil
		}
		p.busy = false
		if msg.err != nil {
			p.alert = mutationFailureMessage(msg.err)
			return nil
		}
		proj, ok := msg.item.(project.Project)
		if !ok {
			return nil
		}
		if msg.created {
			p.state.insert(proj)
		} else {
			p.state.replace(proj)
		}
		p.mode = panelList
		p.alert = ""
		p.editingID = ""
		return nil

	case itemDeletedMsg:
		if msg.endpoint != "projects" {
			return nil
		}
		p.busy = false
		if msg.err != nil {
			p.alert = mutationFailureMessage(msg.err)
			p.mode = panelList
			return nil
		}
		p.state.remove(msg.id)
		if p.cursor >= len(p.visible()) && p.cursor > 0 {
			p.cursor--
		}
		p.mode = panelList
		return nil
	}

	return nil
}

func (p *projectsPanel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.busy {
		return nil
	}

	switch p.mode {
	case panelConfirm:
		switch msg.String() {
		case "y", "enter":
			if proj, ok := p.selected(); ok {
				p.busy = true
				return deleteItemCmd(p.client, "projects", proj.ID)
			}
			p.mode = panelList
		case "n", "esc":
			p.mode = panelList
		}
		return nil

	case panelForm:
		return p.handleFormKey(msg)
	}

	if p.searching {
		switch msg.String() {
		case "enter", "esc":
			p.searching = false
			p.search.Blur()
		default:
			var cmd tea.Cmd
			p.search, cmd = p.search.Update(msg)
			p.cursor = 0
			return cmd
		}
		return nil
	}

	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.visible())-1 {
			p.cursor++
		}
	case "/":
		p.searching = true
		return p.search.Focus()
	case "s":
		p.statusIdx = (p.statusIdx + 1) % len(statusFilters)
		p.cursor = 0
	case "n":
		p.openForm(nil)
	case "e":
		if proj, ok := p.selected(); ok {
			p.openForm(&proj)
		}
	case "d":
		if _, ok := p.selected(); ok {
			p.mode = panelConfirm
		}
	case "v", "enter":
		if proj, ok := p.selected(); ok {
			return func() tea.Msg { return selectProjectMsg{id: proj.ID} }
		}
	}
	return nil
}

func (p *projectsPanel) selected() (project.Project, bool) {
	items := p.visible()
	if p.cursor < 0 || p.cursor >= len(items) {
		return project.Project{}, false
	}
	return items[p.cursor], true
}

func (p *projectsPanel) openForm(proj *project.Project) {
	p.alert = ""
	p.editingID = ""
	p.statusSel = 0

	p.inputs = make([]textinput.Model, projFieldCount)
	for i, meta := range projectFieldMeta {
		if i == projFieldStatus {
			continue
		}
		ti := textinput.New()
		ti.Placeholder = meta.placeholder
		p.inputs[i] = ti
	}

	if proj != nil {
		p.editingID = proj.ID
		p.inputs[projFieldName].SetValue(proj.Name)
		p.inputs[projFieldDescription].SetValue(proj.Description)
		p.inputs[projFieldLocation].SetValue(proj.Location)
		p.inputs[projFieldBudget].SetValue(strconv.FormatFloat(proj.Budget, 'f', -1, 64))
		p.inputs[projFieldProgress].SetValue(strconv.Itoa(proj.Progress))
		for i, st := range project.Statuses {
			if st == proj.Status {
				p.statusSel = i
			}
		}
	}

	p.mode = panelForm
	p.setFormFocus(0)
}

func (p *projectsPanel) setFormFocus(i int) {
	p.focus = i
	for j := range p.inputs {
		if j == projFieldStatus {
			continue
		}
		if j == i {
			p.inputs[j].Focus()
		} else {
			p.inputs[j].Blur()
		}
	}
}

func (p *projectsPanel) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.mode = panelList
		p.alert = ""
		p.editingID = ""
		return nil
	case "tab", "down":
		p.setFormFocus((p.focus + 1) % projFieldCount)
		return nil
	case "shift+tab", "up":
		p.setFormFocus((p.focus + projFieldCount - 1) % projFieldCount)
		return nil
	case "enter":
		return p.submitForm()
	case "left", "right":
		if p.focus == projFieldStatus {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			n := len(project.Statuses)
			p.statusSel = (p.statusSel + delta + n) % n
			return nil
		}
	}

	if p.focus != projFieldStatus {
		var cmd tea.Cmd
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
		return cmd
	}
	return nil
}

func (p *projectsPanel) submitForm() tea.Cmd {
	// Invalid numeric input is coerced to 0.
	budget, err := strconv.ParseFloat(strings.TrimSpace(p.inputs[projFieldBudget].Value()), 64)
	if err != nil {
		budget = 0
	}
	progress, err := strconv.Atoi(strings.TrimSpace(p.inputs[projFieldProgress].Value()))
	if err != nil {
		progress = 0
	}

	payload := map[string]any{
		"name":        p.inputs[projFieldName].Value(),
		"description": p.inputs[projFieldDescription].Value(),
		"location":    p.inputs[projFieldLocation].Value(),
		"budget":      budget,
		"status":      string(project.Statuses[p.statusSel]),
		"progress":    progress,
	}

	p.busy = true
	p.alert = ""
	if p.editingID != "" {
		return updateItemCmd[project.Project](p.client, "projects", p.editingID, payload)
	}
	return createItemCmd[project.Project](p.client, "projects", payload)
}

func (p *projectsPanel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Projects"))
	b.WriteString("\n\n")

	switch p.mode {
	case panelForm:
		b.WriteString(p.viewForm())
	case panelConfirm:
		if proj, ok := p.selected(); ok {
			b.WriteString(fmt.Sprintf("Delete %q? ", proj.Name))
			b.WriteString(dimStyle.Render("y confirm • n cancel"))
		}
	default:
		b.WriteString(p.viewList())
	}

	if p.alert != "" {
		b.WriteString("\n\n" + errorStyle.Render(p.alert))
	}
	return b.String()
}

func (p *projectsPanel) viewList() string {
	var b strings.Builder
	b.WriteString(p.search.View())
	b.WriteString("   " + dimStyle.Render("status: ") + badgeStyle.Render(statusFilters[p.statusIdx]))
	b.WriteString("\n\n")

	if p.state.fetcher.Loading() {
		b.WriteString(dimStyle.Render("Loading projects..."))
		return b.String()
	}
	if msg := p.state.fetcher.Err(); msg != "" {
		b.WriteString(errorStyle.Render(msg))
		return b.String()
	}

	items := p.visible()
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("No projects match."))
		b.WriteString("\n\n" + dimStyle.Render("n new • / search • s status filter"))
		return b.String()
	}

	for i, proj := range items {
		prefix := "  "
		line := fmt.Sprintf("%-28s %-12s %s  %3d%%",
			proj.Name, badgeStyle.Render(string(proj.Status)), formatMoney(proj.Budget), proj.Progress)
		if i == p.cursor {
			prefix = selectedStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("v details • n new • e edit • d delete • / search • s status filter"))
	return b.String()
}

func (p *projectsPanel) viewForm() string {
	var b strings.Builder
	for i := range projectFieldMeta {
		if i == projFieldStatus {
			line := "status: ◀ " + string(project.Statuses[p.statusSel]) + " ▶"
			if p.focus == projFieldStatus {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
			continue
		}
		b.WriteString(p.inputs[i].View() + "\n")
	}

	if p.busy {
		b.WriteString("\n" + dimStyle.Render("Saving..."))
	}
	b.WriteString("\n" + dimStyle.Render("enter save • tab next • esc cancel"))
	return b.String()
}
