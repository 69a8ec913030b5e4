package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keelson/sitedesk/internal/client"
	"github.com/keelson/sitedesk/internal/domain/project"
	"github.com/keelson/sitedesk/internal/store"
)

// FieldKind selects how a form field collects its value.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldSelect
)

// Field describes one form input of a resource panel.
type Field struct {
	Key         string
	Placeholder string
	Kind        FieldKind
	Options     []string
}

type panelMode int

const (
	panelList panelMode = iota
	panelForm
	panelConfirm
)

// Panel is the generic CRUD view over one collection endpoint. It lists
// the cached rows, opens a form for create/edit, and asks for
// confirmation before a delete. Mutations touch only the local cache;
// nothing is refetched after a write.
type Panel[T any] struct {
	title    string
	endpoint string
	fields   []Field

	idOf     func(T) string
	labelOf  func(T) string
	statusOf func(T) string
	amountOf func(T) (float64, bool)
	formOf   func(T) map[string]string

	projectScoped bool
	projects      []project.Project

	client  *client.Client
	fetcher client.Fetcher[T]
	cache   *store.Collection[T]

	cursor     int
	mode       panelMode
	editingID  string
	inputs     []textinput.Model
	selectIdx  map[int]int
	projectIdx int
	focus      int
	busy       bool
	alert      string
}

// PanelConfig bundles the per-resource hooks for NewPanel.
type PanelConfig[T any] struct {
	Title         string
	Endpoint      string
	Fields        []Field
	ProjectScoped bool

	ID     func(T) string
	Label  func(T) string
	Status func(T) string            // "" means no badge
	Amount func(T) (float64, bool)   // false means no amount column
	Form   func(T) map[string]string // current values keyed by Field.Key
}

// NewPanel builds a CRUD panel for one resource.
func NewPanel[T any](c *client.Client, cfg PanelConfig[T]) *Panel[T] {
	return &Panel[T]{
		title:         cfg.Title,
		endpoint:      cfg.Endpoint,
		fields:        cfg.Fields,
		projectScoped: cfg.ProjectScoped,
		idOf:          cfg.ID,
		labelOf:       cfg.Label,
		statusOf:      cfg.Status,
		amountOf:      cfg.Amount,
		formOf:        cfg.Form,
		client:        c,
		cache:         store.NewCollection(cfg.ID),
		selectIdx:     map[int]int{},
	}
}

// Activate starts the collection fetch when this panel becomes visible.
// A panel that already fetched its endpoint does nothing.
func (p *Panel[T]) Activate() tea.Cmd {
	if !p.fetcher.Start(p.endpoint) {
		return nil
	}
	return loadListCmd[T](p.client, p.endpoint)
}

// Reset drops all cached state, used on logout.
func (p *Panel[T]) Reset() {
	p.fetcher.Reset()
	p.cache.Set(nil)
	p.mode = panelList
	p.cursor = 0
	p.alert = ""
	p.busy = false
}

// SetProjects provides the project collection for the project selector.
func (p *Panel[T]) SetProjects(projects []project.Project) {
	p.projects = projects
}

// Capturing reports whether the panel owns raw text input.
func (p *Panel[T]) Capturing() bool {
	return p.mode == panelForm
}

func (p *Panel[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)

	case listLoadedMsg:
		if msg.endpoint != p.endpoint {
			return nil
		}
		if msg.err != nil {
			p.fetcher.Fail(msg.endpoint, msg.err)
			return nil
		}
		items, _ := msg.items.([]T)
		p.fetcher.Succeed(msg.endpoint, items)
		p.cache.Set(p.fetcher.Items())
		return nil

	case itemSavedMsg:
		if msg.endpoint != p.endpoint {
			return nil
		}
		p.busy = false
		if msg.err != nil {
			// Form stays open so the user can fix and retry.
			p.alert = mutationFailureMessage(msg.err)
			return nil
		}
		item, ok := msg.item.(T)
		if !ok {
			return nil
		}
		if msg.created {
			p.cache.Insert(item)
		} else {
			p.cache.Replace(item)
		}
		p.closeForm()
		return nil

	case itemDeletedMsg:
		if msg.endpoint != p.endpoint {
			return nil
		}
		p.busy = false
		if msg.err != nil {
			p.alert = mutationFailureMessage(msg.err)
			p.mode = panelList
			return nil
		}
		p.cache.Remove(msg.id)
		if p.cursor >= p.cache.Len() && p.cursor > 0 {
			p.cursor--
		}
		p.mode = panelList
		return nil
	}

	return nil
}

func (p *Panel[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.busy {
		return nil
	}

	switch p.mode {
	case panelConfirm:
		switch msg.String() {
		case "y", "enter":
			if item, ok := p.selected(); ok {
				p.busy = true
				return deleteItemCmd(p.client, p.endpoint, p.idOf(item))
			}
			p.mode = panelList
		case "n", "esc":
			p.mode = panelList
		}
		return nil

	case panelForm:
		return p.handleFormKey(msg)
	}

	// List mode.
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < p.cache.Len()-1 {
			p.cursor++
		}
	case "n":
		p.openForm(nil)
	case "e", "enter":
		if item, ok := p.selected(); ok {
			p.openForm(&item)
		}
	case "d":
		if _, ok := p.selected(); ok {
			p.mode = panelConfirm
		}
	}
	return nil
}

func (p *Panel[T]) selected() (T, bool) {
	items := p.cache.Items()
	if p.cursor < 0 || p.cursor >= len(items) {
		var zero T
		return zero, false
	}
	return items[p.cursor], true
}

// formSlots is the number of focusable form entries: the project
// selector (create only) plus every field.
func (p *Panel[T]) formSlots() int {
	n := len(p.fields)
	if p.showsProjectSelector() {
		n++
	}
	return n
}

func (p *Panel[T]) showsProjectSelector() bool {
	return p.projectScoped && p.editingID == ""
}

// fieldAt maps a focus slot to a field index, or -1 for the selector.
func (p *Panel[T]) fieldAt(slot int) int {
	if p.showsProjectSelector() {
		return slot - 1
	}
	return slot
}

func (p *Panel[T]) openForm(item *T) {
	p.alert = ""
	p.editingID = ""
	p.projectIdx = 0
	p.selectIdx = map[int]int{}

	var current map[string]string
	if item != nil {
		p.editingID = p.idOf(*item)
		current = p.formOf(*item)
	}

	p.inputs = make([]textinput.Model, len(p.fields))
	for i, f := range p.fields {
		if f.Kind == FieldSelect {
			for j, opt := range f.Options {
				if current != nil && opt == current[f.Key] {
					p.selectIdx[i] = j
				}
			}
			continue
		}
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		if current != nil {
			ti.SetValue(current[f.Key])
		}
		p.inputs[i] = ti
	}

	p.mode = panelForm
	p.setFormFocus(0)
}

func (p *Panel[T]) closeForm() {
	p.mode = panelList
	p.alert = ""
	p.editingID = ""
}

func (p *Panel[T]) setFormFocus(slot int) {
	p.focus = slot
	for i, f := range p.fields {
		if f.Kind == FieldSelect {
			continue
		}
		if i == p.fieldAt(slot) {
			p.inputs[i].Focus()
		} else {
			p.inputs[i].Blur()
		}
	}
}

func (p *Panel[T]) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.closeForm()
		return nil
	case "tab", "down":
		p.setFormFocus((p.focus + 1) % p.formSlots())
		return nil
	case "shift+tab", "up":
		p.setFormFocus((p.focus + p.formSlots() - 1) % p.formSlots())
		return nil
	case "enter":
		return p.submitForm()
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		if p.showsProjectSelector() && p.focus == 0 {
			if n := len(p.projects); n > 0 {
				p.projectIdx = (p.projectIdx + delta + n) % n
			}
			return nil
		}
		if i := p.fieldAt(p.focus); i >= 0 && p.fields[i].Kind == FieldSelect {
			if n := len(p.fields[i].Options); n > 0 {
				p.selectIdx[i] = (p.selectIdx[i] + delta + n) % n
			}
			return nil
		}
	}

	if i := p.fieldAt(p.focus); i >= 0 && p.fields[i].Kind != FieldSelect {
		var cmd tea.Cmd
		p.inputs[i], cmd = p.inputs[i].Update(msg)
		return cmd
	}
	return nil
}

func (p *Panel[T]) submitForm() tea.Cmd {
	payload := map[string]any{}
	for i, f := range p.fields {
		switch f.Kind {
		case FieldNumber:
			// Invalid numeric input is coerced to 0.
			v, err := strconv.ParseFloat(strings.TrimSpace(p.inputs[i].Value()), 64)
			if err != nil {
				v = 0
			}
			payload[f.Key] = v
		case FieldSelect:
			if len(f.Options) > 0 {
				payload[f.Key] = f.Options[p.selectIdx[i]]
			}
		default:
			payload[f.Key] = p.inputs[i].Value()
		}
	}

	if p.editingID != "" {
		p.busy = true
		p.alert = ""
		return updateItemCmd[T](p.client, p.endpoint, p.editingID, payload)
	}

	if p.projectScoped {
		if len(p.projects) == 0 {
			p.alert = "Create a project first."
			return nil
		}
		payload["project_id"] = p.projects[p.projectIdx].ID
	}
	p.busy = true
	p.alert = ""
	return createItemCmd[T](p.client, p.endpoint, payload)
}

// mutationFailureMessage prefers the server's error string.
func mutationFailureMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Request failed. Please try again."
}

func (p *Panel[T]) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n\n")

	switch p.mode {
	case panelForm:
		b.WriteString(p.viewForm())
	case panelConfirm:
		if item, ok := p.selected(); ok {
			b.WriteString(fmt.Sprintf("Delete %q? ", p.labelOf(item)))
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

func (p *Panel[T]) viewList() string {
	if p.fetcher.Loading() {
		return dimStyle.Render("Loading " + strings.ToLower(p.title) + "...")
	}
	if msg := p.fetcher.Err(); msg != "" {
		return errorStyle.Render(msg)
	}
	items := p.cache.Items()
	if len(items) == 0 {
		return dimStyle.Render("No "+strings.ToLower(p.title)+" yet.") +
			"\n\n" + dimStyle.Render("n new")
	}

	var b strings.Builder
	for i, item := range items {
		prefix := "  "
		line := p.labelOf(item)
		if s := p.statusOf(item); s != "" {
			line += "  " + badgeStyle.Render("["+s+"]")
		}
		if amount, ok := p.amountOf(item); ok {
			line += "  " + formatMoney(amount)
		}
		if i == p.cursor {
			prefix = selectedStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("n new • e edit • d delete"))
	return b.String()
}

func (p *Panel[T]) viewForm() string {
	var b strings.Builder

	if p.showsProjectSelector() {
		label := "(no projects)"
		if len(p.projects) > 0 {
			label = p.projects[p.projectIdx].Name
		}
		line := "project: ◀ " + label + " ▶"
		if p.focus == 0 {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	for i, f := range p.fields {
		if f.Kind == FieldSelect {
			label := ""
			if len(f.Options) > 0 {
				label = f.Options[p.selectIdx[i]]
			}
			line := f.Placeholder + ": ◀ " + label + " ▶"
			if p.fieldAt(p.focus) == i {
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
