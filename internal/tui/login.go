package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keelson/sitedesk/internal/client"
)

type loginMode int

const (
	modeSignIn loginMode = iota
	modeSignUp
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldFullName
)

// loginModel is the sign-in/sign-up panel shown whenever the app is
// unauthenticated.
type loginModel struct {
	client *client.Client

	mode   loginMode
	inputs []textinput.Model
	focus  int
	busy   bool
	status string
	failed bool
}

func newLoginModel(c *client.Client) loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	fullName := textinput.New()
	fullName.Placeholder = "full name"

	return loginModel{
		client: c,
		inputs: []textinput.Model{email, password, fullName},
	}
}

// fieldCount is how many inputs the current mode shows.
func (m loginModel) fieldCount() int {
	if m.mode == modeSignUp {
		return 3
	}
	return 2
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % m.fieldCount())
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + m.fieldCount() - 1) % m.fieldCount())
			return m, nil
		case "ctrl+t":
			// Toggle between sign-in and sign-up.
			if m.mode == modeSignIn {
				m.mode = modeSignUp
			} else {
				m.mode = modeSignIn
			}
			m.status = ""
			m.failed = false
			m.setFocus(0)
			return m, nil
		case "enter":
			return m.submit()
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd

	case loginResultMsg:
		m.busy = false
		if msg.err != nil {
			m.status = submitFailureMessage(msg.err)
			m.failed = true
		}
		return m, nil

	case registerResultMsg:
		m.busy = false
		if msg.err != nil {
			m.status = submitFailureMessage(msg.err)
			m.failed = true
			return m, nil
		}
		// Back to sign-in with the password cleared; email stays put.
		m.mode = modeSignIn
		m.inputs[loginFieldPassword].SetValue("")
		m.status = "Account created. Sign in to continue."
		m.failed = false
		m.setFocus(0)
		return m, nil
	}

	return m, nil
}

func (m *loginModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	email := strings.TrimSpace(m.inputs[loginFieldEmail].Value())
	password := m.inputs[loginFieldPassword].Value()

	if m.mode == modeSignUp {
		fullName := strings.TrimSpace(m.inputs[loginFieldFullName].Value())
		m.busy = true
		m.status = ""
		return m, registerCmd(m.client, email, password, fullName)
	}

	m.busy = true
	m.status = ""
	return m, loginCmd(m.client, email, password)
}

// submitFailureMessage prefers the server's error string, falling back
// to a generic prompt.
func submitFailureMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Request failed. Please try again."
}

func (m loginModel) View() string {
	var b strings.Builder

	if m.mode == modeSignUp {
		b.WriteString(titleStyle.Render("Create account"))
	} else {
		b.WriteString(titleStyle.Render("Sign in"))
	}
	b.WriteString("\n\n")

	for i := 0; i < m.fieldCount(); i++ {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString("\n" + dimStyle.Render("Working..."))
	}
	if m.status != "" {
		style := okStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status))
	}

	b.WriteString("\n\n" + dimStyle.Render(fmt.Sprintf("enter submit • ctrl+t %s • ctrl+c quit", toggleHint(m.mode))))
	return b.String()
}

func toggleHint(mode loginMode) string {
	if mode == modeSignIn {
		return "create account"
	}
	return "back to sign in"
}
