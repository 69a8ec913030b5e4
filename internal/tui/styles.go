package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))

	navStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	navActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4"))

	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475a")).
			Padding(0, 2)

	favorableStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	unfavorableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)
