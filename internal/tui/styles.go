package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#E8590C")
	colorMuted   = lipgloss.Color("#868E96")
	colorError   = lipgloss.Color("#E03131")
	colorSuccess = lipgloss.Color("#2F9E44")
)

// Styles holds the lipgloss styles shared by all pages.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Label    lipgloss.Style

	Item     lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Column   lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Label:    lipgloss.NewStyle().Bold(true).Width(10),

		Item:     lipgloss.NewStyle().PaddingLeft(2),
		Cursor:   lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(colorSuccess),
		Column:   lipgloss.NewStyle().Width(24).MarginRight(2),

		Button:        lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(colorMuted),
		ButtonFocused: lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(colorPrimary).Bold(true),

		Error:   lipgloss.NewStyle().Foreground(colorError),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Help:    lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
	}
}
