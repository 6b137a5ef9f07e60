// Package tui is the terminal presentation of a gallery: it renders each
// counter's label, value and triggers, and forwards key presses as actions.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	Accent      = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#6b7280")
	Foreground  = lipgloss.Color("#e5e7eb")
	Destructive = lipgloss.Color("#e53935")
	Border      = lipgloss.Color("#2a3850")
)

// Styles holds every style the model renders with.
type Styles struct {
	Header  lipgloss.Style
	Section lipgloss.Style
	Kind    lipgloss.Style
	Row     lipgloss.Style
	Focused lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			MarginBottom(1),

		Section: lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Border),

		Kind: lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true),

		Row: lipgloss.NewStyle().
			Foreground(Foreground).
			PaddingLeft(2),

		Focused: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			PaddingLeft(2),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true).
			MarginTop(1),
	}
}
