package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	Help        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	HighlightBg lipgloss.Style
	Department  lipgloss.Style
	Location    lipgloss.Style
	Loading     lipgloss.Style
	Error       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:   lipgloss.NewStyle().Faint(true),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		HighlightBg: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Bold(true),
		Department: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		Loading:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
