package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Main        lipgloss.Style
	Dim         lipgloss.Style
	Field       lipgloss.Style
	FieldActive lipgloss.Style
	Param       lipgloss.Style
	Focused     lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Main:        lipgloss.NewStyle().Padding(padY, padX),
		Dim:         lipgloss.NewStyle().Faint(true),
		Field:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FieldActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Param:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
