package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles used around the playfield.
type Theme struct {
	Status lipgloss.Style
	Banner lipgloss.Style
	Help   lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
