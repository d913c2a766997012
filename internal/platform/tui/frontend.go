package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breaking-the-block/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in the terminal.
type Frontend struct{}

// ID returns the command line identifier.
func (Frontend) ID() string { return "tui" }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run starts the Bubble Tea program and blocks until the player quits.
func (Frontend) Run(s registry.Session) error {
	p := tea.NewProgram(
		NewModel(s),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
