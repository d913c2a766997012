package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breaking-the-block/internal/config"
	"github.com/vovakirdan/breaking-the-block/internal/registry"
)

// MenuKeyMap defines the key bindings for the setup menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Back:   key.NewBinding(key.WithKeys("esc")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

type menuStep int

const (
	stepFrontend menuStep = iota
	stepDifficulty
)

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuSelection is what the player picked.
type MenuSelection struct {
	Frontend string
	Preset   config.DifficultyPreset
}

// MenuModel picks a frontend, then a difficulty preset.
type MenuModel struct {
	frontends []registry.FrontendInfo
	step      menuStep
	cursor    int
	width     int
	height    int
	keys      MenuKeyMap
	theme     Theme
	selection MenuSelection
	done      bool
	quitting  bool
}

// NewMenuModel creates a menu over the given frontends.
func NewMenuModel(frontends []registry.FrontendInfo, width, height int) MenuModel {
	return MenuModel{
		frontends: frontends,
		width:     width,
		height:    height,
		keys:      DefaultMenuKeyMap(),
		theme:     DefaultTheme(),
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) options() int {
	if m.step == stepFrontend {
		return len(m.frontends)
	}
	return len(presets)
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.options()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Back):
		if m.step == stepFrontend {
			m.quitting = true
			return m, tea.Quit
		}
		m.step = stepFrontend
		m.cursor = 0

	case key.Matches(msg, m.keys.Select):
		if m.options() == 0 {
			return m, nil
		}
		if m.step == stepFrontend {
			m.selection.Frontend = m.frontends[m.cursor].ID
			m.step = stepDifficulty
			m.cursor = 1 // normal
			return m, nil
		}
		m.selection.Preset = presets[m.cursor]
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current step.
func (m MenuModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var (
		prompt string
		lines  []string
	)
	if m.step == stepFrontend {
		prompt = "Where do you want to play?"
		for _, f := range m.frontends {
			lines = append(lines, f.Title)
		}
	} else {
		prompt = "Select difficulty:"
		for _, p := range presets {
			lines = append(lines, string(p))
		}
	}

	var b strings.Builder
	b.WriteString(m.theme.Banner.Render("B R E A K I N G   T H E   B L O C K"))
	b.WriteString("\n\n")
	b.WriteString(prompt)
	b.WriteString("\n\n")
	for i, line := range lines {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, line))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the selection, or nil if the player quit.
func (m MenuModel) Selected() *MenuSelection {
	if !m.done {
		return nil
	}
	sel := m.selection
	return &sel
}

// RunMenu shows the setup menu and returns the selection, or nil if the
// player quit.
func RunMenu(width, height int) (*MenuSelection, error) {
	p := tea.NewProgram(
		NewMenuModel(registry.List(), width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
