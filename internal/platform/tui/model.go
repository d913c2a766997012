package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breaking-the-block/internal/assets"
	"github.com/vovakirdan/breaking-the-block/internal/core"
	"github.com/vovakirdan/breaking-the-block/internal/games/breakout"
	"github.com/vovakirdan/breaking-the-block/internal/registry"
)

// Rows below the playfield: status line and help line.
const chromeRows = 2

// nudgeSteps is how many arrow presses cross the whole world.
const nudgeSteps = 40

// Model is the Bubble Tea model hosting one engine.
type Model struct {
	engine   *breakout.Engine
	runtime  core.RuntimeConfig
	logger   *log.Logger
	screen   *core.Screen
	view     Viewport
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	theme    Theme

	input    core.InputFrame
	pointerX float64
	lastTick time.Time
	state    core.GameState
	tint     core.Color
	width    int
	height   int
	paused   bool
	quitting bool
}

// NewModel creates a model for the session. The terminal size in
// s.Runtime is used until the first resize message arrives.
func NewModel(s registry.Session) Model {
	if s.Runtime.TickRate <= 0 {
		s.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}

	m := Model{
		engine:   s.Engine,
		runtime:  s.Runtime,
		logger:   s.Logger,
		screen:   core.NewScreen(0, 0),
		renderer: NewRenderer(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		theme:    DefaultTheme(),
		input:    core.NewInputFrame(),
		pointerX: s.Engine.Paddle().CenterX(),
		state:    s.Engine.State(),
		tint:     assets.AverageColor(s.Engine.BallImage()),
	}
	m.resize(s.Runtime.ScreenW, s.Runtime.ScreenH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused)
	case core.ActionLaunch:
		m.input.Set(core.ActionLaunch)
	case core.ActionLeft:
		m.nudge(-1)
	case core.ActionRight:
		m.nudge(1)
	}
	return m, nil
}

// nudge moves the pointer by one keyboard step for terminals without mouse reporting.
func (m *Model) nudge(dir float64) {
	w := m.engine.Width()
	m.pointerX = core.ClampF(m.pointerX+dir*w/nudgeSteps, 0, w)
	m.input.Point(m.pointerX)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.view.Cols <= 0 || m.view.Rows <= 0 {
		return m, nil
	}
	m.pointerX = core.ClampF(m.view.WorldX(msg.X), 0, m.engine.Width())
	m.input.Point(m.pointerX)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y < m.view.Rows {
		m.input.Click(m.pointerX, m.view.WorldY(msg.Y))
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	rows := max(height-chromeRows, 1)
	cols := max(width, 1)
	m.screen.Resize(cols, rows)
	m.view = Viewport{
		Cols:   cols,
		Rows:   rows,
		WorldW: m.engine.Width(),
		WorldH: m.engine.Height(),
	}
	m.help.Width = width
}

// handleTick steps the engine with the wall-clock time since the last
// tick. The first tick, and the first after a pause, uses one nominal frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.runtime.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}

	if m.paused {
		m.lastTick = time.Time{}
		m.input.Clear()
		m.state.Paused = true
		return m, tickCmd(m.runtime.TickRate)
	}
	m.lastTick = now

	res := m.engine.Step(dt, m.input)
	m.state = res.State
	m.input.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

// statusText describes what the player should do next.
func (m Model) statusText() string {
	switch {
	case m.paused:
		return "Paused"
	case m.state.Won:
		return fmt.Sprintf("YOU WIN!  balloons %d", m.state.Balloons)
	case !m.engine.Ball().Launched:
		return fmt.Sprintf("Press SPACE to launch  bricks %d", m.state.BricksLeft)
	default:
		return fmt.Sprintf("bricks %d  tornadoes %d", m.state.BricksLeft, m.state.Tornadoes)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	DrawWorld(m.screen, m.view, m.engine, m.tint)
	switch {
	case m.paused:
		DrawOverlay(m.screen, "PAUSED", "", "press p to resume")
	case m.state.Won:
		m.screen.DrawTextCentered(m.view.Rows/2, "YOU WIN!", core.ColorYellow)
	}
	playfield := m.renderer.Render(m.screen)

	status := m.theme.Status.Render(m.statusText())
	if m.state.Won {
		status = m.theme.Banner.Render(m.statusText())
	}
	return playfield + "\n" + status + "\n" + m.theme.Help.Render(m.help.View(m.keys))
}
