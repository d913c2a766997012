package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breaking-the-block/internal/config"
	"github.com/vovakirdan/breaking-the-block/internal/core"
	"github.com/vovakirdan/breaking-the-block/internal/games/breakout"
	"github.com/vovakirdan/breaking-the-block/internal/registry"
)

func newTestModel() Model {
	e := breakout.New(config.DefaultBreakoutConfig(), breakout.WithSeed(7))
	return NewModel(registry.Session{
		Engine:  e,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 32, TickRate: 60},
	})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionLaunch},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('l'), core.ActionRight},
		{runeKey('p'), core.ActionPause},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('?'), core.ActionNone},
		{runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestModelMouseMovesPaddle(t *testing.T) {
	m := newTestModel()
	m = update(t, m, tea.MouseMsg{X: 0, Y: 10, Action: tea.MouseActionMotion})
	m = update(t, m, TickMsg(time.Now()))

	if got := m.engine.Paddle().X; got != 0 {
		t.Errorf("paddle X after pointer at column 0 = %v, expected 0", got)
	}
}

func TestModelClickHitsBrick(t *testing.T) {
	m := newTestModel()
	// 30 playfield rows over 600 pixels: row 2 is y 40..60, center 50.
	m = update(t, m, tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Now()))

	if got := m.engine.BricksLeft(); got != 49 {
		t.Errorf("BricksLeft() after click = %d, expected 49", got)
	}
}

func TestModelLaunch(t *testing.T) {
	m := newTestModel()
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg(time.Now()))

	if !m.engine.Ball().Launched {
		t.Error("ball not launched after space")
	}
}

func TestModelKeyboardNudge(t *testing.T) {
	m := newTestModel()
	start := m.engine.Paddle().X
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg(time.Now()))

	if got := m.engine.Paddle().X; got != start+20 {
		t.Errorf("paddle X after nudge = %v, expected %v", got, start+20)
	}
}

func TestModelPauseStopsSimulation(t *testing.T) {
	m := newTestModel()
	m = update(t, m, runeKey('p'))
	before := m.engine.Snapshot().Tick

	now := time.Now()
	for i := range 5 {
		m = update(t, m, TickMsg(now.Add(time.Duration(i)*time.Second)))
	}
	if got := m.engine.Snapshot().Tick; got != before {
		t.Errorf("ticks while paused = %d, expected %d", got, before)
	}
	if m.statusText() != "Paused" {
		t.Errorf("statusText() = %q, expected %q", m.statusText(), "Paused")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg(now.Add(time.Hour)))
	if got := m.engine.Snapshot().Tick; got != before+1 {
		t.Errorf("ticks after resume = %d, expected %d", got, before+1)
	}
}

func TestNewModelDefaultTickRate(t *testing.T) {
	e := breakout.New(config.DefaultBreakoutConfig(), breakout.WithSeed(7))
	m := NewModel(registry.Session{
		Engine:  e,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 32},
	})

	if got, want := m.runtime.TickRate, core.DefaultConfig().TickRate; got != want {
		t.Errorf("runtime.TickRate = %d, expected %d", got, want)
	}
}

func TestModelPausedViewKeepsWorld(t *testing.T) {
	m := newTestModel()
	m = update(t, m, runeKey('p'))

	out := m.View()
	if !strings.Contains(out, "PAUSED") {
		t.Errorf("View() = %q, expected to contain %q", out, "PAUSED")
	}
	// Bricks stay visible around the box.
	if got := m.screen.Get(3, 2); got != BrickGlyph {
		t.Errorf("screen.Get(3, 2) = %q, expected %q", got, BrickGlyph)
	}
}

func TestModelWinBannerCentered(t *testing.T) {
	m := newTestModel()
	for _, b := range m.engine.Bricks() {
		m.engine.DebugHit(b.CenterX(), b.Y+b.H/2)
	}
	m = update(t, m, TickMsg(time.Now()))
	if !m.state.Won {
		t.Fatal("state.Won = false, expected true")
	}

	m.View()
	row := m.view.Rows / 2
	if got := string([]rune(m.screen.Row(row))[36:44]); got != "YOU WIN!" {
		t.Errorf("Row(%d)[36:44] = %q, expected %q", row, got, "YOU WIN!")
	}
	if got := m.screen.GetCell(36, row).Color; got != core.ColorYellow {
		t.Errorf("banner color = %v, expected %v", got, core.ColorYellow)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned nil command")
	}
	if next.(Model).View() != "" {
		t.Error("View() after quit not empty")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel()
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 38 {
		t.Errorf("screen = %dx%d, expected 120x38", m.screen.Width(), m.screen.Height())
	}
	if m.view.WorldW != 800 || m.view.WorldH != 600 {
		t.Errorf("world = %vx%v, expected fixed 800x600", m.view.WorldW, m.view.WorldH)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel()
	m = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("help.ShowAll = false after ?, expected true")
	}
}
