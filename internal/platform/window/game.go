// Package window hosts the breakout engine in a desktop window using Ebiten.
// World pixels map one to one onto window pixels.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/breaking-the-block/internal/core"
	"github.com/vovakirdan/breaking-the-block/internal/games/breakout"
	"github.com/vovakirdan/breaking-the-block/internal/registry"
)

const windowTitle = "Breaking the Block"

func init() {
	registry.Register("window", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in a desktop window.
type Frontend struct{}

// ID returns the command line identifier.
func (Frontend) ID() string { return "window" }

// Title returns the display name.
func (Frontend) Title() string { return "Window (Ebiten)" }

// Run opens the window and blocks until it is closed or the player quits.
func (Frontend) Run(s registry.Session) error {
	g := newGame(s)

	ebiten.SetWindowSize(int(s.Engine.Width()), int(s.Engine.Height()))
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(g.tps)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// game implements ebiten.Game.
type game struct {
	engine *breakout.Engine
	logger *log.Logger
	input  core.InputFrame
	tps    int
	last   time.Time

	disc   *ebiten.Image // white disc scaled into ellipses and circles
	sprite *ebiten.Image // ball image, nil when absent
}

func newGame(s registry.Session) *game {
	tps := s.Runtime.TickRate
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &game{
		engine: s.Engine,
		logger: logger,
		input:  core.NewInputFrame(),
		tps:    tps,
		disc:   newDisc(),
	}
	if img := s.Engine.BallImage(); img != nil {
		g.sprite = ebiten.NewImageFromImage(img)
	}
	return g
}

// Update reads input and steps the engine with the wall-clock time since
// the previous frame.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}

	now := time.Now()
	dt := 1 / float64(g.tps)
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.input.Clear()
	mx, my := ebiten.CursorPosition()
	g.input.ReadPointer(float64(mx), float64(my),
		inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))

	g.engine.Step(dt, g.input)
	return nil
}

// Layout keeps the logical screen at the world size.
func (g *game) Layout(_, _ int) (int, int) {
	return int(g.engine.Width()), int(g.engine.Height())
}
