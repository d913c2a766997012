package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breaking-the-block/internal/core"
	"github.com/vovakirdan/breaking-the-block/internal/games/breakout"
)

// Glyphs used to rasterise the world.
const (
	BrickGlyph      = '█'
	PaddleGlyph     = '▀'
	BallGlyph       = '●'
	SpriteBallGlyph = '◉'
	TornadoGlyph    = '≈'
	BalloonGlyph    = 'O'
	TetherGlyph     = '│'
)

// Viewport maps world pixels onto a grid of terminal cells.
type Viewport struct {
	Cols, Rows     int
	WorldW, WorldH float64
}

func (v Viewport) scaleX() float64 { return float64(v.Cols) / v.WorldW }
func (v Viewport) scaleY() float64 { return float64(v.Rows) / v.WorldH }

// CellX returns the column containing world x.
func (v Viewport) CellX(x float64) int { return int(math.Floor(x * v.scaleX())) }

// CellY returns the row containing world y.
func (v Viewport) CellY(y float64) int { return int(math.Floor(y * v.scaleY())) }

// WorldX returns the world x at the center of column col.
func (v Viewport) WorldX(col int) float64 { return (float64(col) + 0.5) / v.scaleX() }

// WorldY returns the world y at the center of row row.
func (v Viewport) WorldY(row int) float64 { return (float64(row) + 0.5) / v.scaleY() }

// span returns the inclusive cell range covering [lo, lo+size). The
// range always has at least one cell, and neighbors separated by less
// than a cell can merge.
func span(lo, size, scale float64) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Floor((lo+size)*scale)) - 1
	if b < a {
		b = a
	}
	return a, b
}

// blockGlyph picks the glyph a block is drawn with.
func blockGlyph(k breakout.BlockKind) rune {
	if k == breakout.KindPaddle {
		return PaddleGlyph
	}
	return BrickGlyph
}

func (v Viewport) fill(dst *core.Screen, x, y, w, h float64, r rune, c core.Color) {
	x0, x1 := span(x, w, v.scaleX())
	y0, y1 := span(y, h, v.scaleY())
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			dst.SetColored(cx, cy, r, c)
		}
	}
}

// DrawWorld rasterises the engine state into dst. ballTint, when set,
// colors the ball as a sprite instead of a plain circle.
func DrawWorld(dst *core.Screen, v Viewport, e *breakout.Engine, ballTint core.Color) {
	for _, b := range e.Bricks() {
		if !b.Hit {
			v.fill(dst, b.X, b.Y, b.W, b.H, blockGlyph(b.Kind), b.Color)
		}
	}

	if e.Won() {
		for _, b := range e.Balloons() {
			t := b.Tether()
			for row := v.CellY(t.Y1); row <= v.CellY(t.Y2); row++ {
				dst.SetColored(v.CellX(t.X1), row, TetherGlyph, t.Color)
			}
			body := b.Body()
			dst.SetColored(v.CellX(body.X+body.W/2), v.CellY(body.Y+body.H/2), BalloonGlyph, body.Color)
		}
	}

	for _, t := range e.Tornadoes() {
		for _, l := range t.Layers() {
			v.fill(dst, l.X, l.Y, l.W, l.H, TornadoGlyph, l.Color)
		}
	}

	p := e.Paddle()
	v.fill(dst, p.X, p.Y, p.W, p.H, blockGlyph(p.Kind), p.Color)

	ball := e.Ball()
	glyph, color := BallGlyph, ball.Color
	if !ballTint.IsDefault() {
		glyph, color = SpriteBallGlyph, ballTint
	}
	dst.SetColored(v.CellX(ball.X), v.CellY(ball.Y), glyph, color)
}

// DrawOverlay draws a bordered box centered on dst with the lines centered
// inside it. The box is cleared first so the world does not show through.
func DrawOverlay(dst *core.Screen, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := core.NewRect(0, 0,
		core.Clamp(w+4, 3, dst.Width()),
		core.Clamp(len(lines)+2, 3, dst.Height()))
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		if row := box.Y + 1 + i; row < box.Bottom()-1 {
			dst.DrawTextCentered(row, l, core.ColorWhite)
		}
	}
}

// Renderer turns a Screen into styled terminal output. Styles are
// cached per color.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[core.Color]lipgloss.Style)}
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if !c.IsDefault() {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	r.styles[c] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
