package breakout

import (
	"math"

	"github.com/vovakirdan/breaking-the-block/internal/config"
	"github.com/vovakirdan/breaking-the-block/internal/core"
)

// layerStep is the vertical distance between drawn tornado layers.
const layerStep = 8

// Tornado is a falling, spinning hazard. Touching the ball restarts the round.
type Tornado struct {
	X, Y          float64
	W, H          int
	FallSpeed     float64 // pixels per tick
	Rotation      float64 // degrees in [0, 360)
	RotationSpeed float64 // degrees per tick
	Color         core.Color
}

// NewTornado spawns a tornado at (x, y) with fall and spin speeds drawn
// from the configured ranges.
func NewTornado(x, y float64, cfg config.TornadoConfig, rng Rand) Tornado {
	return Tornado{
		X:             x,
		Y:             y,
		W:             cfg.Width,
		H:             cfg.Height,
		FallSpeed:     uniform(rng, cfg.FallSpeed.Min, cfg.FallSpeed.Max),
		RotationSpeed: uniform(rng, cfg.Spin.Min, cfg.Spin.Max),
		Color:         cfg.Color,
	}
}

// Update moves the tornado one tick. Descent and spin are per tick and
// ignore dt.
func (t *Tornado) Update(_ float64) {
	t.Y += t.FallSpeed
	t.Rotation += t.RotationSpeed
	if t.Rotation >= 360 {
		t.Rotation = 0
	}
}

// Rect returns the tornado's hit box.
func (t Tornado) Rect() core.RectF {
	return core.NewRectF(t.X, t.Y, float64(t.W), float64(t.H))
}

// Collides reports whether the ball's bounding square strictly overlaps
// the tornado. Touching edges do not count.
func (t Tornado) Collides(b Ball) bool {
	return b.Bounds().Overlaps(t.Rect())
}

// OffScreen reports whether the tornado has fallen past the bottom edge.
func (t Tornado) OffScreen(height float64) bool {
	return t.Y > height
}

// Layers returns the stacked ellipses the tornado is drawn with, top to
// bottom. Layers widen downward, sway with the rotation and darken from
// Color+50 at the top to Color-50 at the bottom.
func (t Tornado) Layers() []Ellipse {
	if t.H <= 0 {
		return nil
	}
	centerX := t.X + float64(t.W/2)
	layers := make([]Ellipse, 0, (t.H+layerStep-1)/layerStep)
	for i := 0; i < t.H; i += layerStep {
		frac := float64(i) / float64(t.H)
		width := float64(t.W)*frac*0.8 + 5
		offset := math.Sin((t.Rotation+float64(i)*10)*math.Pi/180) * (width / 4)
		layers = append(layers, Ellipse{
			X:     centerX + offset - math.Floor(width/2),
			Y:     t.Y + float64(i),
			W:     width,
			H:     6,
			Color: shade(t.Color, 50-frac*100),
		})
	}
	return layers
}

// shade shifts every channel of c by delta, truncating and clamping to [0, 255].
func shade(c core.Color, delta float64) core.Color {
	r, g, b := c.Channels()
	ch := func(v uint8) uint8 {
		return uint8(core.ClampF(math.Trunc(float64(v)+delta), 0, 255))
	}
	return core.RGB(ch(r), ch(g), ch(b))
}
