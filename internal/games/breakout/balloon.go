package breakout

import (
	"math"

	"github.com/vovakirdan/breaking-the-block/internal/config"
	"github.com/vovakirdan/breaking-the-block/internal/core"
)

// Balloon is a purely cosmetic victory particle: it rises at a constant
// per-tick speed and sways sideways with dt-scaled sinusoidal drift.
type Balloon struct {
	X, Y          float64
	Color         core.Color
	Size          int
	RiseSpeed     float64
	SwayAmplitude float64
	SwayFrequency float64
	Age           float64 // seconds since spawn
}

// NewBalloon creates a balloon at (x, y) with motion parameters drawn from
// the configured ranges.
func NewBalloon(x, y float64, color core.Color, size int, cfg config.CelebrationConfig, rng Rand) Balloon {
	return Balloon{
		X:             x,
		Y:             y,
		Color:         color,
		Size:          size,
		RiseSpeed:     uniform(rng, cfg.Rise.Min, cfg.Rise.Max),
		SwayAmplitude: uniform(rng, cfg.Sway.Min, cfg.Sway.Max),
		SwayFrequency: uniform(rng, cfg.Frequency.Min, cfg.Frequency.Max),
	}
}

// Update ages the balloon by dt and moves it. Rise ignores dt, sway does not.
func (b *Balloon) Update(dt float64) {
	b.Age += dt
	b.Y -= b.RiseSpeed
	b.X += math.Sin(b.Age*b.SwayFrequency*100) * b.SwayAmplitude * dt
}

// OffScreen reports whether the balloon has floated out past the top.
func (b Balloon) OffScreen() bool {
	return b.Y < -float64(b.Size)*2
}

// Body is the balloon itself, hanging above its anchor point.
func (b Balloon) Body() Ellipse {
	s := float64(b.Size)
	return Ellipse{
		X:     b.X - float64(b.Size/2),
		Y:     b.Y - s,
		W:     s,
		H:     s * 1.2,
		Color: b.Color,
	}
}

// Tether is the string below the body.
func (b Balloon) Tether() Segment {
	return Segment{
		X1: b.X, Y1: b.Y,
		X2: b.X, Y2: b.Y + float64(b.Size),
		Width: 2,
		Color: core.Gray(100),
	}
}

// Highlight is the white glint on the upper left of the body.
func (b Balloon) Highlight() Circle {
	return Circle{
		X:     b.X - float64(b.Size/4),
		Y:     b.Y - float64(b.Size/2),
		R:     float64(max(3, b.Size/4)),
		Color: core.ColorWhite,
	}
}
