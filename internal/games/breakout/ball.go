package breakout

import (
	"math"

	"github.com/vovakirdan/breaking-the-block/internal/config"
	"github.com/vovakirdan/breaking-the-block/internal/core"
)

// Contact describes which collision responses fired during one Ball.Update.
type Contact uint8

const (
	ContactWall Contact = 1 << iota
	ContactCeiling
	ContactPaddle
	ContactBrick
	ContactLost
)

// Has reports whether all bits of f are set.
func (c Contact) Has(f Contact) bool {
	return c&f == f
}

// Ball is the moving circle. X and Y are its center. Velocities are in
// pixels per tick at a 60 FPS baseline and get scaled by elapsed time.
type Ball struct {
	X, Y     float64
	VX, VY   float64
	Speed    float64
	Launched bool
	Color    core.Color

	radius     int
	diameter   int
	launchDeg  float64
	steer      float64
	brickBoost float64
}

// NewBall creates a resting ball from its configuration.
func NewBall(cfg config.BallConfig) Ball {
	return Ball{
		Speed:      cfg.Speed,
		Color:      cfg.Color,
		radius:     cfg.Diameter / 2,
		diameter:   cfg.Diameter,
		launchDeg:  cfg.LaunchAngle,
		steer:      cfg.PaddleSteer,
		brickBoost: cfg.BrickSpeedUp,
	}
}

// Radius is half the diameter, rounded down. It never changes.
func (b Ball) Radius() int { return b.radius }

// Diameter returns the configured diameter.
func (b Ball) Diameter() int { return b.diameter }

// Bounds returns the ball's bounding square.
func (b Ball) Bounds() core.RectF {
	r := float64(b.radius)
	return core.NewRectF(b.X-r, b.Y-r, 2*r, 2*r)
}

// Launch fires the ball at the configured angle. It reports whether the
// ball was resting; a ball already in flight is left alone.
func (b *Ball) Launch() bool {
	return b.LaunchAt(b.launchDeg * math.Pi / 180)
}

// LaunchAt fires the ball at angle radians (negative is up).
func (b *Ball) LaunchAt(angle float64) bool {
	if b.Launched {
		return false
	}
	b.VX = b.Speed * math.Cos(angle)
	b.VY = b.Speed * math.Sin(angle)
	b.Launched = true
	return true
}

// ResetTo moves the ball to (x, y) and stops it.
func (b *Ball) ResetTo(x, y float64) {
	b.X = x
	b.Y = y
	b.VX = 0
	b.VY = 0
	b.Launched = false
}

// RestOn puts the ball in its resting state on top of the paddle.
func (b *Ball) RestOn(paddle Block) {
	b.ResetTo(paddle.CenterX(), paddle.Y-float64(b.radius)-1)
}

// Update advances the ball by dt seconds and resolves collisions in a
// fixed order: side walls, ceiling, paddle, bricks, bottom edge. It
// returns the responses that fired and the index of the brick broken,
// or -1.
func (b *Ball) Update(dt, width, height float64, paddle Block, bricks []Block) (Contact, int) {
	if !b.Launched {
		b.X = paddle.CenterX()
		b.Y = paddle.Y - float64(b.radius) - 1
		return 0, -1
	}

	var c Contact
	r := float64(b.radius)

	b.X += b.VX * dt * 60
	b.Y += b.VY * dt * 60

	// Only one side wall per tick.
	if b.X-r <= 0 {
		b.X = r
		b.VX = -b.VX
		c |= ContactWall
	} else if b.X+r >= width {
		b.X = width - r
		b.VX = -b.VX
		c |= ContactWall
	}

	if b.Y-r <= 0 {
		b.Y = r
		b.VY = -b.VY
		c |= ContactCeiling
	}

	if b.X >= paddle.X && b.X <= paddle.X+paddle.W && b.Y+r >= paddle.Y && b.VY > 0 {
		b.Y = paddle.Y - r - 1
		b.VY = -math.Abs(b.VY)
		rel := (b.X - paddle.CenterX()) / (paddle.W / 2)
		b.VX += rel * b.steer
		c |= ContactPaddle
	}

	// The center point is tested, not the circle. First hit wins.
	hit := -1
	for i := range bricks {
		if bricks[i].HitTest(b.X, b.Y) {
			b.VY = -b.VY
			b.VX *= b.brickBoost
			b.VY *= b.brickBoost
			hit = i
			c |= ContactBrick
			break
		}
	}

	if b.Y-r > height {
		b.RestOn(paddle)
		c |= ContactLost
	}

	return c, hit
}
