package breakout

import (
	"math"

	"github.com/vovakirdan/breaking-the-block/internal/config"
)

// fixedRand always returns the same values.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{WithSeed(12345)}, opts...)
	return New(config.DefaultBreakoutConfig(), opts...)
}

func defaultPaddle() Block {
	cfg := config.DefaultBreakoutConfig()
	return layoutPaddle(cfg.Paddle, cfg.Screen.Width, cfg.Screen.Height)
}

// flyingBall returns a launched default ball at (x, y) with velocity (vx, vy).
func flyingBall(x, y, vx, vy float64) Ball {
	b := NewBall(config.DefaultBreakoutConfig().Ball)
	b.X, b.Y = x, y
	b.VX, b.VY = vx, vy
	b.Launched = true
	return b
}
