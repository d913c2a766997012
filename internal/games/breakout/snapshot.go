package breakout

import "math"

// Snapshot is a flat copy of the simulation state used to compare runs.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick     uint64
	Won      bool
	PaddleX  float64
	BallX    float64
	BallY    float64
	BallVX   float64
	BallVY   float64
	Launched bool

	BalloonTimer    float64
	TornadoTimer    float64
	TornadoInterval float64

	// One entry per brick in grid order: 1 if hit.
	BrickData []int

	// Each tornado is 4 floats: X, Y, FallSpeed, Rotation.
	TornadoData []float64

	// Each balloon is 3 floats: X, Y, Age.
	BalloonData []float64
}

// Snapshot returns the current state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	brickData := make([]int, len(e.bricks))
	for i, b := range e.bricks {
		if b.Hit {
			brickData[i] = 1
		}
	}

	tornadoData := make([]float64, 0, len(e.tornadoes)*4)
	for _, t := range e.tornadoes {
		tornadoData = append(tornadoData, t.X, t.Y, t.FallSpeed, t.Rotation)
	}

	balloonData := make([]float64, 0, len(e.balloons)*3)
	for _, b := range e.balloons {
		balloonData = append(balloonData, b.X, b.Y, b.Age)
	}

	return Snapshot{
		Tick:     e.tick,
		Won:      e.won,
		PaddleX:  e.paddle.X,
		BallX:    e.ball.X,
		BallY:    e.ball.Y,
		BallVX:   e.ball.VX,
		BallVY:   e.ball.VY,
		Launched: e.ball.Launched,

		BalloonTimer:    e.balloonTimer,
		TornadoTimer:    e.tornadoTimer,
		TornadoInterval: e.tornadoInterval,

		BrickData:   brickData,
		TornadoData: tornadoData,
		BalloonData: balloonData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	f := math.Float64bits
	b := func(v bool) uint64 {
		if v {
			return 1
		}
		return 0
	}

	h := snap.Tick
	h = h*31 + b(snap.Won)
	h = h*31 + f(snap.PaddleX)
	h = h*31 + f(snap.BallX)
	h = h*31 + f(snap.BallY)
	h = h*31 + f(snap.BallVX)
	h = h*31 + f(snap.BallVY)
	h = h*31 + b(snap.Launched)
	h = h*31 + f(snap.BalloonTimer)
	h = h*31 + f(snap.TornadoTimer)
	h = h*31 + f(snap.TornadoInterval)
	h = h*31 + uint64(len(snap.TornadoData))
	h = h*31 + uint64(len(snap.BalloonData))

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.TornadoData {
		h = h*31 + f(v)
	}
	for _, v := range snap.BalloonData {
		h = h*31 + f(v)
	}
	return h
}
