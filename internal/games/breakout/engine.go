package breakout

import (
	"image"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breaking-the-block/internal/config"
	"github.com/vovakirdan/breaking-the-block/internal/core"
)

// Engine owns every entity of one session and advances them one tick at
// a time. It is not safe for concurrent use; the host loop calls Step and
// reads the accessors from a single goroutine.
type Engine struct {
	cfg    config.BreakoutConfig
	width  float64
	height float64

	rng       Rand
	logger    *log.Logger
	ballImage image.Image

	bricks    []Block
	paddle    Block
	ball      Ball
	tornadoes []Tornado
	balloons  []Balloon
	won       bool

	balloonTimer    float64
	tornadoTimer    float64
	tornadoInterval float64

	tick uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the randomness source.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSeed uses a deterministic SimpleRNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = NewSimpleRNG(seed) }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithBallImage attaches the sprite frontends draw the ball with. nil
// means none and frontends fall back to a filled circle.
func WithBallImage(img image.Image) Option {
	return func(e *Engine) { e.ballImage = img }
}

// New creates an engine from a validated configuration. An invalid
// configuration is a programming error and panics.
func New(cfg config.BreakoutConfig, opts ...Option) *Engine {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	e := &Engine{
		cfg:    cfg,
		width:  float64(cfg.Screen.Width),
		height: float64(cfg.Screen.Height),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- gameplay randomness
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	e.bricks = layoutBricks(cfg.Bricks, cfg.Screen.Width)
	e.paddle = layoutPaddle(cfg.Paddle, cfg.Screen.Width, cfg.Screen.Height)
	e.ball = NewBall(cfg.Ball)
	e.ball.RestOn(e.paddle)
	e.tornadoInterval = e.drawTornadoInterval()

	return e
}

// Step advances the simulation by dt seconds:
// paddle input, victory check, discrete actions, balloons, tornadoes, ball.
func (e *Engine) Step(dt float64, in core.InputFrame) core.StepResult {
	e.tick++
	var ev core.Event

	if in.HasPointer {
		e.paddle.Follow(in.PointerX, e.width)
	}

	if !e.won && e.allHit() {
		e.won = true
		ev |= core.EventVictory
		e.logger.Info("victory", "bricks", len(e.bricks), "tick", e.tick)
	}

	if in.Has(core.ActionDebugHit) && e.DebugHit(in.ClickX, in.ClickY) > 0 {
		ev |= core.EventDebugHit
	}
	if in.Has(core.ActionLaunch) && e.ball.Launch() {
		ev |= core.EventLaunch
	}

	if e.won {
		ev |= e.stepBalloons(dt)
	}
	ev |= e.stepTornadoes(dt)

	contact, brick := e.ball.Update(dt, e.width, e.height, e.paddle, e.bricks)
	if contact.Has(ContactWall) || contact.Has(ContactCeiling) {
		ev |= core.EventWallHit
	}
	if contact.Has(ContactPaddle) {
		ev |= core.EventPaddleHit
	}
	if contact.Has(ContactBrick) {
		ev |= core.EventBrickHit
		e.logger.Debug("brick hit", "index", brick, "left", e.BricksLeft())
	}
	if contact.Has(ContactLost) {
		ev |= core.EventBallLost
		e.logger.Debug("ball lost")
	}

	return core.StepResult{State: e.State(), Events: ev}
}

// stepBalloons spawns at most one balloon per interval while under the
// cap, then moves and prunes the live ones.
func (e *Engine) stepBalloons(dt float64) core.Event {
	var ev core.Event
	c := e.cfg.Celebration

	e.balloonTimer += dt
	if e.balloonTimer >= c.SpawnInterval && len(e.balloons) < c.MaxBalloons {
		e.balloons = append(e.balloons, e.spawnBalloon())
		e.balloonTimer = 0
		ev |= core.EventBalloonSpawned
	}

	for i := range e.balloons {
		e.balloons[i].Update(dt)
	}
	live := e.balloons[:0]
	for _, b := range e.balloons {
		if !b.OffScreen() {
			live = append(live, b)
		}
	}
	e.balloons = live
	return ev
}

// stepTornadoes spawns only while the round is in play but moves every
// live tornado regardless, so a tornado can end a won round. The first
// collision restarts the round and stops the pass.
func (e *Engine) stepTornadoes(dt float64) core.Event {
	var ev core.Event

	if !e.won {
		e.tornadoTimer += dt
		if e.tornadoTimer >= e.tornadoInterval {
			t := e.spawnTornado()
			e.tornadoes = append(e.tornadoes, t)
			e.tornadoTimer = 0
			e.tornadoInterval = e.drawTornadoInterval()
			ev |= core.EventTornadoSpawned
			e.logger.Debug("tornado spawned", "x", t.X, "fall", t.FallSpeed, "next", e.tornadoInterval)
		}
	}

	for i := range e.tornadoes {
		e.tornadoes[i].Update(dt)
		if e.tornadoes[i].Collides(e.ball) {
			e.logger.Info("tornado hit the ball, restarting round", "bricks_left", e.BricksLeft())
			e.RoundReset()
			return ev | core.EventRoundReset
		}
	}

	live := e.tornadoes[:0]
	for _, t := range e.tornadoes {
		if !t.OffScreen(e.height) {
			live = append(live, t)
		}
	}
	e.tornadoes = live
	return ev
}

func (e *Engine) spawnTornado() Tornado {
	c := e.cfg.Tornado
	x := randint(e.rng, 0, e.cfg.Screen.Width-c.Width)
	return NewTornado(float64(x), c.SpawnY, c, e.rng)
}

func (e *Engine) spawnBalloon() Balloon {
	c := e.cfg.Celebration
	x := randint(e.rng, c.EdgeMargin, e.cfg.Screen.Width-c.EdgeMargin)
	y := e.cfg.Screen.Height + c.SpawnOffset
	color := c.Palette[e.rng.Intn(len(c.Palette))]
	size := randint(e.rng, c.Size.Min, c.Size.Max)
	return NewBalloon(float64(x), float64(y), color, size, c, e.rng)
}

func (e *Engine) drawTornadoInterval() float64 {
	iv := e.cfg.Tornado.Interval
	return uniform(e.rng, iv.Min, iv.Max)
}

func (e *Engine) allHit() bool {
	for _, b := range e.bricks {
		if !b.Hit {
			return false
		}
	}
	return true
}

// DebugHit marks every unhit brick containing (x, y) as hit and returns
// how many were. Each hit is logged with the point.
func (e *Engine) DebugHit(x, y float64) int {
	n := 0
	for i := range e.bricks {
		if e.bricks[i].HitTest(x, y) {
			n++
			e.logger.Info("brick hit manually", "x", x, "y", y, "index", i)
		}
	}
	return n
}

// RoundReset restores every brick, leaves the won state, clears balloons
// and tornadoes and rests the ball on the paddle. Spawn timers keep running.
func (e *Engine) RoundReset() {
	e.won = false
	e.balloons = e.balloons[:0]
	for i := range e.bricks {
		e.bricks[i].Hit = false
	}
	e.ball.RestOn(e.paddle)
	e.tornadoes = e.tornadoes[:0]
}

// State summarizes the session for the host loop.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Won:        e.won,
		BricksLeft: e.BricksLeft(),
		Tornadoes:  len(e.tornadoes),
		Balloons:   len(e.balloons),
	}
}

// Bricks returns a copy of the brick wall in grid order.
func (e *Engine) Bricks() []Block { return slices.Clone(e.bricks) }

// Paddle returns a copy of the paddle.
func (e *Engine) Paddle() Block { return e.paddle }

// Ball returns a copy of the ball.
func (e *Engine) Ball() Ball { return e.ball }

// Tornadoes returns a copy of the live tornadoes.
func (e *Engine) Tornadoes() []Tornado { return slices.Clone(e.tornadoes) }

// Balloons returns a copy of the live balloons.
func (e *Engine) Balloons() []Balloon { return slices.Clone(e.balloons) }

// Won reports whether every brick has been broken this round.
func (e *Engine) Won() bool { return e.won }

// BallImage returns the ball sprite, or nil.
func (e *Engine) BallImage() image.Image { return e.ballImage }

// Width returns the world width in pixels.
func (e *Engine) Width() float64 { return e.width }

// Height returns the world height in pixels.
func (e *Engine) Height() float64 { return e.height }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.BreakoutConfig { return e.cfg }

// BricksLeft counts unhit bricks.
func (e *Engine) BricksLeft() int {
	n := 0
	for _, b := range e.bricks {
		if !b.Hit {
			n++
		}
	}
	return n
}
