package core

// RuntimeConfig contains host settings passed to a frontend when a session
// starts. World geometry lives in the game configuration; these values
// describe the host surface and pacing.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (terminal columns or window pixels)
	ScreenH  int   // Host surface height (terminal rows or window pixels)
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState summarizes the simulation for the host after each step.
type GameState struct {
	Won        bool // All bricks cleared; celebration running
	Paused     bool // Frontend-level pause
	BricksLeft int  // Bricks not yet hit
	Tornadoes  int  // Live hazards
	Balloons   int  // Live celebration balloons
}

// Event is a bitmask of things that happened during one step.
type Event uint32

const (
	EventLaunch Event = 1 << iota
	EventWallHit
	EventPaddleHit
	EventBrickHit
	EventBallLost
	EventVictory
	EventTornadoSpawned
	EventBalloonSpawned
	EventRoundReset
	EventDebugHit
)

// Has reports whether all bits of e2 are set in e.
func (e Event) Has(e2 Event) bool {
	return e&e2 == e2
}

// StepResult is returned by a simulation step.
type StepResult struct {
	State  GameState
	Events Event
}
