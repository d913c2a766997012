package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionLaunch          // Space - release the ball from the paddle
	ActionLeft            // Left arrow, h - nudge the pointer left (keyboard play)
	ActionRight           // Right arrow, l - nudge the pointer right
	ActionDebugHit        // Mouse click - test the clicked point against the bricks
	ActionPause           // P - pause/unpause (handled by the frontend)
	ActionQuit            // Q, Ctrl+C, Esc - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLaunch:
		return "Launch"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDebugHit:
		return "DebugHit"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for a single simulation tick: the
// continuous pointer position plus the discrete actions triggered this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// PointerX is the pointer position in world units. Only meaningful
	// when HasPointer is set; otherwise the paddle keeps its position.
	PointerX   float64
	HasPointer bool

	// ClickX, ClickY locate ActionDebugHit in world units.
	ClickX, ClickY float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Point sets the pointer x-coordinate for this frame.
func (f *InputFrame) Point(x float64) {
	f.PointerX = x
	f.HasPointer = true
}

// Click records a debug click at (x, y).
func (f *InputFrame) Click(x, y float64) {
	f.Set(ActionDebugHit)
	f.ClickX = x
	f.ClickY = y
}

// Clear resets all actions for the next frame. The pointer position is
// continuous state and survives the clear.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.ClickX, f.ClickY = 0, 0
}

// ReadPointer fills the frame from one frame of raw pointer-device state:
// the cursor position, whether launch was pressed and whether the primary
// button was clicked at the cursor.
func (f *InputFrame) ReadPointer(x, y float64, launch, click bool) {
	f.Point(x)
	if launch {
		f.Set(ActionLaunch)
	}
	if click {
		f.Click(x, y)
	}
}
