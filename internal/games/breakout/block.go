package breakout

import (
	"math"

	"github.com/vovakirdan/breaking-the-block/internal/core"
)

// BlockKind tags what a Block is used as.
type BlockKind uint8

const (
	KindBrick BlockKind = iota
	KindPaddle
)

func (k BlockKind) String() string {
	switch k {
	case KindBrick:
		return "brick"
	case KindPaddle:
		return "paddle"
	default:
		return "unknown"
	}
}

// Block is an axis-aligned rectangle with a top-left origin. Bricks and
// the paddle share it; the paddle is simply a block whose X follows input.
type Block struct {
	X, Y  float64
	W, H  float64
	Color core.Color
	Hit   bool // write-once until a round reset
	Kind  BlockKind
}

// Rect returns the block's rectangle.
func (b Block) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// CenterX returns the horizontal center.
func (b Block) CenterX() float64 {
	return b.Rect().CenterX()
}

// HitTest reports whether (px, py) lies inside an unhit block, edges
// included, and marks the block hit when it does. An already-hit block
// never reports a hit.
func (b *Block) HitTest(px, py float64) bool {
	if b.Hit || !b.Rect().Contains(px, py) {
		return false
	}
	b.Hit = true
	return true
}

// Follow centers the block on pointerX, keeping it within [0, screenW-W].
func (b *Block) Follow(pointerX, screenW float64) {
	b.X = core.ClampF(pointerX-math.Floor(b.W/2), 0, screenW-b.W)
}
