package breakout

import "github.com/vovakirdan/breaking-the-block/internal/core"

// Ellipse is a filled ellipse inscribed in the box at (X, Y) of size W x H.
type Ellipse struct {
	X, Y, W, H float64
	Color      core.Color
}

// Segment is a line from (X1, Y1) to (X2, Y2) of the given stroke width.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          core.Color
}

// Circle is a filled circle.
type Circle struct {
	X, Y, R float64
	Color   core.Color
}
