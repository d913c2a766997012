// Package breakout implements the brick breaker simulation: a ball, a
// pointer-driven paddle, a fixed brick wall, falling tornadoes that
// restart the round on contact, and victory balloons.
package breakout

import "github.com/vovakirdan/breaking-the-block/internal/config"

// layoutBricks builds the brick wall in row-major order, centered
// horizontally on a screen of the given width.
func layoutBricks(cfg config.BrickConfig, screenW int) []Block {
	wallW := cfg.Cols*cfg.Width + (cfg.Cols-1)*cfg.Spacing
	startX := (screenW - wallW) / 2

	bricks := make([]Block, 0, cfg.Rows*cfg.Cols)
	for row := range cfg.Rows {
		color := cfg.RowColors[row%len(cfg.RowColors)]
		for col := range cfg.Cols {
			bricks = append(bricks, Block{
				X:     float64(startX + col*(cfg.Width+cfg.Spacing)),
				Y:     float64(cfg.Top + row*(cfg.Height+cfg.Spacing)),
				W:     float64(cfg.Width),
				H:     float64(cfg.Height),
				Color: color,
				Kind:  KindBrick,
			})
		}
	}
	return bricks
}

// layoutPaddle centers the paddle horizontally, BottomOffset above the bottom edge.
func layoutPaddle(cfg config.PaddleConfig, screenW, screenH int) Block {
	return Block{
		X:     float64((screenW - cfg.Width) / 2),
		Y:     float64(screenH - cfg.BottomOffset),
		W:     float64(cfg.Width),
		H:     float64(cfg.Height),
		Color: cfg.Color,
		Kind:  KindPaddle,
	}
}
