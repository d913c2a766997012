package config

import (
	_ "embed"

	"github.com/vovakirdan/breaking-the-block/internal/core"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration. It mirrors
// defaults/breakout.yaml and is the base every loaded file is merged onto.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Screen: ScreenConfig{
			Width:      800,
			Height:     600,
			FPS:        60,
			Background: core.ColorBlack,
		},
		Bricks: BrickConfig{
			Rows:    5,
			Cols:    10,
			Width:   75,
			Height:  25,
			Spacing: 5,
			Top:     50,
			RowColors: []core.Color{
				core.ColorRed,
				core.ColorOrange,
				core.ColorYellow,
				core.ColorGreen,
				core.ColorBlue,
			},
		},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       15,
			BottomOffset: 50,
			Color:        core.ColorWhite,
		},
		Ball: BallConfig{
			Diameter:     12,
			Speed:        6,
			LaunchAngle:  -60,
			PaddleSteer:  2.5,
			BrickSpeedUp: 1.02,
			Color:        core.ColorWhite,
		},
		Tornado: TornadoConfig{
			Width:     30,
			Height:    80,
			SpawnY:    -80,
			Interval:  Range{Min: 5, Max: 10},
			FallSpeed: Range{Min: 1, Max: 3},
			Spin:      Range{Min: 5, Max: 10},
			Color:     core.ColorGray,
		},
		Celebration: CelebrationConfig{
			SpawnInterval: 0.1,
			MaxBalloons:   30,
			EdgeMargin:    50,
			SpawnOffset:   50,
			Size:          IntRange{Min: 15, Max: 25},
			Rise:          Range{Min: 1, Max: 3},
			Sway:          Range{Min: 10, Max: 30},
			Frequency:     Range{Min: 0.02, Max: 0.05},
			Palette: []core.Color{
				core.RGB(255, 100, 100),
				core.RGB(100, 255, 100),
				core.RGB(100, 100, 255),
				core.RGB(255, 255, 100),
				core.RGB(255, 100, 255),
				core.RGB(100, 255, 255),
				core.RGB(255, 200, 100),
				core.RGB(200, 100, 255),
			},
		},
		Assets: AssetsConfig{
			BallImages: []string{
				"assets/images/ball/ball.png",
				"image/41QWjX05doL.png",
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
