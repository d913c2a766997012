// Package config provides YAML-based configuration loading, difficulty
// presets and validation for the breakout simulation.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/breaking-the-block/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// BreakoutConfig contains all configuration for the game.
type BreakoutConfig struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Bricks      BrickConfig       `yaml:"bricks"`
	Paddle      PaddleConfig      `yaml:"paddle"`
	Ball        BallConfig        `yaml:"ball"`
	Tornado     TornadoConfig     `yaml:"tornado"`
	Celebration CelebrationConfig `yaml:"celebration"`
	Assets      AssetsConfig      `yaml:"assets"`
}

// ScreenConfig defines the world geometry and host pacing.
type ScreenConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	FPS        int        `yaml:"fps"`
	Background core.Color `yaml:"background"`
}

// BrickConfig defines the brick grid. The grid is centered horizontally.
type BrickConfig struct {
	Rows      int          `yaml:"rows"`
	Cols      int          `yaml:"cols"`
	Width     int          `yaml:"width"`
	Height    int          `yaml:"height"`
	Spacing   int          `yaml:"spacing"`
	Top       int          `yaml:"top"`
	RowColors []core.Color `yaml:"row_colors"` // cycled when shorter than Rows
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width        int        `yaml:"width"`
	Height       int        `yaml:"height"`
	BottomOffset int        `yaml:"bottom_offset"` // distance from the paddle top to the screen bottom
	Color        core.Color `yaml:"color"`
}

// BallConfig defines ball physics. Speeds are per-tick at a 60 FPS baseline.
type BallConfig struct {
	Diameter     int        `yaml:"diameter"`
	Speed        float64    `yaml:"speed"`
	LaunchAngle  float64    `yaml:"launch_angle"`  // degrees, negative is up
	PaddleSteer  float64    `yaml:"paddle_steer"`  // vx change per unit of relative hit offset
	BrickSpeedUp float64    `yaml:"brick_speedup"` // velocity multiplier per brick broken
	Color        core.Color `yaml:"color"`
}

// Range is an inclusive float interval used for random draws.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// IntRange is an inclusive integer interval used for random draws.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TornadoConfig defines the falling hazard.
type TornadoConfig struct {
	Width     int        `yaml:"width"`
	Height    int        `yaml:"height"`
	SpawnY    float64    `yaml:"spawn_y"`
	Interval  Range      `yaml:"interval"`   // seconds between spawns, redrawn after each spawn
	FallSpeed Range      `yaml:"fall_speed"` // pixels per tick
	Spin      Range      `yaml:"spin"`       // degrees per tick
	Color     core.Color `yaml:"color"`
}

// CelebrationConfig defines the victory balloons.
type CelebrationConfig struct {
	SpawnInterval float64      `yaml:"spawn_interval"` // seconds
	MaxBalloons   int          `yaml:"max_balloons"`
	EdgeMargin    int          `yaml:"edge_margin"`  // spawn x is drawn from [margin, width-margin]
	SpawnOffset   int          `yaml:"spawn_offset"` // spawn y is height+offset
	Size          IntRange     `yaml:"size"`
	Rise          Range        `yaml:"rise"`      // pixels per tick
	Sway          Range        `yaml:"sway"`      // amplitude
	Frequency     Range        `yaml:"frequency"` // sway frequency
	Palette       []core.Color `yaml:"palette"`
}

// AssetsConfig lists image search paths, tried in order.
type AssetsConfig struct {
	BallImages []string `yaml:"ball_images"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty input means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.Speed = 5
		cfg.Tornado.Interval = Range{Min: 8, Max: 14}
	case DifficultyHard:
		cfg.Ball.Speed = 7.5
		cfg.Paddle.Width = 90
		cfg.Tornado.Interval = Range{Min: 3, Max: 6}
	}
}

// Validate reports malformed configuration. Every failure wraps ErrInvalid.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	check(c.Screen.FPS > 0, "fps %d must be positive", c.Screen.FPS)

	check(c.Bricks.Rows > 0 && c.Bricks.Cols > 0, "brick grid %dx%d must not be empty", c.Bricks.Rows, c.Bricks.Cols)
	check(c.Bricks.Width > 0 && c.Bricks.Height > 0, "brick size %dx%d must be positive", c.Bricks.Width, c.Bricks.Height)
	check(len(c.Bricks.RowColors) > 0, "bricks need at least one row color")

	check(c.Paddle.Width > 0 && c.Paddle.Width <= c.Screen.Width,
		"paddle width %d must be in (0, %d]", c.Paddle.Width, c.Screen.Width)
	check(c.Paddle.Height > 0, "paddle height %d must be positive", c.Paddle.Height)
	check(c.Paddle.BottomOffset > 0 && c.Paddle.BottomOffset < c.Screen.Height,
		"paddle bottom offset %d must be in (0, %d)", c.Paddle.BottomOffset, c.Screen.Height)

	check(c.Ball.Diameter >= 2, "ball diameter %d must be at least 2", c.Ball.Diameter)
	check(c.Ball.Speed > 0, "ball speed %v must be positive", c.Ball.Speed)
	check(c.Ball.BrickSpeedUp >= 1, "brick speed-up %v must be at least 1", c.Ball.BrickSpeedUp)

	check(c.Tornado.Width > 0 && c.Tornado.Width <= c.Screen.Width, "tornado width %d out of range", c.Tornado.Width)
	check(c.Tornado.Height > 0, "tornado height %d must be positive", c.Tornado.Height)
	checkRange(check, "tornado interval", c.Tornado.Interval)
	checkRange(check, "tornado fall speed", c.Tornado.FallSpeed)
	checkRange(check, "tornado spin", c.Tornado.Spin)
	check(c.Tornado.Interval.Min > 0, "tornado interval must be positive")

	check(c.Celebration.SpawnInterval > 0, "balloon spawn interval must be positive")
	check(c.Celebration.MaxBalloons >= 0, "max balloons %d must not be negative", c.Celebration.MaxBalloons)
	check(2*c.Celebration.EdgeMargin <= c.Screen.Width, "balloon edge margin %d too wide", c.Celebration.EdgeMargin)
	check(c.Celebration.Size.Min > 0 && c.Celebration.Size.Min <= c.Celebration.Size.Max,
		"balloon size range [%d, %d] is invalid", c.Celebration.Size.Min, c.Celebration.Size.Max)
	checkRange(check, "balloon rise", c.Celebration.Rise)
	checkRange(check, "balloon sway", c.Celebration.Sway)
	checkRange(check, "balloon frequency", c.Celebration.Frequency)
	check(len(c.Celebration.Palette) > 0, "balloon palette must not be empty")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w: %w", ErrInvalid, errors.Join(errs...))
}

func checkRange(check func(bool, string, ...any), name string, r Range) {
	check(r.Min <= r.Max, "%s range [%v, %v] is inverted", name, r.Min, r.Max)
}
