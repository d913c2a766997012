package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breaking-the-block/internal/assets"
	"github.com/vovakirdan/breaking-the-block/internal/config"
	"github.com/vovakirdan/breaking-the-block/internal/core"
	"github.com/vovakirdan/breaking-the-block/internal/games/breakout"
	"github.com/vovakirdan/breaking-the-block/internal/registry"
)

var (
	flagFrontend   string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game of Breaking the Block.

Controls:
  Mouse        - Move the paddle
  Left/Right   - Move the paddle (terminal)
  Space        - Launch the ball
  Click        - Knock out the brick under the pointer
  P            - Pause (terminal)
  Q/Esc        - Quit

Difficulty options:
  easy   - Slower ball, rare tornadoes
  normal - Configured values
  hard   - Faster ball, narrower paddle, frequent tornadoes

Examples:
  breakout play
  breakout play --frontend window
  breakout play --difficulty easy --fps 30
  breakout play --config ./my-breakout.yaml --log-file breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "tui", "Frontend to play in (see 'breakout list')")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	return play(flagFrontend, flagDifficulty)
}

func play(frontendID, difficulty string) error {
	if !registry.Exists(frontendID) {
		return fmt.Errorf("unknown frontend %q, run 'breakout list' to see available frontends", frontendID)
	}

	logger, cleanup, err := newLogger(frontendID)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Screen.FPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := []breakout.Option{breakout.WithLogger(logger)}
	if flagSeed != 0 {
		opts = append(opts, breakout.WithSeed(flagSeed))
	}
	if img := assets.LoadFirst(logger, cfg.Assets.BallImages...); img != nil {
		opts = append(opts, breakout.WithBallImage(img))
	}
	engine := breakout.New(cfg, opts...)

	// Terminal size is only meaningful for the terminal frontend; the
	// window frontend sizes itself from the world.
	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.TickRate = cfg.Screen.FPS
	runtime.Seed = flagSeed

	frontend, err := registry.Create(frontendID)
	if err != nil {
		return err
	}

	logger.Info("starting", "frontend", frontend.ID(), "preset", preset, "fps", cfg.Screen.FPS, "seed", flagSeed)
	return frontend.Run(registry.Session{
		Engine:  engine,
		Runtime: runtime,
		Logger:  logger,
	})
}
