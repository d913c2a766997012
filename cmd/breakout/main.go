// breakout is a brick breaker with falling tornadoes and victory balloons,
// playable in the terminal or in a desktop window.
//
// Usage:
//
//	breakout play              - Play in the terminal
//	breakout play -f window    - Play in a desktop window
//	breakout menu              - Pick frontend and difficulty interactively
//	breakout list              - List available frontends
//	breakout config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Override the configured tick rate
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/breaking-the-block/internal/platform/tui"
	_ "github.com/vovakirdan/breaking-the-block/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breaking the Block - a brick breaker with tornadoes",
	Long: `Breaking the Block is a brick breaker. Clear the wall to win and
dodge the tornadoes: a tornado touching the ball resets the round.

Available commands:
  play     - Start a game
  menu     - Pick frontend and difficulty interactively
  list     - Show available frontends
  config   - Print the default configuration

Examples:
  breakout play
  breakout play --frontend window
  breakout play --difficulty hard --seed 42
  breakout config > ~/.breakout/configs/breakout.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
