package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breaking-the-block/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.breakout/configs/breakout.yaml or ./configs/breakout.yaml and edit it
to change the game.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	},
}
