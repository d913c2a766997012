package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breaking-the-block/internal/core"
	"github.com/vovakirdan/breaking-the-block/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick frontend and difficulty interactively",
	Long: `Start with a setup menu to choose where to play and how hard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  breakout menu
  breakout menu --fps 30 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	size := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		size.ScreenW = w
		size.ScreenH = h
	}

	sel, err := tui.RunMenu(size.ScreenW, size.ScreenH)
	if err != nil {
		return err
	}
	if sel == nil {
		return nil
	}
	return play(sel.Frontend, string(sel.Preset))
}
