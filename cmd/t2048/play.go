package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	Long: `Start an interactive game.

Controls:
  Arrows/hjkl - Move tiles
  Space       - Show a recommended move
  A           - Toggle autoplay (advisor plays for you)
  R           - Restart
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  t2048 play
  t2048 play --size 5
  t2048 play --seed 42 --depth 2000`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := buildRuntimeConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Size the screen to the terminal before the program takes over.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if err := tui.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
