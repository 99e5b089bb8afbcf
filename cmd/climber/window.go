package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-climber/internal/core"
	"github.com/vovakirdan/sky-climber/internal/games/climber"
	"github.com/vovakirdan/sky-climber/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window. Unlike the terminal, the window
sees real key releases, so movement stops exactly when a key is let go.

Controls:
  Left/A       - Move left
  Right/D      - Move right
  Space/Up/W   - Jump
  P/Esc        - Pause
  R            - Restart
  Q            - Quit

Examples:
  climber window
  climber window --scale 1.5 --level stairs`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, _ []string) {
	opts := gui.Options{
		Runtime: core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Scale:  flagScale,
		Logger: logger,
	}

	if err := gui.Run(climber.New(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
