package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-climber/internal/config"
	"github.com/vovakirdan/sky-climber/internal/core"
	"github.com/vovakirdan/sky-climber/internal/games/climber"
	"github.com/vovakirdan/sky-climber/internal/platform/tui"
)

var (
	flagWatch         bool
	flagScreenshotDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Down/S/X     - Stop
  Space/Up/W   - Jump
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Save a screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Terminals do not report key releases, so a direction stops shortly after
the key stops repeating.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  climber play
  climber play --difficulty hard
  climber play --level tower
  climber play --config ./climber.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload physics when the config file changes")
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "", "Screenshot directory (default ~/.climber/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) {
	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed

	opts := tui.Options{
		Runtime:       runtime,
		Logger:        logger,
		ScreenshotDir: flagScreenshotDir,
	}

	if flagWatch {
		path := config.SearchPath(flagConfig)
		if path == "" {
			fmt.Fprintln(os.Stderr, "Error: --watch needs a config file (use --config or ./configs/climber.yaml)")
			os.Exit(1)
		}
		watcher, err := config.NewWatcher(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching config: %v\n", err)
			os.Exit(1)
		}
		defer watcher.Close()
		opts.Watcher = watcher
	}

	if err := tui.Run(climber.New(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
