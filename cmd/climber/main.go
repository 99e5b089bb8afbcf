// climber is a vertical platformer that runs in a terminal, a desktop
// window, over SSH, or headless.
//
// Usage:
//
//	climber play             - Play in the terminal
//	climber window           - Play in a desktop window
//	climber serve            - Start SSH server for remote play
//	climber run              - Run a fixed number of ticks without a display
//	climber levels           - List builtin levels
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawning
//	--config <path>       - Custom config YAML
//	--level <id|path>     - Builtin level ID or a .yaml/.tmx file
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-climber/internal/games/climber"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagLevel      string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger is built from the global flags before any command runs.
var (
	logger  *log.Logger
	logSink io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "climber",
	Short: "Sky Climber - hop up an endless stack of platforms",
	Long: `Sky Climber is a small vertical platformer. Rows of platforms scroll
down while new rows appear at the top; keep the red block on them.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  run      - Run headless and print the final state
  levels   - List builtin levels

Examples:
  climber play
  climber play --level stairs --difficulty hard
  climber window --seed 42
  climber serve --ssh :2222
  climber run --ticks 600 --script "10:right,40:jump"`,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logSink != nil {
			_ = logSink.Close()
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Builtin level ID or path to a .yaml/.tmx level")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup builds the logger and hands the global flags to the game package.
// Commands that own the terminal pass quiet so logs never reach stderr.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("opening log file: %w", openErr)
		}
		out = f
		logSink = f
	case cmd == playCmd:
		// The alt screen owns the terminal
		out = io.Discard
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "climber",
		Level:           level,
	})

	climber.SetConfigPath(flagConfig)
	climber.SetDifficultyPreset(flagDifficulty)
	climber.SetLevel(flagLevel)
	climber.SetLogger(logger)
	return nil
}
