package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-climber/internal/levels"
)

var flagLevelDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the builtin levels, or the .yaml/.tmx levels in --dir.

Builtin IDs can be passed to --level; other files are passed by path.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelDir, "dir", "", "List levels from this directory instead")
}

func runLevels(_ *cobra.Command, _ []string) error {
	loader := levels.Builtin()
	if flagLevelDir != "" {
		loader = levels.NewLoader(os.DirFS(flagLevelDir), ".")
	}

	all, err := loader.LoadAll()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range all {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "SIZE", "NAME")
	for _, l := range all {
		rows, cols := l.Size()
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, l.ID, fmt.Sprintf("%dx%d", rows, cols), l.Name)
	}
	return nil
}
