// Package cli implements the sudoku command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	quiet   bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve and benchmark 9x9 sudoku puzzles",
	Long: `sudoku solves standard 9x9 puzzles with a choice of algorithms:
brute-force backtracking, constraint propagation, and dancing-links
exact cover.

Puzzles are given as 81 characters in row-major order, with digits
1-9 for clues and '0' or '.' for empty cells.  Whitespace and other
characters are ignored, so grid-shaped input works too.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a missing .env is fine; the environment may be set directly
		if err := godotenv.Load(); err == nil {
			logrus.Debug("loaded environment from .env")
		}
		switch {
		case quiet:
			logrus.SetLevel(logrus.WarnLevel)
		case verbose:
			logrus.SetLevel(logrus.DebugLevel)
		default:
			logrus.SetLevel(logrus.InfoLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details")
}

// cmdContext is the context for one-shot command work against
// the store.
func cmdContext() context.Context {
	return context.Background()
}

// Execute runs the CLI and exits nonzero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
