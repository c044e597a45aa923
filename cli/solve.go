package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/will2dye4/sudoku/puzzle"
	"github.com/will2dye4/sudoku/solver"
	"github.com/will2dye4/sudoku/store"
)

var (
	puzzleString  string
	puzzleName    string
	algorithmName string
	showProgress  bool
	noCache       bool
)

// progressInterval is how many possibilities go by between
// progress dots.
const progressInterval = 1000

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single puzzle",
		Long: `Solve one puzzle, given inline or by catalog name.

Examples:
  sudoku solve -n hard-1
  sudoku solve -n easy-2 -a dlx
  sudoku solve -s '070...(81 chars)...' --progress`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&puzzleString, "string", "s", "", "Puzzle as an 81-character string")
	solveCmd.Flags().StringVarP(&puzzleName, "name", "n", "", "Name of a catalog puzzle")
	solveCmd.Flags().StringVarP(&algorithmName, "algorithm", "a",
		solver.ConstraintBased.String(), fmt.Sprintf("Solving algorithm %v", solver.AlgorithmNames()))
	solveCmd.Flags().BoolVar(&showProgress, "progress", false, "Print a dot as the solver works")
	solveCmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the solution cache")

	rootCmd.AddCommand(solveCmd)
}

// resolvePuzzle turns the solve flags into puzzle text.  Named
// puzzles come from the built-in catalog first, then from the
// puzzle library if a database is available.
func resolvePuzzle() (string, error) {
	if (puzzleString == "") == (puzzleName == "") {
		return "", fmt.Errorf("give a puzzle with exactly one of --string or --name")
	}
	if puzzleString != "" {
		return puzzleString, nil
	}
	text, err := puzzle.ByName(puzzleName)
	if err == nil {
		return text, nil
	}
	if _, dbErr := store.DatabaseConnect(cmdContext()); dbErr == nil {
		if text, dbErr = store.LookupPuzzle(cmdContext(), puzzleName); dbErr == nil {
			return text, nil
		}
	}
	return "", err
}

func runSolve(cmd *cobra.Command, args []string) error {
	algorithm, err := solver.ParseAlgorithm(algorithmName)
	if err != nil {
		return err
	}
	text, err := resolvePuzzle()
	if err != nil {
		return err
	}
	grid, err := puzzle.GridFromText(text)
	if err != nil {
		return err
	}
	fmt.Printf("Starting puzzle (%d clues):\n%s\n", grid.ClueCount(), grid.StartingString())

	// try the cache before doing any work
	condensed := grid.Condensed()
	useCache := !noCache
	if useCache {
		if _, err := store.CacheConnect(); err != nil {
			logrus.WithError(err).Debug("solution cache unavailable")
			useCache = false
		}
	}
	if useCache {
		if cached, err := store.GetSolution(condensed, algorithm.String()); err != nil {
			logrus.WithError(err).Warn("solution cache lookup failed")
		} else if cached != nil {
			solution, err := puzzle.GridFromText(cached.Solution)
			if err == nil {
				reportSolution(solution, cached.Possibilities, cached.Backtracks, 0, true)
				return nil
			}
			logrus.WithError(err).Warn("discarding corrupt cached solution")
		}
	}

	var progress solver.ProgressFunc
	if showProgress {
		count := 0
		progress = func(state puzzle.Snapshot) {
			count++
			if count%progressInterval == 0 {
				fmt.Print(".")
			}
		}
	}
	s, err := solver.New(algorithm, text, progress)
	if err != nil {
		return err
	}

	start := time.Now()
	solution, ok := s.Solve()
	elapsed := time.Since(start)
	if showProgress {
		fmt.Println()
	}
	if !ok {
		fmt.Printf("No solution exists (tried %d possibilities, backtracked %d times, %v).\n",
			s.Possibilities(), s.Backtracks(), elapsed.Round(time.Millisecond))
		os.Exit(2)
	}
	reportSolution(solution, s.Possibilities(), s.Backtracks(), elapsed, false)

	if useCache {
		entry := &store.CachedSolution{
			Solution:      solution.Condensed(),
			Possibilities: s.Possibilities(),
			Backtracks:    s.Backtracks(),
		}
		if err := store.PutSolution(condensed, algorithm.String(), entry); err != nil {
			logrus.WithError(err).Warn("couldn't cache solution")
		}
	}
	return nil
}

func reportSolution(solution *puzzle.Grid, possibilities, backtracks int, elapsed time.Duration, cached bool) {
	fmt.Printf("\nSolution:\n%s\n", solution)
	fmt.Printf("Condensed: %s\n", solution.Condensed())
	if cached {
		fmt.Printf("(cached: originally tried %d possibilities, backtracked %d times)\n",
			possibilities, backtracks)
	} else {
		fmt.Printf("Tried %d possibilities, backtracked %d times, in %v.\n",
			possibilities, backtracks, elapsed.Round(time.Millisecond))
	}
}
