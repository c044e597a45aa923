package cli

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/will2dye4/sudoku/puzzle"
	"github.com/will2dye4/sudoku/solver"
)

var (
	benchWorkers    int
	benchTimeout    time.Duration
	benchAlgorithms []string
	benchSuite      string
)

func init() {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the solving algorithms",
		Long: `Run every selected algorithm over a suite of catalog puzzles
and report timings and search counters.  Trials that exceed the
per-puzzle timeout are reported as timed out; brute force is
expected to time out on the hard puzzles.`,
		RunE: runBench,
	}

	benchCmd.Flags().IntVarP(&benchWorkers, "workers", "w", runtime.NumCPU(), "Concurrent trials")
	benchCmd.Flags().DurationVar(&benchTimeout, "timeout", 30*time.Second, "Time limit per trial")
	benchCmd.Flags().StringSliceVarP(&benchAlgorithms, "algorithm", "a",
		solver.AlgorithmNames(), "Algorithms to benchmark")
	benchCmd.Flags().StringVar(&benchSuite, "suite", "all", "Puzzle suite: hard, empty, or all")

	rootCmd.AddCommand(benchCmd)
}

// A trial is one algorithm applied to one puzzle.
type trial struct {
	puzzle        string
	algorithm     solver.Algorithm
	elapsed       time.Duration
	possibilities int
	backtracks    int
	solved        bool
	timedOut      bool
}

func suitePuzzles(suite string) ([]string, error) {
	if suite == "all" {
		return puzzle.SampleNames(), nil
	}
	if suite != "hard" && suite != "empty" {
		return nil, fmt.Errorf("unknown suite %q (want hard, empty, or all)", suite)
	}
	var names []string
	for _, name := range puzzle.SampleNames() {
		if strings.HasPrefix(name, suite+"-") {
			names = append(names, name)
		}
	}
	return names, nil
}

func runBench(cmd *cobra.Command, args []string) error {
	var algorithms []solver.Algorithm
	for _, name := range benchAlgorithms {
		a, err := solver.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		algorithms = append(algorithms, a)
	}
	names, err := suitePuzzles(benchSuite)
	if err != nil {
		return err
	}

	trials := make([]*trial, 0, len(names)*len(algorithms))
	for _, name := range names {
		for _, a := range algorithms {
			trials = append(trials, &trial{puzzle: name, algorithm: a})
		}
	}
	logrus.WithFields(logrus.Fields{
		"puzzles": len(names),
		"trials":  len(trials),
		"workers": benchWorkers,
	}).Info("starting benchmark")

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(benchWorkers)
	for _, t := range trials {
		t := t
		g.Go(func() error {
			return runTrial(ctx, t)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	report(trials)
	return nil
}

// runTrial solves one puzzle under the trial timeout.  A solver
// that blows the deadline keeps running until its search
// unwinds, but its result is discarded.
func runTrial(ctx context.Context, t *trial) error {
	text, err := puzzle.ByName(t.puzzle)
	if err != nil {
		return err
	}
	s, err := solver.New(t.algorithm, text, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, benchTimeout)
	defer cancel()

	start := time.Now()
	done := make(chan bool, 1)
	go func() {
		_, ok := s.Solve()
		done <- ok
	}()
	select {
	case ok := <-done:
		t.elapsed = time.Since(start)
		t.solved = ok
		t.possibilities = s.Possibilities()
		t.backtracks = s.Backtracks()
	case <-ctx.Done():
		t.elapsed = time.Since(start)
		t.timedOut = true
		logrus.WithFields(logrus.Fields{
			"puzzle":    t.puzzle,
			"algorithm": t.algorithm.String(),
		}).Warn("trial timed out")
	}
	return nil
}

func report(trials []*trial) {
	sort.Slice(trials, func(i, j int) bool {
		if trials[i].algorithm != trials[j].algorithm {
			return trials[i].algorithm < trials[j].algorithm
		}
		return trials[i].puzzle < trials[j].puzzle
	})
	fmt.Printf("%-12s %-12s %12s %15s %12s  %s\n",
		"algorithm", "puzzle", "time", "possibilities", "backtracks", "result")
	totals := make(map[solver.Algorithm]time.Duration)
	for _, t := range trials {
		result := "solved"
		switch {
		case t.timedOut:
			result = "timed out"
		case !t.solved:
			result = "no solution"
		}
		fmt.Printf("%-12s %-12s %12v %15d %12d  %s\n",
			t.algorithm, t.puzzle, t.elapsed.Round(time.Microsecond),
			t.possibilities, t.backtracks, result)
		if !t.timedOut {
			totals[t.algorithm] += t.elapsed
		}
	}
	fmt.Println()
	for _, name := range solver.AlgorithmNames() {
		a, _ := solver.ParseAlgorithm(name)
		if total, ok := totals[a]; ok {
			fmt.Printf("%-12s total %v (completed trials only)\n", name, total.Round(time.Millisecond))
		}
	}
}
