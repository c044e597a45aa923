// Package solver provides three interchangeable algorithms for
// solving 9x9 sudoku puzzles: brute-force backtracking over the
// dense grid, constraint-propagation backtracking over candidate
// sets, and an exact-cover search using dancing links.
//
// All three share one contract: a solver wraps the representation
// its algorithm requires, Solve runs to completion or exhaustion,
// and the result is a completed grid or an explicit "no
// solution".  A merely-unsolvable puzzle is never an error.
// Solvers are single-use and single-threaded; concurrent solves
// need one solver (and one puzzle instance) each.
package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/will2dye4/sudoku/puzzle"
)

// An Algorithm selects one of the solving strategies.
type Algorithm int

// The supported algorithms.
const (
	BruteForce Algorithm = iota
	ConstraintBased
	DancingLinks
)

// algorithmNames maps the user-facing strategy names to
// algorithms; String and ParseAlgorithm must stay in sync with
// it.
var algorithmNames = map[string]Algorithm{
	"brute-force": BruteForce,
	"constraint":  ConstraintBased,
	"dlx":         DancingLinks,
}

// String returns the user-facing name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BruteForce:
		return "brute-force"
	case ConstraintBased:
		return "constraint"
	case DancingLinks:
		return "dlx"
	}
	return "unknown"
}

// ParseAlgorithm returns the Algorithm with the given user-facing
// name, or an ArgumentScope Error for an unknown name.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmNames[name]; ok {
		return a, nil
	}
	return 0, puzzle.Error{
		Scope:     puzzle.ArgumentScope,
		Condition: puzzle.GeneralCondition,
		Attribute: puzzle.AlgorithmAttribute,
		Values:    puzzle.ErrorData{name, "must be one of brute-force, constraint, dlx"},
	}
}

// AlgorithmNames returns the user-facing strategy names, in
// selector order.
func AlgorithmNames() []string {
	return []string{BruteForce.String(), ConstraintBased.String(), DancingLinks.String()}
}

// A ProgressFunc observes a solve in progress.  It is invoked
// synchronously after each attempted placement or branch with the
// current partial state; the exact-cover engine reports abstract
// progress, so its events carry a nil state.  The callback must
// not block and must not mutate solver state; a panicking
// callback is logged and swallowed.
type ProgressFunc func(state puzzle.Snapshot)

// A Solver solves one puzzle with one algorithm.
type Solver interface {
	// Solve runs the search.  It returns the completed grid and
	// true, or nil and false if the puzzle has no solution.
	Solve() (*puzzle.Grid, bool)
	// Possibilities returns the number of possibilities tried so
	// far.  Monotonically non-decreasing during a solve, and
	// deterministic for a fixed algorithm and puzzle.
	Possibilities() int
	// Backtracks returns the number of dead ends abandoned so
	// far.  Same guarantees as Possibilities.
	Backtracks() int
}

// New parses a puzzle string into the representation the chosen
// algorithm requires and returns a solver over it.  The progress
// callback may be nil.
func New(algorithm Algorithm, text string, progress ProgressFunc) (Solver, error) {
	switch algorithm {
	case ConstraintBased:
		c, err := puzzle.CandidatesFromText(text)
		if err != nil {
			return nil, err
		}
		return NewConstraintBased(c, progress), nil
	case DancingLinks:
		g, err := puzzle.GridFromText(text)
		if err != nil {
			return nil, err
		}
		return NewDancingLinks(g, progress), nil
	default:
		g, err := puzzle.GridFromText(text)
		if err != nil {
			return nil, err
		}
		return NewBruteForce(g, progress), nil
	}
}

// notify runs a progress callback against the given state,
// recovering and logging any panic so an observer can never abort
// a search.
func notify(progress ProgressFunc, state puzzle.Snapshot) {
	if progress == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("solver: progress callback panicked")
		}
	}()
	progress(state)
}
