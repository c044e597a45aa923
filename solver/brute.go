package solver

import (
	"github.com/will2dye4/sudoku/puzzle"
)

/*

Brute force

Depth-first assignment of 1..9 into the first empty cell in
reading order, validating the whole grid after each placement and
resetting the cell on dead ends.  Hopeless on the hardest puzzles
but a fine baseline, and the simplest possible reference for what
"correct" means.

*/

// A BruteForceSolver solves a dense grid by exhaustive
// backtracking.  It mutates the grid it wraps.
type BruteForceSolver struct {
	grid          *puzzle.Grid
	progress      ProgressFunc
	possibilities int
	backtracks    int
}

// NewBruteForce returns a brute-force solver over the given grid.
// The progress callback may be nil.
func NewBruteForce(grid *puzzle.Grid, progress ProgressFunc) *BruteForceSolver {
	return &BruteForceSolver{grid: grid, progress: progress}
}

// Solve runs the search.  The wrapped grid ends up solved on
// success and restored to its starting state on failure.
func (s *BruteForceSolver) Solve() (*puzzle.Grid, bool) {
	if !s.grid.IsValid() {
		return nil, false
	}
	if s.solve() {
		return s.grid, true
	}
	return nil, false
}

func (s *BruteForceSolver) solve() bool {
	if s.grid.IsSolved() {
		return true
	}
	row, col, ok := s.grid.NextEmpty()
	if !ok {
		return false
	}
	for value := 1; value <= puzzle.SideLength; value++ {
		s.grid.Set(row, col, value)
		s.possibilities++
		notify(s.progress, s.grid)
		if s.grid.IsValid() && s.solve() {
			return true
		}
	}
	s.grid.Set(row, col, 0)
	s.backtracks++
	return false
}

// Possibilities returns the number of placements attempted.
func (s *BruteForceSolver) Possibilities() int {
	return s.possibilities
}

// Backtracks returns the number of cells reset on dead ends.
func (s *BruteForceSolver) Backtracks() int {
	return s.backtracks
}
