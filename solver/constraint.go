package solver

import (
	"github.com/will2dye4/sudoku/puzzle"
)

/*

Constraint propagation

Most of the work happens inside the candidate model: assigning a
value propagates eliminations to a fixpoint, and easy puzzles
collapse without any search at all.  When propagation stalls, the
solver branches on the undetermined cell with the fewest remaining
candidates, cloning the candidate state per branch; a failed
branch is simply discarded, so there is nothing to undo.

*/

// A ConstraintBasedSolver solves a candidate state by propagation
// plus minimum-remaining-values branching.
type ConstraintBasedSolver struct {
	cand          *puzzle.Candidates
	progress      ProgressFunc
	possibilities int
	backtracks    int
}

// NewConstraintBased returns a constraint-propagation solver over
// the given candidate state.  The progress callback may be nil.
func NewConstraintBased(cand *puzzle.Candidates, progress ProgressFunc) *ConstraintBasedSolver {
	return &ConstraintBasedSolver{cand: cand, progress: progress}
}

// Solve runs the search.
func (s *ConstraintBasedSolver) Solve() (*puzzle.Grid, bool) {
	if s.cand.Contradicted() {
		return nil, false
	}
	if solved, ok := s.solve(s.cand); ok {
		return solved.ToGrid(), true
	}
	return nil, false
}

func (s *ConstraintBasedSolver) solve(cand *puzzle.Candidates) (*puzzle.Candidates, bool) {
	if cand.IsSolved() {
		return cand, true
	}
	cell, values, ok := cand.FewestCandidates()
	if !ok {
		// no branchable cell but not solved: some cell has no
		// candidates left
		return nil, false
	}
	row, col, _ := puzzle.CellAt(cell)
	for _, value := range values {
		branch := cand.Clone()
		s.possibilities++
		if branch.Assign(row, col, value) {
			notify(s.progress, branch)
			if solved, ok := s.solve(branch); ok {
				return solved, true
			}
		}
	}
	s.backtracks++
	return nil, false
}

// Possibilities returns the number of branches attempted.
func (s *ConstraintBasedSolver) Possibilities() int {
	return s.possibilities
}

// Backtracks returns the number of cells whose candidate values
// were all exhausted without a solution.
func (s *ConstraintBasedSolver) Backtracks() int {
	return s.backtracks
}
