package solver

import (
	"fmt"

	"github.com/will2dye4/sudoku/dlx"
	"github.com/will2dye4/sudoku/puzzle"
)

/*

Exact cover via dancing links

Solving a sudoku is an exact cover problem over four constraint
families: every cell holds a value, every row has each value once,
every column has each value once, every box has each value once.
The reduction builds a 729x324 0/1 matrix (one row per cell/value
candidate, one column per constraint) from the current grid state
and hands it to the generic DLX engine; the engine knows nothing
about sudoku.  A solution comes back as 81 selected matrix rows,
each naming the four constraints it satisfies, and decodes back
into a grid.

Constraint names follow a fixed scheme: R3C5 (cell occupancy),
R3#7 (row value), C5#7 (column value), B4#7 (box value).

*/

const (
	matrixRows    = puzzle.GridSize * puzzle.SideLength // 729
	matrixColumns = 4 * puzzle.GridSize                 // 324
)

// allConstraints lists the 324 constraint column names in their
// canonical order: cell occupancy, then row values, then column
// values, then box values.
var allConstraints = buildConstraintNames()

func buildConstraintNames() []string {
	names := make([]string, 0, matrixColumns)
	for r := 1; r <= puzzle.SideLength; r++ {
		for c := 1; c <= puzzle.SideLength; c++ {
			names = append(names, fmt.Sprintf("R%dC%d", r, c))
		}
	}
	for r := 1; r <= puzzle.SideLength; r++ {
		for n := 1; n <= puzzle.SideLength; n++ {
			names = append(names, fmt.Sprintf("R%d#%d", r, n))
		}
	}
	for c := 1; c <= puzzle.SideLength; c++ {
		for n := 1; n <= puzzle.SideLength; n++ {
			names = append(names, fmt.Sprintf("C%d#%d", c, n))
		}
	}
	for b := 1; b <= puzzle.SideLength; b++ {
		for n := 1; n <= puzzle.SideLength; n++ {
			names = append(names, fmt.Sprintf("B%d#%d", b, n))
		}
	}
	return names
}

// constraintColumns returns the four constraint column indices
// satisfied by placing value at (row, col).
func constraintColumns(row, col, value int) [4]int {
	cell := (row-1)*puzzle.SideLength + (col - 1)
	rowNum := puzzle.GridSize + (row-1)*puzzle.SideLength + (value - 1)
	colNum := 2*puzzle.GridSize + (col-1)*puzzle.SideLength + (value - 1)
	boxNum := 3*puzzle.GridSize + (puzzle.BoxOf(row, col)-1)*puzzle.SideLength + (value - 1)
	return [4]int{cell, rowNum, colNum, boxNum}
}

// buildMatrix builds the 729x324 constraint matrix for the
// current state of a grid.  Every cell contributes nine rows, one
// per candidate value; candidates inconsistent with a filled cell
// contribute an all-zero row, which the engine ignores.
func buildMatrix(g *puzzle.Grid) [][]int {
	matrix := make([][]int, 0, matrixRows)
	for row := 1; row <= puzzle.SideLength; row++ {
		for col := 1; col <= puzzle.SideLength; col++ {
			fixed := g.Value(row, col)
			for value := 1; value <= puzzle.SideLength; value++ {
				matrixRow := make([]int, matrixColumns)
				if fixed == 0 || fixed == value {
					for _, i := range constraintColumns(row, col, value) {
						matrixRow[i] = 1
					}
				}
				matrix = append(matrix, matrixRow)
			}
		}
	}
	return matrix
}

// decodeSolution converts the engine's solution rows back into a
// solved grid, carrying the clue flags of the source grid.  A
// solution that is not exactly 81 rows of exactly 4 constraints
// indicates a defect in the reduction itself, not a bad puzzle;
// that is a fatal internal error and panics with a ReductionScope
// Error.
func decodeSolution(source *puzzle.Grid, solution [][]string) *puzzle.Grid {
	if len(solution) != puzzle.GridSize {
		panic(puzzle.Error{
			Scope:     puzzle.ReductionScope,
			Condition: puzzle.WrongSolutionSizeCondition,
			Values:    puzzle.ErrorData{len(solution), puzzle.GridSize},
		})
	}
	solved := source.Copy()
	for _, constraints := range solution {
		if len(constraints) != 4 {
			panic(puzzle.Error{
				Scope:     puzzle.ReductionScope,
				Condition: puzzle.WrongConstraintCountCondition,
				Values:    puzzle.ErrorData{len(constraints), 4},
			})
		}
		row, col, value := 0, 0, 0
		for _, name := range constraints {
			if name[0] == 'R' && name[2] == 'C' {
				row, col = int(name[1]-'0'), int(name[3]-'0')
			} else if name[2] == '#' {
				value = int(name[3] - '0')
			}
		}
		solved.Set(row, col, value)
	}
	return solved
}

// A DancingLinksSolver solves a dense grid by reduction to exact
// cover.  The constraint matrix is rebuilt from the grid on every
// Solve call; counters are read through to the underlying engine.
type DancingLinksSolver struct {
	grid              *puzzle.Grid
	progress          ProgressFunc
	minimizeBranching bool
	matrix            *dlx.Matrix
}

// NewDancingLinks returns an exact-cover solver over the given
// grid.  The progress callback may be nil.
func NewDancingLinks(grid *puzzle.Grid, progress ProgressFunc) *DancingLinksSolver {
	return &DancingLinksSolver{grid: grid, progress: progress}
}

// NewDancingLinksMinimized is NewDancingLinks with branch
// minimization enabled in the underlying engine: the search
// branches on the constraint with the fewest remaining
// candidates.  The solved grid is identical either way; only the
// amount of work differs.
func NewDancingLinksMinimized(grid *puzzle.Grid, progress ProgressFunc) *DancingLinksSolver {
	return &DancingLinksSolver{grid: grid, progress: progress, minimizeBranching: true}
}

// Solve builds the constraint matrix, runs the engine, and
// decodes the result.
func (s *DancingLinksSolver) Solve() (*puzzle.Grid, bool) {
	opts := []dlx.Option{}
	if s.minimizeBranching {
		opts = append(opts, dlx.MinimizeBranching())
	}
	if s.progress != nil {
		progress := s.progress
		opts = append(opts, dlx.WithProgress(func() {
			// the engine works on abstract constraints; there is
			// no partial grid to report
			notify(progress, nil)
		}))
	}
	s.matrix = dlx.New(buildMatrix(s.grid), allConstraints, opts...)
	solution := s.matrix.Search()
	if solution == nil {
		return nil, false
	}
	return decodeSolution(s.grid, solution), true
}

// Possibilities returns the engine's possibilities-tried counter,
// or 0 before the first Solve.
func (s *DancingLinksSolver) Possibilities() int {
	if s.matrix == nil {
		return 0
	}
	return s.matrix.Possibilities()
}

// Backtracks returns the engine's backtrack counter, or 0 before
// the first Solve.
func (s *DancingLinksSolver) Backtracks() int {
	if s.matrix == nil {
		return 0
	}
	return s.matrix.Backtracks()
}
