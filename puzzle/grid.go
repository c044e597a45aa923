package puzzle

/*

Dense grid model

A Grid is the 9x9 matrix representation of a sudoku puzzle: one
value slot per cell, 0 meaning empty.  The cells whose values were
present in the original input are the puzzle's clues; the clue set
is established at construction and never mutated afterwards.

*/

// A Snapshot is a read-only view of a puzzle state, used for
// progress reporting.  Both puzzle representations implement it.
type Snapshot interface {
	// Value returns the value of the cell at the given 1-based
	// row and column, or 0 if the cell is undetermined.
	Value(row, col int) int
	// String renders the state as a boxed 9x9 grid.
	String() string
}

// A Grid holds the cell values and clue flags of a puzzle in
// row-major order.
type Grid struct {
	values [GridSize]int
	clues  [GridSize]bool
}

// NewGrid returns an empty grid (no values, no clues).
func NewGrid() *Grid {
	return &Grid{}
}

// GridFromText parses a puzzle string into a Grid, recording all
// assigned cells as clues.  See ParseText for the format; the
// only parse failure is a FormatScope Error when the string
// doesn't contain exactly 81 significant characters.
func GridFromText(text string) (*Grid, error) {
	values, err := ParseText(text)
	if err != nil {
		return nil, err
	}
	g := &Grid{}
	for i, v := range values {
		g.values[i] = v
		g.clues[i] = v != 0
	}
	return g, nil
}

// Value returns the value of the cell at the given 1-based row
// and column, or 0 if the cell is empty.
func (g *Grid) Value(row, col int) int {
	return g.values[cellIndex(row, col)]
}

// Set assigns a value (or 0 to clear) to the cell at the given
// 1-based row and column.  Set always succeeds structurally; use
// IsValid to check whether the resulting grid obeys the rules.
func (g *Grid) Set(row, col, value int) {
	g.values[cellIndex(row, col)] = value
}

// IsClue reports whether the cell at the given row and column was
// assigned in the original input.
func (g *Grid) IsClue(row, col int) bool {
	return g.clues[cellIndex(row, col)]
}

// ClueCount returns the number of clue cells in the grid.
func (g *Grid) ClueCount() int {
	count := 0
	for _, c := range g.clues {
		if c {
			count++
		}
	}
	return count
}

// IsValid reports whether the grid obeys the sudoku rules: every
// assigned value is in 1..9, and no unit contains the same value
// twice.  Empty cells are fine.
func (g *Grid) IsValid() bool {
	for _, v := range g.values {
		if v != 0 && (v < 1 || v > SideLength) {
			return false
		}
	}
	for _, unit := range Units {
		var seen [SideLength + 1]bool
		for _, cell := range unit {
			row, col, _ := CellAt(cell)
			v := g.Value(row, col)
			if v == 0 {
				continue
			}
			if seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	return true
}

// IsSolved reports whether the grid is valid and every cell has a
// value.
func (g *Grid) IsSolved() bool {
	for _, v := range g.values {
		if v == 0 {
			return false
		}
	}
	return g.IsValid()
}

// NextEmpty returns the row and column of the first empty cell in
// row-major order.  The third return value is false if the grid
// has no empty cells.
func (g *Grid) NextEmpty() (row, col int, ok bool) {
	for i, v := range g.values {
		if v == 0 {
			return i/SideLength + 1, i%SideLength + 1, true
		}
	}
	return 0, 0, false
}

// Copy returns a deep copy of the grid (values and clue flags).
func (g *Grid) Copy() *Grid {
	c := *g
	return &c
}
