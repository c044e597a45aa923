package puzzle

/*

Puzzle geometry

Rows are lettered A-I (top to bottom) and columns are numbered 1-9
(left to right), so every cell has a name like "C5".  The cells
are constrained by 27 units (9 rows, 9 columns, 9 boxes), and each
cell has 20 peers (the other cells of its three units).  All of
this is fixed for the 9x9 geometry, so it is computed once at
package initialization and never modified afterwards.

*/

// Geometry constants for the standard 9x9 puzzle.
const (
	SideLength = 9
	BoxSide    = 3
	GridSize   = SideLength * SideLength
	UnitCount  = 3 * SideLength
	PeerCount  = 20
)

// rowLetters gives the name letter for each row, in row order.
const rowLetters = "ABCDEFGHI"

// CellName returns the name of the cell at the given row and
// column (both 1-based), e.g. CellName(3, 5) == "C5".  Doesn't do
// range checking.
func CellName(row, col int) string {
	return string(rowLetters[row-1]) + string('0'+byte(col))
}

// CellAt is the inverse of CellName: it returns the 1-based row
// and column of a named cell.  The second return value is false
// if the name is not a valid cell name.
func CellAt(name string) (row, col int, ok bool) {
	if len(name) != 2 {
		return 0, 0, false
	}
	if name[0] < 'A' || name[0] > 'I' || name[1] < '1' || name[1] > '9' {
		return 0, 0, false
	}
	return int(name[0]-'A') + 1, int(name[1] - '0'), true
}

// BoxOf returns the 1-based box number of the cell at the given
// row and column.  Boxes are numbered box-major: box 1 is the
// top-left 3x3 box, box 3 the top-right, box 9 the bottom-right.
func BoxOf(row, col int) int {
	return ((row-1)/BoxSide)*BoxSide + (col-1)/BoxSide + 1
}

// cellIndex returns the 0-based row-major index of a cell.
func cellIndex(row, col int) int {
	return (row-1)*SideLength + (col - 1)
}

/*

Precomputed unit and peer tables

*/

var (
	// Cells lists all 81 cell names in row-major (reading) order.
	// This is also the canonical iteration order whenever
	// deterministic behavior requires one.
	Cells []string

	// Units lists the 27 units; each unit is 9 cell names.  The
	// order is rows A-I, then columns 1-9, then boxes 1-9.
	Units [][]string

	// unitsOf maps a cell name to the (three) units containing it.
	unitsOf map[string][][]string

	// peersOf maps a cell name to its 20 peers, sorted by name.
	peersOf map[string][]string
)

// UnitsOf returns the three units containing the named cell.  The
// returned slices are shared and must not be modified.
func UnitsOf(name string) [][]string {
	return unitsOf[name]
}

// PeersOf returns the 20 peers of the named cell, sorted by cell
// name.  The returned slice is shared and must not be modified.
func PeersOf(name string) []string {
	return peersOf[name]
}

func init() {
	Cells = make([]string, 0, GridSize)
	for row := 1; row <= SideLength; row++ {
		for col := 1; col <= SideLength; col++ {
			Cells = append(Cells, CellName(row, col))
		}
	}

	Units = make([][]string, 0, UnitCount)
	for row := 1; row <= SideLength; row++ {
		unit := make([]string, SideLength)
		for col := 1; col <= SideLength; col++ {
			unit[col-1] = CellName(row, col)
		}
		Units = append(Units, unit)
	}
	for col := 1; col <= SideLength; col++ {
		unit := make([]string, SideLength)
		for row := 1; row <= SideLength; row++ {
			unit[row-1] = CellName(row, col)
		}
		Units = append(Units, unit)
	}
	for box := 1; box <= SideLength; box++ {
		baseRow, baseCol := ((box-1)/BoxSide)*BoxSide+1, ((box-1)%BoxSide)*BoxSide+1
		unit := make([]string, 0, SideLength)
		for r := 0; r < BoxSide; r++ {
			for c := 0; c < BoxSide; c++ {
				unit = append(unit, CellName(baseRow+r, baseCol+c))
			}
		}
		Units = append(Units, unit)
	}

	unitsOf = make(map[string][][]string, GridSize)
	peersOf = make(map[string][]string, GridSize)
	for _, cell := range Cells {
		for _, unit := range Units {
			for _, member := range unit {
				if member == cell {
					unitsOf[cell] = append(unitsOf[cell], unit)
					break
				}
			}
		}
		seen := make(map[string]bool, PeerCount)
		for _, unit := range unitsOf[cell] {
			for _, member := range unit {
				if member != cell {
					seen[member] = true
				}
			}
		}
		// collect peers in canonical cell order so iteration
		// over them is deterministic
		peers := make([]string, 0, PeerCount)
		for _, c := range Cells {
			if seen[c] {
				peers = append(peers, c)
			}
		}
		peersOf[cell] = peers
	}
}
