package puzzle

import (
	"strings"
)

/*

Parsing puzzle text

*/

// ParseText scans a puzzle string and returns its 81 cell values
// in row-major order, with 0 meaning an empty cell.  The digits
// 1-9 assign a value; '0' and '.' denote an empty cell; every
// other character (whitespace, grid-drawing glyphs, anything
// else) is ignored.  Returns a FormatScope Error if the number of
// significant characters is not exactly 81.
func ParseText(text string) ([]int, error) {
	values := make([]int, 0, GridSize)
	for _, char := range text {
		switch {
		case char >= '1' && char <= '9':
			values = append(values, int(char-'0'))
		case char == '0' || char == '.':
			values = append(values, 0)
		}
	}
	if len(values) != GridSize {
		return nil, formatError(len(values))
	}
	return values, nil
}

/*

Rendered forms of puzzles

*/

const horizontalLine = "+-------+-------+-------+\n"

// displayString renders any Snapshot as a boxed 9x9 grid with
// separators every 3 rows and columns.  Empty cells render as
// '.'.  Cells for which hide returns true also render as '.'.
func displayString(s Snapshot, hide func(row, col int) bool) string {
	var sb strings.Builder
	sb.WriteString(horizontalLine)
	for row := 1; row <= SideLength; row++ {
		sb.WriteByte('|')
		for col := 1; col <= SideLength; col++ {
			v := s.Value(row, col)
			if v == 0 || (hide != nil && hide(row, col)) {
				sb.WriteString(" .")
			} else {
				sb.WriteByte(' ')
				sb.WriteByte('0' + byte(v))
			}
			if col%BoxSide == 0 {
				sb.WriteString(" |")
			}
		}
		sb.WriteByte('\n')
		if row%BoxSide == 0 {
			sb.WriteString(horizontalLine)
		}
	}
	return sb.String()
}

// condensedString renders any Snapshot as its 81 cell values
// concatenated with no formatting, '.' for empty, for machine
// consumption.
func condensedString(s Snapshot) string {
	var sb strings.Builder
	sb.Grow(GridSize)
	for row := 1; row <= SideLength; row++ {
		for col := 1; col <= SideLength; col++ {
			v := s.Value(row, col)
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(v))
			}
		}
	}
	return sb.String()
}

// String renders the grid as a boxed 9x9 display.
func (g *Grid) String() string {
	return displayString(g, nil)
}

// StartingString renders the grid as a boxed 9x9 display with all
// non-clue values blanked, showing the puzzle as it was
// originally posed.
func (g *Grid) StartingString() string {
	return displayString(g, func(row, col int) bool { return !g.IsClue(row, col) })
}

// Condensed returns the grid's 81 values concatenated with no
// formatting, '.' for empty.
func (g *Grid) Condensed() string {
	return condensedString(g)
}

// String renders the candidate state as a boxed 9x9 display;
// undetermined cells render as '.'.
func (c *Candidates) String() string {
	return displayString(c, nil)
}

// Condensed returns the candidate state's 81 determined values
// concatenated with no formatting, '.' for undetermined.
func (c *Candidates) Condensed() string {
	return condensedString(c)
}
