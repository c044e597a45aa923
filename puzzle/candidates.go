package puzzle

/*

Candidate-set model

The sparse representation of a puzzle: a mapping from each cell
name to the set of values still possible at that cell.  Assigning
a value eliminates all other candidates from the cell, and every
elimination propagates: a cell collapsing to a single candidate
eliminates that value from its peers, and a unit left with a
single place for a value assigns the value there.  The two
operations are mutually recursive and run to a fixpoint.

Candidate sets are never mutated in place, only replaced.  That
makes Clone a shallow copy of the mapping: a clone and its parent
can share candidate sets safely because any change in either
replaces the affected entry.  Backtracking is implemented by
discarding failed clones rather than undoing edits.

*/

// A Candidates holds the per-cell candidate sets of a puzzle.
// The clue set is established at construction, shared by all
// clones, and never mutated afterwards.
type Candidates struct {
	values map[string]intset
	clues  map[string]bool
	broken bool // contradiction found while applying the clues
}

// newCandidates returns a candidate state with every cell able to
// hold every value.
func newCandidates() *Candidates {
	values := make(map[string]intset, GridSize)
	for _, cell := range Cells {
		values[cell] = newIntsetRange(SideLength)
	}
	return &Candidates{values: values, clues: make(map[string]bool, GridSize)}
}

// CandidatesFromText parses a puzzle string into a candidate
// state, applying each given value with full propagation and
// recording it as a clue.  The only parse failure is a
// FormatScope Error for a wrong significant-character count; a
// contradictory set of clues does not fail here, it makes the
// puzzle unsolvable (see Contradicted).
func CandidatesFromText(text string) (*Candidates, error) {
	values, err := ParseText(text)
	if err != nil {
		return nil, err
	}
	c := newCandidates()
	for i, v := range values {
		if v == 0 {
			continue
		}
		cell := Cells[i]
		c.clues[cell] = true
		if !c.assignCell(cell, v) {
			c.broken = true
		}
	}
	return c, nil
}

// Contradicted reports whether the puzzle's own clues were found
// contradictory during construction.  Such a puzzle has no
// solution.
func (c *Candidates) Contradicted() bool {
	return c.broken
}

// Assign removes every candidate other than value from the cell
// at the given 1-based row and column, propagating each
// elimination.  Returns false if propagation finds a
// contradiction, in which case the state is no longer usable and
// should be discarded.
func (c *Candidates) Assign(row, col, value int) bool {
	return c.assignCell(CellName(row, col), value)
}

func (c *Candidates) assignCell(cell string, value int) bool {
	others := newIntsetCopy(c.values[cell])
	others.remove(value)
	for _, v := range others {
		if !c.eliminate(cell, v) {
			return false
		}
	}
	return true
}

// Eliminate removes value from the candidates of the cell at the
// given 1-based row and column, propagating the consequences.
// Returns false on contradiction (see Assign).
func (c *Candidates) Eliminate(row, col, value int) bool {
	return c.eliminate(CellName(row, col), value)
}

// eliminate removes value from a cell's candidate set.  If the
// value was not a candidate there is nothing to do.  Otherwise,
// after the removal: an emptied set is a contradiction; a set
// collapsed to one value eliminates that value from every peer;
// and any unit left with exactly one place for value assigns it
// there (or fails if no place remains).
func (c *Candidates) eliminate(cell string, value int) bool {
	vals := c.values[cell]
	if !vals.has(value) {
		return true
	}
	vals = newIntsetCopy(vals)
	vals.remove(value)
	c.values[cell] = vals
	if len(vals) == 0 {
		return false
	}
	if len(vals) == 1 {
		last := vals[0]
		for _, peer := range PeersOf(cell) {
			if !c.eliminate(peer, last) {
				return false
			}
		}
	}
	for _, unit := range UnitsOf(cell) {
		var place string
		places := 0
		for _, member := range unit {
			if c.values[member].has(value) {
				places++
				place = member
			}
		}
		if places == 0 {
			return false
		}
		if places == 1 {
			if !c.assignCell(place, value) {
				return false
			}
		}
	}
	return true
}

// Value returns the determined value of the cell at the given
// 1-based row and column, or 0 if the cell still has multiple
// candidates.
func (c *Candidates) Value(row, col int) int {
	vals := c.values[CellName(row, col)]
	if len(vals) == 1 {
		return vals[0]
	}
	return 0
}

// CandidatesAt returns a copy of the candidate set of the cell at
// the given 1-based row and column.
func (c *Candidates) CandidatesAt(row, col int) []int {
	return newIntsetCopy(c.values[CellName(row, col)])
}

// IsSolved reports whether every cell has exactly one candidate.
func (c *Candidates) IsSolved() bool {
	for _, cell := range Cells {
		if len(c.values[cell]) != 1 {
			return false
		}
	}
	return true
}

// FewestCandidates returns the name of the undetermined cell with
// the fewest remaining candidates, and a copy of its candidates.
// Ties break to the first cell in canonical (reading) order, so
// the choice is deterministic.  The boolean is false if no cell
// has more than one candidate.
func (c *Candidates) FewestCandidates() (string, []int, bool) {
	best, bestLen := "", SideLength+1
	for _, cell := range Cells {
		if n := len(c.values[cell]); n > 1 && n < bestLen {
			best, bestLen = cell, n
		}
	}
	if best == "" {
		return "", nil, false
	}
	return best, newIntsetCopy(c.values[best]), true
}

// Clone returns a new candidate state for speculative work.  The
// mapping is copied; the candidate sets and the clue set are
// shared (sets are replaced on write, and clues are immutable).
func (c *Candidates) Clone() *Candidates {
	values := make(map[string]intset, len(c.values))
	for cell, vals := range c.values {
		values[cell] = vals
	}
	return &Candidates{values: values, clues: c.clues, broken: c.broken}
}

// ToGrid converts the candidate state to a dense grid, carrying
// the determined values and the clue flags.  Undetermined cells
// become empty cells.
func (c *Candidates) ToGrid() *Grid {
	g := &Grid{}
	for i, cell := range Cells {
		vals := c.values[cell]
		if len(vals) == 1 {
			g.values[i] = vals[0]
		}
		g.clues[i] = c.clues[cell]
	}
	return g
}
