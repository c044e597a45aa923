package dlx

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

/*

Dancing links (DLX)

An implementation of Knuth's Algorithm X for the exact cover
problem, using the dancing links technique: the 0/1 constraint
matrix is held as a sparse grid of nodes threaded on circular
doubly-linked lists in both directions.  Covering a column splices
its header out of the header row and splices every node of every
row in that column out of the other columns' vertical lists;
uncovering walks the same lists in the opposite direction and
splices everything back.  The two operations are exact inverses,
which is what makes backtracking cheap: nothing is copied, the
links just dance.

Cover and uncover calls must nest in strict LIFO order.  There is
no runtime check for this; violating it corrupts the pointer
structure silently.

A Matrix is single-use and single-threaded: build it, search it,
read the counters.  Concurrent solves need one Matrix each.

*/

// A node is one 1-entry of the constraint matrix.  Its horizontal
// ring links the 1-entries of its matrix row; its vertical ring
// links the 1-entries of its column, anchored at the column
// header.
type node struct {
	left, right, up, down *node
	col                   *column
}

// A column is a constraint: the header of a vertical ring of
// nodes.  The header is itself a node so it can sit in the rings;
// its col field points back at itself.  The ordinal records
// declaration order and is the final, deterministic tie-breaker
// for column selection.
type column struct {
	node
	name string
	size int
	ord  int
}

// A Matrix is the sparse representation of an exact cover
// problem, plus the state of one search over it.
type Matrix struct {
	root              *column
	solution          map[int]*node
	depth             int // recursion depth at which the solution was found
	minimizeBranching bool
	possibilities     int
	backtracks        int
	progress          func()
}

// An Option adjusts the construction of a Matrix.
type Option func(*Matrix)

// MinimizeBranching makes the search branch on the column with
// the fewest remaining rows instead of the leftmost uncovered
// column, at the cost of maintaining column sizes during cover
// and uncover.  Ties break by column name, then by declaration
// order, so the search is fully deterministic.
func MinimizeBranching() Option {
	return func(m *Matrix) { m.minimizeBranching = true }
}

// WithProgress registers a callback invoked once per possibility
// attempted during the search.  The callback must not block or
// touch the matrix; a panicking callback is logged and swallowed,
// never allowed to abort the search.
func WithProgress(fn func()) Option {
	return func(m *Matrix) { m.progress = fn }
}

// New builds a Matrix from a 0/1 matrix and its column names.
// Every row of the input must be the same width as names; rows
// with no 1-entries are legal and simply never participate.  If
// names is nil, columns are named A, B, C, ... (or 1, 2, 3, ...
// past 26 columns).
func New(matrix [][]int, names []string, opts ...Option) *Matrix {
	m := &Matrix{
		root:     &column{name: "root"},
		solution: make(map[int]*node),
	}
	m.root.col = m.root
	m.root.left, m.root.right = &m.root.node, &m.root.node
	for _, opt := range opts {
		opt(m)
	}
	if len(matrix) == 0 {
		return m
	}
	if names == nil {
		names = defaultNames(len(matrix[0]))
	}

	// the column headers, a circular row anchored at the root
	columns := make([]*column, len(names))
	prev := &m.root.node
	for i, name := range names {
		c := &column{name: name, ord: i}
		c.col = c
		c.up, c.down = &c.node, &c.node
		c.left = prev
		prev.right = &c.node
		prev = &c.node
		columns[i] = c
	}
	prev.right = &m.root.node
	m.root.left = prev

	// the nodes, row by row: each 1-entry joins the bottom of its
	// column's vertical ring and a circular horizontal ring with
	// the other 1-entries of its matrix row
	for _, row := range matrix {
		var first, last *node
		for i, value := range row {
			if value != 1 {
				continue
			}
			c := columns[i]
			n := &node{col: c}
			n.down = &c.node
			n.up = c.node.up
			c.node.up.down = n
			c.node.up = n
			c.size++
			if first == nil {
				first = n
				n.left, n.right = n, n
			} else {
				n.left = last
				n.right = first
				last.right = n
				first.left = n
			}
			last = n
		}
	}
	return m
}

// defaultNames generates fallback column names.
func defaultNames(count int) []string {
	names := make([]string, count)
	for i := range names {
		if count <= 26 {
			names[i] = string(rune('A' + i))
		} else {
			names[i] = strconv.Itoa(i + 1)
		}
	}
	return names
}

// Possibilities returns the number of possibilities tried so far:
// one per column chosen for branching.
func (m *Matrix) Possibilities() int {
	return m.possibilities
}

// Backtracks returns the number of backtracks so far: one per
// chosen column whose rows were all exhausted without a solution.
func (m *Matrix) Backtracks() int {
	return m.backtracks
}

// Search runs the recursive search and returns the first solution
// found: one entry per selected matrix row, each listing the
// names of the constraint columns that row satisfies.  Returns
// nil if the constraints cannot be exactly covered.
//
// On success the cover state is left as-is (the structure is
// single-use); on failure every cover has been matched by an
// uncover and the matrix is back in its initial state.
func (m *Matrix) Search() [][]string {
	if m.search(0) {
		return m.solutionRows()
	}
	return nil
}

func (m *Matrix) search(k int) bool {
	if m.root.right == &m.root.node {
		// every constraint is covered
		m.depth = k
		return true
	}
	c := m.nextColumn()
	m.cover(c)
	m.possibilities++
	m.notify()
	for r := c.down; r != &c.node; r = r.down {
		m.solution[k] = r
		for j := r.right; j != r; j = j.right {
			m.cover(j.col)
		}
		if m.search(k + 1) {
			// leave the covers in place; the solution is read
			// straight out of the structure
			return true
		}
		for j := r.left; j != r; j = j.left {
			m.uncover(j.col)
		}
	}
	m.uncover(c)
	m.backtracks++
	return false
}

// nextColumn picks the column to branch on: the root's right
// neighbor, or under MinimizeBranching the minimum-size live
// column with ties broken by (name, ordinal).
func (m *Matrix) nextColumn() *column {
	if !m.minimizeBranching {
		return m.root.right.col
	}
	var best *column
	for h := m.root.right; h != &m.root.node; h = h.right {
		c := h.col
		if best == nil || less(c, best) {
			best = c
		}
	}
	return best
}

// less orders columns by (size, name, ordinal).
func less(a, b *column) bool {
	if a.size != b.size {
		return a.size < b.size
	}
	if a.name != b.name {
		return a.name < b.name
	}
	return a.ord < b.ord
}

// cover splices the column header out of the header row, then
// splices every node of every row in the column out of its own
// column's vertical ring.  The horizontal rings are left intact;
// uncover depends on that.
func (m *Matrix) cover(c *column) {
	c.right.left = c.left
	c.left.right = c.right
	for i := c.down; i != &c.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			if m.minimizeBranching {
				j.col.size--
			}
		}
	}
}

// uncover is the exact mirror of cover: walk the vertical rings
// upward re-splicing each node, then re-link the header.
func (m *Matrix) uncover(c *column) {
	for i := c.up; i != &c.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			if m.minimizeBranching {
				j.col.size++
			}
			j.down.up = j
			j.up.down = j
		}
	}
	c.right.left = &c.node
	c.left.right = &c.node
}

// solutionRows reads the selected rows out of the accumulator for
// depths 0 through depth-1: for each chosen node, its own column
// name followed by the column names of the rest of its row ring.
func (m *Matrix) solutionRows() [][]string {
	rows := make([][]string, 0, m.depth)
	for k := 0; k < m.depth; k++ {
		n := m.solution[k]
		names := []string{n.col.name}
		for j := n.right; j != n; j = j.right {
			names = append(names, j.col.name)
		}
		rows = append(rows, names)
	}
	return rows
}

// notify invokes the progress callback, if any.  A panic in the
// callback is logged and swallowed; the search must not be
// aborted by an observer.
func (m *Matrix) notify() {
	if m.progress == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("dlx: progress callback panicked")
		}
	}()
	m.progress()
}
