package puzzle

import (
	"sort"
	"strconv"
	"strings"
)

/*

Sample puzzle catalog

A small library of well-known puzzles, by difficulty, for demos,
benchmarks, and tests.  The empty-N series is derived from one
solved grid by blanking its first N cells, giving a family of
solvable puzzles with a known, increasing number of empty cells.

*/

// solvedSample is a complete, valid grid (the solution to
// easy-1); the empty-N sample puzzles are cut from it.
const solvedSample = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

var samplePuzzles = map[string]string{
	"easy-1":   "530070000600195000098000060800060003400803001700020006060000280000419005000080079",
	"easy-2":   "003020600900305001001806400008102900700000008006708200002609500800203009005010300",
	"easy-3":   "200080300060070084030500209000105408000000000402706000301007040720040060004010003",
	"medium-1": "000000907000420180000705026100904000050000040000507009920108000034059000507000000",
	"medium-2": "030050040008010500460000012070502080000603000040109030250000098001020600080060020",
	"hard-1":   "4.....8.5.3..........7......2.....6.....8.4......1.......6.3.7.5..2.....1.4......",
	"hard-2":   "1....7.9..3..2...8..96..5....53..9...1..8...26....4...3......1..4......7..7...3..",
	"hard-3":   ".......12........3..23..4....18....5.6..7.8.......9.....85.....9...4.5..47...6...",
	"hard-4":   "..............3.85..1.2.......5.7.....4...1...9.......5......73..2.1........4...9",
	"hard-5":   "6....894.9....61...7..4....2..61..........2...89..2.......6...5.......3.8....16..",
}

// emptyCellCounts gives the sizes of the empty-N sample series.
var emptyCellCounts = []int{5, 10, 20, 30, 40, 50, 60}

func init() {
	for _, n := range emptyCellCounts {
		name := "empty-" + strconv.Itoa(n)
		samplePuzzles[name] = strings.Repeat(".", n) + solvedSample[n:]
	}
}

// ByName returns the 81-character string for a named sample
// puzzle, or a CatalogScope Error if the name is unknown.
func ByName(name string) (string, error) {
	text, ok := samplePuzzles[name]
	if !ok {
		return "", Error{
			Scope:     CatalogScope,
			Condition: UnknownPuzzleCondition,
			Attribute: NameAttribute,
			Values:    ErrorData{name},
		}
	}
	return text, nil
}

// SampleNames returns the names of all sample puzzles, sorted.
func SampleNames() []string {
	names := make([]string, 0, len(samplePuzzles))
	for name := range samplePuzzles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HardPuzzles returns the hard sample puzzle strings in name
// order, for benchmarking.
func HardPuzzles() []string {
	var puzzles []string
	for _, name := range SampleNames() {
		if strings.HasPrefix(name, "hard-") {
			puzzles = append(puzzles, samplePuzzles[name])
		}
	}
	return puzzles
}

// EmptyCellPuzzles returns the empty-N sample puzzle strings in
// increasing N order, for benchmarking solve time against the
// number of unknown cells.
func EmptyCellPuzzles() []string {
	puzzles := make([]string, len(emptyCellCounts))
	for i, n := range emptyCellCounts {
		puzzles[i] = samplePuzzles["empty-"+strconv.Itoa(n)]
	}
	return puzzles
}
