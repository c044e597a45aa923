package puzzle

import (
	"reflect"
	"strings"
	"testing"
)

const emptyPuzzle81 = "................................................................................."

func TestCandidatesFromEmptyPuzzle(t *testing.T) {
	c, err := CandidatesFromText(emptyPuzzle81)
	if err != nil {
		t.Fatalf("CandidatesFromText failed: %v", err)
	}
	if c.Contradicted() {
		t.Fatal("an empty puzzle should not be contradicted")
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := c.CandidatesAt(5, 5); !reflect.DeepEqual(got, want) {
		t.Errorf("CandidatesAt(5, 5): got %v, want %v", got, want)
	}
	if c.Value(5, 5) != 0 {
		t.Errorf("Value of an undetermined cell should be 0, got %d", c.Value(5, 5))
	}
}

func TestPropagationSolvesEasyPuzzle(t *testing.T) {
	// this puzzle collapses completely under propagation alone
	c, err := CandidatesFromText(easyPuzzle)
	if err != nil {
		t.Fatalf("CandidatesFromText failed: %v", err)
	}
	if !c.IsSolved() {
		t.Fatal("expected propagation alone to solve the puzzle")
	}
	if got := c.Condensed(); got != easySolved {
		t.Errorf("solved values:\n got %s\nwant %s", got, easySolved)
	}
}

func TestContradictoryClues(t *testing.T) {
	// two 5s in the first row
	text := "55" + strings.Repeat(".", 79)
	c, err := CandidatesFromText(text)
	if err != nil {
		t.Fatalf("contradictory clues should parse, got error: %v", err)
	}
	if !c.Contradicted() {
		t.Error("expected the clue contradiction to be detected")
	}
}

func TestAssignAndEliminate(t *testing.T) {
	c, _ := CandidatesFromText(emptyPuzzle81)
	if !c.Assign(1, 1, 5) {
		t.Fatal("Assign(1, 1, 5) on an empty puzzle should succeed")
	}
	if got := c.Value(1, 1); got != 5 {
		t.Fatalf("Value(1, 1) after assign: got %d, want 5", got)
	}
	for _, peer := range PeersOf("A1") {
		row, col, _ := CellAt(peer)
		for _, v := range c.CandidatesAt(row, col) {
			if v == 5 {
				t.Fatalf("peer %s still has 5 as a candidate", peer)
			}
		}
	}
	if !c.Eliminate(9, 9, 3) {
		t.Fatal("Eliminate(9, 9, 3) should succeed")
	}
	want := []int{1, 2, 4, 5, 6, 7, 8, 9}
	if got := c.CandidatesAt(9, 9); !reflect.DeepEqual(got, want) {
		t.Errorf("CandidatesAt(9, 9): got %v, want %v", got, want)
	}
}

func TestAssignContradictionFails(t *testing.T) {
	c, _ := CandidatesFromText(emptyPuzzle81)
	if !c.Assign(1, 1, 5) {
		t.Fatal("first assign should succeed")
	}
	if c.Assign(1, 2, 5) {
		t.Error("assigning the same value to a peer should fail")
	}
}

func TestCloneIsolation(t *testing.T) {
	parent, _ := CandidatesFromText(emptyPuzzle81)
	branch := parent.Clone()
	if !branch.Assign(1, 1, 5) {
		t.Fatal("assign in the clone should succeed")
	}
	if parent.Value(1, 1) != 0 {
		t.Error("assigning in a clone changed the parent")
	}
	if got := len(parent.CandidatesAt(1, 2)); got != 9 {
		t.Errorf("parent peer candidates: got %d, want 9", got)
	}
}

func TestFewestCandidates(t *testing.T) {
	c, _ := CandidatesFromText(emptyPuzzle81)
	cell, values, ok := c.FewestCandidates()
	if !ok {
		t.Fatal("an unsolved puzzle should have a branchable cell")
	}
	if cell != "A1" {
		t.Errorf("tie should break to the first cell in reading order, got %q", cell)
	}
	if len(values) != 9 {
		t.Errorf("got %d candidates, want 9", len(values))
	}

	// after an elimination, the touched cell has the fewest
	c.Eliminate(1, 2, 7)
	cell, values, ok = c.FewestCandidates()
	if !ok || cell != "A2" || len(values) != 8 {
		t.Errorf("FewestCandidates: got (%q, %d values, %v), want (A2, 8, true)", cell, len(values), ok)
	}

	solved, _ := CandidatesFromText(easyPuzzle)
	if _, _, ok := solved.FewestCandidates(); ok {
		t.Error("a solved puzzle has no branchable cell")
	}
}

func TestToGrid(t *testing.T) {
	c, _ := CandidatesFromText(easyPuzzle)
	g := c.ToGrid()
	if !g.IsSolved() {
		t.Fatal("ToGrid of a solved candidate state should be solved")
	}
	if g.Condensed() != easySolved {
		t.Errorf("ToGrid values:\n got %s\nwant %s", g.Condensed(), easySolved)
	}
	if !g.IsClue(1, 1) {
		t.Error("ToGrid should carry clue flags for given cells")
	}
	if g.IsClue(1, 3) {
		t.Error("ToGrid should not mark derived cells as clues")
	}
}
