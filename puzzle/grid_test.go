package puzzle

import (
	"testing"
)

const (
	easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	easySolved = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func TestGridFromText(t *testing.T) {
	g, err := GridFromText(easyPuzzle)
	if err != nil {
		t.Fatalf("GridFromText failed: %v", err)
	}
	if got := g.Value(1, 1); got != 5 {
		t.Errorf("Value(1, 1): got %d, want 5", got)
	}
	if got := g.Value(1, 3); got != 0 {
		t.Errorf("Value(1, 3): got %d, want 0", got)
	}
	if got := g.Value(9, 9); got != 9 {
		t.Errorf("Value(9, 9): got %d, want 9", got)
	}
	if !g.IsClue(1, 1) || g.IsClue(1, 3) {
		t.Errorf("clue flags don't match input: IsClue(1,1)=%v IsClue(1,3)=%v",
			g.IsClue(1, 1), g.IsClue(1, 3))
	}
	if got := g.ClueCount(); got != 30 {
		t.Errorf("ClueCount: got %d, want 30", got)
	}
}

func TestGridFromTextBadInput(t *testing.T) {
	for _, text := range []string{"", "12345", easyPuzzle + "1", easyPuzzle[:80]} {
		if _, err := GridFromText(text); err == nil {
			t.Errorf("GridFromText(%.20q...): expected error", text)
		}
	}
}

func TestSetDoesNotValidate(t *testing.T) {
	g := NewGrid()
	g.Set(1, 1, 5)
	g.Set(1, 2, 5)
	if g.Value(1, 2) != 5 {
		t.Fatal("Set should record the value even when it breaks the rules")
	}
	if g.IsValid() {
		t.Error("IsValid should reject two 5s in one row")
	}
	g.Set(1, 2, 0)
	if !g.IsValid() {
		t.Error("IsValid should accept the grid after clearing the duplicate")
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		name   string
		assign [][3]int // row, col, value
		valid  bool
	}{
		{"empty", nil, true},
		{"single value", [][3]int{{5, 5, 7}}, true},
		{"row duplicate", [][3]int{{2, 1, 4}, {2, 9, 4}}, false},
		{"column duplicate", [][3]int{{1, 3, 6}, {9, 3, 6}}, false},
		{"box duplicate", [][3]int{{1, 1, 8}, {3, 3, 8}}, false},
		{"value too large", [][3]int{{1, 1, 10}}, false},
		{"same value different units", [][3]int{{1, 1, 9}, {2, 4, 9}}, true},
	}
	for _, tc := range cases {
		g := NewGrid()
		for _, a := range tc.assign {
			g.Set(a[0], a[1], a[2])
		}
		if got := g.IsValid(); got != tc.valid {
			t.Errorf("%s: IsValid got %v, want %v", tc.name, got, tc.valid)
		}
	}
}

func TestIsSolved(t *testing.T) {
	solved, err := GridFromText(easySolved)
	if err != nil {
		t.Fatalf("GridFromText failed: %v", err)
	}
	if !solved.IsSolved() {
		t.Error("a complete valid grid should be solved")
	}
	partial, _ := GridFromText(easyPuzzle)
	if partial.IsSolved() {
		t.Error("a grid with empty cells is not solved")
	}
	broken := solved.Copy()
	broken.Set(1, 1, solved.Value(1, 2))
	if broken.IsSolved() {
		t.Error("a complete grid with a duplicate is not solved")
	}
}

func TestNextEmpty(t *testing.T) {
	g, _ := GridFromText(easyPuzzle)
	row, col, ok := g.NextEmpty()
	if !ok || row != 1 || col != 3 {
		t.Fatalf("NextEmpty: got (%d, %d, %v), want (1, 3, true)", row, col, ok)
	}
	g.Set(1, 3, 4)
	row, col, ok = g.NextEmpty()
	if !ok || row != 1 || col != 4 {
		t.Fatalf("NextEmpty after filling: got (%d, %d, %v), want (1, 4, true)", row, col, ok)
	}
	solved, _ := GridFromText(easySolved)
	if _, _, ok := solved.NextEmpty(); ok {
		t.Error("NextEmpty on a full grid should report no empty cell")
	}
}

func TestCopy(t *testing.T) {
	g, _ := GridFromText(easyPuzzle)
	c := g.Copy()
	c.Set(1, 3, 4)
	if g.Value(1, 3) != 0 {
		t.Error("mutating a copy changed the original")
	}
	if !c.IsClue(1, 1) || c.IsClue(1, 3) {
		t.Error("Copy should preserve clue flags")
	}
}
