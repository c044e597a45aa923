package puzzle

import (
	"strings"
	"testing"
)

const easyCondensed = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestParseText(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"zeros for empty", easyPuzzle},
		{"dots for empty", easyCondensed},
		{"with whitespace", strings.Join(strings.Split(easyCondensed, ""), " ")},
		{"with grid glyphs", "|" + strings.ReplaceAll(easyCondensed, "4", "4|\n+---+")},
	}
	for _, tc := range cases {
		values, err := ParseText(tc.text)
		if err != nil {
			t.Fatalf("%s: ParseText failed: %v", tc.name, err)
		}
		if len(values) != GridSize {
			t.Fatalf("%s: got %d values, want %d", tc.name, len(values), GridSize)
		}
		if values[0] != 5 || values[2] != 0 || values[80] != 9 {
			t.Errorf("%s: wrong values: first %d third %d last %d",
				tc.name, values[0], values[2], values[80])
		}
	}
}

func TestParseTextWrongCount(t *testing.T) {
	for _, count := range []int{0, 1, 80, 82} {
		text := strings.Repeat(".", count)
		_, err := ParseText(text)
		if err == nil {
			t.Fatalf("ParseText of %d cells: expected error", count)
		}
		e, ok := err.(Error)
		if !ok {
			t.Fatalf("ParseText of %d cells: got %T, want puzzle.Error", count, err)
		}
		if e.Scope != FormatScope || e.Condition != WrongCellCountCondition {
			t.Errorf("ParseText of %d cells: wrong scope/condition in %+v", count, e)
		}
		if len(e.Values) == 0 || e.Values[0] != count {
			t.Errorf("ParseText of %d cells: error values %v don't report the count", count, e.Values)
		}
	}
}

func TestCondensedRoundTrip(t *testing.T) {
	g, err := GridFromText(easyPuzzle)
	if err != nil {
		t.Fatalf("GridFromText failed: %v", err)
	}
	if got := g.Condensed(); got != easyCondensed {
		t.Errorf("Condensed:\n got %s\nwant %s", got, easyCondensed)
	}
	back, err := GridFromText(g.Condensed())
	if err != nil {
		t.Fatalf("reparsing condensed output failed: %v", err)
	}
	if back.Condensed() != easyCondensed {
		t.Error("condensed output did not survive a round trip")
	}
}

func TestGridString(t *testing.T) {
	g, _ := GridFromText(easySolved)
	s := g.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 13 {
		t.Fatalf("display has %d lines, want 13:\n%s", len(lines), s)
	}
	if lines[0] != "+-------+-------+-------+" {
		t.Errorf("unexpected border line %q", lines[0])
	}
	if lines[1] != "| 5 3 4 | 6 7 8 | 9 1 2 |" {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if lines[12] != "+-------+-------+-------+" {
		t.Errorf("unexpected final border %q", lines[12])
	}
}

func TestGridStringEmptyCells(t *testing.T) {
	g, _ := GridFromText(easyPuzzle)
	lines := strings.Split(g.String(), "\n")
	if lines[1] != "| 5 3 . | . 7 . | . . . |" {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestStartingString(t *testing.T) {
	g, _ := GridFromText(easyPuzzle)
	before := g.String()
	g.Set(1, 3, 4)
	if g.String() == before {
		t.Fatal("String should show the new value")
	}
	if g.StartingString() != before {
		t.Error("StartingString should blank values that were not clues")
	}
}
