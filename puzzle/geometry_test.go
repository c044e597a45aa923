package puzzle

import (
	"reflect"
	"sort"
	"testing"
)

func TestCellName(t *testing.T) {
	cases := []struct {
		row, col int
		name     string
	}{
		{1, 1, "A1"},
		{3, 5, "C5"},
		{9, 9, "I9"},
		{1, 9, "A9"},
		{9, 1, "I1"},
	}
	for _, tc := range cases {
		if got := CellName(tc.row, tc.col); got != tc.name {
			t.Errorf("CellName(%d, %d): got %q, want %q", tc.row, tc.col, got, tc.name)
		}
	}
}

func TestCellAtInvertsCellName(t *testing.T) {
	for row := 1; row <= SideLength; row++ {
		for col := 1; col <= SideLength; col++ {
			r, c, ok := CellAt(CellName(row, col))
			if !ok || r != row || c != col {
				t.Fatalf("CellAt(CellName(%d, %d)): got (%d, %d, %v)", row, col, r, c, ok)
			}
		}
	}
	for _, bad := range []string{"", "A", "A0", "J1", "A10", "11", "aa"} {
		if _, _, ok := CellAt(bad); ok {
			t.Errorf("CellAt(%q): expected failure", bad)
		}
	}
}

func TestBoxOf(t *testing.T) {
	cases := []struct {
		row, col, box int
	}{
		{1, 1, 1},
		{3, 3, 1},
		{1, 4, 2},
		{1, 9, 3},
		{4, 1, 4},
		{5, 5, 5},
		{6, 9, 6},
		{9, 1, 7},
		{7, 6, 8},
		{9, 9, 9},
	}
	for _, tc := range cases {
		if got := BoxOf(tc.row, tc.col); got != tc.box {
			t.Errorf("BoxOf(%d, %d): got %d, want %d", tc.row, tc.col, got, tc.box)
		}
	}
}

func TestCellsOrder(t *testing.T) {
	if len(Cells) != GridSize {
		t.Fatalf("len(Cells): got %d, want %d", len(Cells), GridSize)
	}
	if Cells[0] != "A1" || Cells[8] != "A9" || Cells[9] != "B1" || Cells[80] != "I9" {
		t.Errorf("Cells is not in row-major order: %v ... %v", Cells[:10], Cells[80])
	}
}

func TestUnits(t *testing.T) {
	if len(Units) != UnitCount {
		t.Fatalf("len(Units): got %d, want %d", len(Units), UnitCount)
	}
	for i, unit := range Units {
		if len(unit) != SideLength {
			t.Errorf("unit %d has %d cells, want %d", i, len(unit), SideLength)
		}
	}
	// spot check one of each kind
	wantRow := []string{"C1", "C2", "C3", "C4", "C5", "C6", "C7", "C8", "C9"}
	if !reflect.DeepEqual(Units[2], wantRow) {
		t.Errorf("row unit C: got %v, want %v", Units[2], wantRow)
	}
	wantCol := []string{"A5", "B5", "C5", "D5", "E5", "F5", "G5", "H5", "I5"}
	if !reflect.DeepEqual(Units[13], wantCol) {
		t.Errorf("column unit 5: got %v, want %v", Units[13], wantCol)
	}
	wantBox := []string{"G7", "G8", "G9", "H7", "H8", "H9", "I7", "I8", "I9"}
	if !reflect.DeepEqual(Units[26], wantBox) {
		t.Errorf("box unit 9: got %v, want %v", Units[26], wantBox)
	}
}

func TestUnitsOf(t *testing.T) {
	for _, cell := range Cells {
		units := UnitsOf(cell)
		if len(units) != 3 {
			t.Fatalf("UnitsOf(%q): got %d units, want 3", cell, len(units))
		}
		for _, unit := range units {
			found := false
			for _, member := range unit {
				if member == cell {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("UnitsOf(%q): unit %v does not contain the cell", cell, unit)
			}
		}
	}
}

func TestPeersOf(t *testing.T) {
	for _, cell := range Cells {
		peers := PeersOf(cell)
		if len(peers) != PeerCount {
			t.Fatalf("PeersOf(%q): got %d peers, want %d", cell, len(peers), PeerCount)
		}
		if !sort.StringsAreSorted(peers) {
			t.Errorf("PeersOf(%q) is not sorted: %v", cell, peers)
		}
		for _, peer := range peers {
			if peer == cell {
				t.Errorf("PeersOf(%q) contains the cell itself", cell)
			}
		}
	}
	want := []string{
		"A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9",
		"B1", "B2", "B3", "C1", "C2", "C3",
		"D1", "E1", "F1", "G1", "H1", "I1",
	}
	if got := PeersOf("A1"); !reflect.DeepEqual(got, want) {
		t.Errorf("PeersOf(A1):\n got %v\nwant %v", got, want)
	}
}
