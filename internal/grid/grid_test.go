package grid

import "testing"

type testOccupant struct {
	cell  Cell
	alive bool
}

func (o testOccupant) Cell() Cell    { return o.cell }
func (o testOccupant) IsAlive() bool { return o.alive }

func TestInBounds(t *testing.T) {
	g := New(10, 8)

	tests := []struct {
		cell     Cell
		expected bool
	}{
		{C(0, 0), true},
		{C(9, 7), true},
		{C(10, 0), false},
		{C(0, 8), false},
		{C(-1, 3), false},
		{C(3, -1), false},
	}

	for _, tt := range tests {
		if got := g.InBounds(tt.cell); got != tt.expected {
			t.Errorf("InBounds(%s) = %v, want %v", tt.cell, got, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	g := New(10, 10)

	tests := []struct {
		cell     Cell
		expected Cell
	}{
		{C(-1, 0), C(0, 0)},
		{C(10, 4), C(9, 4)},
		{C(4, 12), C(4, 9)},
		{C(5, 5), C(5, 5)},
	}

	for _, tt := range tests {
		if got := g.Clamp(tt.cell); got != tt.expected {
			t.Errorf("Clamp(%s) = %s, want %s", tt.cell, got, tt.expected)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g := New(7, 4)

	for i, c := range g.Cells() {
		if got := g.Index(c); got != i {
			t.Errorf("Index(%s) = %d, want %d", c, got, i)
		}
		back, ok := g.CellAt(i)
		if !ok || back != c {
			t.Errorf("CellAt(%d) = %s, %v, want %s", i, back, ok, c)
		}
	}

	if got := g.Index(C(7, 0)); got != -1 {
		t.Errorf("Index off board = %d, want -1", got)
	}
	if _, ok := g.CellAt(g.Size()); ok {
		t.Error("CellAt(Size()) should be out of range")
	}
}

func TestOccupiedCellsSkipsDead(t *testing.T) {
	occupants := []testOccupant{
		{cell: C(1, 1), alive: true},
		{cell: C(2, 2), alive: false},
		{cell: C(3, 3), alive: true},
	}

	taken := OccupiedCells(occupants)

	if taken.Len() != 2 {
		t.Fatalf("OccupiedCells() len = %d, want 2", taken.Len())
	}
	if !taken.Has(C(1, 1)) || !taken.Has(C(3, 3)) {
		t.Errorf("OccupiedCells() = %v, missing living occupants", taken.Sorted())
	}
	if taken.Has(C(2, 2)) {
		t.Error("OccupiedCells() should not include dead occupants")
	}
}

func TestCheckOccupancy(t *testing.T) {
	g := New(5, 5)

	ok := []testOccupant{
		{cell: C(1, 1), alive: true},
		{cell: C(1, 1), alive: false},
		{cell: C(2, 1), alive: true},
	}
	if err := CheckOccupancy(g, ok); err != nil {
		t.Errorf("CheckOccupancy() unexpected error: %v", err)
	}

	shared := []testOccupant{
		{cell: C(1, 1), alive: true},
		{cell: C(1, 1), alive: true},
	}
	if err := CheckOccupancy(g, shared); err == nil {
		t.Error("CheckOccupancy() should reject two living occupants on one cell")
	}

	offBoard := []testOccupant{{cell: C(5, 0), alive: true}}
	if err := CheckOccupancy(g, offBoard); err == nil {
		t.Error("CheckOccupancy() should reject an occupant off the board")
	}
}

func TestCellSetSorted(t *testing.T) {
	s := NewCellSet(C(2, 1), C(0, 1), C(5, 0))
	got := s.Sorted()
	want := []Cell{C(5, 0), C(0, 1), C(2, 1)}

	if len(got) != len(want) {
		t.Fatalf("Sorted() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sorted()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCellSetCloneIsIndependent(t *testing.T) {
	s := NewCellSet(C(1, 1))
	clone := s.Clone()
	clone.Add(C(2, 2))

	if s.Has(C(2, 2)) {
		t.Error("Clone() should not share storage with the original")
	}

	var empty CellSet
	if empty.Clone() != nil {
		t.Error("Clone() of nil set should be nil")
	}
	if empty.Has(C(0, 0)) {
		t.Error("nil set should contain nothing")
	}
}

func TestManhattan(t *testing.T) {
	if got := C(1, 2).Manhattan(C(4, 0)); got != 5 {
		t.Errorf("Manhattan() = %d, want 5", got)
	}
	if got := C(3, 3).Manhattan(C(3, 3)); got != 0 {
		t.Errorf("Manhattan() to self = %d, want 0", got)
	}
}

func TestFilterDropsOffBoardCells(t *testing.T) {
	g := New(4, 10)
	cells := NewCellSet(C(0, 0), C(3, 9), C(4, 5), C(-1, 2), C(2, 10), C(2, -1))

	got := g.Filter(cells)

	if got.Len() != 2 || !got.Has(C(0, 0)) || !got.Has(C(3, 9)) {
		t.Errorf("Filter() = %v, want [(0,0) (3,9)]", got.Sorted())
	}
	if cells.Len() != 6 {
		t.Error("Filter() should not modify its input")
	}
	if g.Filter(nil).Len() != 0 {
		t.Error("Filter(nil) should be empty")
	}
}
