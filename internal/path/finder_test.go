package path

import (
	"testing"

	"github.com/samdwyer/gridtactics/internal/grid"
)

func checkWalk(t *testing.T, from grid.Cell, route []grid.Cell) {
	t.Helper()
	prev := from
	for i, c := range route {
		if prev.Manhattan(c) != 1 {
			t.Fatalf("step %d from %s to %s is not adjacent", i, prev, c)
		}
		prev = c
	}
}

func TestRouteOpenBoard(t *testing.T) {
	f := NewFinder(grid.New(10, 10), nil)
	from, to := grid.C(0, 0), grid.C(3, 2)

	route := f.Route(from, to)

	if len(route) != 5 {
		t.Fatalf("route length = %d, want 5: %v", len(route), route)
	}
	if route[len(route)-1] != to {
		t.Errorf("route ends at %s, want %s", route[len(route)-1], to)
	}
	checkWalk(t, from, route)
}

func TestRouteSameCell(t *testing.T) {
	f := NewFinder(grid.New(5, 5), nil)
	if route := f.Route(grid.C(2, 2), grid.C(2, 2)); len(route) != 0 {
		t.Errorf("route to self = %v, want empty", route)
	}
}

func TestRouteAvoidsBlocked(t *testing.T) {
	// A wall at column 2 with one gap at row 4.
	wall := grid.NewCellSet(grid.C(2, 0), grid.C(2, 1), grid.C(2, 2), grid.C(2, 3))
	f := NewFinder(grid.New(5, 5), wall.Has)

	from, to := grid.C(0, 0), grid.C(4, 0)
	route := f.Route(from, to)

	for _, c := range route {
		if wall.Has(c) {
			t.Fatalf("route passes through blocked %s: %v", c, route)
		}
	}
	if len(route) != 12 {
		t.Errorf("route length = %d, want 12: %v", len(route), route)
	}
	checkWalk(t, from, route)
}

func TestRouteFallsBackWhenSealed(t *testing.T) {
	wall := grid.NewCellSet(grid.C(1, 0), grid.C(0, 1), grid.C(1, 1))
	f := NewFinder(grid.New(4, 4), wall.Has)

	from, to := grid.C(0, 0), grid.C(3, 3)
	route := f.Route(from, to)

	want := LRoute(from, to)
	if len(route) != len(want) {
		t.Fatalf("fallback route = %v, want %v", route, want)
	}
	for i := range want {
		if route[i] != want[i] {
			t.Errorf("fallback step %d = %s, want %s", i, route[i], want[i])
		}
	}
}

func TestLRoute(t *testing.T) {
	route := LRoute(grid.C(3, 3), grid.C(1, 4))
	want := []grid.Cell{grid.C(2, 3), grid.C(1, 3), grid.C(1, 4)}

	if len(route) != len(want) {
		t.Fatalf("LRoute() = %v, want %v", route, want)
	}
	for i := range want {
		if route[i] != want[i] {
			t.Errorf("LRoute()[%d] = %s, want %s", i, route[i], want[i])
		}
	}
}
