package grid

import "fmt"

// ColumnBound selects which board dimension limits the columns a range may
// spill into.
type ColumnBound int

const (
	// BoundByHeight checks columns against the row count. This is the
	// long-standing behavior and only matters on non-square boards.
	BoundByHeight ColumnBound = iota
	// BoundByWidth checks columns against the column count.
	BoundByWidth
)

// String returns the config name of the bound.
func (b ColumnBound) String() string {
	switch b {
	case BoundByHeight:
		return "height"
	case BoundByWidth:
		return "width"
	default:
		return "unknown"
	}
}

// ParseColumnBound converts a config name into a ColumnBound.
func ParseColumnBound(s string) (ColumnBound, error) {
	switch s {
	case "", "height":
		return BoundByHeight, nil
	case "width":
		return BoundByWidth, nil
	default:
		return BoundByHeight, fmt.Errorf("unknown column bound %q", s)
	}
}

// RangeCalculator computes diamond-shaped (Manhattan distance) ranges.
type RangeCalculator struct {
	grid  Grid
	bound ColumnBound
}

// NewRangeCalculator creates a calculator for the given board.
func NewRangeCalculator(g Grid, bound ColumnBound) *RangeCalculator {
	return &RangeCalculator{grid: g, bound: bound}
}

// CellsWithinRadius returns every cell within Manhattan distance radius of
// origin. Rows are clamped into the board rather than dropped, columns
// outside the column bound contribute nothing. The origin is included.
func (r *RangeCalculator) CellsWithinRadius(origin Cell, radius int) CellSet {
	out := make(CellSet)
	if radius < 0 {
		return out
	}
	r.collect(origin.Col, origin.Row, radius, out)
	return out
}

// TargetsWithinRadius is CellsWithinRadius without the origin, for attacks.
func (r *RangeCalculator) TargetsWithinRadius(origin Cell, radius int) CellSet {
	out := r.CellsWithinRadius(origin, radius)
	out.Remove(origin)
	return out
}

// collect adds the radius diamond centered at (col, row): the radius-1
// diamonds one column either side plus the full 2r+1 vertical span here.
func (r *RangeCalculator) collect(col, row, radius int, out CellSet) {
	if col < 0 || col >= r.columnLimit() {
		return
	}
	if radius == 0 {
		out.Add(Cell{Col: col, Row: row})
		return
	}
	r.collect(col-1, row, radius-1, out)
	for i := 0; i < 2*radius+1; i++ {
		out.Add(Cell{Col: col, Row: clamp(row-radius+i, 0, r.grid.Height-1)})
	}
	r.collect(col+1, row, radius-1, out)
}

func (r *RangeCalculator) columnLimit() int {
	if r.bound == BoundByWidth {
		return r.grid.Width
	}
	return r.grid.Height
}
