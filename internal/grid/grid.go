package grid

import "fmt"

const (
	// Default board dimensions
	DefaultWidth  = 10
	DefaultHeight = 10
)

// Grid describes the fixed bounds of the board for a whole match.
// It holds no per-cell state; occupancy is always derived from unit positions.
type Grid struct {
	Width  int
	Height int
}

// New creates a grid with the given dimensions.
func New(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// InBounds returns true if the cell lies on the board.
func (g Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// Clamp returns the nearest on-board cell.
func (g Grid) Clamp(c Cell) Cell {
	return Cell{
		Col: clamp(c.Col, 0, g.Width-1),
		Row: clamp(c.Row, 0, g.Height-1),
	}
}

// Size returns the number of cells on the board.
func (g Grid) Size() int {
	return g.Width * g.Height
}

// Index maps a cell to its row-major logical index, or -1 if off the board.
func (g Grid) Index(c Cell) int {
	if !g.InBounds(c) {
		return -1
	}
	return c.Row*g.Width + c.Col
}

// CellAt is the inverse of Index.
func (g Grid) CellAt(index int) (Cell, bool) {
	if index < 0 || index >= g.Size() {
		return Cell{}, false
	}
	return Cell{Col: index % g.Width, Row: index / g.Width}, true
}

// Cells returns every cell of the board in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Size())
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cells = append(cells, Cell{Col: col, Row: row})
		}
	}
	return cells
}

// Filter returns the subset of cells that lie on the board.
func (g Grid) Filter(cells CellSet) CellSet {
	out := make(CellSet, len(cells))
	for c := range cells {
		if g.InBounds(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Occupant is anything that can stand on a cell.
type Occupant interface {
	Cell() Cell
	IsAlive() bool
}

// OccupiedCells returns the cells held by the living occupants.
// The set is computed fresh on every call.
func OccupiedCells[O Occupant](occupants []O) CellSet {
	taken := make(CellSet, len(occupants))
	for _, o := range occupants {
		if o.IsAlive() {
			taken.Add(o.Cell())
		}
	}
	return taken
}

// CheckOccupancy reports the first cell shared by two living occupants,
// or the first living occupant standing off the board.
func CheckOccupancy[O Occupant](g Grid, occupants []O) error {
	seen := make(CellSet, len(occupants))
	for _, o := range occupants {
		if !o.IsAlive() {
			continue
		}
		c := o.Cell()
		if !g.InBounds(c) {
			return fmt.Errorf("living occupant off the board at %s", c)
		}
		if seen.Has(c) {
			return fmt.Errorf("two living occupants share cell %s", c)
		}
		seen.Add(c)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
