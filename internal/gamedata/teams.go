package gamedata

// Corner names the board corner a team's formation is anchored to.
type Corner string

const (
	CornerTopLeft     Corner = "top_left"
	CornerTopRight    Corner = "top_right"
	CornerBottomRight Corner = "bottom_right"
	CornerBottomLeft  Corner = "bottom_left"
)

// TeamDef defines a team preset loaded from JSON.
type TeamDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "blue")
	Name   string `json:"name"`   // Display name (e.g., "Blue")
	Color  string `json:"color"`  // Hex color code (e.g., "#3778FF")
	Corner Corner `json:"corner"` // Corner the formation starts from
	Facing string `json:"facing"` // Initial facing of every unit
}

// TeamsFile represents the structure of teams.json.
type TeamsFile struct {
	// Formation lists (column, row) offsets from a team's corner, one per
	// roster slot. Offsets point into the board from that corner.
	Formation [][2]int  `json:"formation"`
	Teams     []TeamDef `json:"teams"`
}

// Anchor converts a formation offset into an absolute (column, row) on a
// width x height board.
func (c Corner) Anchor(offset [2]int, width, height int) (col, row int) {
	dc, dr := offset[0], offset[1]
	switch c {
	case CornerTopRight:
		return width - 1 - dc, dr
	case CornerBottomRight:
		return width - 1 - dc, height - 1 - dr
	case CornerBottomLeft:
		return dc, height - 1 - dr
	default:
		return dc, dr
	}
}
