package battle

import (
	"github.com/samdwyer/gridtactics/internal/entity"
	"github.com/samdwyer/gridtactics/internal/grid"
)

// State holds everything the Machine tracks for a match.
type State struct {
	MatchID      string
	Teams        []*entity.Team
	CurrentTurn  int          // Index of the acting team
	Selected     grid.Cell    // Highlighted cell
	SelectedUnit *entity.Unit // Bound unit while acting, nil otherwise
	Mode         Mode
	MenuCursor   int // Index into MenuItems

	// Derived on mode entry, nil outside the matching target mode.
	MoveHighlight   grid.CellSet
	AttackHighlight grid.CellSet

	TurnCount int // Completed actions
	Winner    int // Winning team index, -1 while playing
}

// Highlight returns the highlight set of the active target mode.
func (s State) Highlight() grid.CellSet {
	switch s.Mode {
	case ModeMoveTarget:
		return s.MoveHighlight
	case ModeAttackTarget:
		return s.AttackHighlight
	default:
		return nil
	}
}

// CurrentTeam returns the acting team.
func (s State) CurrentTeam() *entity.Team {
	return s.Teams[s.CurrentTurn]
}

// MenuAction returns the menu item under the cursor.
func (s State) MenuAction() Action {
	return MenuItems[s.MenuCursor]
}
