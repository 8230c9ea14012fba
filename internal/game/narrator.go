package game

import (
	"fmt"

	"github.com/samdwyer/gridtactics/internal/battle"
	"github.com/samdwyer/gridtactics/internal/entity"
)

// Narrator is the battle sink that keeps the message line shown under the
// board.
type Narrator struct {
	teams       []*entity.Team
	LastMessage string
	Kills       int
}

// NewNarrator creates a narrator for a fresh match.
func NewNarrator(teams []*entity.Team) *Narrator {
	return &Narrator{teams: teams, LastMessage: "Battle begins!"}
}

// OnEvent updates the message line. Cursor, menu and mode changes are
// shown by the renderer directly and leave the message alone.
func (n *Narrator) OnEvent(ev battle.Event) {
	switch ev.Type {
	case battle.EventUnitMoved:
		n.LastMessage = fmt.Sprintf("%s moves to %s.", ev.Unit.Name, ev.Cell)
	case battle.EventUnitAttacked:
		n.LastMessage = fmt.Sprintf("%s (rolled %d vs %d)",
			ev.Attack.Message, ev.Attack.AttackRoll, ev.Attack.DefenseRoll)
	case battle.EventUnitDied:
		n.Kills++
		n.LastMessage += fmt.Sprintf(" %s is defeated!", ev.Unit.Name)
	case battle.EventMatchEnded:
		n.LastMessage += fmt.Sprintf(" %s wins!", n.teamName(ev.Team))
	}
}

func (n *Narrator) teamName(index int) string {
	if index < 0 || index >= len(n.teams) {
		return fmt.Sprintf("Team %d", index)
	}
	return n.teams[index].Name
}
