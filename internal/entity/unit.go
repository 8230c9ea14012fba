package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/gridtactics/internal/combat"
	"github.com/samdwyer/gridtactics/internal/gamedata"
	"github.com/samdwyer/gridtactics/internal/grid"
)

// Unit represents a single fighter on the board.
type Unit struct {
	ID       string    // Unique identifier, stable for the match
	Name     string    // Display name
	Class    Class     // Fighting style
	Symbol   rune      // Display symbol (defaults to class symbol)
	Team     int       // Index of the owning team
	Position grid.Cell // Current cell
	Facing   Facing

	// Combat stats
	HP, MaxHP int
	Strength  int
	Defense   int
	Speed     int // Movement radius
	Range     int // Attack radius
}

// NewUnit creates a unit of the given class at pos.
// Stats are set to default values; use InitFromClassDef to load from data.
func NewUnit(name string, class Class, team int, pos grid.Cell) *Unit {
	return &Unit{
		ID:       "u_" + uuid.NewString()[:8],
		Name:     name,
		Class:    class,
		Symbol:   class.Symbol(),
		Team:     team,
		Position: pos,
		HP:       10, // Default stats
		MaxHP:    10,
		Strength: 5,
		Defense:  5,
		Speed:    3,
		Range:    1,
	}
}

// InitFromClassDef initializes unit stats from a class definition.
func (u *Unit) InitFromClassDef(def *gamedata.ClassDef) {
	if def == nil {
		return
	}
	u.HP = def.HP
	u.MaxHP = def.HP
	u.Strength = def.Strength
	u.Defense = def.Defense
	u.Speed = def.Speed
	u.Range = def.Range
	u.Symbol = def.SymbolRune()
}

// Cell returns the unit's current cell.
func (u *Unit) Cell() grid.Cell { return u.Position }

// MoveTo updates the unit's logical position.
func (u *Unit) MoveTo(c grid.Cell) {
	u.Position = c
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the unit's name.
func (u *Unit) GetName() string { return u.Name }

// IsAlive returns true if the unit has HP remaining.
func (u *Unit) IsAlive() bool { return u.HP > 0 }

// GetHP returns current HP.
func (u *Unit) GetHP() int { return u.HP }

// GetMaxHP returns maximum HP.
func (u *Unit) GetMaxHP() int { return u.MaxHP }

// GetStrength returns strength stat.
func (u *Unit) GetStrength() int { return u.Strength }

// GetDefense returns defense stat.
func (u *Unit) GetDefense() int { return u.Defense }

// TakeDamage reduces HP and returns actual damage taken.
func (u *Unit) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > u.HP {
		actual = u.HP
	}
	u.HP -= actual
	return actual
}

// Ensure Unit implements combat.Combatant and grid.Occupant
var (
	_ combat.Combatant = (*Unit)(nil)
	_ grid.Occupant    = (*Unit)(nil)
)
