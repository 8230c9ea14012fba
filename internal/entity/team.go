package entity

import "github.com/samdwyer/gridtactics/internal/grid"

// Team is an ordered roster of living units. Roster order decides which
// unit is highlighted first and how selection cycles.
type Team struct {
	Index int    // Position in the turn order
	Name  string // Display name (e.g., "Blue")
	Color string // Hex color code (e.g., "#3778FF")
	Units []*Unit
}

// NewTeam creates an empty team.
func NewTeam(index int, name, color string) *Team {
	return &Team{
		Index: index,
		Name:  name,
		Color: color,
		Units: make([]*Unit, 0),
	}
}

// Add appends a unit to the roster and marks it as belonging to this team.
func (t *Team) Add(u *Unit) {
	u.Team = t.Index
	t.Units = append(t.Units, u)
}

// AliveCount returns the number of living units on the roster.
func (t *Team) AliveCount() int {
	count := 0
	for _, u := range t.Units {
		if u.IsAlive() {
			count++
		}
	}
	return count
}

// IsDefeated returns true if the team has no living units.
func (t *Team) IsDefeated() bool {
	return t.AliveCount() == 0
}

// Living returns the living units in roster order.
func (t *Team) Living() []*Unit {
	alive := make([]*Unit, 0, len(t.Units))
	for _, u := range t.Units {
		if u.IsAlive() {
			alive = append(alive, u)
		}
	}
	return alive
}

// FirstAlive returns the first living unit, or nil.
func (t *Team) FirstAlive() *Unit {
	for _, u := range t.Units {
		if u.IsAlive() {
			return u
		}
	}
	return nil
}

// UnitAt returns the living unit standing on c, or nil.
func (t *Team) UnitAt(c grid.Cell) *Unit {
	for _, u := range t.Units {
		if u.IsAlive() && u.Position == c {
			return u
		}
	}
	return nil
}

// Positions returns the cells of the living units in roster order.
func (t *Team) Positions() []grid.Cell {
	cells := make([]grid.Cell, 0, len(t.Units))
	for _, u := range t.Units {
		if u.IsAlive() {
			cells = append(cells, u.Position)
		}
	}
	return cells
}

// Contains reports whether u is on the roster.
func (t *Team) Contains(u *Unit) bool {
	for _, m := range t.Units {
		if m == u {
			return true
		}
	}
	return false
}

// Remove takes u off the roster. It returns false if u was not there, so
// removing the same unit twice is harmless.
func (t *Team) Remove(u *Unit) bool {
	for i, m := range t.Units {
		if m == u {
			t.Units = append(t.Units[:i], t.Units[i+1:]...)
			return true
		}
	}
	return false
}
