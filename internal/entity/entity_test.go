package entity

import (
	"strings"
	"testing"

	"github.com/samdwyer/gridtactics/internal/gamedata"
	"github.com/samdwyer/gridtactics/internal/grid"
)

func TestNewUnitDefaults(t *testing.T) {
	u := NewUnit("Ada", ClassRanged, 1, grid.C(2, 3))

	if !strings.HasPrefix(u.ID, "u_") || len(u.ID) != 10 {
		t.Errorf("Unexpected unit ID %q", u.ID)
	}
	if u.Symbol != 'R' {
		t.Errorf("Expected symbol 'R', got %q", u.Symbol)
	}
	if u.Team != 1 || u.Position != grid.C(2, 3) {
		t.Errorf("Unexpected team/position: %d %s", u.Team, u.Position)
	}
	if !u.IsAlive() || u.HP != u.MaxHP {
		t.Error("New unit should be alive at full health")
	}

	other := NewUnit("Bo", ClassBeefy, 0, grid.C(0, 0))
	if other.ID == u.ID {
		t.Error("Unit IDs should be unique")
	}
}

func TestInitFromClassDef(t *testing.T) {
	u := NewUnit("Ada", ClassBeefy, 0, grid.C(0, 0))
	u.InitFromClassDef(&gamedata.ClassDef{ID: "beefy", Symbol: "@", HP: 20, Strength: 6, Defense: 8, Speed: 3, Range: 1})

	if u.HP != 20 || u.MaxHP != 20 {
		t.Errorf("Expected HP 20/20, got %d/%d", u.HP, u.MaxHP)
	}
	if u.Strength != 6 || u.Defense != 8 || u.Speed != 3 || u.Range != 1 {
		t.Errorf("Stats not copied: %+v", u)
	}
	if u.Symbol != '@' {
		t.Errorf("Expected symbol '@', got %q", u.Symbol)
	}

	// nil leaves the unit untouched
	u.InitFromClassDef(nil)
	if u.HP != 20 {
		t.Error("InitFromClassDef(nil) should be a no-op")
	}
}

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		hp, amount     int
		actual, remain int
	}{
		{10, 3, 3, 7},
		{10, 0, 0, 10},
		{10, -2, 0, 10},
		{4, 9, 4, 0},
	}

	for _, tt := range tests {
		u := NewUnit("x", ClassBeefy, 0, grid.C(0, 0))
		u.HP = tt.hp
		got := u.TakeDamage(tt.amount)
		if got != tt.actual || u.HP != tt.remain {
			t.Errorf("TakeDamage(%d) on %d HP = %d leaving %d, want %d leaving %d",
				tt.amount, tt.hp, got, u.HP, tt.actual, tt.remain)
		}
	}
}

func TestClassForSlot(t *testing.T) {
	for slot, want := range []Class{ClassBeefy, ClassRanged, ClassBeefy, ClassRanged} {
		if got := ClassForSlot(slot); got != want {
			t.Errorf("ClassForSlot(%d) = %v, want %v", slot, got, want)
		}
	}
}

func TestParseFacing(t *testing.T) {
	tests := map[string]Facing{
		"north": FacingNorth,
		"east":  FacingEast,
		"west":  FacingWest,
		"south": FacingSouth,
		"":      FacingSouth,
		"up":    FacingSouth,
	}
	for in, want := range tests {
		if got := ParseFacing(in); got != want {
			t.Errorf("ParseFacing(%q) = %v, want %v", in, got, want)
		}
	}
}

func newTestTeam() (*Team, *Unit, *Unit, *Unit) {
	team := NewTeam(0, "Blue", "#3778FF")
	a := NewUnit("a", ClassBeefy, 0, grid.C(0, 0))
	b := NewUnit("b", ClassRanged, 0, grid.C(1, 0))
	c := NewUnit("c", ClassBeefy, 0, grid.C(0, 1))
	team.Add(a)
	team.Add(b)
	team.Add(c)
	return team, a, b, c
}

func TestTeamAddSetsIndex(t *testing.T) {
	team := NewTeam(3, "Gold", "#F0C83C")
	u := NewUnit("x", ClassBeefy, 0, grid.C(0, 0))
	team.Add(u)

	if u.Team != 3 {
		t.Errorf("Add should set unit team to 3, got %d", u.Team)
	}
	if !team.Contains(u) {
		t.Error("Team should contain the added unit")
	}
}

func TestTeamQueries(t *testing.T) {
	team, a, b, c := newTestTeam()
	b.HP = 0

	if team.AliveCount() != 2 {
		t.Errorf("AliveCount = %d, want 2", team.AliveCount())
	}
	if team.IsDefeated() {
		t.Error("Team with living units is not defeated")
	}

	living := team.Living()
	if len(living) != 2 || living[0] != a || living[1] != c {
		t.Errorf("Living() returned wrong units in wrong order")
	}

	positions := team.Positions()
	if len(positions) != 2 || positions[0] != grid.C(0, 0) || positions[1] != grid.C(0, 1) {
		t.Errorf("Positions() = %v", positions)
	}

	if team.UnitAt(grid.C(1, 0)) != nil {
		t.Error("UnitAt should ignore dead units")
	}
	if team.UnitAt(grid.C(0, 1)) != c {
		t.Error("UnitAt should find c")
	}

	a.HP = 0
	if team.FirstAlive() != c {
		t.Error("FirstAlive should skip dead units")
	}
	c.HP = 0
	if !team.IsDefeated() || team.FirstAlive() != nil {
		t.Error("Team with no living units is defeated")
	}
}

func TestTeamRemove(t *testing.T) {
	team, a, b, c := newTestTeam()

	if !team.Remove(b) {
		t.Fatal("Remove should report success")
	}
	if team.Remove(b) {
		t.Error("Removing twice should report false")
	}
	if len(team.Units) != 2 || team.Units[0] != a || team.Units[1] != c {
		t.Error("Remove should keep roster order")
	}
	if team.Contains(b) {
		t.Error("Removed unit still on roster")
	}

	stranger := NewUnit("s", ClassBeefy, 1, grid.C(5, 5))
	if team.Remove(stranger) {
		t.Error("Removing a unit from another team should report false")
	}
}
