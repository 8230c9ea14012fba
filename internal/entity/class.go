// Package entity provides the units and teams that fight on the board.
package entity

// Class represents a unit's fighting style.
type Class int

const (
	ClassBeefy Class = iota
	ClassRanged
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassBeefy:
		return "Beefy"
	case ClassRanged:
		return "Ranged"
	default:
		return "Unknown"
	}
}

// ID returns the class identifier for data lookup.
func (c Class) ID() string {
	switch c {
	case ClassBeefy:
		return "beefy"
	case ClassRanged:
		return "ranged"
	default:
		return "unknown"
	}
}

// Symbol returns the default display symbol for a class.
func (c Class) Symbol() rune {
	switch c {
	case ClassBeefy:
		return 'B'
	case ClassRanged:
		return 'R'
	default:
		return '?'
	}
}

// ClassForSlot returns the class for the nth unit of a roster.
// Even slots are Beefy, odd slots Ranged.
func ClassForSlot(slot int) Class {
	if slot%2 == 0 {
		return ClassBeefy
	}
	return ClassRanged
}

// Facing is the direction a unit looks. It is cosmetic only.
type Facing int

const (
	FacingSouth Facing = iota
	FacingWest
	FacingNorth
	FacingEast
)

// String returns the facing name.
func (f Facing) String() string {
	switch f {
	case FacingSouth:
		return "south"
	case FacingWest:
		return "west"
	case FacingNorth:
		return "north"
	case FacingEast:
		return "east"
	default:
		return "unknown"
	}
}

// ParseFacing converts a data name into a Facing, defaulting to south.
func ParseFacing(s string) Facing {
	switch s {
	case "west":
		return FacingWest
	case "north":
		return FacingNorth
	case "east":
		return FacingEast
	default:
		return FacingSouth
	}
}
