package battle

import (
	"github.com/samdwyer/gridtactics/internal/combat"
	"github.com/samdwyer/gridtactics/internal/entity"
	"github.com/samdwyer/gridtactics/internal/grid"
)

// EventType identifies a state change notification.
type EventType string

const (
	EventModeChanged      EventType = "mode_changed"      // Mode holds the new mode
	EventSelectionChanged EventType = "selection_changed" // Cursor moved to Cell
	EventMenuChanged      EventType = "menu_changed"      // Action menu cursor moved to Menu
	EventUnitMoved        EventType = "unit_moved"        // Unit walked Route from From to Cell
	EventUnitAttacked     EventType = "unit_attacked"     // Unit attacked Target; Attack holds the rolls
	EventUnitDied         EventType = "unit_died"         // Unit left the roster of Team
	EventTurnChanged      EventType = "turn_changed"      // Team is now acting
	EventMatchEnded       EventType = "match_ended"       // Team won
)

// Event describes one state change. Only the fields relevant to Type are set.
type Event struct {
	Type   EventType
	Mode   Mode      // EventModeChanged: the new mode
	Cell   grid.Cell // Selection, move destination or attacked cell
	From   grid.Cell // EventUnitMoved: where the unit started
	Route  []grid.Cell
	Unit   *entity.Unit // Acting, moved or dead unit
	Target *entity.Unit // EventUnitAttacked: the defender
	Attack combat.AttackResult
	Team   int // EventTurnChanged: acting team; EventMatchEnded: winner; EventUnitDied: owner
	Menu   int // EventMenuChanged: cursor index into MenuItems
}

// Sink receives events after each intent has been fully processed.
type Sink interface {
	OnEvent(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

// OnEvent calls f(ev).
func (f SinkFunc) OnEvent(ev Event) { f(ev) }

type discardSink struct{}

func (discardSink) OnEvent(Event) {}
