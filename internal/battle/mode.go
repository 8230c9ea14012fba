// Package battle drives a match: whose turn it is, what is selected, which
// interaction mode is active and how each input intent changes that.
package battle

// Mode is the active interaction mode.
type Mode int

const (
	// ModeSelect - moving the cursor and picking a unit of the acting team
	ModeSelect Mode = iota
	// ModeActionMenu - a unit is bound, choosing Move, Attack or Cancel
	ModeActionMenu
	// ModeMoveTarget - choosing a destination inside the movement highlight
	ModeMoveTarget
	// ModeAttackTarget - choosing a target inside the attack highlight
	ModeAttackTarget
	// ModeMatchOver - a team has won, all input is ignored
	ModeMatchOver
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeActionMenu:
		return "action_menu"
	case ModeMoveTarget:
		return "move_target"
	case ModeAttackTarget:
		return "attack_target"
	case ModeMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Action is an entry of the action menu.
type Action int

const (
	// ActionNone means "whatever the menu cursor points at".
	ActionNone Action = iota
	ActionMove
	ActionAttack
	ActionCancel
)

// MenuItems lists the action menu top to bottom.
var MenuItems = []Action{ActionMove, ActionAttack, ActionCancel}

// String returns the menu label.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMove:
		return "Move"
	case ActionAttack:
		return "Attack"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}
