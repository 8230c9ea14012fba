// Package game runs the terminal front end: it builds matches, turns key
// presses into battle intents and keeps the screen in sync.
package game

// State represents the current screen state.
type State int

const (
	// StateBattle forwards input to the running match.
	StateBattle State = iota
	// StateVictory shows the winner until a new match starts or the player quits.
	StateVictory
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateBattle:
		return "battle"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}
