package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridtactics/internal/battle"
)

// Command is what a key press asks the front end to do.
type Command int

const (
	CommandNone   Command = iota // Key is not bound
	CommandIntent                // Forward the intent to the battle machine
	CommandQuit                  // Leave the game
)

// translateKey maps a key press to a battle intent. Arrows and hjkl
// navigate, Tab cycles, Enter confirms, Esc cancels, m and a pick Move and
// Attack directly, q and Ctrl-C quit.
func translateKey(key tcell.Key, ch rune) (battle.Intent, Command) {
	switch key {
	case tcell.KeyCtrlC:
		return nil, CommandQuit
	case tcell.KeyUp:
		return battle.Navigate{DY: -1}, CommandIntent
	case tcell.KeyDown:
		return battle.Navigate{DY: 1}, CommandIntent
	case tcell.KeyLeft:
		return battle.Navigate{DX: -1}, CommandIntent
	case tcell.KeyRight:
		return battle.Navigate{DX: 1}, CommandIntent
	case tcell.KeyTab:
		return battle.CycleSelection{}, CommandIntent
	case tcell.KeyEnter:
		return battle.Confirm{}, CommandIntent
	case tcell.KeyEscape:
		return battle.Cancel{}, CommandIntent
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return nil, CommandQuit
		case 'k':
			return battle.Navigate{DY: -1}, CommandIntent
		case 'j':
			return battle.Navigate{DY: 1}, CommandIntent
		case 'h':
			return battle.Navigate{DX: -1}, CommandIntent
		case 'l':
			return battle.Navigate{DX: 1}, CommandIntent
		case ' ':
			return battle.Confirm{}, CommandIntent
		case 'm':
			return battle.Confirm{Action: battle.ActionMove}, CommandIntent
		case 'a':
			return battle.Confirm{Action: battle.ActionAttack}, CommandIntent
		}
	}
	return nil, CommandNone
}
