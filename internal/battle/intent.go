package battle

// Intent is a discrete player input fed to the Machine.
type Intent interface {
	isIntent()
}

// Navigate moves the cursor by (DX, DY). In the action menu DY moves the
// menu cursor instead.
type Navigate struct {
	DX, DY int
}

func (Navigate) isIntent() {}

// Confirm accepts the current choice. Action is only read in the action
// menu; ActionNone there executes the item under the menu cursor.
type Confirm struct {
	Action Action
}

func (Confirm) isIntent() {}

// Cancel backs out of the current mode.
type Cancel struct{}

func (Cancel) isIntent() {}

// CycleSelection jumps the cursor to the next living unit of the acting team.
type CycleSelection struct{}

func (CycleSelection) isIntent() {}

func intentName(i Intent) string {
	switch i.(type) {
	case Navigate:
		return "navigate"
	case Confirm:
		return "confirm"
	case Cancel:
		return "cancel"
	case CycleSelection:
		return "cycle_selection"
	default:
		return "unknown"
	}
}
