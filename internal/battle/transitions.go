package battle

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridtactics/internal/entity"
	"github.com/samdwyer/gridtactics/internal/grid"
)

// =============================================================================
// Per-mode intent handling
// =============================================================================

func (m *Machine) handleSelect(intent Intent) {
	switch in := intent.(type) {
	case Navigate:
		m.moveSelection(in.DX, in.DY)
	case CycleSelection:
		m.cycleSelection()
	case Confirm:
		m.openActionMenu()
	}
}

func (m *Machine) handleActionMenu(intent Intent) {
	switch in := intent.(type) {
	case Navigate:
		m.moveMenuCursor(in.DY)
	case Confirm:
		action := in.Action
		if action == ActionNone {
			action = m.state.MenuAction()
		}
		switch action {
		case ActionMove:
			m.initiateMovement()
		case ActionAttack:
			m.initiateAttack()
		case ActionCancel:
			m.closeActionMenu()
		}
	case Cancel:
		m.closeActionMenu()
	}
}

func (m *Machine) handleMoveTarget(ctx context.Context, intent Intent) {
	switch in := intent.(type) {
	case Navigate:
		m.moveSelection(in.DX, in.DY)
	case Confirm:
		m.executeMove(ctx)
	case Cancel:
		m.returnToActionMenu()
	}
}

func (m *Machine) handleAttackTarget(ctx context.Context, intent Intent) {
	switch in := intent.(type) {
	case Navigate:
		m.moveSelection(in.DX, in.DY)
	case Confirm:
		m.executeAttack(ctx)
	case Cancel:
		m.returnToActionMenu()
	}
}

// =============================================================================
// Selection and menu
// =============================================================================

func (m *Machine) setMode(mode Mode) {
	if m.state.Mode == mode {
		return
	}
	m.state.Mode = mode
	m.emit(Event{Type: EventModeChanged, Mode: mode})
}

func (m *Machine) setSelected(c grid.Cell) {
	if m.state.Selected == c {
		return
	}
	m.state.Selected = c
	m.emit(Event{Type: EventSelectionChanged, Cell: c})
}

// moveSelection shifts the cursor, clamped to the board.
func (m *Machine) moveSelection(dx, dy int) {
	m.setSelected(m.grid.Clamp(m.state.Selected.Add(dx, dy)))
}

// cycleSelection moves to the next living unit of the acting team in
// roster order, or to the first one if the cursor is not on a teammate.
func (m *Machine) cycleSelection() {
	positions := m.state.CurrentTeam().Positions()
	if len(positions) == 0 {
		return
	}
	current := -1
	for i, c := range positions {
		if c == m.state.Selected {
			current = i
			break
		}
	}
	if current < 0 {
		m.setSelected(positions[0])
		return
	}
	m.setSelected(positions[(current+1)%len(positions)])
}

func (m *Machine) selectFirstUnit() {
	if first := m.state.CurrentTeam().FirstAlive(); first != nil {
		m.setSelected(first.Position)
	}
}

func (m *Machine) moveMenuCursor(dy int) {
	if dy == 0 {
		return
	}
	step := 1
	if dy < 0 {
		step = -1
	}
	n := len(MenuItems)
	m.state.MenuCursor = (m.state.MenuCursor + step + n) % n
	m.emit(Event{Type: EventMenuChanged, Menu: m.state.MenuCursor})
}

func (m *Machine) clearHighlights() {
	m.state.MoveHighlight = nil
	m.state.AttackHighlight = nil
}

// openActionMenu binds the acting team's unit under the cursor.
func (m *Machine) openActionMenu() {
	unit := m.state.CurrentTeam().UnitAt(m.state.Selected)
	if unit == nil {
		return
	}
	m.state.SelectedUnit = unit
	m.clearHighlights()
	m.state.MenuCursor = 0
	m.setMode(ModeActionMenu)
}

func (m *Machine) closeActionMenu() {
	m.state.SelectedUnit = nil
	m.clearHighlights()
	m.state.MenuCursor = 0
	m.setMode(ModeSelect)
}

// returnToActionMenu backs out of a target mode and puts the cursor back
// on the bound unit.
func (m *Machine) returnToActionMenu() {
	m.clearHighlights()
	m.state.MenuCursor = 0
	m.setSelected(m.state.SelectedUnit.Position)
	m.setMode(ModeActionMenu)
}

// =============================================================================
// Target modes
// =============================================================================

func (m *Machine) occupied() grid.CellSet {
	return grid.OccupiedCells(m.Units())
}

// initiateMovement highlights the free on-board cells within speed.
func (m *Machine) initiateMovement() {
	unit := m.state.SelectedUnit
	taken := m.occupied()

	highlight := make(grid.CellSet)
	for c := range m.ranges.CellsWithinRadius(unit.Position, unit.Speed) {
		if m.grid.InBounds(c) && !taken.Has(c) {
			highlight.Add(c)
		}
	}

	m.state.MoveHighlight = highlight
	m.state.AttackHighlight = nil
	m.setMode(ModeMoveTarget)
}

// initiateAttack highlights the on-board cells within range, except the
// unit's own cell.
func (m *Machine) initiateAttack() {
	unit := m.state.SelectedUnit

	m.state.AttackHighlight = m.grid.Filter(m.ranges.TargetsWithinRadius(unit.Position, unit.Range))
	m.state.MoveHighlight = nil
	m.setMode(ModeAttackTarget)
}

func (m *Machine) executeMove(ctx context.Context) {
	target := m.state.Selected
	if m.occupied().Has(target) || !m.state.MoveHighlight.Has(target) {
		return
	}

	unit := m.state.SelectedUnit
	ctx, span := m.tracer.Start(ctx, "battle.move")
	defer span.End()

	from := unit.Position
	route := m.paths.Route(from, target)
	unit.MoveTo(target)

	span.SetAttributes(
		attribute.String("unit.id", unit.ID),
		attribute.String("unit.name", unit.Name),
		attribute.String("from", from.String()),
		attribute.String("to", target.String()),
		attribute.Int("route.length", len(route)),
	)

	m.emit(Event{Type: EventUnitMoved, Unit: unit, From: from, Cell: target, Route: route})
	m.finishAction(ctx)
}

func (m *Machine) executeAttack(ctx context.Context) {
	target := m.state.Selected
	if !m.state.AttackHighlight.Has(target) {
		return
	}
	defender := m.opposingUnitAt(target)
	if defender == nil {
		return
	}

	attacker := m.state.SelectedUnit
	ctx, span := m.tracer.Start(ctx, "battle.attack")
	defer span.End()

	// Decide first: every read of the rosters happens before any removal.
	result := m.resolver.ResolveAttack(attacker, defender)
	span.SetAttributes(
		attribute.String("attacker", attacker.Name),
		attribute.String("defender", defender.Name),
		attribute.Int("attack_roll", result.AttackRoll),
		attribute.Int("defense_roll", result.DefenseRoll),
		attribute.Int("damage", result.Damage),
		attribute.Int("remaining_hp", result.RemainingHealth),
	)
	m.emit(Event{Type: EventUnitAttacked, Unit: attacker, Target: defender, Cell: target, Attack: result})

	// Then mutate.
	if result.Killed {
		owner := m.state.Teams[defender.Team]
		if owner.Remove(defender) {
			span.SetAttributes(attribute.Bool("killed", true))
			m.emit(Event{Type: EventUnitDied, Unit: defender, Cell: target, Team: owner.Index})
		}
	}

	m.finishAction(ctx)
}

// opposingUnitAt returns the living unit on c that is not on the acting team.
func (m *Machine) opposingUnitAt(c grid.Cell) *entity.Unit {
	for i, team := range m.state.Teams {
		if i == m.state.CurrentTurn {
			continue
		}
		if u := team.UnitAt(c); u != nil {
			return u
		}
	}
	return nil
}
