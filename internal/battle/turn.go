package battle

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// finishAction closes a successful move or attack and passes the turn.
func (m *Machine) finishAction(ctx context.Context) {
	m.state.TurnCount++
	m.enforceInvariants()
	m.advanceTurn(ctx)
}

// advanceTurn hands the turn to the next team. If that team has no living
// units the match ends and the team that just acted wins.
func (m *Machine) advanceTurn(ctx context.Context) {
	previous := m.state.CurrentTurn

	m.state.SelectedUnit = nil
	m.clearHighlights()
	m.state.MenuCursor = 0
	m.state.CurrentTurn = (previous + 1) % len(m.state.Teams)

	if m.state.CurrentTeam().IsDefeated() {
		m.endMatch(ctx, previous)
		return
	}

	m.emit(Event{Type: EventTurnChanged, Team: m.state.CurrentTurn})
	m.selectFirstUnit()
	m.setMode(ModeSelect)
}

func (m *Machine) endMatch(ctx context.Context, winner int) {
	_, span := m.tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("match.id", m.state.MatchID),
		attribute.Int("winner", winner),
		attribute.Int("turns_taken", m.state.TurnCount),
		attribute.Int("winner_units_remaining", m.state.Teams[winner].AliveCount()),
	)
	span.End()

	m.state.Winner = winner
	m.setMode(ModeMatchOver)
	m.emit(Event{Type: EventMatchEnded, Team: winner})
}
