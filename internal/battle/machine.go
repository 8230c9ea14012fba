package battle

import (
	"context"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridtactics/internal/combat"
	"github.com/samdwyer/gridtactics/internal/entity"
	"github.com/samdwyer/gridtactics/internal/grid"
	"github.com/samdwyer/gridtactics/internal/path"
	"github.com/samdwyer/gridtactics/internal/telemetry"
)

// PathRequester computes the route a moving unit walks. It is only used for
// presentation; legality is decided before it is called.
type PathRequester interface {
	Route(from, to grid.Cell) []grid.Cell
}

// Config holds the collaborators and fixed parameters of a match.
type Config struct {
	Grid        grid.Grid
	ColumnBound grid.ColumnBound
	Random      combat.RandomSource // Defaults to a time-seeded source
	Paths       PathRequester       // Defaults to A* around living units
	Sink        Sink                // Optional
	Tracer      trace.Tracer        // Defaults to telemetry.Tracer("battle")

	// Strict panics on invariant violations instead of logging them.
	Strict bool
}

// Machine is the turn and interaction-mode state machine. It owns the
// match state exclusively; feed it one intent at a time.
type Machine struct {
	grid     grid.Grid
	ranges   *grid.RangeCalculator
	resolver *combat.Resolver
	paths    PathRequester
	sink     Sink
	tracer   trace.Tracer
	strict   bool

	state  State
	events []Event
}

// NewMachine validates the teams and starts a match with team 0 to act.
func NewMachine(ctx context.Context, cfg Config, teams []*entity.Team) (*Machine, error) {
	if err := validateSetup(cfg.Grid, teams); err != nil {
		return nil, err
	}

	m := &Machine{
		grid:   cfg.Grid,
		ranges: grid.NewRangeCalculator(cfg.Grid, cfg.ColumnBound),
		paths:  cfg.Paths,
		sink:   cfg.Sink,
		tracer: cfg.Tracer,
		strict: cfg.Strict,
	}

	rng := cfg.Random
	if rng == nil {
		rng = combat.NewRandSource(0)
	}
	m.resolver = combat.NewResolver(rng)
	if m.paths == nil {
		m.paths = path.NewFinder(cfg.Grid, m.Occupied)
	}
	if m.sink == nil {
		m.sink = discardSink{}
	}
	if m.tracer == nil {
		m.tracer = telemetry.Tracer("battle")
	}

	m.state = State{
		MatchID:     "m_" + uuid.NewString()[:8],
		Teams:       teams,
		CurrentTurn: 0,
		Mode:        ModeSelect,
		Winner:      -1,
	}

	_, span := m.tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("match.id", m.state.MatchID),
		attribute.Int("grid.width", cfg.Grid.Width),
		attribute.Int("grid.height", cfg.Grid.Height),
		attribute.Int("team_count", len(teams)),
		attribute.String("column_bound", cfg.ColumnBound.String()),
	)
	span.End()

	m.emit(Event{Type: EventTurnChanged, Team: m.state.CurrentTurn})
	m.selectFirstUnit()
	m.flush()

	return m, nil
}

// validateSetup rejects matches that could not be played.
func validateSetup(g grid.Grid, teams []*entity.Team) error {
	if g.Width < 1 || g.Height < 1 {
		return configErrorf("grid must be at least 1x1, got %dx%d", g.Width, g.Height)
	}
	if len(teams) < 2 {
		return configErrorf("need at least two teams, got %d", len(teams))
	}

	var all []*entity.Unit
	for i, team := range teams {
		if team == nil {
			return configErrorf("team %d is missing", i)
		}
		if team.Index != i {
			return configErrorf("team %q has index %d but is in slot %d", team.Name, team.Index, i)
		}
		if team.AliveCount() == 0 {
			return configErrorf("team %q has no starting units", team.Name)
		}
		for _, u := range team.Units {
			if !u.IsAlive() {
				return configErrorf("unit %q of team %q starts dead", u.Name, team.Name)
			}
			if u.Team != i {
				return configErrorf("unit %q is on team %q but belongs to %d", u.Name, team.Name, u.Team)
			}
			if u.Strength < 1 || u.Defense < 1 {
				return configErrorf("unit %q needs strength and defense of at least 1", u.Name)
			}
			if u.Speed < 0 || u.Range < 0 {
				return configErrorf("unit %q has negative speed or range", u.Name)
			}
		}
		all = append(all, team.Units...)
	}

	if err := grid.CheckOccupancy(g, all); err != nil {
		return configErrorf("%v", err)
	}
	return nil
}

// Handle processes one intent to completion and returns the resulting
// events, which are also delivered to the sink. Illegal intents change
// nothing and return no events.
func (m *Machine) Handle(ctx context.Context, intent Intent) []Event {
	ctx, span := m.tracer.Start(ctx, "battle.intent")
	defer span.End()
	span.SetAttributes(
		attribute.String("match.id", m.state.MatchID),
		attribute.String("intent", intentName(intent)),
		attribute.String("mode", m.state.Mode.String()),
		attribute.Int("team", m.state.CurrentTurn),
	)

	switch m.state.Mode {
	case ModeSelect:
		m.handleSelect(intent)
	case ModeActionMenu:
		m.handleActionMenu(intent)
	case ModeMoveTarget:
		m.handleMoveTarget(ctx, intent)
	case ModeAttackTarget:
		m.handleAttackTarget(ctx, intent)
	case ModeMatchOver:
		// Nothing left to do
	}

	events := m.flush()
	span.SetAttributes(
		attribute.Bool("accepted", len(events) > 0),
		attribute.String("mode.after", m.state.Mode.String()),
	)
	return events
}

// emit queues an event for delivery once the current intent completes.
func (m *Machine) emit(ev Event) {
	m.events = append(m.events, ev)
}

// flush hands queued events to the sink and returns them.
func (m *Machine) flush() []Event {
	events := m.events
	m.events = nil
	for _, ev := range events {
		m.sink.OnEvent(ev)
	}
	return events
}

// =============================================================================
// Queries
// =============================================================================

// Snapshot returns a copy of the state. Highlight sets are copied; units
// and teams are shared and must not be modified.
func (m *Machine) Snapshot() State {
	s := m.state
	s.Teams = append([]*entity.Team(nil), m.state.Teams...)
	s.MoveHighlight = m.state.MoveHighlight.Clone()
	s.AttackHighlight = m.state.AttackHighlight.Clone()
	return s
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode { return m.state.Mode }

// Grid returns the board bounds.
func (m *Machine) Grid() grid.Grid { return m.grid }

// Winner returns the winning team index once the match is over.
func (m *Machine) Winner() (int, bool) {
	if m.state.Mode != ModeMatchOver {
		return -1, false
	}
	return m.state.Winner, true
}

// Units returns every living unit on every roster, team by team.
func (m *Machine) Units() []*entity.Unit {
	var all []*entity.Unit
	for _, team := range m.state.Teams {
		all = append(all, team.Units...)
	}
	return all
}

// UnitAt returns the living unit on c, or nil.
func (m *Machine) UnitAt(c grid.Cell) *entity.Unit {
	for _, team := range m.state.Teams {
		if u := team.UnitAt(c); u != nil {
			return u
		}
	}
	return nil
}

// Occupied reports whether a living unit stands on c.
func (m *Machine) Occupied(c grid.Cell) bool {
	return m.UnitAt(c) != nil
}

// CheckInvariants verifies that no two living units share a cell, every
// living unit is on the board and no roster holds a dead unit.
func (m *Machine) CheckInvariants() error {
	for _, team := range m.state.Teams {
		for _, u := range team.Units {
			if !u.IsAlive() {
				return &InvariantError{Reason: "dead unit " + u.Name + " retained in team " + team.Name}
			}
		}
	}
	if err := grid.CheckOccupancy(m.grid, m.Units()); err != nil {
		return &InvariantError{Reason: err.Error()}
	}
	return nil
}

func (m *Machine) enforceInvariants() {
	err := m.CheckInvariants()
	if err == nil {
		return
	}
	if m.strict {
		panic(err)
	}
	log.Printf("battle %s: %v", m.state.MatchID, err)
}
