package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridtactics/internal/battle"
	"github.com/samdwyer/gridtactics/internal/combat"
	"github.com/samdwyer/gridtactics/internal/config"
	"github.com/samdwyer/gridtactics/internal/gamedata"
	"github.com/samdwyer/gridtactics/internal/telemetry"
	"github.com/samdwyer/gridtactics/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      config.Config
	registry *gamedata.Registry
	rng      combat.RandomSource
	machine  *battle.Machine
	narrator *Narrator
	state    State
	matches  int
	running  bool
}

// New creates a new game instance. The configuration is validated against
// the embedded game data before the terminal is touched.
func New(cfg config.Config) (*Game, error) {
	registry, err := gamedata.LoadRegistryFrom(gamedata.Source(cfg.DataDir))
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}
	if err := cfg.Validate(registry.TeamCount(), len(registry.Formation())); err != nil {
		return nil, fmt.Errorf("%w: %v", battle.ErrConfiguration, err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		cfg:      cfg,
		registry: registry,
		rng:      combat.NewRandSource(cfg.Seed),
		state:    StateBattle,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.startMatch(ctx); err != nil {
		return err
	}

	for g.running {
		g.render()
		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

// startMatch builds fresh rosters and a new state machine.
func (g *Game) startMatch(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.match")
	defer span.End()

	teams, err := NewTeams(g.cfg, g.registry)
	if err != nil {
		return err
	}
	bound, err := g.cfg.Bound()
	if err != nil {
		return err
	}

	g.narrator = NewNarrator(teams)
	machine, err := battle.NewMachine(ctx, battle.Config{
		Grid:        g.cfg.Board(),
		ColumnBound: bound,
		Random:      g.rng,
		Sink:        g.narrator,
		Strict:      g.cfg.StrictInvariants,
	}, teams)
	if err != nil {
		return err
	}

	g.machine = machine
	g.state = StateBattle
	g.matches++

	span.SetAttributes(
		attribute.Int("match.number", g.matches),
		attribute.String("match.id", machine.Snapshot().MatchID),
		attribute.Int("team_count", g.cfg.TeamCount),
		attribute.Int("team_size", g.cfg.TeamSize),
	)
	return nil
}

func (g *Game) render() {
	g.renderer.Render(g.machine.Grid(), g.machine.Snapshot(), ui.HUD{
		Message: g.narrator.LastMessage,
		Victory: g.state == StateVictory,
	})
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	intent, cmd := translateKey(ev.Key(), ev.Rune())

	switch cmd {
	case CommandQuit:
		g.running = false
	case CommandIntent:
		return g.apply(ctx, intent)
	}
	return nil
}

// apply forwards an intent to the match, or starts a new match when the
// victory screen is confirmed.
func (g *Game) apply(ctx context.Context, intent battle.Intent) error {
	if g.state == StateVictory {
		if _, ok := intent.(battle.Confirm); ok {
			return g.startMatch(ctx)
		}
		return nil
	}

	g.machine.Handle(ctx, intent)
	if _, over := g.machine.Winner(); over {
		g.state = StateVictory
	}
	return nil
}

