package game

import (
	"fmt"

	"github.com/samdwyer/gridtactics/internal/battle"
	"github.com/samdwyer/gridtactics/internal/config"
	"github.com/samdwyer/gridtactics/internal/entity"
	"github.com/samdwyer/gridtactics/internal/gamedata"
	"github.com/samdwyer/gridtactics/internal/grid"
)

// NewTeams builds the starting rosters: one team per preset, each unit placed
// by the shared formation relative to its team's corner. Classes alternate by
// roster slot.
func NewTeams(cfg config.Config, registry *gamedata.Registry) ([]*entity.Team, error) {
	if cfg.TeamSize < 1 {
		return nil, &battle.ConfigurationError{Reason: fmt.Sprintf("team_size must be at least 1, got %d", cfg.TeamSize)}
	}
	if cfg.TeamCount > registry.TeamCount() {
		return nil, &battle.ConfigurationError{
			Reason: fmt.Sprintf("team_count %d exceeds the %d team presets", cfg.TeamCount, registry.TeamCount()),
		}
	}
	formation := registry.Formation()
	if cfg.TeamSize > len(formation) {
		return nil, &battle.ConfigurationError{
			Reason: fmt.Sprintf("team_size %d exceeds the %d formation slots", cfg.TeamSize, len(formation)),
		}
	}

	teams := make([]*entity.Team, 0, cfg.TeamCount)
	for i := 0; i < cfg.TeamCount; i++ {
		def := registry.Team(i)
		team := entity.NewTeam(i, def.Name, def.Color)
		facing := entity.ParseFacing(def.Facing)

		for slot := 0; slot < cfg.TeamSize; slot++ {
			col, row := def.Corner.Anchor(formation[slot], cfg.Grid.Width, cfg.Grid.Height)
			class := entity.ClassForSlot(slot)

			u := entity.NewUnit(fmt.Sprintf("%s %s %d", def.Name, class, slot+1), class, i, grid.C(col, row))
			u.InitFromClassDef(registry.Class(class.ID()))
			u.Facing = facing
			team.Add(u)
		}
		teams = append(teams, team)
	}
	return teams, nil
}
