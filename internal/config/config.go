// Package config loads match settings from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/gridtactics/internal/grid"
)

// Config holds the settings of a match.
type Config struct {
	// Seed for the dice. A seed of 0 means a time-based seed.
	Seed int64 `yaml:"seed"`

	Grid GridConfig `yaml:"grid"`

	TeamSize  int `yaml:"team_size"`  // Units per team
	TeamCount int `yaml:"team_count"` // Teams in the turn order

	// ColumnBound is "height" (check columns against the row count) or "width".
	ColumnBound string `yaml:"column_bound"`

	// StrictInvariants panics on a broken board invariant instead of logging it.
	// Off by default; tests and development configs turn it on.
	StrictInvariants bool `yaml:"strict_invariants"`

	// DataDir holds classes.json and teams.json. Empty uses the built-in data.
	DataDir string `yaml:"data_dir"`

	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GridConfig is the board size.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dataset string `yaml:"dataset"`
	APIKey  string `yaml:"-"` // Only ever read from the environment
}

// Default returns the settings of the classic two-versus-two match.
func Default() Config {
	return Config{
		Seed:             0,
		Grid:             GridConfig{Width: grid.DefaultWidth, Height: grid.DefaultHeight},
		TeamSize:         2,
		TeamCount:        2,
		ColumnBound:      grid.BoundByHeight.String(),
		StrictInvariants: false,
		Telemetry:        TelemetryConfig{Enabled: true, Dataset: "gridtactics"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := loadYAML(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Environment variable names.
const (
	EnvSeed        = "GRIDTACTICS_SEED"
	EnvGridWidth   = "GRIDTACTICS_GRID_WIDTH"
	EnvGridHeight  = "GRIDTACTICS_GRID_HEIGHT"
	EnvTeamSize    = "GRIDTACTICS_TEAM_SIZE"
	EnvTeamCount   = "GRIDTACTICS_TEAM_COUNT"
	EnvColumnBound = "GRIDTACTICS_COLUMN_BOUND"
	EnvTelemetry   = "GRIDTACTICS_TELEMETRY"
	EnvDataDir     = "GRIDTACTICS_DATA_DIR"
	EnvAPIKey      = "HONEYCOMB_GRIDTACTICS_API_KEY"
	EnvDataset     = "HONEYCOMB_GRIDTACTICS_DATASET"
)

// ApplyEnv overrides fields from the environment. Call it after the .env
// file has been loaded.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{EnvGridWidth, &c.Grid.Width},
		{EnvGridHeight, &c.Grid.Height},
		{EnvTeamSize, &c.TeamSize},
		{EnvTeamCount, &c.TeamCount},
	}
	for _, v := range ints {
		raw, ok := lookup(v.name)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
		*v.dst = n
	}

	if raw, ok := lookup(EnvSeed); ok && raw != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if raw, ok := lookup(EnvColumnBound); ok && raw != "" {
		c.ColumnBound = strings.TrimSpace(raw)
	}
	if raw, ok := lookup(EnvDataDir); ok && raw != "" {
		c.DataDir = raw
	}
	if raw, ok := lookup(EnvTelemetry); ok && raw != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTelemetry, err)
		}
		c.Telemetry.Enabled = enabled
	}
	if raw, ok := lookup(EnvAPIKey); ok {
		c.Telemetry.APIKey = raw
	}
	if raw, ok := lookup(EnvDataset); ok && raw != "" {
		c.Telemetry.Dataset = raw
	}
	return nil
}

// Validate checks the settings against the number of team presets and
// formation slots the game data provides.
func (c Config) Validate(teamPresets, formationSlots int) error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.TeamCount < 2 {
		return fmt.Errorf("team_count must be at least 2, got %d", c.TeamCount)
	}
	if c.TeamCount > teamPresets {
		return fmt.Errorf("team_count %d exceeds the %d team presets", c.TeamCount, teamPresets)
	}
	if c.TeamSize < 1 {
		return fmt.Errorf("team_size must be at least 1, got %d", c.TeamSize)
	}
	if c.TeamSize > formationSlots {
		return fmt.Errorf("team_size %d exceeds the %d formation slots", c.TeamSize, formationSlots)
	}
	if _, err := c.Bound(); err != nil {
		return err
	}
	return nil
}

// Bound returns the parsed column bound.
func (c Config) Bound() (grid.ColumnBound, error) {
	return grid.ParseColumnBound(c.ColumnBound)
}

// Board returns the configured grid.
func (c Config) Board() grid.Grid {
	return grid.New(c.Grid.Width, c.Grid.Height)
}
