package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
)

// Registry holds loaded class and team definitions.
type Registry struct {
	classes   map[string]*ClassDef
	teams     []TeamDef
	formation [][2]int
}

// NewRegistry creates a registry from loaded definitions.
func NewRegistry(classes []ClassDef, teams TeamsFile) *Registry {
	registry := &Registry{
		classes:   make(map[string]*ClassDef),
		teams:     teams.Teams,
		formation: teams.Formation,
	}
	for i := range classes {
		registry.classes[classes[i].ID] = &classes[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded data.
func LoadRegistry() (*Registry, error) {
	return LoadRegistryFrom(dataFS)
}

// LoadRegistryFrom loads and creates a registry from classes.json and
// teams.json in fsys.
func LoadRegistryFrom(fsys fs.FS) (*Registry, error) {
	classes, err := LoadFrom[ClassesFile](fsys, "classes.json")
	if err != nil {
		return nil, err
	}
	if len(classes.Classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	teams, err := LoadFrom[TeamsFile](fsys, "teams.json")
	if err != nil {
		return nil, err
	}
	if len(teams.Teams) == 0 {
		return nil, errors.New("no teams loaded from teams.json")
	}
	for _, c := range classes.Classes {
		if c.Strength < 1 || c.Defense < 1 {
			return nil, fmt.Errorf("class %q: strength and defense must be at least 1", c.ID)
		}
		if c.HP < 1 || c.Speed < 0 || c.Range < 0 {
			return nil, fmt.Errorf("class %q: invalid hp, speed or range", c.ID)
		}
	}
	return NewRegistry(classes.Classes, teams), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Class returns the class definition with the given ID, or nil if not found.
func (r *Registry) Class(id string) *ClassDef {
	return r.classes[id]
}

// Team returns the nth team preset, or nil if out of range.
func (r *Registry) Team(index int) *TeamDef {
	if index < 0 || index >= len(r.teams) {
		return nil
	}
	return &r.teams[index]
}

// TeamCount returns the number of team presets.
func (r *Registry) TeamCount() int {
	return len(r.teams)
}

// Formation returns the starting offsets shared by every team.
func (r *Registry) Formation() [][2]int {
	return r.formation
}
