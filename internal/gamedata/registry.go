package gamedata

import (
	"errors"
	"fmt"
)

// LevelRegistry holds loaded level definitions and provides lookup utilities.
type LevelRegistry struct {
	levels map[string]*LevelDef
	all    []LevelDef
}

// NewLevelRegistry creates a registry from loaded level definitions.
// Later definitions with a duplicate ID replace earlier ones in lookups.
func NewLevelRegistry(levels []LevelDef) *LevelRegistry {
	registry := &LevelRegistry{
		levels: make(map[string]*LevelDef),
		all:    levels,
	}
	for i := range levels {
		registry.levels[levels[i].ID] = &levels[i]
	}
	return registry
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(levels), nil
}

// GetByID returns the level definition with the given ID, or nil if not found.
func (r *LevelRegistry) GetByID(id string) *LevelDef {
	return r.levels[id]
}

// Lookup returns the level with the given ID or an error naming the known IDs.
func (r *LevelRegistry) Lookup(id string) (*LevelDef, error) {
	if level := r.levels[id]; level != nil {
		return level, nil
	}
	return nil, fmt.Errorf("unknown level %q (known: %v)", id, r.IDs())
}

// IDs returns the level IDs in file order.
func (r *LevelRegistry) IDs() []string {
	ids := make([]string, 0, len(r.all))
	for _, l := range r.all {
		ids = append(ids, l.ID)
	}
	return ids
}

// All returns all level definitions.
func (r *LevelRegistry) All() []LevelDef {
	return r.all
}

// Count returns the number of levels in the registry.
func (r *LevelRegistry) Count() int {
	return len(r.all)
}
