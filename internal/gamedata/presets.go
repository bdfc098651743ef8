package gamedata

import (
	"errors"
	"fmt"
)

// DefaultPreset names the preset used when none is requested.
const DefaultPreset = "default"

// ErrUnknownPreset is returned when a preset name is not in presets.json.
var ErrUnknownPreset = errors.New("unknown level preset")

// LevelPreset bundles generation and session parameters under a name.
type LevelPreset struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Iterations  int    `json:"iterations"`  // Automaton generations
	SpawnerOdds int    `json:"spawnerOdds"` // One in N ticks places a spawner
	EnemyOdds   int    `json:"enemyOdds"`   // One in N ticks spawns an enemy
}

// Validate reports the first out-of-range field.
func (p LevelPreset) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("preset %q: dimensions must be positive, got %dx%d", p.Name, p.Width, p.Height)
	case p.Iterations < 0:
		return fmt.Errorf("preset %q: iterations must not be negative, got %d", p.Name, p.Iterations)
	case p.SpawnerOdds <= 0 || p.EnemyOdds <= 0:
		return fmt.Errorf("preset %q: odds must be positive", p.Name)
	}
	return nil
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []LevelPreset `json:"presets"`
}

// LoadPresets loads level presets from the embedded presets.json file.
func LoadPresets() ([]LevelPreset, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}

// FindPreset returns the embedded preset with the given name.
func FindPreset(name string) (LevelPreset, error) {
	presets, err := LoadPresets()
	if err != nil {
		return LevelPreset{}, err
	}
	for _, p := range presets {
		if p.Name == name {
			return p, p.Validate()
		}
	}
	return LevelPreset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
