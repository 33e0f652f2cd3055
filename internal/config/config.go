// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import "fmt"

// Preset names a difficulty level. The set is fixed; unknown keys fall
// back to normal.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetInsane Preset = "insane"
)

// Presets lists all difficulty presets in ascending order of challenge.
var Presets = []Preset{PresetEasy, PresetNormal, PresetHard, PresetInsane}

// ParsePreset maps a stored or user-supplied key to a preset.
// Unknown and empty keys silently resolve to normal.
func ParsePreset(s string) Preset {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard, PresetInsane:
		return Preset(s)
	default:
		return PresetNormal
	}
}

// Difficulty bundles the speed curve parameters for one preset.
// The tick interval starts at InitialTickMs and is multiplied by
// SpeedupFactor each time SpeedupFoodInterval foods have been eaten,
// never dropping below MinTickMs.
type Difficulty struct {
	InitialTickMs       int     `yaml:"initial_tick_ms"`
	SpeedupFoodInterval int     `yaml:"speedup_food_interval"`
	SpeedupFactor       float64 `yaml:"speedup_factor"`
	MinTickMs           int     `yaml:"min_tick_ms"`
}

// SnakeConfig contains all tunable game parameters.
type SnakeConfig struct {
	GridSize     int                   `yaml:"grid_size"`
	Difficulties map[Preset]Difficulty `yaml:"difficulties"`
}

// Difficulty returns the parameters for a preset, falling back to the
// normal preset for unknown keys.
func (c SnakeConfig) Difficulty(p Preset) Difficulty {
	if d, ok := c.Difficulties[p]; ok {
		return d
	}
	return c.Difficulties[PresetNormal]
}

// Validate checks that the configuration is playable.
func (c SnakeConfig) Validate() error {
	if c.GridSize < 5 {
		return fmt.Errorf("config: grid_size %d too small (minimum 5)", c.GridSize)
	}
	for _, p := range Presets {
		d, ok := c.Difficulties[p]
		if !ok {
			return fmt.Errorf("config: missing difficulty %q", p)
		}
		if d.InitialTickMs <= 0 {
			return fmt.Errorf("config: difficulty %q has non-positive initial_tick_ms", p)
		}
		if d.MinTickMs <= 0 || d.MinTickMs > d.InitialTickMs {
			return fmt.Errorf("config: difficulty %q has invalid min_tick_ms %d", p, d.MinTickMs)
		}
		if d.SpeedupFoodInterval <= 0 {
			return fmt.Errorf("config: difficulty %q has non-positive speedup_food_interval", p)
		}
		if d.SpeedupFactor <= 0 || d.SpeedupFactor >= 1 {
			return fmt.Errorf("config: difficulty %q has speedup_factor %v outside (0, 1)", p, d.SpeedupFactor)
		}
	}
	return nil
}
