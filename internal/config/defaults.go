package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// Kept in sync with defaults/snake.yaml as a fallback if the embedded
// file fails to parse.
func DefaultConfig() SnakeConfig {
	return SnakeConfig{
		GridSize: 20,
		Difficulties: map[Preset]Difficulty{
			PresetEasy: {
				InitialTickMs:       200,
				SpeedupFoodInterval: 5,
				SpeedupFactor:       0.95,
				MinTickMs:           120,
			},
			PresetNormal: {
				InitialTickMs:       160,
				SpeedupFoodInterval: 4,
				SpeedupFactor:       0.92,
				MinTickMs:           80,
			},
			PresetHard: {
				InitialTickMs:       120,
				SpeedupFoodInterval: 3,
				SpeedupFactor:       0.90,
				MinTickMs:           60,
			},
			PresetInsane: {
				InitialTickMs:       90,
				SpeedupFoodInterval: 2,
				SpeedupFactor:       0.88,
				MinTickMs:           45,
			},
		},
	}
}
