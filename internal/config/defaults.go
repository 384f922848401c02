package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:  32,
			Height: 16,
			Policy: "wrap",
		},
		Snake: SnakeBody{
			InitialLength: 3,
			GrowthPerFood: 1,
		},
		Food: SnakeFood{
			SpawnAttempts: 64,
		},
		Timing: SnakeTiming{
			TicksPerSecond:    8,
			MaxTicksPerSecond: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
