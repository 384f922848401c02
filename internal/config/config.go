// Package config provides YAML-based game configuration loading and
// difficulty management for the snake platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Snake      SnakeBody        `yaml:"snake"`
	Food       SnakeFood        `yaml:"food"`
	Timing     SnakeTiming      `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the playing field.
type SnakeGrid struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Policy string `yaml:"policy"` // "wrap" or "bounded"
}

// SnakeBody defines the initial snake and its growth.
type SnakeBody struct {
	InitialLength int `yaml:"initial_length"`
	GrowthPerFood int `yaml:"growth_per_food"`
}

// SnakeFood defines food placement parameters.
type SnakeFood struct {
	SpawnAttempts int `yaml:"spawn_attempts"`
}

// SnakeTiming defines how often the driver ticks the engine.
type SnakeTiming struct {
	TicksPerSecond    int `yaml:"ticks_per_second"`
	MaxTicksPerSecond int `yaml:"max_ticks_per_second"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to tick rate at max difficulty
}

// Policy returns the parsed grid policy.
func (c SnakeConfig) Policy() (core.Policy, error) {
	return core.ParsePolicy(c.Grid.Policy)
}

// EngineConfig converts the file configuration into engine parameters.
// The random source is left for the caller to inject.
func (c SnakeConfig) EngineConfig() (core.Config, error) {
	policy, err := c.Policy()
	if err != nil {
		return core.Config{}, fmt.Errorf("config: %w", err)
	}
	return core.Config{
		Width:         c.Grid.Width,
		Height:        c.Grid.Height,
		InitialLength: c.Snake.InitialLength,
		Policy:        policy,
		GrowthPerFood: c.Snake.GrowthPerFood,
		SpawnAttempts: c.Food.SpawnAttempts,
	}, nil
}

// Validate reports the first invalid value.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 2 || c.Grid.Height < 1 {
		return fmt.Errorf("config: grid %dx%d is too small", c.Grid.Width, c.Grid.Height)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("config: initial_length must be positive, got %d", c.Snake.InitialLength)
	}
	if c.Snake.InitialLength > c.Grid.Width/2+1 {
		return fmt.Errorf("config: initial_length %d does not fit in width %d", c.Snake.InitialLength, c.Grid.Width)
	}
	if c.Snake.GrowthPerFood < 0 {
		return fmt.Errorf("config: growth_per_food must not be negative, got %d", c.Snake.GrowthPerFood)
	}
	if c.Timing.TicksPerSecond < 1 {
		return fmt.Errorf("config: ticks_per_second must be positive, got %d", c.Timing.TicksPerSecond)
	}
	if c.Timing.MaxTicksPerSecond != 0 && c.Timing.MaxTicksPerSecond < c.Timing.TicksPerSecond {
		return fmt.Errorf("config: max_ticks_per_second %d is below ticks_per_second %d",
			c.Timing.MaxTicksPerSecond, c.Timing.TicksPerSecond)
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
