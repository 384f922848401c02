package config

import (
	"math"
	"time"
)

// DifficultyManager calculates the driver's tick rate based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
// The initial level is clamped to 0.0..1.0.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// TickRate returns ticks per second for the current level, from base up to
// base * (1 + speedMultiplier), capped at maxRate when maxRate is positive.
func (d *DifficultyManager) TickRate(base, maxRate, score int, ticks uint64) int {
	level := d.Level(score, ticks)
	rate := int(math.Round(float64(base) * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)))
	if maxRate > 0 && rate > maxRate {
		rate = maxRate
	}
	if rate < 1 {
		rate = 1
	}
	return rate
}

// Interval converts TickRate into the duration between engine ticks.
func (d *DifficultyManager) Interval(base, maxRate, score int, ticks uint64) time.Duration {
	return time.Second / time.Duration(d.TickRate(base, maxRate, score, ticks))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
