package config

import (
	"testing"
	"time"
)

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{5, 0.5},
		{10, 1.0},
		{50, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyTickRate(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := dm.TickRate(8, 0, 0, 0); got != 8 {
		t.Errorf("TickRate at score 0 = %d, expected 8", got)
	}
	if got := dm.TickRate(8, 0, 10, 0); got != 16 {
		t.Errorf("TickRate at max = %d, expected 16", got)
	}
	if got := dm.TickRate(8, 12, 10, 0); got != 12 {
		t.Errorf("TickRate should be capped at 12, got %d", got)
	}
	if got := dm.Interval(8, 0, 0, 0); got != time.Second/8 {
		t.Errorf("Interval = %v, expected %v", got, time.Second/8)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	if dm.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := dm.Level(100, 100); got != 0.3 {
		t.Errorf("disabled level should stay at initial 0.3, got %f", got)
	}
}

func TestDifficultyInitialLevelClamped(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{InitialLevel: 2.0})
	if got := dm.Level(0, 0); got != 1.0 {
		t.Errorf("initial level should clamp to 1.0, got %f", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := dm.Level(0, 50); got != 0.5 {
		t.Errorf("Level at half time = %f, expected 0.5", got)
	}
}
