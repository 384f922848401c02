package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// A custom path must load cleanly. Search-path files that exist but cannot be
// used are skipped with a warning on logger, which may be nil.
func LoadSnake(customPath string, logger *log.Logger) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		fileCfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return fileCfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range searchPaths() {
		if path == "" {
			continue
		}
		fileCfg, err := loadFile(path)
		if err == nil {
			return fileCfg, nil
		}
		if !errors.Is(err, fs.ErrNotExist) && logger != nil {
			logger.Warn("skipping config file", "path", path, "error", err)
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths lists the optional config files in priority order.
var searchPaths = func() []string {
	return []string{userConfigPath("snake.yaml"), filepath.Join("configs", "snake.yaml")}
}

// loadFile decodes path over the defaults and validates the result.
func loadFile(path string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust base speed based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timing.TicksPerSecond = 6
	case DifficultyHard:
		cfg.Timing.TicksPerSecond = 12
	}
	if cfg.Timing.MaxTicksPerSecond != 0 && cfg.Timing.MaxTicksPerSecond < cfg.Timing.TicksPerSecond {
		cfg.Timing.MaxTicksPerSecond = cfg.Timing.TicksPerSecond
	}
}
