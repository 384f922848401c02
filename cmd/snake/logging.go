package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// parseLevel parses the --log-level flag.
func parseLevel() (log.Level, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return level, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return level, nil
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	level, err := parseLevel()
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
}

// openLogFile opens ~/.snake/snake.log for appending. The alternate screen
// owns the terminal while playing, so play logs go there.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "snake.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
