// Package tui provides the Bubble Tea integration for the snake platform.
// It handles the terminal UI loop, input mapping, run journaling and the
// runs browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// intervalFor returns the game's own pacing when it has one, else the fixed rate.
func intervalFor(game registry.Game, tickRate int) time.Duration {
	if p, ok := game.(registry.Paced); ok {
		if d := p.TickInterval(); d > 0 {
			return d
		}
	}
	if tickRate <= 0 {
		tickRate = 8
	}
	return time.Second / time.Duration(tickRate)
}
