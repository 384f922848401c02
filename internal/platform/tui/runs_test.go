package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func testRuns() []storage.Run {
	base := storage.Run{
		Variant:       "snake",
		Seed:          11,
		Width:         10,
		Height:        10,
		Policy:        "wrap",
		InitialLength: 3,
		EndReason:     "none",
	}
	tampered := base
	tampered.ID = 2
	tampered.Score = 3
	base.ID = 1
	return []storage.Run{base, tampered}
}

func TestRunsTableStatic(t *testing.T) {
	out := RunsTable(testRuns())
	for _, want := range []string{"Variant", "snake", "abandoned", "10x10 ~"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	if got := RunsTable(nil); !strings.Contains(got, "No runs") {
		t.Errorf("empty table = %q", got)
	}
}

func TestRunsModelVerify(t *testing.T) {
	m := NewRunsModel(testRuns(), log.New(io.Discard), 120, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(RunsModel)
	if !strings.Contains(m.status, "run 1 verified") {
		t.Errorf("expected run 1 to verify, status %q", m.status)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(RunsModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(RunsModel)
	if !strings.Contains(m.status, "mismatch") {
		t.Errorf("expected run 2 to fail verification, status %q", m.status)
	}
}

func TestRunsModelQuit(t *testing.T) {
	m := NewRunsModel(nil, nil, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded") {
		t.Error("empty browser should say so")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || next.(RunsModel).View() != "" {
		t.Error("q should quit the browser")
	}
}
