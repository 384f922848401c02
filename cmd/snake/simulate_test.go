package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

func useDefaultConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, config.GetDefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}
	snake.SetConfigPath(path)
	t.Cleanup(func() { snake.SetConfigPath("") })
}

func TestSimulateDeterministic(t *testing.T) {
	useDefaultConfig(t)

	rec1, snap1, err := simulate(snake.IDWrap, 99, 500, nil)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	rec2, snap2, err := simulate(snake.IDWrap, 99, 500, nil)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if !reflect.DeepEqual(rec1, rec2) {
		t.Error("records differ for the same seed")
	}
	if snap1.Tick == 0 || snap1.Tick > 500 {
		t.Errorf("unexpected tick count %d", snap1.Tick)
	}
}

func TestSimulateVerifies(t *testing.T) {
	useDefaultConfig(t)

	for _, variant := range []string{snake.IDWrap, snake.IDBounded} {
		rec, snap, err := simulate(variant, 5, 400, nil)
		if err != nil {
			t.Fatalf("%s: simulate failed: %v", variant, err)
		}
		if variant == snake.IDBounded && rec.Policy != core.PolicyBounded {
			t.Errorf("walled variant recorded policy %s", rec.Policy)
		}
		got, err := replay.Verify(rec)
		if err != nil {
			t.Fatalf("%s: Verify failed: %v", variant, err)
		}
		if !reflect.DeepEqual(got, snap) {
			t.Errorf("%s: replayed snapshot differs", variant)
		}
	}
}

func TestSimulateScript(t *testing.T) {
	useDefaultConfig(t)

	script, err := replay.DecodeInputs("3.U2.L")
	if err != nil {
		t.Fatal(err)
	}
	rec, snap, err := simulate(snake.IDWrap, 1, 0, script)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if snap.Tick != 7 {
		t.Errorf("expected 7 ticks, got %d", snap.Tick)
	}
	if got := replay.EncodeInputs(rec.Inputs); got != "3.U2.L" {
		t.Errorf("recorded inputs %q", got)
	}
	if snap.Direction != core.DirLeft {
		t.Errorf("direction = %s, expected left", snap.Direction)
	}
}

func TestSimulateBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("snake:\n  initial_length: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	snake.SetConfigPath(path)
	t.Cleanup(func() { snake.SetConfigPath("") })

	if _, _, err := simulate(snake.IDWrap, 1, 10, nil); err == nil {
		t.Error("expected an error for an invalid config")
	}
}
