package snake

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// useConfig points the package at a config file containing data.
func useConfig(t *testing.T, data []byte) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func newGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	useConfig(t, config.GetDefaultYAML())
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	if err := g.Err(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{IDWrap, IDBounded} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, New(), 12345)
	g2 := newGame(t, New(), 12345)

	script := map[int]platformcore.Action{20: platformcore.ActionDown, 40: platformcore.ActionLeft, 55: platformcore.ActionUp}
	for i := 0; i < 100; i++ {
		in := platformcore.NewInputFrame()
		if a, ok := script[i]; ok {
			in.Set(a)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newGame(t, New(), 42)
	start := g.Snapshot().Head()

	g.Step(frame(platformcore.ActionLeft))

	snap := g.Snapshot()
	if snap.Direction != core.DirRight {
		t.Errorf("direction = %s, expected right", snap.Direction)
	}
	if snap.Head() != core.P(start.X+1, start.Y) {
		t.Errorf("head = %s, expected one step right of %s", snap.Head(), start)
	}

	g.Step(frame(platformcore.ActionDown))
	if g.Snapshot().Direction != core.DirDown {
		t.Errorf("expected direction down, got %s", g.Snapshot().Direction)
	}
}

func TestQuickSecondTurnCarriesOver(t *testing.T) {
	g := newGame(t, New(), 42)
	start := g.Snapshot().Head()

	g.Step(frame(platformcore.ActionUp, platformcore.ActionLeft))
	snap := g.Snapshot()
	if snap.Direction != core.DirUp || snap.Head() != core.P(start.X, start.Y-1) {
		t.Fatalf("tick 1: head %s dir %s, expected %s up", snap.Head(), snap.Direction, core.P(start.X, start.Y-1))
	}

	g.Step(frame())
	snap = g.Snapshot()
	if snap.Direction != core.DirLeft || snap.Head() != core.P(start.X-1, start.Y-1) {
		t.Errorf("tick 2: head %s dir %s, expected %s left", snap.Head(), snap.Direction, core.P(start.X-1, start.Y-1))
	}

	rec, ok := g.Record()
	if !ok {
		t.Fatal("expected a record")
	}
	if got := replay.EncodeInputs(rec.Inputs); got != "UL" {
		t.Errorf("recorded inputs %q, expected \"UL\"", got)
	}
}

func TestQuickReversalIsDropped(t *testing.T) {
	g := newGame(t, New(), 42)
	start := g.Snapshot().Head()

	g.Step(frame(platformcore.ActionUp, platformcore.ActionDown))
	g.Step(frame())

	snap := g.Snapshot()
	if snap.Direction != core.DirUp || snap.Head() != core.P(start.X, start.Y-2) {
		t.Errorf("head %s dir %s, expected %s up", snap.Head(), snap.Direction, core.P(start.X, start.Y-2))
	}
}

func TestPauseStopsTicks(t *testing.T) {
	g := newGame(t, New(), 1)

	res := g.Step(frame(platformcore.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	g.Step(frame())
	if g.Snapshot().Tick != 0 {
		t.Errorf("paused game ticked to %d", g.Snapshot().Tick)
	}

	g.Step(frame(platformcore.ActionPause))
	if g.Snapshot().Tick != 1 {
		t.Errorf("expected one tick after resume, got %d", g.Snapshot().Tick)
	}
}

func TestTooSmallWindow(t *testing.T) {
	useConfig(t, config.GetDefaultYAML())
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 3})

	g.Step(frame())
	if g.Snapshot().Tick != 0 {
		t.Error("game should not tick while the window is too small")
	}

	g.Resize(80, 24)
	g.Step(frame())
	if g.Snapshot().Tick != 1 {
		t.Errorf("expected tick after resize, got %d", g.Snapshot().Tick)
	}
}

func TestWalledHitsBoundary(t *testing.T) {
	g := newGame(t, NewWalled(), 9)
	if g.Snapshot().Policy != core.PolicyBounded {
		t.Fatalf("walled variant has policy %s", g.Snapshot().Policy)
	}

	var res platformcore.StepResult
	for i := 0; i < 40 && !res.State.GameOver; i++ {
		res = g.Step(frame())
	}
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("expected a loss, got %+v", res.State)
	}
	if g.Snapshot().Reason != core.ReasonBoundaryCollision {
		t.Errorf("reason = %s, expected boundary-collision", g.Snapshot().Reason)
	}
	if res.Err != nil {
		t.Errorf("collision is not an error: %v", res.Err)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newGame(t, NewWalled(), 9)
	for i := 0; i < 40 && !g.Snapshot().GameOver(); i++ {
		g.Step(frame())
	}
	seed := g.seed

	g.Step(frame(platformcore.ActionRestart))

	snap := g.Snapshot()
	if snap.GameOver() || snap.Tick != 0 {
		t.Errorf("expected a fresh run, got tick %d phase %s", snap.Tick, snap.Phase)
	}
	if g.seed == seed {
		t.Error("restart should pick a new seed")
	}
}

func TestRecordReplays(t *testing.T) {
	g := newGame(t, New(), 777)
	if _, ok := g.Record(); ok {
		t.Error("Record() before the first tick should report false")
	}

	turns := []platformcore.Action{platformcore.ActionUp, platformcore.ActionLeft, platformcore.ActionDown, platformcore.ActionRight}
	for i := 0; i < 120 && !g.Snapshot().GameOver(); i++ {
		in := platformcore.NewInputFrame()
		if i%7 == 0 {
			in.Set(turns[(i/7)%len(turns)])
		}
		g.Step(in)
	}

	rec, ok := g.Record()
	if !ok {
		t.Fatal("expected a record")
	}
	if rec.Variant != IDWrap || rec.Seed != 777 {
		t.Errorf("unexpected record header %+v", rec)
	}
	snap, err := replay.Verify(rec)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !reflect.DeepEqual(snap, g.Snapshot()) {
		t.Errorf("replayed snapshot differs:\n%+v\n%+v", snap, g.Snapshot())
	}
}

func TestTickRateOverride(t *testing.T) {
	useConfig(t, config.GetDefaultYAML())
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1, TickRate: 5})
	if g.TickRate() != 5 {
		t.Errorf("TickRate() = %d, expected 5", g.TickRate())
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, New(), 5)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}

	snap := g.Snapshot()
	ox, oy := g.boardOrigin(screen)
	if r := screen.Get(ox, oy); r != '┌' {
		t.Errorf("expected border corner at (%d,%d), got %q", ox, oy, r)
	}
	head := snap.Head()
	if r := screen.Get(ox+1+head.X, oy+1+head.Y); r != '>' {
		t.Errorf("expected head '>' got %q", r)
	}
	if r := screen.Get(ox+1+snap.Food.X, oy+1+snap.Food.Y); r != '*' {
		t.Errorf("expected food '*' got %q", r)
	}
}

func TestBadConfigReported(t *testing.T) {
	useConfig(t, []byte("grid:\n  policy: spiral\n"))
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if g.Err() == nil {
		t.Fatal("expected a config error")
	}
	res := g.Step(frame())
	if !res.State.GameOver || res.Err == nil {
		t.Errorf("expected game over with error, got %+v", res)
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot start") {
		t.Error("expected error overlay")
	}
}

func TestBoardString(t *testing.T) {
	snap := core.Snapshot{
		Width:     4,
		Height:    1,
		Policy:    core.PolicyBounded,
		Segments:  []core.Position{core.P(2, 0), core.P(1, 0)},
		Direction: core.DirRight,
		Food:      core.P(0, 0),
		HasFood:   true,
	}

	expected := "┌────┐\n│*o> │\n└────┘"
	if got := BoardString(snap); got != expected {
		t.Errorf("BoardString() =\n%s\nexpected\n%s", got, expected)
	}
}
