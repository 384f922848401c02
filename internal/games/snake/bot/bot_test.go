package bot

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

func snapshot(policy core.Policy, food core.Position, dir core.Direction, segs ...core.Position) core.Snapshot {
	return core.Snapshot{
		Width:     10,
		Height:    10,
		Policy:    policy,
		Segments:  segs,
		Direction: dir,
		Food:      food,
		HasFood:   true,
	}
}

func TestNext(t *testing.T) {
	body := []core.Position{core.P(5, 5), core.P(4, 5), core.P(3, 5)}

	tests := []struct {
		name     string
		snap     core.Snapshot
		expected core.Direction
	}{
		{
			"toward food",
			snapshot(core.PolicyWrap, core.P(5, 2), core.DirRight, body...),
			core.DirUp,
		},
		{
			"short way around",
			snapshot(core.PolicyWrap, core.P(5, 9), core.DirRight, body...),
			core.DirDown,
		},
		{
			"avoids wall",
			snapshot(core.PolicyBounded, core.P(9, 0), core.DirRight, core.P(9, 5), core.P(8, 5), core.P(7, 5)),
			core.DirUp,
		},
		{
			"avoids body",
			snapshot(core.PolicyWrap, core.P(5, 0), core.DirLeft,
				core.P(5, 5), core.P(6, 5), core.P(6, 4), core.P(5, 4), core.P(4, 4)),
			core.DirDown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Next(tc.snap); got != tc.expected {
				t.Errorf("Next() = %s, expected %s", got, tc.expected)
			}
		})
	}
}

func TestNextNeverReverses(t *testing.T) {
	snap := snapshot(core.PolicyWrap, core.P(2, 5), core.DirRight, core.P(5, 5), core.P(4, 5), core.P(3, 5))
	if got := Next(snap); got == core.DirLeft {
		t.Error("bot must not reverse into its neck")
	}
}

func TestNextNoSafeMove(t *testing.T) {
	snap := core.Snapshot{
		Width:     3,
		Height:    1,
		Policy:    core.PolicyBounded,
		Segments:  []core.Position{core.P(2, 0), core.P(1, 0)},
		Direction: core.DirRight,
		Food:      core.P(0, 0),
		HasFood:   true,
	}
	if got := Next(snap); got != core.DirNone {
		t.Errorf("Next() = %s, expected none", got)
	}
}

func TestBotPlaysGame(t *testing.T) {
	for _, policy := range []core.Policy{core.PolicyWrap, core.PolicyBounded} {
		g, err := core.New(core.Config{
			Width:         10,
			Height:        10,
			InitialLength: 3,
			Policy:        policy,
			Rand:          rand.New(rand.NewSource(2024)),
		})
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}

		snap := g.Snapshot()
		for i := 0; i < 300 && !snap.GameOver(); i++ {
			snap, err = g.Tick(Next(snap))
			if err != nil && !errors.Is(err, core.ErrSpawnExhausted) {
				t.Fatalf("%s: tick %d: %v", policy, i, err)
			}
			if err := g.CheckInvariants(); err != nil {
				t.Fatalf("%s: tick %d: %v", policy, i, err)
			}
		}
		if snap.Score < 1 {
			t.Errorf("%s: bot never ate, snapshot %+v", policy, snap)
		}
	}
}
