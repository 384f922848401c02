package core

import (
	"errors"
	"math/rand"
	"testing"
)

// constSource always returns the same value, clamped to n.
type constSource int

func (c constSource) Intn(n int) int {
	if int(c) >= n {
		return n - 1
	}
	return int(c)
}

func TestSpawnNeverOnSnake(t *testing.T) {
	grid := NewGrid(8, 6, PolicyWrap)
	s := NewSnake(grid, P(4, 3), 5, DirRight)

	for seed := int64(0); seed < 20; seed++ {
		sp := NewSpawner(rand.New(rand.NewSource(seed)), 0)
		for i := 0; i < 50; i++ {
			p, err := sp.Spawn(grid, s)
			if err != nil {
				t.Fatalf("seed %d: unexpected error: %v", seed, err)
			}
			if s.Occupies(p) {
				t.Errorf("seed %d: food spawned on snake at %v", seed, p)
			}
			if !grid.IsInside(p) {
				t.Errorf("seed %d: food spawned off-grid at %v", seed, p)
			}
		}
	}
}

func TestSpawnFallsBackToFreeCells(t *testing.T) {
	grid := NewGrid(4, 1, PolicyWrap)
	s := restoreSnake(grid, []Position{P(2, 0), P(1, 0), P(0, 0)}, DirRight)

	// Index 0 is always occupied, so every rejection sample misses.
	sp := NewSpawner(constSource(0), 3)
	p, err := sp.Spawn(grid, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != P(3, 0) {
		t.Errorf("expected the only free cell (3,0), got %v", p)
	}
}

func TestSpawnExhausted(t *testing.T) {
	grid := NewGrid(3, 1, PolicyWrap)
	s := restoreSnake(grid, []Position{P(2, 0), P(1, 0), P(0, 0)}, DirRight)

	sp := NewSpawner(rand.New(rand.NewSource(1)), 10)
	_, err := sp.Spawn(grid, s)
	if !errors.Is(err, ErrSpawnExhausted) {
		t.Errorf("expected ErrSpawnExhausted, got %v", err)
	}
}

func TestSpawnDeterministic(t *testing.T) {
	grid := NewGrid(12, 12, PolicyWrap)
	s := NewSnake(grid, P(6, 6), 4, DirRight)

	a := NewSpawner(rand.New(rand.NewSource(77)), 0)
	b := NewSpawner(rand.New(rand.NewSource(77)), 0)
	for i := 0; i < 20; i++ {
		pa, _ := a.Spawn(grid, s)
		pb, _ := b.Spawn(grid, s)
		if pa != pb {
			t.Fatalf("spawn %d differs: %v vs %v", i, pa, pb)
		}
	}
}
