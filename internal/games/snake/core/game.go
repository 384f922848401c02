package core

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Config holds the parameters for a new game.
type Config struct {
	Width         int
	Height        int
	InitialLength int
	Policy        Policy
	GrowthPerFood int    // Segments gained per food; 0 means 1
	SpawnAttempts int    // Rejection-sampling budget; 0 means DefaultSpawnAttempts
	Rand          Source // nil means a time-seeded *rand.Rand
}

// Game is the snake state machine. All state is owned here and mutated only
// by Tick; callers only ever see copies through Snapshot.
type Game struct {
	grid    Grid
	snake   *Snake
	spawner *Spawner
	growth  int

	food    Position
	hasFood bool
	score   int
	tick    uint64
	phase   Phase
	reason  Reason
}

// New creates a game with a snake centred on the grid, facing right, and
// the first food already placed. It fails with ErrGridTooSmall when the
// grid cannot hold the initial snake plus one food cell.
func New(cfg Config) (*Game, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooSmall, cfg.Width, cfg.Height)
	}
	if cfg.InitialLength < 1 {
		return nil, fmt.Errorf("%w: initial length %d", ErrGridTooSmall, cfg.InitialLength)
	}
	grid := NewGrid(cfg.Width, cfg.Height, cfg.Policy)
	head := grid.Center()
	// The body trails left of the centre and must not leave the grid.
	if cfg.InitialLength > head.X+1 {
		return nil, fmt.Errorf("%w: length %d does not fit in width %d",
			ErrGridTooSmall, cfg.InitialLength, cfg.Width)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	growth := cfg.GrowthPerFood
	if growth < 1 {
		growth = 1
	}

	g := &Game{
		grid:    grid,
		snake:   NewSnake(grid, head, cfg.InitialLength, DirRight),
		spawner: NewSpawner(rng, cfg.SpawnAttempts),
		growth:  growth,
	}

	food, err := g.spawner.Spawn(grid, g.snake)
	if err != nil {
		return nil, fmt.Errorf("%w: no cell left for food", ErrGridTooSmall)
	}
	g.food = food
	g.hasFood = true
	return g, nil
}

// Tick advances the simulation by one cell.
//
// input is applied through Snake.SetDirection unless it is DirNone. Once the
// game is over, Tick returns the unchanged snapshot and ErrGameOver.
// When the snake eats the last free cell, the move is committed, the game
// ends with ReasonBoardFull and ErrSpawnExhausted is returned.
func (g *Game) Tick(input Direction) (Snapshot, error) {
	if g.phase == PhaseGameOver {
		return g.Snapshot(), ErrGameOver
	}

	if input != DirNone {
		g.snake.SetDirection(input)
	}

	candidate := g.snake.Advance(g.snake.Direction())
	g.tick++

	// Both checks use the pre-move body. Food is never on the snake, so
	// eating always wins over a collision with the departing tail.
	eaten := g.hasFood && candidate == g.food

	if !eaten && g.snake.OccupiesBody(candidate) {
		g.end(ReasonSelfCollision)
		return g.Snapshot(), nil
	}

	if g.grid.Policy == PolicyBounded && !g.grid.IsInside(candidate) {
		g.end(ReasonBoundaryCollision)
		return g.Snapshot(), nil
	}

	if eaten {
		g.score++
		g.snake.Grow(g.growth - 1)
	}
	g.snake.CommitMove(candidate, eaten)

	if eaten {
		food, err := g.spawner.Spawn(g.grid, g.snake)
		if errors.Is(err, ErrSpawnExhausted) {
			g.hasFood = false
			g.end(ReasonBoardFull)
			return g.Snapshot(), err
		}
		g.food = food
	}

	return g.Snapshot(), nil
}

func (g *Game) end(reason Reason) {
	g.phase = PhaseGameOver
	g.reason = reason
}

// Snapshot returns a read-only copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Reason:    g.reason,
		Score:     g.score,
		Segments:  g.snake.Segments(),
		Direction: g.snake.Direction(),
		Food:      g.food,
		HasFood:   g.hasFood,
		Width:     g.grid.Width,
		Height:    g.grid.Height,
		Policy:    g.grid.Policy,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the number of food eaten.
func (g *Game) Score() int {
	return g.score
}

// Ticks returns the number of ticks processed.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// CheckInvariants validates the body and food placement.
// It is meant for tests and replay verification, not the hot path.
func (g *Game) CheckInvariants() error {
	seen := make(map[Position]bool, g.snake.Len())
	body := g.snake.body
	for i, p := range body {
		if !g.grid.IsInside(p) {
			return fmt.Errorf("segment %d at %v is off-grid", i, p)
		}
		if seen[p] {
			return fmt.Errorf("segment %d at %v overlaps the body", i, p)
		}
		seen[p] = true
		if i > 0 && !g.grid.Adjacent(body[i-1], p) {
			return fmt.Errorf("segment %d at %v is not adjacent to %v", i, p, body[i-1])
		}
	}
	if len(seen) != len(g.snake.occupied) {
		return fmt.Errorf("occupancy has %d cells, body has %d", len(g.snake.occupied), len(seen))
	}
	if g.hasFood {
		if !g.grid.IsInside(g.food) {
			return fmt.Errorf("food at %v is off-grid", g.food)
		}
		if seen[g.food] {
			return fmt.Errorf("food at %v is on the snake", g.food)
		}
	}
	return nil
}
