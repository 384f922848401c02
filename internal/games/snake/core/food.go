package core

// Source is the random source used for food placement.
// *math/rand.Rand satisfies it; tests can supply scripted sequences.
type Source interface {
	Intn(n int) int
}

// DefaultSpawnAttempts is the rejection-sampling budget when none is configured.
const DefaultSpawnAttempts = 64

// Spawner picks free cells for food.
type Spawner struct {
	rng         Source
	maxAttempts int
}

// NewSpawner creates a spawner. A non-positive maxAttempts uses DefaultSpawnAttempts.
func NewSpawner(rng Source, maxAttempts int) *Spawner {
	if maxAttempts <= 0 {
		maxAttempts = DefaultSpawnAttempts
	}
	return &Spawner{rng: rng, maxAttempts: maxAttempts}
}

// Spawn returns an on-grid cell not occupied by the snake.
//
// Candidates are drawn uniformly over the whole grid up to the attempt
// budget. When the budget runs out the free cells are enumerated and one is
// drawn uniformly from them, so a crowded board costs one scan instead of
// an unbounded loop. A full board returns ErrSpawnExhausted.
func (sp *Spawner) Spawn(grid Grid, snake *Snake) (Position, error) {
	cells := grid.Cells()
	if snake.Len() >= cells {
		return Position{}, ErrSpawnExhausted
	}

	for range sp.maxAttempts {
		p := grid.At(sp.rng.Intn(cells))
		if !snake.Occupies(p) {
			return p, nil
		}
	}

	free := make([]Position, 0, cells-snake.Len())
	for i := range cells {
		p := grid.At(i)
		if !snake.Occupies(p) {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return Position{}, ErrSpawnExhausted
	}
	return free[sp.rng.Intn(len(free))], nil
}
