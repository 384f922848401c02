package core

// Snapshot is an immutable view of the game after a tick.
// Segments is a fresh copy; changing it does not affect the game.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Reason    Reason
	Score     int
	Segments  []Position // Head first
	Direction Direction
	Food      Position
	HasFood   bool // False only after the board filled up
	Width     int
	Height    int
	Policy    Policy
}

// Head returns the head position.
func (s Snapshot) Head() Position {
	if len(s.Segments) == 0 {
		return Position{}
	}
	return s.Segments[0]
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Segments)
}

// GameOver reports whether the game has ended.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Won reports whether the game ended because the board filled up.
func (s Snapshot) Won() bool {
	return s.Phase == PhaseGameOver && s.Reason == ReasonBoardFull
}
