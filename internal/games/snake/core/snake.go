package core

// Snake is the ordered body of the snake. body[0] is the head.
type Snake struct {
	grid      Grid
	body      []Position
	occupied  map[Position]struct{}
	direction Direction // Committed direction for the next move
	moved     Direction // Direction of the last move
	pending   int       // Moves left during which the tail is kept
}

// NewSnake lays out a snake of the given length with its head at head,
// facing dir, the rest of the body trailing behind it.
// Callers must make sure the body fits; see New for the checks.
func NewSnake(grid Grid, head Position, length int, dir Direction) *Snake {
	s := &Snake{
		grid:      grid,
		body:      make([]Position, 0, length),
		occupied:  make(map[Position]struct{}, length),
		direction: dir,
		moved:     dir,
	}
	back := dir.Opposite()
	p := head
	for i := 0; i < length; i++ {
		s.body = append(s.body, p)
		s.occupied[p] = struct{}{}
		p = grid.Neighbor(p, back)
	}
	return s
}

// restoreSnake builds a snake from an explicit body, head first.
func restoreSnake(grid Grid, body []Position, dir Direction) *Snake {
	s := &Snake{
		grid:      grid,
		body:      append([]Position(nil), body...),
		occupied:  make(map[Position]struct{}, len(body)),
		direction: dir,
		moved:     dir,
	}
	for _, p := range body {
		s.occupied[p] = struct{}{}
	}
	return s
}

// Advance returns the candidate head for a move in dir. Nothing is committed.
func (s *Snake) Advance(dir Direction) Position {
	return s.grid.Neighbor(s.Head(), dir)
}

// CommitMove pushes head to the front of the body. The tail is popped
// unless grow is set or growth is still pending.
func (s *Snake) CommitMove(head Position, grow bool) {
	s.body = append(s.body, Position{})
	copy(s.body[1:], s.body)
	s.body[0] = head
	s.moved = s.direction

	keepTail := grow
	if !keepTail && s.pending > 0 {
		s.pending--
		keepTail = true
	}
	if !keepTail {
		tail := s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		delete(s.occupied, tail)
	}
	s.occupied[head] = struct{}{}
}

// Occupies reports whether any segment is at pos.
func (s *Snake) Occupies(pos Position) bool {
	_, ok := s.occupied[pos]
	return ok
}

// OccupiesBody reports whether pos would still be occupied after the next
// move: the tail is ignored when it is about to move away.
func (s *Snake) OccupiesBody(pos Position) bool {
	if !s.Occupies(pos) {
		return false
	}
	return s.WillGrow() || pos != s.Tail()
}

// SetDirection changes the committed direction for the next move.
// Reversals are rejected against both the committed direction and the
// direction of the last move, so two quick turns cannot fold the head back
// into the neck. Returns false when the change was rejected.
func (s *Snake) SetDirection(dir Direction) bool {
	if dir == DirNone || dir > DirLeft {
		return false
	}
	if dir == s.direction.Opposite() || dir == s.moved.Opposite() {
		return false
	}
	s.direction = dir
	return true
}

// Grow schedules n extra moves during which the tail is kept.
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.pending += n
	}
}

// WillGrow reports whether the next move keeps the tail.
func (s *Snake) WillGrow() bool {
	return s.pending > 0
}

// Pending returns the remaining growth.
func (s *Snake) Pending() int {
	return s.pending
}

// Direction returns the committed direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Head returns the head position.
func (s *Snake) Head() Position {
	return s.body[0]
}

// Tail returns the last segment.
func (s *Snake) Tail() Position {
	return s.body[len(s.body)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Position {
	out := make([]Position, len(s.body))
	copy(out, s.body)
	return out
}
