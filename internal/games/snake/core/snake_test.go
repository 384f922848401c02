package core

import (
	"reflect"
	"testing"
)

func TestNewSnakeLayout(t *testing.T) {
	grid := NewGrid(10, 10, PolicyWrap)
	s := NewSnake(grid, P(5, 5), 3, DirRight)

	expected := []Position{P(5, 5), P(4, 5), P(3, 5)}
	if !reflect.DeepEqual(s.Segments(), expected) {
		t.Errorf("segments = %v, expected %v", s.Segments(), expected)
	}
	if s.Head() != P(5, 5) || s.Tail() != P(3, 5) {
		t.Errorf("head/tail = %v/%v", s.Head(), s.Tail())
	}
	if s.Direction() != DirRight {
		t.Errorf("direction = %v, expected right", s.Direction())
	}
}

func TestCommitMove(t *testing.T) {
	grid := NewGrid(10, 10, PolicyWrap)
	s := NewSnake(grid, P(5, 5), 3, DirRight)

	s.CommitMove(s.Advance(DirRight), false)
	if s.Len() != 3 {
		t.Errorf("length changed without growth: %d", s.Len())
	}
	if s.Occupies(P(3, 5)) {
		t.Error("old tail should be vacated")
	}
	if !s.Occupies(P(6, 5)) {
		t.Error("new head should be occupied")
	}

	s.CommitMove(s.Advance(DirRight), true)
	if s.Len() != 4 {
		t.Errorf("expected length 4 after growing, got %d", s.Len())
	}
	if s.Tail() != P(4, 5) {
		t.Errorf("tail should be kept, got %v", s.Tail())
	}
}

func TestPendingGrowth(t *testing.T) {
	grid := NewGrid(20, 5, PolicyWrap)
	s := NewSnake(grid, P(10, 2), 2, DirRight)
	s.Grow(2)

	for i := 0; i < 2; i++ {
		if !s.WillGrow() {
			t.Fatalf("move %d: expected pending growth", i)
		}
		s.CommitMove(s.Advance(s.Direction()), false)
	}
	if s.Len() != 4 {
		t.Errorf("expected length 4, got %d", s.Len())
	}
	if s.WillGrow() {
		t.Error("growth should be used up")
	}

	// grow=true must not consume pending growth.
	s.Grow(1)
	s.CommitMove(s.Advance(s.Direction()), true)
	if s.Pending() != 1 {
		t.Errorf("expected 1 pending after explicit grow, got %d", s.Pending())
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	grid := NewGrid(10, 10, PolicyWrap)

	tests := []struct {
		name     string
		start    Direction
		set      Direction
		accepted bool
	}{
		{"right to left", DirRight, DirLeft, false},
		{"left to right", DirLeft, DirRight, false},
		{"up to down", DirUp, DirDown, false},
		{"down to up", DirDown, DirUp, false},
		{"right to up", DirRight, DirUp, true},
		{"right to right", DirRight, DirRight, true},
		{"none", DirRight, DirNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(grid, P(5, 5), 4, tc.start)
			got := s.SetDirection(tc.set)
			if got != tc.accepted {
				t.Errorf("SetDirection(%v) = %v, expected %v", tc.set, got, tc.accepted)
			}
			if !tc.accepted && s.Direction() != tc.start {
				t.Errorf("rejected change modified direction to %v", s.Direction())
			}
		})
	}
}

func TestSetDirectionDoubleTurn(t *testing.T) {
	grid := NewGrid(10, 10, PolicyWrap)
	s := NewSnake(grid, P(5, 5), 4, DirRight)

	if !s.SetDirection(DirUp) {
		t.Fatal("up should be accepted while moving right")
	}
	// Left is not opposite of Up, but it is opposite of the last move.
	if s.SetDirection(DirLeft) {
		t.Error("left should be rejected before the snake has moved up")
	}
	if s.SetDirection(DirDown) {
		t.Error("down should be rejected as the opposite of the committed direction")
	}
	if s.Direction() != DirUp {
		t.Errorf("direction = %v, expected up", s.Direction())
	}

	s.CommitMove(s.Advance(s.Direction()), false)
	if !s.SetDirection(DirLeft) {
		t.Error("left should be accepted after moving up")
	}
}

func TestOccupiesBodyIgnoresMovingTail(t *testing.T) {
	grid := NewGrid(10, 10, PolicyWrap)
	s := restoreSnake(grid, []Position{P(5, 5), P(6, 5), P(6, 6), P(5, 6)}, DirDown)

	if s.OccupiesBody(P(5, 6)) {
		t.Error("tail should not count while it is about to move")
	}
	if !s.OccupiesBody(P(6, 6)) {
		t.Error("body segment should count")
	}

	s.Grow(1)
	if !s.OccupiesBody(P(5, 6)) {
		t.Error("tail should count while growth is pending")
	}
}

func TestSegmentsIsACopy(t *testing.T) {
	grid := NewGrid(10, 10, PolicyWrap)
	s := NewSnake(grid, P(5, 5), 3, DirRight)

	segs := s.Segments()
	segs[0] = P(0, 0)
	_ = append(segs, P(9, 9))

	if s.Head() != P(5, 5) {
		t.Errorf("mutating the copy changed the head to %v", s.Head())
	}
	if s.Len() != 3 {
		t.Errorf("mutating the copy changed the length to %d", s.Len())
	}
}
