// Package core provides the simulation engine for the Snake game.
// This package is UI-agnostic and deterministic: it never sleeps, spawns
// goroutines, or performs I/O. The platform calls Game.Tick once per interval.
package core

import (
	"fmt"
	"strings"
)

// Position is a cell on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a movement direction. The zero value means "no input".
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y, Down increases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Policy selects the grid topology.
type Policy uint8

const (
	// PolicyWrap makes the grid toroidal: leaving one edge re-enters at the opposite one.
	PolicyWrap Policy = iota
	// PolicyBounded ends the game when the head leaves the grid.
	PolicyBounded
)

// String returns the config name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyWrap:
		return "wrap"
	case PolicyBounded:
		return "bounded"
	default:
		return "unknown"
	}
}

// ParsePolicy converts "wrap" or "bounded" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wrap", "toroidal":
		return PolicyWrap, nil
	case "bounded", "walled":
		return PolicyBounded, nil
	}
	return PolicyWrap, fmt.Errorf("unknown grid policy %q", s)
}

// Phase is the top-level game state.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// Reason explains why the game ended.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonSelfCollision
	ReasonBoundaryCollision
	// ReasonBoardFull means no free cell was left for food. Shells treat it as a win.
	ReasonBoardFull
)

// String returns the reason name as stored in run records.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonSelfCollision:
		return "self-collision"
	case ReasonBoundaryCollision:
		return "boundary-collision"
	case ReasonBoardFull:
		return "board-full"
	default:
		return "unknown"
	}
}

// ParseReason is the inverse of Reason.String.
func ParseReason(s string) (Reason, error) {
	for _, r := range []Reason{ReasonNone, ReasonSelfCollision, ReasonBoundaryCollision, ReasonBoardFull} {
		if r.String() == s {
			return r, nil
		}
	}
	return ReasonNone, fmt.Errorf("unknown end reason %q", s)
}
