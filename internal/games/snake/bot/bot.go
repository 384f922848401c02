// Package bot provides a greedy autopilot for headless snake runs.
package bot

import (
	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

var order = []core.Direction{core.DirUp, core.DirRight, core.DirDown, core.DirLeft}

// Next picks a direction for the next tick of snap. It moves toward the
// food along the shortest axis distance, never reverses, and avoids cells
// that would end the game when it can. It returns DirNone when every move
// is fatal.
func Next(snap core.Snapshot) core.Direction {
	if snap.GameOver() || len(snap.Segments) == 0 {
		return core.DirNone
	}
	grid := core.NewGrid(snap.Width, snap.Height, snap.Policy)
	head := snap.Head()

	// The tail usually moves away this tick, so it does not block.
	blocked := make(map[core.Position]bool, len(snap.Segments))
	for _, seg := range snap.Segments[:len(snap.Segments)-1] {
		blocked[seg] = true
	}

	best := core.DirNone
	bestDist := -1
	for _, dir := range order {
		if dir == snap.Direction.Opposite() && len(snap.Segments) > 1 {
			continue
		}
		next := grid.Neighbor(head, dir)
		if !grid.IsInside(next) || blocked[next] {
			continue
		}
		d := distance(grid, next, snap.Food)
		if !snap.HasFood {
			d = 0
		}
		if best == core.DirNone || d < bestDist {
			best, bestDist = dir, d
		}
	}
	return best
}

// distance returns the Manhattan distance, taking the short way around on
// wrap grids.
func distance(g core.Grid, a, b core.Position) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if g.Policy == core.PolicyWrap {
		dx = min(dx, g.Width-dx)
		dy = min(dy, g.Height-dy)
	}
	return dx + dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
