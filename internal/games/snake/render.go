package snake

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	switch {
	case g.err != nil:
		g.renderOverlay(dst, "Cannot start", g.err.Error())
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.cfg.Grid.Width+2, g.cfg.Grid.Height+2+hudHeight))
		return
	}

	ox, oy := g.boardOrigin(dst)
	RenderBoard(dst, g.snap, ox, oy)

	switch {
	case g.snap.Won():
		g.renderOverlay(dst, "Board cleared!", fmt.Sprintf("Score: %d  Press R to restart", g.snap.Score))
	case g.snap.GameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("%s  Press R to restart", reasonText(g.snap.Reason)))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardOrigin returns the screen position of the top-left border corner.
func (g *Game) boardOrigin(dst *platformcore.Screen) (int, int) {
	return (dst.Width() - (g.snap.Width + 2)) / 2, hudHeight
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" %s │ Score: %d  Length: %d  Speed: %d/s  [%s]",
		g.title, g.snap.Score, g.snap.Len(), g.TickRate(), g.snap.Policy)
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', platformcore.ColorGray)
	}
}

// RenderBoard draws the border, food and snake of snap with the top-left
// border corner at (ox, oy). Cell (x, y) lands on (ox+1+x, oy+1+y).
func RenderBoard(dst *platformcore.Screen, snap core.Snapshot, ox, oy int) {
	border := platformcore.ColorDefault
	if snap.Policy == core.PolicyWrap {
		border = platformcore.ColorGray
	}
	dst.DrawBox(ox, oy, snap.Width+2, snap.Height+2, border)

	if snap.HasFood {
		dst.SetColored(ox+1+snap.Food.X, oy+1+snap.Food.Y, '*', platformcore.ColorBrightRed)
	}

	for i := len(snap.Segments) - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		r, c := 'o', platformcore.ColorGreen
		if i == 0 {
			r, c = headRune(snap.Direction), platformcore.ColorBrightGreen
			if snap.GameOver() && !snap.Won() {
				c = platformcore.ColorRed
			}
		}
		dst.SetColored(ox+1+seg.X, oy+1+seg.Y, r, c)
	}
}

// BoardString renders snap alone as plain text.
func BoardString(snap core.Snapshot) string {
	screen := platformcore.NewScreen(snap.Width+2, snap.Height+2)
	RenderBoard(screen, snap, 0, 0)
	return screen.String()
}

func headRune(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return '^'
	case core.DirDown:
		return 'v'
	case core.DirLeft:
		return '<'
	default:
		return '>'
	}
}

func reasonText(r core.Reason) string {
	switch r {
	case core.ReasonSelfCollision:
		return "Bit your own tail."
	case core.ReasonBoundaryCollision:
		return "Hit the wall."
	default:
		return ""
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	for j := y + 1; j < y+h-1; j++ {
		for i := x + 1; i < x+w-1; i++ {
			dst.Set(i, j, ' ')
		}
	}
	dst.DrawBox(x, y, w, h, platformcore.ColorYellow)
	dst.DrawTextCentered(y+1, line1)
	dst.DrawTextCentered(y+3, line2)
}
