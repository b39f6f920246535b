package airhockey

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-airhockey/internal/core"
	"github.com/vovakirdan/tui-airhockey/internal/match"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	PuckChar   = '●'
	CenterChar = '┊'
	CircleChar = '·'
)

// Minimum screen size that still fits a readable rink.
const (
	MinScreenW = 32
	MinScreenH = 12
)

// centerCircleRadius is the centre circle radius in arena units.
const centerCircleRadius = 100

const instructions = "P1: WASD   P2: Arrows   P: Pause   Q: Quit"

// rinkView maps arena coordinates onto the screen rows between the score
// line and the instruction line.
type rinkView struct {
	box    core.Rect
	sx, sy float64 // screen cells per arena unit, inside the border
}

func newRinkView(c match.Constants, w, h int) rinkView {
	box := core.NewRect(0, 1, w, h-2)
	return rinkView{
		box: box,
		sx:  float64(box.W-3) / c.ArenaWidth,
		sy:  float64(box.H-3) / c.ArenaHeight,
	}
}

// cell returns the screen cell holding the arena point (x, y).
func (v rinkView) cell(x, y float64) (int, int) {
	cx := v.box.X + 1 + int(math.Round(x*v.sx))
	cy := v.box.Y + 1 + int(math.Round(y*v.sy))
	return cx, cy
}

// arenaY returns the arena y at the centre of screen row cy.
func (v rinkView) arenaY(cy int) float64 {
	return float64(cy-v.box.Y-1) / v.sy
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	snap := g.m.Snapshot()
	v := newRinkView(g.c, w, h)

	g.drawRink(dst, v)
	fillDisc(dst, v, snap.LeftPaddle.X, snap.LeftPaddle.Y, snap.PaddleRadius, PaddleChar, core.ColorLeftSide)
	fillDisc(dst, v, snap.RightPaddle.X, snap.RightPaddle.Y, snap.PaddleRadius, PaddleChar, core.ColorRightSide)
	fillDisc(dst, v, snap.Puck.X, snap.Puck.Y, snap.PuckRadius, PuckChar, core.ColorPuck)

	// Scores at quarter widths
	dst.DrawTextColor(w/4, 0, fmt.Sprintf("%d", snap.Score.Left), core.ColorLeftSide)
	dst.DrawTextColor(3*w/4, 0, fmt.Sprintf("%d", snap.Score.Right), core.ColorRightSide)
	dst.DrawTextCentered(h-1, instructions)

	switch {
	case snap.State == match.StateMatchOver:
		g.drawOverlay(dst, fmt.Sprintf("%s Wins!", playerOf(snap.Winner)), "Press SPACE to Restart")
	case g.paused:
		g.drawOverlay(dst, "PAUSED", "Press P to Resume")
	case g.bannerTicks > 0:
		dst.DrawTextCentered(v.box.Y+v.box.H/4, "GOAL!")
	}
}

func (g *Game) drawRink(dst *core.Screen, v rinkView) {
	dst.DrawBox(v.box, core.ColorRink)

	// Goal mouths are gaps in the end walls.
	lo, hi := g.c.ArenaHeight/2-g.c.GoalWidth/2, g.c.ArenaHeight/2+g.c.GoalWidth/2
	for cy := v.box.Y + 1; cy < v.box.Bottom()-1; cy++ {
		if y := v.arenaY(cy); y > lo && y < hi {
			dst.SetColor(v.box.X, cy, ' ', core.ColorGoal)
			dst.SetColor(v.box.Right()-1, cy, ' ', core.ColorGoal)
		}
	}

	mx, _ := v.cell(g.c.ArenaWidth/2, 0)
	dst.DrawVLine(mx, v.box.Y+1, v.box.H-2, CenterChar, core.ColorCenterLine)

	// Centre circle, sampled densely enough to close at any terminal size.
	cx, cy := g.c.ArenaWidth/2, g.c.ArenaHeight/2
	for i := 0; i < 96; i++ {
		a := 2 * math.Pi * float64(i) / 96
		x, y := v.cell(cx+centerCircleRadius*math.Cos(a), cy+centerCircleRadius*math.Sin(a))
		if x != mx {
			dst.SetColor(x, y, CircleChar, core.ColorCenterLine)
		}
	}
}

func (g *Game) drawOverlay(dst *core.Screen, title, hint string) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, title)
	dst.DrawTextCentered(mid+1, hint)
}

// fillDisc draws every cell whose centre lies within radius of (x, y).
// The centre cell is always drawn so small bodies stay visible.
func fillDisc(dst *core.Screen, v rinkView, x, y, radius float64, r rune, c core.Color) {
	x0, y0 := v.cell(x-radius, y-radius)
	x1, y1 := v.cell(x+radius, y+radius)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			ax := float64(cx-v.box.X-1) / v.sx
			ay := float64(cy-v.box.Y-1) / v.sy
			if math.Hypot(ax-x, ay-y) <= radius {
				dst.SetColor(cx, cy, r, c)
			}
		}
	}
	px, py := v.cell(x, y)
	dst.SetColor(px, py, r, c)
}
