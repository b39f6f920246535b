package physics

import "github.com/vovakirdan/tui-airhockey/internal/core"

// Arena is the rink: a W x H rectangle with a goal mouth of GoalWidth
// centred on the left and right edges. y grows downwards.
type Arena struct {
	Width     float64
	Height    float64
	GoalWidth float64
}

// Center returns the middle of the rink.
func (a Arena) Center() core.Vec2 {
	return core.V(a.Width/2, a.Height/2)
}

// GoalBand returns the open y-interval of both goal mouths.
func (a Arena) GoalBand() (lo, hi float64) {
	return (a.Height - a.GoalWidth) / 2, (a.Height + a.GoalWidth) / 2
}

// InGoalBand reports whether y lies strictly inside the goal band.
func (a Arena) InGoalBand(y float64) bool {
	lo, hi := a.GoalBand()
	return y > lo && y < hi
}

// Constrain resolves the puck against the walls after it has moved and
// reports which side scored, if any.
//
// The top and bottom walls are handled first, then the left and right
// edges; a puck entering a corner next to a goal mouth bounces before it
// can score. A wall hit reverses the velocity on that axis. A puck that
// scores is left where it is.
func (a Arena) Constrain(p *Puck) Side {
	r := p.Radius

	if p.Pos.Y-r <= 0 {
		p.Pos.Y = r
		p.Vel.Y = -p.Vel.Y
	} else if p.Pos.Y+r >= a.Height {
		p.Pos.Y = a.Height - r
		p.Vel.Y = -p.Vel.Y
	}

	if p.Pos.X-r <= 0 {
		if a.InGoalBand(p.Pos.Y) {
			return SideRight
		}
		p.Pos.X = r
		p.Vel.X = -p.Vel.X
	} else if p.Pos.X+r >= a.Width {
		if a.InGoalBand(p.Pos.Y) {
			return SideLeft
		}
		p.Pos.X = a.Width - r
		p.Vel.X = -p.Vel.X
	}

	return SideNone
}
