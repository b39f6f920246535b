// Package physics implements the circle-body simulation used by the rink:
// integration, wall and goal sensing, and paddle-puck contacts.
//
// Time is measured in ticks. Speeds are arena units per tick and every
// function that advances bodies takes the fraction of a tick it covers.
package physics

import (
	"math"

	"github.com/vovakirdan/tui-airhockey/internal/core"
)

// StopEpsilon is the speed below which the puck counts as stopped.
// Friction is multiplicative, so speed never reaches exactly zero.
const StopEpsilon = 1e-3

// Side identifies one half of the rink and the player who owns it.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a short name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Body is a movable disc.
type Body struct {
	Pos    core.Vec2
	Radius float64
	Mass   float64
}

// Bounds is the rectangle a paddle centre is confined to.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Clamp moves p to the nearest point inside b.
func (b Bounds) Clamp(p core.Vec2) core.Vec2 {
	return core.Vec2{
		X: core.ClampF(p.X, b.MinX, b.MaxX),
		Y: core.ClampF(p.Y, b.MinY, b.MaxY),
	}
}

// Contains reports whether p lies inside b (edges included).
func (b Bounds) Contains(p core.Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Intent is one player's directional input for a tick.
type Intent struct {
	Up, Down, Left, Right bool
}

// Idle reports whether no direction is pressed.
func (i Intent) Idle() bool {
	return !i.Up && !i.Down && !i.Left && !i.Right
}

// Paddle is a player-controlled disc. It has no velocity of its own:
// it moves only by direct intent.
type Paddle struct {
	Body
	Side   Side
	Speed  float64   // units per tick on each pressed axis
	Start  core.Vec2 // position restored on match restart
	Bounds Bounds
	Facing core.Vec2 // unit vector toward the opponent's goal
}

// NewPaddle creates a paddle at start, confined to the half of arena owned
// by side. The centre stays one radius inside the half.
func NewPaddle(side Side, arena Arena, start core.Vec2, radius, speed, mass float64) Paddle {
	half := arena.Width / 2
	b := Bounds{MinY: radius, MaxY: arena.Height - radius}
	facing := core.V(1, 0)
	if side == SideLeft {
		b.MinX, b.MaxX = radius, half-radius
	} else {
		b.MinX, b.MaxX = half+radius, arena.Width-radius
		facing = core.V(-1, 0)
	}
	return Paddle{
		Body:   Body{Pos: start, Radius: radius, Mass: mass},
		Side:   side,
		Speed:  speed,
		Start:  start,
		Bounds: b,
		Facing: facing,
	}
}

// Puck is the free disc.
type Puck struct {
	Body
	Vel      core.Vec2
	Friction float64 // multiplier applied to Vel once per tick
	MaxSpeed float64
}

// Speed returns the puck's current speed.
func (p *Puck) Speed() float64 {
	return p.Vel.Len()
}

// Stopped reports whether the puck is effectively at rest.
func (p *Puck) Stopped() bool {
	return p.Speed() < StopEpsilon
}

// Place puts the puck at pos with zero velocity.
func (p *Puck) Place(pos core.Vec2) {
	p.Pos = pos
	p.Vel = core.Vec2{}
}

// ClampSpeed rescales Vel to MaxSpeed if it is faster, keeping direction.
func (p *Puck) ClampSpeed() {
	speed := p.Speed()
	if speed <= p.MaxSpeed || speed == 0 {
		return
	}
	p.Vel = p.Vel.Scale(p.MaxSpeed / speed)
	// Rounding can leave the result a hair above the cap.
	if s := p.Speed(); s > p.MaxSpeed {
		p.Vel = p.Vel.Scale(math.Nextafter(p.MaxSpeed/s, 0))
	}
}
