package physics

import "github.com/vovakirdan/tui-airhockey/internal/core"

const (
	// MinDistance is the smallest centre distance a contact normal is
	// computed from. Closer than this the direction is unreliable.
	MinDistance = 0.1

	// ContactSlop is added to the push-out so rounding never leaves the
	// bodies overlapping.
	ContactSlop = 1e-9
)

// ContactNormal returns the unit vector along delta, or fallback when
// delta is shorter than MinDistance. The fallback stands in for clamping
// the distance to MinDistance, which would leave the bodies overlapping.
func ContactNormal(delta core.Vec2, fallback core.Vec2) core.Vec2 {
	d := delta.Len()
	if d < MinDistance {
		return fallback
	}
	return delta.Scale(1 / d)
}

// Resolve separates an overlapping puck from the paddle and bounces it.
// It reports whether the two were in contact.
//
// The puck is pushed out along the line of centres, its velocity is
// mirrored about that line, kick is added along it and the result is
// capped at the puck's MaxSpeed. The paddle's own motion and the masses
// play no part.
func Resolve(paddle *Paddle, puck *Puck, kick float64) bool {
	delta := puck.Pos.Sub(paddle.Pos)
	dist := delta.Len()
	reach := paddle.Radius + puck.Radius
	if dist >= reach {
		return false
	}

	n := ContactNormal(delta, paddle.Facing)

	// Equivalent to moving the puck by the penetration depth along n, and
	// still exact when n is the fallback rather than delta's direction.
	puck.Pos = paddle.Pos.Add(n.Scale(reach + ContactSlop))

	vn := puck.Vel.Dot(n)
	puck.Vel = puck.Vel.Sub(n.Scale(2 * vn))
	puck.Vel = puck.Vel.Add(n.Scale(kick))
	puck.ClampSpeed()

	return true
}
