package match

import (
	"errors"
	"fmt"
)

// ErrInvalidConstants is wrapped by every Constants validation failure.
var ErrInvalidConstants = errors.New("match: invalid constants")

// Constants is the fixed configuration of a match. Lengths are arena units
// and speeds are arena units per tick.
type Constants struct {
	ArenaWidth      float64
	ArenaHeight     float64
	GoalWidth       float64
	WinningScore    int
	SubstepsPerTick int
	PuckFriction    float64
	PuckMaxSpeed    float64
	PaddleSpeed     float64
	PaddleRadius    float64
	PuckRadius      float64

	KickImpulse       float64 // speed added along the contact normal
	PaddleStartOffset float64 // distance from each end wall to a paddle's start
	PaddleMass        float64
	PuckMass          float64
}

// DefaultConstants returns the classic table: 800x600, first to 7.
func DefaultConstants() Constants {
	return Constants{
		ArenaWidth:        800,
		ArenaHeight:       600,
		GoalWidth:         200,
		WinningScore:      7,
		SubstepsPerTick:   5,
		PuckFriction:      0.998,
		PuckMaxSpeed:      15,
		PaddleSpeed:       7,
		PaddleRadius:      30,
		PuckRadius:        20,
		KickImpulse:       2,
		PaddleStartOffset: 100,
		PaddleMass:        10,
		PuckMass:          5,
	}
}

// Validate reports the first constant that would make the simulation
// ill-defined.
func (c Constants) Validate() error {
	switch {
	case c.ArenaWidth <= 0 || c.ArenaHeight <= 0:
		return fmt.Errorf("%w: arena must be positive, got %gx%g", ErrInvalidConstants, c.ArenaWidth, c.ArenaHeight)
	case c.GoalWidth <= 0 || c.GoalWidth >= c.ArenaHeight:
		return fmt.Errorf("%w: goal width %g must be in (0, %g)", ErrInvalidConstants, c.GoalWidth, c.ArenaHeight)
	case c.WinningScore <= 0:
		return fmt.Errorf("%w: winning score must be positive, got %d", ErrInvalidConstants, c.WinningScore)
	case c.SubstepsPerTick <= 0:
		return fmt.Errorf("%w: substeps per tick must be positive, got %d", ErrInvalidConstants, c.SubstepsPerTick)
	case c.PuckFriction <= 0 || c.PuckFriction >= 1:
		return fmt.Errorf("%w: puck friction %g must be in (0, 1)", ErrInvalidConstants, c.PuckFriction)
	case c.PuckMaxSpeed <= 0:
		return fmt.Errorf("%w: puck max speed must be positive, got %g", ErrInvalidConstants, c.PuckMaxSpeed)
	case c.PaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle speed must be positive, got %g", ErrInvalidConstants, c.PaddleSpeed)
	case c.PaddleRadius <= 0 || c.PuckRadius <= 0:
		return fmt.Errorf("%w: radii must be positive, got paddle %g puck %g", ErrInvalidConstants, c.PaddleRadius, c.PuckRadius)
	case c.KickImpulse < 0:
		return fmt.Errorf("%w: kick impulse must not be negative, got %g", ErrInvalidConstants, c.KickImpulse)
	case c.PaddleMass <= 0 || c.PuckMass <= 0:
		return fmt.Errorf("%w: masses must be positive", ErrInvalidConstants)
	}

	// A paddle must fit inside its half, and the puck inside the rink.
	if 2*c.PaddleRadius > c.ArenaWidth/2 || 2*c.PaddleRadius > c.ArenaHeight {
		return fmt.Errorf("%w: paddle radius %g does not fit a %gx%g half", ErrInvalidConstants, c.PaddleRadius, c.ArenaWidth/2, c.ArenaHeight)
	}
	if 2*c.PuckRadius > c.ArenaHeight {
		return fmt.Errorf("%w: puck radius %g does not fit arena height %g", ErrInvalidConstants, c.PuckRadius, c.ArenaHeight)
	}
	if c.PaddleStartOffset < c.PaddleRadius || c.PaddleStartOffset > c.ArenaWidth/2-c.PaddleRadius {
		return fmt.Errorf("%w: paddle start offset %g must be in [%g, %g]", ErrInvalidConstants,
			c.PaddleStartOffset, c.PaddleRadius, c.ArenaWidth/2-c.PaddleRadius)
	}
	return nil
}
