package match

import (
	"math"

	"github.com/vovakirdan/tui-airhockey/internal/core"
	"github.com/vovakirdan/tui-airhockey/internal/physics"
)

// Snapshot is a read-only copy of everything a renderer needs.
// It holds values only, so a caller can keep it across ticks.
type Snapshot struct {
	Tick        uint64
	LeftPaddle  core.Vec2
	RightPaddle core.Vec2
	Puck        core.Vec2
	PuckVel     core.Vec2
	Score       Score
	State       State
	Winner      physics.Side

	PaddleRadius float64
	PuckRadius   float64
}

// Snapshot returns the current match state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Tick:         m.tick,
		LeftPaddle:   m.board.left.Pos,
		RightPaddle:  m.board.right.Pos,
		Puck:         m.board.puck.Pos,
		PuckVel:      m.board.puck.Vel,
		Score:        m.score,
		State:        m.state,
		Winner:       m.Winner(),
		PaddleRadius: m.c.PaddleRadius,
		PuckRadius:   m.c.PuckRadius,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Positions are hashed by their exact bit patterns.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []core.Vec2{snap.LeftPaddle, snap.RightPaddle, snap.Puck, snap.PuckVel} {
		h = h*31 + math.Float64bits(v.X)
		h = h*31 + math.Float64bits(v.Y)
	}
	h = h*31 + uint64(snap.Score.Left)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score.Right) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Winner)      //#nosec G115 -- hash computation
	return h
}
