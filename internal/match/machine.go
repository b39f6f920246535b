// Package match runs one air hockey match: fixed-rate sub-stepped physics,
// scoring and the Playing / RoundReset / MatchOver state machine.
//
// A Machine is owned by a single goroutine. Every tick is processed to
// completion before the caller samples input again, so nothing in here is
// synchronized. Run independent matches on independent Machines.
package match

import (
	"github.com/vovakirdan/tui-airhockey/internal/core"
	"github.com/vovakirdan/tui-airhockey/internal/physics"
)

// Score holds both players' goals.
type Score struct {
	Left  int
	Right int
}

// Of returns the score of one side.
func (s Score) Of(side physics.Side) int {
	switch side {
	case physics.SideLeft:
		return s.Left
	case physics.SideRight:
		return s.Right
	default:
		return 0
	}
}

func (s *Score) add(side physics.Side) {
	switch side {
	case physics.SideLeft:
		s.Left++
	case physics.SideRight:
		s.Right++
	}
}

// board is every mutable body of the match. Step functions receive it by
// pointer; it is never copied while a tick runs.
type board struct {
	arena physics.Arena
	left  physics.Paddle
	right physics.Paddle
	puck  physics.Puck
}

// Machine is the match state machine.
type Machine struct {
	c     Constants
	board board
	score Score
	state State
	tick  uint64
}

// New validates c and returns a match ready to play.
func New(c Constants) (*Machine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	arena := physics.Arena{Width: c.ArenaWidth, Height: c.ArenaHeight, GoalWidth: c.GoalWidth}
	midY := c.ArenaHeight / 2

	m := &Machine{
		c: c,
		board: board{
			arena: arena,
			left: physics.NewPaddle(physics.SideLeft, arena,
				core.V(c.PaddleStartOffset, midY), c.PaddleRadius, c.PaddleSpeed, c.PaddleMass),
			right: physics.NewPaddle(physics.SideRight, arena,
				core.V(c.ArenaWidth-c.PaddleStartOffset, midY), c.PaddleRadius, c.PaddleSpeed, c.PaddleMass),
			puck: physics.Puck{
				Body:     physics.Body{Pos: arena.Center(), Radius: c.PuckRadius, Mass: c.PuckMass},
				Friction: c.PuckFriction,
				MaxSpeed: c.PuckMaxSpeed,
			},
		},
		state: StatePlaying,
	}
	return m, nil
}

// Constants returns the configuration the match was built with.
func (m *Machine) Constants() Constants {
	return m.c
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Score returns the current score.
func (m *Machine) Score() Score {
	return m.score
}

// Ticks returns the number of ticks that ran physics.
func (m *Machine) Ticks() uint64 {
	return m.tick
}

// Winner returns the side that won, or SideNone while the match is open.
func (m *Machine) Winner() physics.Side {
	if m.state != StateMatchOver {
		return physics.SideNone
	}
	if m.score.Left >= m.c.WinningScore {
		return physics.SideLeft
	}
	return physics.SideRight
}

// Tick advances the match by one frame.
func (m *Machine) Tick(in Intents) Result {
	if m.state == StateMatchOver {
		return Result{State: m.state, Waiting: true}
	}

	m.tick++
	scorer := m.runPhysics(&m.board, in)
	if scorer == physics.SideNone {
		return Result{State: m.state}
	}

	return m.scoreGoal(scorer)
}

// runPhysics applies friction once, then the sub-steps. It stops at the
// first goal and returns the side that scored.
func (m *Machine) runPhysics(b *board, in Intents) physics.Side {
	b.puck.ApplyFriction()

	dt := 1 / float64(m.c.SubstepsPerTick)
	for range m.c.SubstepsPerTick {
		b.left.Move(in.Left, dt)
		b.right.Move(in.Right, dt)

		b.puck.Advance(dt)
		if scorer := b.arena.Constrain(&b.puck); scorer != physics.SideNone {
			return scorer
		}

		physics.Resolve(&b.left, &b.puck, m.c.KickImpulse)
		physics.Resolve(&b.right, &b.puck, m.c.KickImpulse)
	}
	return physics.SideNone
}

// scoreGoal runs the Playing -> RoundReset -> Playing|MatchOver chain.
func (m *Machine) scoreGoal(scorer physics.Side) Result {
	m.transition(TriggerGoal)
	m.score.add(scorer)
	m.board.puck.Place(m.board.arena.Center())

	events := []Event{{Kind: EventGoal, Scorer: scorer, Score: m.score}}

	if m.score.Of(scorer) >= m.c.WinningScore {
		m.transition(TriggerWinReached)
		events = append(events, Event{Kind: EventMatchOver, Scorer: scorer, Score: m.score})
	} else {
		m.transition(TriggerResetDone)
	}

	return Result{State: m.state, Events: events, Waiting: m.state == StateMatchOver}
}

// Restart starts a new match from MatchOver. It is a no-op, returning
// false, in any other state.
func (m *Machine) Restart() bool {
	if m.state != StateMatchOver {
		return false
	}
	m.score = Score{}
	m.board.puck.Place(m.board.arena.Center())
	m.board.left.Reset()
	m.board.right.Reset()
	m.transition(TriggerRestart)
	return true
}

func (m *Machine) transition(t Trigger) {
	next, ok := Transition(m.state, t)
	if !ok {
		panic("match: invalid transition " + t.String() + " from " + m.state.String())
	}
	m.state = next
}
