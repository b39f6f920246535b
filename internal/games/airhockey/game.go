// Package airhockey adapts a match.Machine to the terminal platform:
// it turns input frames into paddle intents, owns pause and restart, and
// draws the rink into a core.Screen.
package airhockey

import (
	"fmt"

	"github.com/vovakirdan/tui-airhockey/internal/core"
	"github.com/vovakirdan/tui-airhockey/internal/match"
	"github.com/vovakirdan/tui-airhockey/internal/physics"
)

// Game is the air hockey platform adapter.
type Game struct {
	c       match.Constants
	m       *match.Machine
	runtime core.RuntimeConfig

	paused      bool
	bannerTicks int // ticks left to show the goal banner
	lastScorer  physics.Side
}

// New creates a game for the given table. The constants are validated once
// here; Reset and restarts reuse them.
func New(c match.Constants) (*Game, error) {
	m, err := match.New(c)
	if err != nil {
		return nil, fmt.Errorf("airhockey: %w", err)
	}
	return &Game{c: c, m: m, runtime: core.DefaultConfig()}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "airhockey"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Air Hockey"
}

// Reset starts a fresh match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}

	// The constants were accepted by New, so this cannot fail.
	m, err := match.New(g.c)
	if err != nil {
		panic(err)
	}
	g.m = m
	g.paused = false
	g.bannerTicks = 0
	g.lastScorer = physics.SideNone
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.m.State() == match.StateMatchOver {
		if in.Any(core.ActionRestart) {
			g.m.Restart()
			g.bannerTicks = 0
			g.lastScorer = physics.SideNone
		}
		return core.StepResult{State: g.State()}
	}

	if in.Any(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	res := g.m.Tick(match.Intents{
		Left:  intentOf(in.Player1()),
		Right: intentOf(in.Player2()),
	})

	out := core.StepResult{State: g.State()}
	if goal, ok := res.Goal(); ok {
		g.lastScorer = goal.Scorer
		g.bannerTicks = g.runtime.TickRate
		out.Scorer = playerOf(goal.Scorer)
	}
	out.MatchEnded = res.MatchOver()
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.m.Score()
	return core.GameState{
		Score1:   score.Left,
		Score2:   score.Right,
		GameOver: g.m.State() == match.StateMatchOver,
		Paused:   g.paused,
		Winner:   playerOf(g.m.Winner()),
	}
}

// Snapshot returns the underlying match state.
func (g *Game) Snapshot() match.Snapshot {
	return g.m.Snapshot()
}

// Constants returns the table the game was built with.
func (g *Game) Constants() match.Constants {
	return g.c
}

// LastScorer returns the side that scored most recently in this match.
func (g *Game) LastScorer() physics.Side {
	return g.lastScorer
}

func intentOf(f core.InputFrame) physics.Intent {
	return physics.Intent{
		Up:    f.Has(core.ActionUp),
		Down:  f.Has(core.ActionDown),
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
	}
}

func playerOf(s physics.Side) core.PlayerID {
	switch s {
	case physics.SideLeft:
		return core.Player1
	case physics.SideRight:
		return core.Player2
	default:
		return core.PlayerNone
	}
}
