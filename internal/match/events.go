package match

import "github.com/vovakirdan/tui-airhockey/internal/physics"

// EventKind tells UI collaborators what happened during a tick.
type EventKind int

const (
	EventGoal EventKind = iota
	EventMatchOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventGoal:
		return "goal"
	case EventMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Event is a one-shot notification produced by the tick it happened in.
type Event struct {
	Kind   EventKind
	Scorer physics.Side // who scored (EventGoal) or won (EventMatchOver)
	Score  Score        // score after the event
}

// Intents is the input sampled once per tick for both paddles.
type Intents struct {
	Left  physics.Intent
	Right physics.Intent
}

// Result is what Tick returns.
type Result struct {
	State  State
	Events []Event

	// Waiting is true while the match is over and only a restart can
	// resume it.
	Waiting bool
}

// Goal returns the goal event of this tick, if any.
func (r Result) Goal() (Event, bool) {
	for _, e := range r.Events {
		if e.Kind == EventGoal {
			return e, true
		}
	}
	return Event{}, false
}

// MatchOver reports whether the match was won on this tick.
func (r Result) MatchOver() bool {
	for _, e := range r.Events {
		if e.Kind == EventMatchOver {
			return true
		}
	}
	return false
}
