package match

// State is the phase of a match.
type State int

const (
	// StatePlaying is the only state in which bodies move.
	StatePlaying State = iota
	// StateRoundReset is entered for the scoring transition only; the
	// puck is recentred and the machine leaves it within the same tick.
	StateRoundReset
	// StateMatchOver holds until an explicit restart.
	StateMatchOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateRoundReset:
		return "round_reset"
	case StateMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Trigger is something that can move a match between states.
type Trigger int

const (
	TriggerGoal       Trigger = iota // a goal fired during the tick
	TriggerResetDone                 // puck recentred, score below the winning line
	TriggerWinReached                // puck recentred, a score reached the winning line
	TriggerRestart                   // explicit restart command
)

// String returns a human-readable name for the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerGoal:
		return "goal"
	case TriggerResetDone:
		return "reset_done"
	case TriggerWinReached:
		return "win_reached"
	case TriggerRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Transition returns the state that follows from on trigger t.
// The bool is false, and from is returned, when t is not valid in from.
func Transition(from State, t Trigger) (State, bool) {
	switch {
	case from == StatePlaying && t == TriggerGoal:
		return StateRoundReset, true
	case from == StateRoundReset && t == TriggerResetDone:
		return StatePlaying, true
	case from == StateRoundReset && t == TriggerWinReached:
		return StateMatchOver, true
	case from == StateMatchOver && t == TriggerRestart:
		return StatePlaying, true
	}
	return from, false
}
