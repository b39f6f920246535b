package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-airhockey/internal/core"
)

// HoldWindow is how long a direction key press stays active.
// Terminals report key presses and auto-repeats but never releases, so a
// press is treated as holding the key until the repeat stops arriving. The
// window has to outlast the usual auto-repeat delay of 250-500ms.
const HoldWindow = 500 * time.Millisecond

// HoldTicks is HoldWindow at the default 60 ticks per second.
const HoldTicks = 30

// HoldTicksFor returns the number of ticks that cover HoldWindow at
// tickRate ticks per second, rounded up.
func HoldTicksFor(tickRate int) int {
	if tickRate <= 0 {
		return HoldTicks
	}
	window := int64(HoldWindow) * int64(tickRate)
	return max(int((window+int64(time.Second)-1)/int64(time.Second)), 1)
}

// KeyMapper translates Bubble Tea key messages to player actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a player and action.
// Shared keys (restart, pause) are reported for Player1.
// Returns the player, the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q", "Q":
		return core.PlayerNone, core.ActionQuit, true
	}

	switch key {
	// Player 1 (left): WASD
	case "w", "W":
		return core.Player1, core.ActionUp, false
	case "s", "S":
		return core.Player1, core.ActionDown, false
	case "a", "A":
		return core.Player1, core.ActionLeft, false
	case "d", "D":
		return core.Player1, core.ActionRight, false

	// Player 2 (right): arrows
	case "up":
		return core.Player2, core.ActionUp, false
	case "down":
		return core.Player2, core.ActionDown, false
	case "left":
		return core.Player2, core.ActionLeft, false
	case "right":
		return core.Player2, core.ActionRight, false

	// Shared
	case " ", "r", "R":
		return core.Player1, core.ActionRestart, false
	case "p", "P", "esc":
		return core.Player1, core.ActionPause, false
	}

	return core.PlayerNone, core.ActionNone, false
}

// isDirection reports whether an action moves a paddle.
func isDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

type heldKey struct {
	player core.PlayerID
	action core.Action
}

// KeyLatch turns key presses into per-tick input frames.
// Directions stay active for the hold window after their latest press. Other
// actions fire on the next sampled tick only.
type KeyLatch struct {
	hold    int
	held    map[heldKey]int
	oneShot core.MultiInputFrame
}

// NewKeyLatch creates a latch holding directions for hold ticks.
func NewKeyLatch(hold int) *KeyLatch {
	if hold <= 0 {
		hold = HoldTicks
	}
	return &KeyLatch{
		hold:    hold,
		held:    make(map[heldKey]int),
		oneShot: core.NewMultiInputFrame(),
	}
}

// Press records a key press.
func (l *KeyLatch) Press(player core.PlayerID, action core.Action) {
	if action == core.ActionNone || player == core.PlayerNone {
		return
	}
	if isDirection(action) {
		l.held[heldKey{player, action}] = l.hold
		// The opposite direction is released by the new press.
		if opp, ok := opposite(action); ok {
			delete(l.held, heldKey{player, opp})
		}
		return
	}
	l.oneShot.Set(player, action)
}

// Sample returns the input for one tick and ages the held keys.
func (l *KeyLatch) Sample() core.MultiInputFrame {
	frame := l.oneShot.Clone()
	for k, left := range l.held {
		frame.Set(k.player, k.action)
		if left <= 1 {
			delete(l.held, k)
		} else {
			l.held[k] = left - 1
		}
	}
	l.oneShot.Clear()
	return frame
}

// Release drops every held key and pending action.
func (l *KeyLatch) Release() {
	clear(l.held)
	l.oneShot.Clear()
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	}
	return core.ActionNone, false
}
