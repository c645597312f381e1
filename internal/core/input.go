package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - run left
	ActionRight          // D, Right arrow - run right
	ActionJump           // Space, W, Up - jump
	ActionPause          // P - pause/unpause
	ActionRestart        // R - start a new run after game over
	ActionQuit           // Q, Ctrl+C - exit

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction is the inverse of Action.String.
func ParseAction(name string) (Action, bool) {
	for a := ActionNone; a < actionCount; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}

// Latched reports whether the action is tracked by a Latch.
func (a Action) Latched() bool {
	switch a {
	case ActionLeft, ActionRight, ActionJump, ActionPause:
		return true
	}
	return false
}

// Latch holds the current held/released state of the latched actions.
// Last state wins: there is no queue, a press followed by a release before
// the next poll is simply lost.
type Latch struct {
	held [actionCount]bool
}

// Set records a press (pressed=true) or release of the action.
// It returns true only on a released-to-pressed transition, so repeated
// key-down events for a held key report a single edge.
func (l *Latch) Set(a Action, pressed bool) bool {
	if !a.Latched() {
		return false
	}
	edge := pressed && !l.held[a]
	l.held[a] = pressed
	return edge
}

// Held reports whether the action is currently held.
func (l *Latch) Held(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return l.held[a]
}

// Clear releases every action.
func (l *Latch) Clear() {
	l.held = [actionCount]bool{}
}
