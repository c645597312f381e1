package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cartoon-dash/internal/core"
)

// KeyMap defines the key bindings for a run.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Restart},
		{k.Screenshot, k.Copy},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy frame"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action maps a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// Terminals report key presses and autorepeats but never releases.
// A held key is considered released once no repeat arrived for a while:
// long enough to bridge the initial autorepeat delay, then shorter once the
// key is repeating.
const (
	firstRepeatGrace = 550 * time.Millisecond
	repeatGrace      = 120 * time.Millisecond
)

// HeldKeys emulates key releases for terminals.
type HeldKeys struct {
	last      map[core.Action]time.Time
	repeating map[core.Action]bool
}

// NewHeldKeys creates an empty tracker.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		last:      make(map[core.Action]time.Time),
		repeating: make(map[core.Action]bool),
	}
}

// Press records a key-down at now and returns the actions that must be
// released as a consequence: pressing one direction releases the other.
func (h *HeldKeys) Press(a core.Action, now time.Time) []core.Action {
	if _, held := h.last[a]; held {
		h.repeating[a] = true
	}
	h.last[a] = now

	var released []core.Action
	opposite := core.ActionNone
	switch a {
	case core.ActionLeft:
		opposite = core.ActionRight
	case core.ActionRight:
		opposite = core.ActionLeft
	}
	if _, held := h.last[opposite]; held {
		h.forget(opposite)
		released = append(released, opposite)
	}
	return released
}

// Held reports whether the action is considered held.
func (h *HeldKeys) Held(a core.Action) bool {
	_, ok := h.last[a]
	return ok
}

// Expire returns, in a stable order, the actions whose grace ran out by now
// and forgets them.
func (h *HeldKeys) Expire(now time.Time) []core.Action {
	var released []core.Action
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump} {
		at, ok := h.last[a]
		if !ok {
			continue
		}
		grace := firstRepeatGrace
		if h.repeating[a] {
			grace = repeatGrace
		}
		if now.Sub(at) >= grace {
			h.forget(a)
			released = append(released, a)
		}
	}
	return released
}

// Clear forgets every held key.
func (h *HeldKeys) Clear() {
	clear(h.last)
	clear(h.repeating)
}

func (h *HeldKeys) forget(a core.Action) {
	delete(h.last, a)
	delete(h.repeating, a)
}
