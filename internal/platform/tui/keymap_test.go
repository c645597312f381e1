package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cartoon-dash/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"a", runeKey('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", runeKey('w'), core.ActionJump},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHeldKeysExpireAfterGrace(t *testing.T) {
	h := NewHeldKeys()
	start := time.Now()
	h.Press(core.ActionRight, start)

	if got := h.Expire(start.Add(firstRepeatGrace - time.Millisecond)); len(got) != 0 {
		t.Errorf("released %v before the first repeat could arrive", got)
	}
	got := h.Expire(start.Add(firstRepeatGrace))
	if len(got) != 1 || got[0] != core.ActionRight {
		t.Errorf("Expire() = %v, expected [Right]", got)
	}
	if h.Held(core.ActionRight) {
		t.Error("expired key should no longer be held")
	}
}

func TestHeldKeysRepeatShortensGrace(t *testing.T) {
	h := NewHeldKeys()
	start := time.Now()
	h.Press(core.ActionJump, start)
	h.Press(core.ActionJump, start.Add(500*time.Millisecond)) // First autorepeat

	if got := h.Expire(start.Add(500*time.Millisecond + repeatGrace/2)); len(got) != 0 {
		t.Errorf("released %v while repeating", got)
	}
	if got := h.Expire(start.Add(500*time.Millisecond + repeatGrace)); len(got) != 1 {
		t.Errorf("repeating key should release after %v, got %v", repeatGrace, got)
	}
}

func TestHeldKeysOppositeDirectionReleases(t *testing.T) {
	h := NewHeldKeys()
	now := time.Now()
	h.Press(core.ActionLeft, now)

	released := h.Press(core.ActionRight, now)
	if len(released) != 1 || released[0] != core.ActionLeft {
		t.Errorf("Press(Right) released %v, expected [Left]", released)
	}
	if h.Held(core.ActionLeft) || !h.Held(core.ActionRight) {
		t.Error("only the newest direction should be held")
	}

	if released := h.Press(core.ActionJump, now); len(released) != 0 {
		t.Errorf("jump should not release %v", released)
	}
}

func TestHeldKeysClear(t *testing.T) {
	h := NewHeldKeys()
	now := time.Now()
	h.Press(core.ActionLeft, now)
	h.Press(core.ActionJump, now)
	h.Clear()

	if h.Held(core.ActionLeft) || h.Held(core.ActionJump) {
		t.Error("Clear() should forget every key")
	}
}

func TestIntervalGenerations(t *testing.T) {
	i := countdownInterval()
	if i.Running() || i.Valid(0) {
		t.Fatal("new interval should be stopped")
	}

	if cmd := i.Start(); cmd == nil {
		t.Fatal("Start() should schedule a message")
	}
	first := i.gen
	if !i.Valid(first) {
		t.Error("current generation should be valid")
	}

	i.Stop()
	if i.Valid(first) || i.Next() != nil {
		t.Error("stopped interval must drop pending messages")
	}

	i.Start()
	if i.Valid(first) {
		t.Error("restart must invalidate the previous generation")
	}
}
