package core

import "testing"

func TestLatchPressRelease(t *testing.T) {
	var l Latch

	l.Set(ActionLeft, true)
	if !l.Held(ActionLeft) {
		t.Fatal("Left should be held after press")
	}
	if l.Held(ActionRight) {
		t.Error("Right should not be held")
	}

	l.Set(ActionLeft, false)
	if l.Held(ActionLeft) {
		t.Error("Left should be released after release")
	}
}

func TestLatchEdgeFiresOncePerPress(t *testing.T) {
	var l Latch

	if !l.Set(ActionPause, true) {
		t.Error("first key-down should report an edge")
	}
	// Key repeat while held
	if l.Set(ActionPause, true) {
		t.Error("held key-down should not report another edge")
	}
	if l.Set(ActionPause, false) {
		t.Error("release should not report an edge")
	}
	if !l.Set(ActionPause, true) {
		t.Error("press after release should report an edge")
	}
}

func TestLatchIgnoresUnlatchedActions(t *testing.T) {
	var l Latch

	if l.Set(ActionQuit, true) {
		t.Error("Quit is not latched and should never report an edge")
	}
	if l.Held(ActionQuit) {
		t.Error("Quit should never be held")
	}
	if l.Held(Action(99)) {
		t.Error("out of range action should not be held")
	}
}

func TestLatchClear(t *testing.T) {
	var l Latch
	l.Set(ActionLeft, true)
	l.Set(ActionJump, true)
	l.Clear()

	for _, a := range []Action{ActionLeft, ActionRight, ActionJump, ActionPause} {
		if l.Held(a) {
			t.Errorf("%v should be released after Clear", a)
		}
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionNone; a < actionCount; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("Dance"); ok {
		t.Error("ParseAction should reject unknown names")
	}
}
