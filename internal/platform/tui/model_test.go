package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cartoon-dash/internal/config"
	"github.com/vovakirdan/cartoon-dash/internal/core"
	"github.com/vovakirdan/cartoon-dash/internal/games/dash"
	"github.com/vovakirdan/cartoon-dash/internal/replay"
	"github.com/vovakirdan/cartoon-dash/internal/storage"
)

func newTestModel(t *testing.T) (Model, *dash.Game) {
	t.Helper()
	cfg := config.DefaultDashConfig()
	cfg.Spawn.CollectibleRate = 0
	cfg.Spawn.HazardRate = 0
	runtime := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 1}
	g := dash.New(cfg, runtime)

	m := NewModel(g, Options{Runtime: runtime})
	m.Init()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model), g
}

func frameAt(m Model, at time.Time) FrameMsg {
	return FrameMsg{gen: m.frames.gen, At: at}
}

func TestModelFramesAdvanceGame(t *testing.T) {
	m, g := newTestModel(t)
	start := time.Now()

	next, cmd := m.Update(frameAt(m, start))
	m = next.(Model)
	if cmd == nil {
		t.Error("a live frame should schedule the next one")
	}
	next, _ = m.Update(frameAt(m, start.Add(100*time.Millisecond)))
	m = next.(Model)

	if steps := g.Snapshot().Steps; steps < 12 {
		t.Errorf("took %d substeps, expected the frame gaps to be simulated", steps)
	}
}

func TestModelPauseStopsTimers(t *testing.T) {
	m, g := newTestModel(t)
	stale := frameAt(m, time.Now())

	next, _ := m.Update(runeKey('p'))
	m = next.(Model)
	if g.Phase() != core.PhasePaused {
		t.Fatalf("phase = %v, expected paused", g.Phase())
	}
	if m.frames.Running() || m.countdown.Running() {
		t.Error("timers should stop while paused")
	}

	before := g.Snapshot()
	next, cmd := m.Update(stale)
	m = next.(Model)
	if cmd != nil || g.Snapshot().Steps != before.Steps {
		t.Error("frames scheduled before the pause must be dropped")
	}
	next, _ = m.Update(CountdownMsg{gen: m.countdown.gen})
	m = next.(Model)
	if g.TimeLeft() != 60 {
		t.Error("countdown must not run while paused")
	}

	next, cmd = m.Update(runeKey('p'))
	m = next.(Model)
	if g.Phase() != core.PhaseRunning || cmd == nil {
		t.Error("second pause press should resume and restart the timers")
	}
	if g.Held(core.ActionPause) {
		t.Error("pause should be released right after the press")
	}
}

func TestModelDirectionalKeysLatch(t *testing.T) {
	m, g := newTestModel(t)

	next, _ := m.Update(runeKey('d'))
	m = next.(Model)
	if !g.Held(core.ActionRight) {
		t.Fatal("d should hold right")
	}

	next, _ = m.Update(runeKey('a'))
	m = next.(Model)
	if g.Held(core.ActionRight) || !g.Held(core.ActionLeft) {
		t.Error("a should switch the held direction to left")
	}

	// No repeats arrive, so the key is released on a later frame
	next, _ = m.Update(frameAt(m, time.Now().Add(time.Second)))
	m = next.(Model)
	if g.Held(core.ActionLeft) {
		t.Error("left should be released once its grace ran out")
	}
}

func TestModelCountdownEndsRun(t *testing.T) {
	m, g := newTestModel(t)
	for i := 0; i < 60; i++ {
		next, _ := m.Update(CountdownMsg{gen: m.countdown.gen})
		m = next.(Model)
	}

	if g.Phase() != core.PhaseEnded {
		t.Fatalf("phase = %v after 60 countdown ticks", g.Phase())
	}
	if m.frames.Running() || m.countdown.Running() {
		t.Error("timers should stop when the run ends")
	}
	if s := m.Summary(); s.Runs != 1 || s.Best != 0 {
		t.Errorf("summary = %+v, expected one run", s)
	}

	next, cmd := m.Update(runeKey('r'))
	m = next.(Model)
	if g.Phase() != core.PhaseRunning || g.TimeLeft() != 60 || cmd == nil {
		t.Error("r should start a new run after game over")
	}
	if g.Seed() == 1 {
		t.Error("restart should pick a fresh seed")
	}
}

func TestModelSavesRecordingAtRunEnd(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runtime := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 9}
	rec := replay.NewRecorder(dash.New(config.DefaultDashConfig(), runtime))
	m := NewModel(rec, Options{Runtime: runtime, Store: store, Recorder: rec})
	m.Init()

	at := time.Now()
	for i := 0; i < 60; i++ {
		next, _ := m.Update(frameAt(m, at))
		m = next.(Model)
		at = at.Add(16 * time.Millisecond)
		next, _ = m.Update(CountdownMsg{gen: m.countdown.gen})
		m = next.(Model)
	}

	infos, err := store.Replays(10)
	if err != nil {
		t.Fatalf("Replays() failed: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("stored %d replays, expected 1", len(infos))
	}
	loaded, err := store.Replay(infos[0].ID)
	if err != nil || loaded == nil {
		t.Fatalf("Replay() = %v, %v", loaded, err)
	}
	if _, err := replay.Verify(*loaded); err != nil {
		t.Errorf("stored recording does not verify: %v", err)
	}
}

func TestPlaybackModelIgnoresGameKeys(t *testing.T) {
	runtime := core.DefaultConfig()
	runtime.Seed = 4
	rec := replay.NewRecorder(dash.New(config.DefaultDashConfig(), runtime))
	for i := 0; i < 30; i++ {
		rec.Step(1.0 / 60)
	}

	p := replay.NewPlayer(rec.Recording())
	m := NewPlaybackModel(p, Options{Runtime: runtime})
	m.Init()

	next, _ := m.Update(runeKey('p'))
	m = next.(Model)
	if p.Game().Phase() != core.PhaseRunning {
		t.Error("pause key must not reach a replayed game")
	}

	for i := 0; i < 31; i++ {
		next, _ = m.Update(frameAt(m, time.Now()))
		m = next.(Model)
	}
	if !p.Done() || m.frames.Running() {
		t.Error("playback should stop after the last frame")
	}
	if !strings.Contains(m.sidebar.Playback, "30/30") {
		t.Errorf("progress = %q, expected 30/30", m.sidebar.Playback)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	for _, want := range []string{"Score: 0", "CARTOON DASH", "jump"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
