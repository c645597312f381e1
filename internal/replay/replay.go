// Package replay records the inputs that drive a run and plays them back.
//
// A run is fully determined by its seed, its tunables and the ordered
// sequence of Step, Tick and SetInput calls the host made. The Recorder
// captures that sequence; the Player feeds it to a fresh game.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/cartoon-dash/internal/config"
	"github.com/vovakirdan/cartoon-dash/internal/core"
	"github.com/vovakirdan/cartoon-dash/internal/games/dash"
)

// Kind identifies a recorded call.
type Kind string

const (
	KindStep  Kind = "step"
	KindTick  Kind = "tick"
	KindInput Kind = "input"
)

// Event is one recorded call into the game.
type Event struct {
	Kind    Kind
	DT      float64     // KindStep only
	Action  core.Action // KindInput only
	Pressed bool        // KindInput only
}

// Recording is a complete run: how it started, what drove it and how it
// ended.
type Recording struct {
	ID        int64
	Seed      int64
	Config    config.DashConfig
	Events    []Event
	Final     core.GameState
	CreatedAt time.Time
}

// Frames returns the number of recorded Step calls.
func (r Recording) Frames() int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == KindStep {
			n++
		}
	}
	return n
}

// Duration returns the wall-clock time the recorded frames covered.
func (r Recording) Duration() time.Duration {
	total := 0.0
	for _, ev := range r.Events {
		if ev.Kind == KindStep {
			total += ev.DT
		}
	}
	return time.Duration(total * float64(time.Second))
}

// ErrDiverged is returned by Verify when playback does not reproduce the
// recorded outcome.
var ErrDiverged = errors.New("replay diverged")

// Recorder wraps a game and records every call that can change it.
// Everything else passes straight through to the game.
type Recorder struct {
	*dash.Game
	rec Recording
}

// NewRecorder starts recording the game's current run. The game should be
// freshly reset.
func NewRecorder(g *dash.Game) *Recorder {
	r := &Recorder{Game: g}
	r.begin()
	return r
}

func (r *Recorder) begin() {
	r.rec = Recording{
		Seed:      r.Game.Seed(),
		Config:    r.Game.Config(),
		CreatedAt: time.Now(),
	}
}

// Step records and forwards a frame.
func (r *Recorder) Step(dt float64) core.StepResult {
	r.rec.Events = append(r.rec.Events, Event{Kind: KindStep, DT: dt})
	return r.Game.Step(dt)
}

// Tick records and forwards a countdown tick.
func (r *Recorder) Tick() {
	r.rec.Events = append(r.rec.Events, Event{Kind: KindTick})
	r.Game.Tick()
}

// SetInput records and forwards an input change.
func (r *Recorder) SetInput(action core.Action, pressed bool) {
	r.rec.Events = append(r.rec.Events, Event{Kind: KindInput, Action: action, Pressed: pressed})
	r.Game.SetInput(action, pressed)
}

// Reset restarts the game and starts a new recording.
func (r *Recorder) Reset() {
	r.Game.Reset()
	r.begin()
}

// ResetWith restarts the game and starts a new recording.
func (r *Recorder) ResetWith(runtime core.RuntimeConfig) {
	r.Game.ResetWith(runtime)
	r.begin()
}

// Recording returns a copy of the run recorded so far, with the game's
// current state as its outcome.
func (r *Recorder) Recording() Recording {
	rec := r.rec
	rec.Events = append([]Event(nil), r.rec.Events...)
	rec.Final = r.Game.State()
	return rec
}

// Player feeds a recording to a fresh game.
type Player struct {
	game   *dash.Game
	events []Event
	pos    int
	frames int
	total  int
}

// NewPlayer builds a game from the recording's seed and tunables.
func NewPlayer(rec Recording) *Player {
	runtime := core.DefaultConfig()
	runtime.Seed = rec.Seed
	return &Player{
		game:   dash.New(rec.Config, runtime),
		events: rec.Events,
		total:  rec.Frames(),
	}
}

// Game returns the game being driven.
func (p *Player) Game() *dash.Game {
	return p.game
}

// Done reports whether every event has been applied.
func (p *Player) Done() bool {
	return p.pos >= len(p.events)
}

// Progress returns the frames applied and the total frame count.
func (p *Player) Progress() (int, int) {
	return p.frames, p.total
}

// Advance applies recorded events up to and including the next frame and
// returns that frame's result. It returns false once the recording is
// exhausted.
func (p *Player) Advance() (core.StepResult, bool) {
	for p.pos < len(p.events) {
		ev := p.events[p.pos]
		p.pos++
		switch ev.Kind {
		case KindStep:
			p.frames++
			return p.game.Step(ev.DT), true
		case KindTick:
			p.game.Tick()
		case KindInput:
			p.game.SetInput(ev.Action, ev.Pressed)
		}
	}
	return core.StepResult{State: p.game.State()}, false
}

// Run applies every remaining event and returns the final state.
func (p *Player) Run() core.GameState {
	for {
		if _, ok := p.Advance(); !ok {
			return p.game.State()
		}
	}
}

// Verify plays a recording back headlessly and checks that it reproduces
// the recorded outcome.
func Verify(rec Recording) (core.GameState, error) {
	got := NewPlayer(rec).Run()
	if got != rec.Final {
		return got, fmt.Errorf("replay: %w: recorded %+v, played back %+v", ErrDiverged, rec.Final, got)
	}
	return got, nil
}
