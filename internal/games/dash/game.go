// Package dash implements Cartoon Dash, a timed side-scrolling runner.
// The player runs and jumps along the ground collecting stars and dodging
// spikes until the countdown or the lives run out.
//
// The simulation is platform-agnostic: it advances only when the host calls
// Step with a frame delta and Tick once per wall-clock second, and reads
// input only through SetInput.
package dash

import (
	"math"

	"github.com/vovakirdan/cartoon-dash/internal/config"
	"github.com/vovakirdan/cartoon-dash/internal/core"
)

// Game implements the Cartoon Dash simulation.
type Game struct {
	cfg        config.DashConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	player       Player
	collectibles []Collectible
	hazards      []Hazard

	latch   core.Latch
	state   RunState
	spawner *Spawner
	fx      *Effects
	broad   *broadphase

	acc          float64 // Unconsumed frame time
	elapsed      float64 // Simulated seconds while running
	invulnerable float64 // Remaining hit cooldown
	steps        uint64  // Fixed substeps taken
	groundY      float64

	events     []core.Event
	onRunEnded func(score int)
	reported   bool
}

// New creates a game with the given tunables and starts a run.
// Tunables are assumed valid; see config.DashConfig.Validate.
func New(cfg config.DashConfig, runtime core.RuntimeConfig) *Game {
	g := &Game{cfg: cfg}
	g.ResetWith(runtime)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dash"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cartoon Dash"
}

// Config returns the tunables the game was built with.
func (g *Game) Config() config.DashConfig {
	return g.cfg
}

// Seed returns the seed the current run was started with.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// Reseed changes the seed used by the next Reset.
func (g *Game) Reseed(seed int64) {
	g.runtime.Seed = seed
}

// OnRunEnded registers a handler invoked exactly once per run, with the
// final score, when the run reaches the Ended phase.
func (g *Game) OnRunEnded(fn func(score int)) {
	g.onRunEnded = fn
}

// Reset restarts the run with the current runtime config.
func (g *Game) Reset() {
	g.ResetWith(g.runtime)
}

// ResetWith restarts the run. Score, lives, countdown, entities, particles
// and held input all return to their initial values and the RNGs are
// reseeded, so equal seeds replay identically.
func (g *Game) ResetWith(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.groundY = g.cfg.Playfield.GroundY()

	g.broad = newBroadphase(g.cfg.Playfield.Width, g.cfg.Playfield.Height)
	g.player = newPlayer(g.cfg)
	g.player.obj = g.broad.add(g.player.X, g.player.Y, g.player.W, g.player.H, tagPlayer)
	g.collectibles = nil
	g.hazards = nil

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, g.cfg)
	} else {
		g.spawner.Reset(runtime.Seed)
	}
	if g.fx == nil {
		g.fx = newEffects(g.cfg.Effects, runtime.Seed+1)
	} else {
		g.fx.reset(runtime.Seed + 1)
	}

	g.latch.Clear()
	g.state = newRunState(g.cfg.Run)
	g.acc = 0
	g.elapsed = 0
	g.invulnerable = 0
	g.steps = 0
	g.events = nil
	g.reported = false
}

// SetInput latches an action as held or released. A press of ActionPause
// toggles between Running and Paused on its rising edge only; held
// autorepeat does not toggle again. Input is latched in every phase but
// only consulted while Running.
func (g *Game) SetInput(action core.Action, pressed bool) {
	if !action.Latched() {
		return
	}
	edge := g.latch.Set(action, pressed)
	if action == core.ActionPause && edge {
		g.TogglePause()
	}
}

// Step advances the simulation by a frame of dt seconds. Frame time is
// clamped to max_frame_dt and consumed in fixed_dt substeps so results do
// not depend on the host frame rate. Outside Running the call is a no-op.
func (g *Game) Step(dt float64) core.StepResult {
	g.events = g.events[:0]
	if g.state.Phase != core.PhaseRunning || !(dt > 0) {
		return g.result()
	}

	g.acc += math.Min(dt, g.cfg.Physics.MaxFrameDT)
	fixed := g.cfg.Physics.FixedDT
	for g.acc+1e-9 >= fixed && g.state.Phase == core.PhaseRunning {
		g.acc -= fixed
		g.update(fixed)
	}
	if g.state.Phase != core.PhaseRunning {
		g.acc = 0
	}
	return g.result()
}

// update runs one fixed substep: physics, spawning, scrolling, collision,
// effects, then the end check.
func (g *Game) update(dt float64) {
	g.steps++
	g.elapsed += dt
	if g.invulnerable > 0 {
		g.invulnerable = math.Max(0, g.invulnerable-dt)
	}

	g.integrate(dt)
	g.spawn(dt)
	g.scroll(dt)
	g.resolveCollectibles()
	g.resolveHazards()
	g.fx.update(dt, g.player)
	g.checkEnd()
}

// State returns the current run state.
func (g *Game) State() core.GameState {
	return g.state.snapshot()
}

// Score returns the current score.
func (g *Game) Score() int { return g.state.Score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.state.Lives }

// TimeLeft returns the remaining countdown seconds.
func (g *Game) TimeLeft() int { return g.state.TimeLeft }

// Phase returns the current phase.
func (g *Game) Phase() core.Phase { return g.state.Phase }

// Held reports whether an action is currently latched.
func (g *Game) Held(action core.Action) bool {
	return g.latch.Held(action)
}

func (g *Game) emit(kind core.EventKind, x, y float64) {
	g.events = append(g.events, core.Event{
		Kind:  kind,
		X:     x,
		Y:     y,
		Score: g.state.Score,
		Lives: g.state.Lives,
	})
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

// speedFactor scales scroll speed by the current difficulty.
func (g *Game) speedFactor() float64 {
	return g.difficulty.SpeedFactor(g.state.Score, g.elapsed)
}
