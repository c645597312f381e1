// Package sim drives a game headlessly with a fixed frame rate and a
// simulated wall clock, for reports, balance checks and recordings made
// without a terminal.
package sim

import (
	"github.com/vovakirdan/cartoon-dash/internal/core"
	"github.com/vovakirdan/cartoon-dash/internal/games/dash"
)

// Target is what the runner drives. *dash.Game and *replay.Recorder both
// satisfy it.
type Target interface {
	Step(dt float64) core.StepResult
	Tick()
	SetInput(action core.Action, pressed bool)
	State() core.GameState
	Snapshot() dash.Snapshot
	Seed() int64
}

// Options controls a headless run.
type Options struct {
	Seconds   float64 // Wall-clock budget; the run may end sooner
	FPS       int
	Autopilot bool // Drive the player; otherwise it stands still
}

// Result summarizes a headless run.
type Result struct {
	Seed     int64
	State    core.GameState
	Frames   int
	Elapsed  float64 // Simulated wall-clock seconds
	Jumps    int
	Collects int
	Hits     int
}

// Run drives the target frame by frame, ticking its countdown once per
// simulated second, until the run ends or the budget is spent.
func Run(t Target, opts Options) Result {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	dt := 1.0 / float64(fps)
	pilot := dash.NewAutopilot()

	res := Result{Seed: t.Seed()}
	second := 0.0
	for res.Elapsed+1e-9 < opts.Seconds && t.State().Phase == core.PhaseRunning {
		if opts.Autopilot {
			pilot.Decide(t.Snapshot()).Apply(t.SetInput)
		}

		step := t.Step(dt)
		res.Frames++
		res.Elapsed += dt
		for _, ev := range step.Events {
			switch ev.Kind {
			case core.EventJump:
				res.Jumps++
			case core.EventCollect:
				res.Collects++
			case core.EventHit:
				res.Hits++
			}
		}

		second += dt
		if second+1e-9 >= 1 {
			second--
			t.Tick()
		}
	}

	res.State = t.State()
	return res
}
