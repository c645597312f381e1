package sim

import (
	"testing"

	"github.com/vovakirdan/cartoon-dash/internal/config"
	"github.com/vovakirdan/cartoon-dash/internal/core"
	"github.com/vovakirdan/cartoon-dash/internal/games/dash"
	"github.com/vovakirdan/cartoon-dash/internal/replay"
)

func newGame(seed int64, cfg config.DashConfig) *dash.Game {
	runtime := core.DefaultConfig()
	runtime.Seed = seed
	return dash.New(cfg, runtime)
}

func TestRunUntilTimeUp(t *testing.T) {
	cfg := config.DefaultDashConfig()
	cfg.Spawn.HazardRate = 0
	res := Run(newGame(1, cfg), Options{Seconds: 120, FPS: 60, Autopilot: true})

	if res.State.Phase != core.PhaseEnded || res.State.TimeLeft != 0 {
		t.Fatalf("run should time out, got %+v", res.State)
	}
	if res.Elapsed < 59.9 || res.Elapsed > 60.1 {
		t.Errorf("elapsed = %v, expected the 60 second countdown", res.Elapsed)
	}
	if res.Hits != 0 || res.State.Lives != 3 {
		t.Errorf("no spikes spawned, yet hits=%d lives=%d", res.Hits, res.State.Lives)
	}
	if res.State.Score != res.Collects*cfg.Collectibles.Points {
		t.Errorf("score %d does not match %d collects", res.State.Score, res.Collects)
	}
}

func TestRunRespectsBudget(t *testing.T) {
	cfg := config.DefaultDashConfig()
	cfg.Spawn.HazardRate = 0
	res := Run(newGame(2, cfg), Options{Seconds: 5, FPS: 30})
	if res.Frames != 150 {
		t.Errorf("frames = %d, expected 150", res.Frames)
	}
	if res.State.TimeLeft != 55 {
		t.Errorf("time left = %d, expected 55", res.State.TimeLeft)
	}
	if res.Jumps != 0 {
		t.Errorf("idle run jumped %d times", res.Jumps)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Seconds: 60, FPS: 60, Autopilot: true}
	a := Run(newGame(31, config.DefaultDashConfig()), opts)
	b := Run(newGame(31, config.DefaultDashConfig()), opts)
	if a != b {
		t.Errorf("same seed gave different results:\n%+v\n%+v", a, b)
	}
}

func TestRecordedRunVerifies(t *testing.T) {
	rec := replay.NewRecorder(newGame(8, config.DefaultDashConfig()))
	res := Run(rec, Options{Seconds: 30, FPS: 50, Autopilot: true})

	recording := rec.Recording()
	if recording.Frames() != res.Frames {
		t.Errorf("recorded %d frames, ran %d", recording.Frames(), res.Frames)
	}
	if _, err := replay.Verify(recording); err != nil {
		t.Errorf("Verify() failed: %v", err)
	}
}
