package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/cartoon-dash/internal/config"
	"github.com/vovakirdan/cartoon-dash/internal/core"
	"github.com/vovakirdan/cartoon-dash/internal/sim"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name  string
		state core.GameState
		want  string
	}{
		{"running", core.GameState{Phase: core.PhaseRunning, Lives: 3, TimeLeft: 20}, "unfinished"},
		{"out of lives", core.GameState{Phase: core.PhaseEnded, Lives: 0, TimeLeft: 12}, "game_over"},
		{"clock ran out", core.GameState{Phase: core.PhaseEnded, Lives: 2, TimeLeft: 0}, "time_up"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := outcome(tc.state); got != tc.want {
				t.Errorf("outcome() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	all := []sim.Result{
		{State: core.GameState{Phase: core.PhaseEnded, Score: 40, Lives: 0}, Elapsed: 30, Hits: 3, Jumps: 10},
		{State: core.GameState{Phase: core.PhaseEnded, Score: 80, Lives: 2}, Elapsed: 60, Hits: 1, Jumps: 20},
	}

	s := aggregate(all)
	if s.runs != 2 || s.gameOver != 1 || s.timedOut != 1 {
		t.Fatalf("expected one game over and one time up, got %+v", s)
	}
	if s.bestScore != 80 || s.meanScore != 60 {
		t.Errorf("best=%d mean=%.1f, expected 80 and 60", s.bestScore, s.meanScore)
	}
	if s.meanLives != 1 || s.meanSecs != 45 {
		t.Errorf("mean lives=%.2f elapsed=%.1f, expected 1 and 45", s.meanLives, s.meanSecs)
	}
	if s.hits != 4 || s.jumps != 30 {
		t.Errorf("hits=%d jumps=%d, expected 4 and 30", s.hits, s.jumps)
	}

	if empty := aggregate(nil); empty != (summary{}) {
		t.Errorf("aggregate(nil) = %+v, expected zero", empty)
	}
}

func TestPrintRun(t *testing.T) {
	var buf bytes.Buffer
	printRun(&buf, 2, sim.Result{
		Seed:   7,
		State:  core.GameState{Phase: core.PhaseEnded, Score: 30, Lives: 1},
		Frames: 3600,
	})
	for _, want := range []string{"Run 2 (seed=7)", "outcome=time_up", "score=30", "frames=3600"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("report missing %q:\n%s", want, buf.String())
		}
	}
}

func TestParseID(t *testing.T) {
	if id, err := parseID("12"); err != nil || id != 12 {
		t.Errorf("parseID(12) = %d, %v", id, err)
	}
	for _, bad := range []string{"", "abc", "0", "-3"} {
		if _, err := parseID(bad); err == nil {
			t.Errorf("parseID(%q) should fail", bad)
		}
	}
}

func TestLoadTunablesAppliesDifficulty(t *testing.T) {
	defer func(c, d string) { flagConfig, flagDifficulty = c, d }(flagConfig, flagDifficulty)

	flagConfig = ""
	flagDifficulty = "hard"
	cfg, err := loadTunables()
	if err != nil {
		t.Fatalf("loadTunables() failed: %v", err)
	}
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != config.InitialLevelForPreset(config.DifficultyHard) {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}

	flagDifficulty = "nightmare"
	if _, err := loadTunables(); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestResolveSeed(t *testing.T) {
	if got := resolveSeed(42); got != 42 {
		t.Errorf("resolveSeed(42) = %d", got)
	}
	if got := resolveSeed(0); got == 0 {
		t.Error("zero seed should be replaced")
	}
}
