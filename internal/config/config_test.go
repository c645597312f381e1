package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDashConfig()) {
		t.Errorf("embedded defaults drifted from DefaultDashConfig():\n%+v\n%+v", cfg, DefaultDashConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultDashConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestParsePartialDocument(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 900\nrun:\n  duration: 30\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.Gravity != 900 {
		t.Errorf("gravity = %v, expected 900", cfg.Physics.Gravity)
	}
	if cfg.Run.Duration != 30 {
		t.Errorf("duration = %v, expected 30", cfg.Run.Duration)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.MoveSpeed != 520 {
		t.Errorf("move_speed = %v, expected default 520", cfg.Physics.MoveSpeed)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero lives", "run:\n  lives: 0\n"},
		{"upward gravity", "physics:\n  gravity: -10\n"},
		{"downward jump", "physics:\n  jump_velocity: 100\n"},
		{"frame cap below step", "physics:\n  fixed_dt: 0.5\n  max_frame_dt: 0.1\n"},
		{"negative rate", "spawn:\n  hazard_rate: -1\n"},
		{"broken yaml", "physics: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.doc)); err == nil {
				t.Errorf("Parse(%q) should fail", tc.doc)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("collectibles:\n  points: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Collectibles.Points != 25 {
		t.Errorf("points = %d, expected 25", cfg.Collectibles.Points)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing explicit path should fail")
	}
	if !strings.Contains(err.Error(), "config:") {
		t.Errorf("error should carry the package prefix, got %v", err)
	}
}

func TestMarshalRoundTripKeepsKeys(t *testing.T) {
	data, err := Marshal(DefaultDashConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	for _, key := range []string{"playfield:", "gravity:", "collectible_rate:", "hit_cooldown:"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshalled YAML missing %q", key)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultDashConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultDashConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Run.HitCooldown != 1.0 {
		t.Errorf("easy preset should add a hit cooldown, got %v", cfg.Run.HitCooldown)
	}
	if cfg.Run.Lives != 3 {
		t.Errorf("presets must not change lives, got %d", cfg.Run.Lives)
	}

	cfg = DefaultDashConfig()
	cfg.Difficulty.Enabled = true
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultDashConfig()
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultDashConfig()) {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestDifficultyDisabledIsNeutral(t *testing.T) {
	d := NewDifficultyManager(DefaultDashConfig().Difficulty)
	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if f := d.SpeedFactor(1000, 59); f != 1.0 {
		t.Errorf("SpeedFactor = %v, expected 1.0", f)
	}
	if f := d.HazardRateFactor(1000, 59); f != 1.0 {
		t.Errorf("HazardRateFactor = %v, expected 1.0", f)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DefaultDashConfig().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = 0.2
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.2 {
		t.Errorf("Level at start = %v, expected 0.2", got)
	}
	if got := d.Level(0, 30); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("Level halfway = %v, expected 0.6", got)
	}
	if got := d.Level(0, 600); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Level past max_at = %v, expected 1.0", got)
	}
	if got := d.SpeedFactor(0, 600); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("SpeedFactor at max = %v, expected 1.5", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 200},
		Scaling:     ScalingConfig{HazardRateMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	if got := d.HazardRateFactor(100, 0); got != 1.5 {
		t.Errorf("HazardRateFactor at half score = %v, expected 1.5", got)
	}
}
