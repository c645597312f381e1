// Package config provides YAML-based tunables loading and difficulty
// management for the dash game.
package config

import (
	"errors"
	"fmt"
)

// DashConfig contains all tunables for a run. They are read once when a run
// starts and stay fixed for its whole duration.
type DashConfig struct {
	Playfield    DashPlayfield    `yaml:"playfield"`
	Physics      DashPhysics      `yaml:"physics"`
	Player       DashPlayer       `yaml:"player"`
	Spawn        DashSpawn        `yaml:"spawn"`
	Collectibles DashCollectibles `yaml:"collectibles"`
	Hazards      DashHazards      `yaml:"hazards"`
	Effects      DashEffects      `yaml:"effects"`
	Run          DashRun          `yaml:"run"`
	Difficulty   DifficultyConfig `yaml:"difficulty"`
}

// DashPlayfield defines the logical coordinate space.
type DashPlayfield struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from the bottom edge to the ground line
}

// GroundY returns the y coordinate of the ground line.
func (p DashPlayfield) GroundY() float64 {
	return p.Height - p.GroundOffset
}

// DashPhysics defines player physics. Units are pixels and seconds.
type DashPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative = up
	HitBounce    float64 `yaml:"hit_bounce"`    // Vertical velocity applied on a hazard hit
	FixedDT      float64 `yaml:"fixed_dt"`      // Integration step
	MaxFrameDT   float64 `yaml:"max_frame_dt"`  // Longer frames are truncated
}

// DashPlayer defines the player's hitbox and start position.
type DashPlayer struct {
	StartX float64 `yaml:"start_x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DashSpawn defines where and how often entities appear.
// Rates are expected spawns per second.
type DashSpawn struct {
	CollectibleRate   float64 `yaml:"collectible_rate"`
	HazardRate        float64 `yaml:"hazard_rate"`
	Margin            float64 `yaml:"margin"`             // Distance past the right edge
	CollectibleJitter float64 `yaml:"collectible_jitter"` // Extra random x offset
	HazardJitter      float64 `yaml:"hazard_jitter"`
	CullX             float64 `yaml:"cull_x"` // Entities at or left of this x are removed
}

// DashCollectibles defines the stars.
type DashCollectibles struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`
	Points      int     `yaml:"points"`
	Lift        float64 `yaml:"lift"` // Minimum height above the ground
	Band        float64 `yaml:"band"` // Height of the random spawn band above Lift
	PulseRate   float64 `yaml:"pulse_rate"`
	PulseAmount float64 `yaml:"pulse_amount"`
}

// DashHazards defines the spikes.
type DashHazards struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Rise   float64 `yaml:"rise"` // Top edge sits this far above the ground line
}

// DashEffects defines cosmetic feedback.
type DashEffects struct {
	BurstCount     int     `yaml:"burst_count"`
	BurstSpeed     float64 `yaml:"burst_speed"`
	BurstLift      float64 `yaml:"burst_lift"` // Upward bias of burst velocities, 0.5 = symmetric
	BurstLife      float64 `yaml:"burst_life"`
	TrailRate      float64 `yaml:"trail_rate"`
	TrailLife      float64 `yaml:"trail_life"`
	TrailSpeed     float64 `yaml:"trail_speed"`
	TrailLength    float64 `yaml:"trail_length"`
	TrailMinSpeed  float64 `yaml:"trail_min_speed"`
	ShakeMagnitude float64 `yaml:"shake_magnitude"`
	ShakeDuration  float64 `yaml:"shake_duration"`
}

// DashRun defines the run's budget.
type DashRun struct {
	Lives       int     `yaml:"lives"`
	Duration    int     `yaml:"duration"`     // Countdown length in seconds
	HitCooldown float64 `yaml:"hit_cooldown"` // Seconds of invulnerability after a hit
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or elapsed seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier      float64 `yaml:"speed_multiplier"`       // Added to scroll speed factor at max difficulty
	HazardRateMultiplier float64 `yaml:"hazard_rate_multiplier"` // Added to hazard rate factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty input keeps the
// config's own difficulty settings.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DashConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Easy runs forgive back-to-back spikes
	if preset == DifficultyEasy && cfg.Run.HitCooldown < 1.0 {
		cfg.Run.HitCooldown = 1.0
	}
}

// Validate rejects tunables the simulation cannot run with.
func (c DashConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield must have positive size, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	check(c.Playfield.GroundOffset >= 0 && c.Playfield.GroundOffset < c.Playfield.Height, "ground_offset %v outside playfield", c.Playfield.GroundOffset)
	check(c.Physics.Gravity > 0, "gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpVelocity < 0, "jump_velocity must be negative (up), got %v", c.Physics.JumpVelocity)
	check(c.Physics.FixedDT > 0, "fixed_dt must be positive, got %v", c.Physics.FixedDT)
	check(c.Physics.MaxFrameDT >= c.Physics.FixedDT, "max_frame_dt %v must be at least fixed_dt %v", c.Physics.MaxFrameDT, c.Physics.FixedDT)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player must have positive size")
	check(c.Player.Width <= c.Playfield.Width, "player wider than playfield")
	check(c.Spawn.CollectibleRate >= 0 && c.Spawn.HazardRate >= 0, "spawn rates must not be negative")
	check(c.Collectibles.Radius > 0, "collectible radius must be positive")
	check(c.Collectibles.Points >= 0, "collectible points must not be negative")
	check(c.Hazards.Width > 0 && c.Hazards.Height > 0, "hazards must have positive size")
	check(c.Run.Lives > 0, "lives must be positive, got %d", c.Run.Lives)
	check(c.Run.Duration > 0, "duration must be positive, got %d", c.Run.Duration)
	check(c.Run.HitCooldown >= 0, "hit_cooldown must not be negative")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tunables: %w", errors.Join(errs...))
	}
	return nil
}
