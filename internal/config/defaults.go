package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the default tunables. It mirrors the embedded
// defaults/dash.yaml and is used when that document cannot be parsed.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		Playfield: DashPlayfield{
			Width:        960,
			Height:       540,
			GroundOffset: 80,
		},
		Physics: DashPhysics{
			Gravity:      1800,
			MoveSpeed:    520,
			JumpVelocity: -760,
			HitBounce:    -360,
			FixedDT:      1.0 / 120.0,
			MaxFrameDT:   0.25,
		},
		Player: DashPlayer{
			StartX: 140,
			Width:  44,
			Height: 56,
		},
		Spawn: DashSpawn{
			CollectibleRate:   1.32, // 0.022 per frame at 60 fps
			HazardRate:        1.14, // 0.019 per frame at 60 fps
			Margin:            60,
			CollectibleJitter: 260,
			HazardJitter:      280,
			CullX:             -60,
		},
		Collectibles: DashCollectibles{
			Radius:      11,
			Speed:       300,
			Points:      10,
			Lift:        30,
			Band:        200,
			PulseRate:   6,
			PulseAmount: 0.15,
		},
		Hazards: DashHazards{
			Width:  30,
			Height: 30,
			Speed:  330,
			Rise:   26,
		},
		Effects: DashEffects{
			BurstCount:     10,
			BurstSpeed:     420,
			BurstLift:      0.8,
			BurstLife:      0.6,
			TrailRate:      24,
			TrailLife:      0.25,
			TrailSpeed:     600,
			TrailLength:    30,
			TrailMinSpeed:  100,
			ShakeMagnitude: 12,
			ShakeDuration:  0.2,
		},
		Run: DashRun{
			Lives:       3,
			Duration:    60,
			HitCooldown: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:      0.5,
				HazardRateMultiplier: 0.75,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultDashYAML
}
