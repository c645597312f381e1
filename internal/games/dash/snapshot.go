package dash

import "github.com/vovakirdan/cartoon-dash/internal/core"

// Snapshot is a read-only copy of everything a renderer or test needs.
// Slices are copies and may be kept by the caller.
type Snapshot struct {
	Steps    uint64  // Fixed substeps taken this run
	Elapsed  float64 // Simulated seconds this run
	Score    int
	Lives    int
	TimeLeft int
	Phase    core.Phase

	Width, Height float64
	GroundY       float64
	Speed         float64 // Current scroll speed factor
	Invulnerable  bool

	Player       Player
	Collectibles []Collectible
	Hazards      []Hazard
	Particles    []Particle
	SpeedLines   []SpeedLine

	ShakeX, ShakeY float64
}

// Snapshot returns a copy of the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Steps:        g.steps,
		Elapsed:      g.elapsed,
		Score:        g.state.Score,
		Lives:        g.state.Lives,
		TimeLeft:     g.state.TimeLeft,
		Phase:        g.state.Phase,
		Width:        g.cfg.Playfield.Width,
		Height:       g.cfg.Playfield.Height,
		GroundY:      g.groundY,
		Speed:        g.speedFactor(),
		Invulnerable: g.invulnerable > 0,
		Player:       g.player,
		Collectibles: append([]Collectible(nil), g.collectibles...),
		Hazards:      append([]Hazard(nil), g.hazards...),
		Particles:    append([]Particle(nil), g.fx.particles...),
		SpeedLines:   append([]SpeedLine(nil), g.fx.lines...),
		ShakeX:       g.fx.shakeX,
		ShakeY:       g.fx.shakeY,
	}
}
