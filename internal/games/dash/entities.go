package dash

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/cartoon-dash/internal/config"
	"github.com/vovakirdan/cartoon-dash/internal/core"
)

// Player is the runner's kinematic state. Positions are the top-left corner
// of the hitbox in playfield pixels; Y grows downward.
type Player struct {
	X, Y     float64
	VX, VY   float64
	W, H     float64
	OnGround bool
	Face     int // +1 right, -1 left

	obj *resolv.Object
}

// Rect returns the player's hitbox.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// newPlayer places the player at its start position, resting on the ground.
func newPlayer(cfg config.DashConfig) Player {
	return Player{
		X:        cfg.Player.StartX,
		Y:        cfg.Playfield.GroundY() - cfg.Player.Height,
		W:        cfg.Player.Width,
		H:        cfg.Player.Height,
		OnGround: true,
		Face:     1,
	}
}

// Collectible is a star worth points. X, Y is the center.
type Collectible struct {
	X, Y  float64
	R     float64
	Phase float64 // Cosmetic pulse phase

	obj *resolv.Object
}

// Scale returns the cosmetic pulse scale for the given amplitude.
func (c Collectible) Scale(amount float64) float64 {
	return 1 + math.Sin(c.Phase)*amount
}

// bounds returns the circle's bounding box.
func (c Collectible) bounds() core.Rect {
	return core.NewRect(c.X-c.R, c.Y-c.R, 2*c.R, 2*c.R)
}

// Hazard is a spike resting on the ground. X, Y is the top-left corner.
type Hazard struct {
	X, Y float64
	W, H float64

	obj *resolv.Object
}

// Rect returns the hazard's hitbox.
func (h Hazard) Rect() core.Rect {
	return core.NewRect(h.X, h.Y, h.W, h.H)
}

// Particle is a short-lived spark. It never takes part in collisions.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // Remaining seconds
	MaxLife float64
	Color   core.Color
}

// SpeedLine is a trail segment left behind a running player.
type SpeedLine struct {
	X, Y    float64
	Length  float64
	Dir     int // Drift direction, opposite the facing at spawn time
	Life    float64
	MaxLife float64
}
