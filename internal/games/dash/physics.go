package dash

import (
	"github.com/vovakirdan/cartoon-dash/internal/core"
)

// integrate applies input, gravity and the ground/edge constraints to the
// player for one substep.
func (g *Game) integrate(dt float64) {
	p := &g.player
	phys := g.cfg.Physics

	// Horizontal velocity follows the held keys directly, no acceleration
	p.VX = 0
	if g.latch.Held(core.ActionLeft) {
		p.VX -= phys.MoveSpeed
	}
	if g.latch.Held(core.ActionRight) {
		p.VX += phys.MoveSpeed
	}
	if p.VX != 0 {
		p.Face = core.Sign(p.VX)
	}

	if g.latch.Held(core.ActionJump) && p.OnGround {
		p.VY = phys.JumpVelocity
		p.OnGround = false
		cx, cy := p.Rect().Center()
		g.fx.burst(cx, cy, core.ColorJumpSpark)
		g.emit(core.EventJump, cx, cy)
	}

	p.VY += phys.Gravity * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt

	if p.Y+p.H > g.groundY {
		p.Y = g.groundY - p.H
		p.VY = 0
		p.OnGround = true
	}
	p.X = core.ClampF(p.X, 0, g.cfg.Playfield.Width-p.W)

	g.broad.move(p.obj, p.X, p.Y)
}
