package dash

import (
	"github.com/vovakirdan/cartoon-dash/internal/core"
)

// resolveCollectibles consumes every star overlapping the player. A star is
// removed the moment it is taken, so it can never award points twice.
func (g *Game) resolveCollectibles() {
	near := g.broad.near(g.player.obj, tagCollectible)
	if len(near) == 0 {
		return
	}

	pr := g.player.Rect()
	kept := g.collectibles[:0]
	for _, c := range g.collectibles {
		if _, ok := near[c.obj]; ok && pr.IntersectsCircle(c.X, c.Y, c.R) {
			g.broad.remove(c.obj)
			g.state.award(g.cfg.Collectibles.Points)
			g.fx.burst(c.X, c.Y, core.ColorStar)
			g.emit(core.EventCollect, c.X, c.Y)
			continue
		}
		kept = append(kept, c)
	}
	g.collectibles = kept
}

// resolveHazards removes every spike overlapping the player. However many
// overlap in one substep, at most one life is lost, and none while the hit
// cooldown runs.
func (g *Game) resolveHazards() {
	near := g.broad.near(g.player.obj, tagHazard)
	if len(near) == 0 {
		return
	}

	pr := g.player.Rect()
	hit := false
	kept := g.hazards[:0]
	for _, h := range g.hazards {
		if _, ok := near[h.obj]; ok && pr.Intersects(h.Rect()) {
			g.broad.remove(h.obj)
			hit = true
			continue
		}
		kept = append(kept, h)
	}
	g.hazards = kept
	if !hit {
		return
	}

	g.player.VY = g.cfg.Physics.HitBounce
	g.player.OnGround = false
	cx, cy := pr.Center()
	g.fx.burst(cx, cy, core.ColorHitSpark)
	g.fx.startShake()

	if g.invulnerable > 0 {
		return
	}
	g.state.loseLife()
	g.invulnerable = g.cfg.Run.HitCooldown
	g.emit(core.EventHit, cx, cy)
}
