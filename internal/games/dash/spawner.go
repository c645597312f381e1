package dash

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cartoon-dash/internal/config"
)

// Spawner decides when new stars and spikes enter from the right edge.
// Each kind arrives as a Poisson process: over a substep of dt seconds the
// spawn probability is 1-exp(-rate*dt), which keeps the expected count per
// second equal to rate at any step size.
type Spawner struct {
	rng *rand.Rand
	cfg config.DashConfig
}

// NewSpawner creates a spawner with a seeded RNG.
func NewSpawner(seed int64, cfg config.DashConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reset reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// chance draws one Bernoulli trial for a Poisson process of the given rate.
// A zero rate draws nothing so disabled kinds do not perturb the sequence.
func (s *Spawner) chance(rate, dt float64) bool {
	if rate <= 0 || dt <= 0 {
		return false
	}
	return s.rng.Float64() < 1-math.Exp(-rate*dt)
}

// Roll decides whether a collectible and a hazard spawn this substep.
func (s *Spawner) Roll(dt, collectibleRate, hazardRate float64) (collectible, hazard bool) {
	return s.chance(collectibleRate, dt), s.chance(hazardRate, dt)
}

// Collectible creates a star just past the right edge, floating in a band
// above the ground.
func (s *Spawner) Collectible() Collectible {
	pf := s.cfg.Playfield
	cc := s.cfg.Collectibles
	return Collectible{
		X: pf.Width + s.cfg.Spawn.Margin + s.rng.Float64()*s.cfg.Spawn.CollectibleJitter,
		Y: pf.GroundY() - cc.Lift - s.rng.Float64()*cc.Band,
		R: cc.Radius,
	}
}

// Hazard creates a spike just past the right edge, resting on the ground.
func (s *Spawner) Hazard() Hazard {
	pf := s.cfg.Playfield
	hc := s.cfg.Hazards
	return Hazard{
		X: pf.Width + s.cfg.Spawn.Margin + s.rng.Float64()*s.cfg.Spawn.HazardJitter,
		Y: pf.GroundY() - hc.Rise,
		W: hc.Width,
		H: hc.Height,
	}
}

// spawn rolls the spawner for one substep and registers new entities.
func (g *Game) spawn(dt float64) {
	hazardRate := g.cfg.Spawn.HazardRate * g.difficulty.HazardRateFactor(g.state.Score, g.elapsed)
	col, haz := g.spawner.Roll(dt, g.cfg.Spawn.CollectibleRate, hazardRate)
	if col {
		g.addCollectible(g.spawner.Collectible())
	}
	if haz {
		g.addHazard(g.spawner.Hazard())
	}
}

func (g *Game) addCollectible(c Collectible) {
	b := c.bounds()
	c.obj = g.broad.add(b.X, b.Y, b.W, b.H, tagCollectible)
	g.collectibles = append(g.collectibles, c)
}

func (g *Game) addHazard(h Hazard) {
	h.obj = g.broad.add(h.X, h.Y, h.W, h.H, tagHazard)
	g.hazards = append(g.hazards, h)
}

// scroll moves entities left and culls the ones that left the playfield.
func (g *Game) scroll(dt float64) {
	factor := g.speedFactor()
	cullX := g.cfg.Spawn.CullX

	cs := g.cfg.Collectibles.Speed * factor
	kept := g.collectibles[:0]
	for _, c := range g.collectibles {
		c.X -= cs * dt
		c.Phase += g.cfg.Collectibles.PulseRate * dt
		if c.X <= cullX {
			g.broad.remove(c.obj)
			continue
		}
		b := c.bounds()
		g.broad.move(c.obj, b.X, b.Y)
		kept = append(kept, c)
	}
	g.collectibles = kept

	hs := g.cfg.Hazards.Speed * factor
	keptH := g.hazards[:0]
	for _, h := range g.hazards {
		h.X -= hs * dt
		if h.X <= cullX {
			g.broad.remove(h.obj)
			continue
		}
		g.broad.move(h.obj, h.X, h.Y)
		keptH = append(keptH, h)
	}
	g.hazards = keptH
}
