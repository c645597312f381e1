package dash

import (
	"math"
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/cartoon-dash/internal/config"
	"github.com/vovakirdan/cartoon-dash/internal/core"
)

// Effects owns the cosmetic state: spark bursts, speed lines and screen
// shake. It draws from its own RNG, so effects never shift the spawn
// sequence, and nothing here feeds back into score, lives or collision.
type Effects struct {
	cfg config.DashEffects
	rng *rand.Rand

	particles []Particle
	lines     []SpeedLine

	shake          *gween.Tween
	shakeMag       float64
	shakeX, shakeY float64
}

func newEffects(cfg config.DashEffects, seed int64) *Effects {
	return &Effects{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (e *Effects) reset(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
	e.particles = nil
	e.lines = nil
	e.shake = nil
	e.shakeMag = 0
	e.shakeX, e.shakeY = 0, 0
}

// burst emits a ring of sparks at (x, y), biased upward by burst_lift.
func (e *Effects) burst(x, y float64, color core.Color) {
	for i := 0; i < e.cfg.BurstCount; i++ {
		e.particles = append(e.particles, Particle{
			X:       x,
			Y:       y,
			VX:      (e.rng.Float64() - 0.5) * e.cfg.BurstSpeed,
			VY:      (e.rng.Float64() - e.cfg.BurstLift) * e.cfg.BurstSpeed,
			Life:    e.cfg.BurstLife,
			MaxLife: e.cfg.BurstLife,
			Color:   color,
		})
	}
}

// startShake restarts the shake at full magnitude, decaying to rest.
func (e *Effects) startShake() {
	if e.cfg.ShakeMagnitude <= 0 || e.cfg.ShakeDuration <= 0 {
		return
	}
	e.shake = gween.New(float32(e.cfg.ShakeMagnitude), 0, float32(e.cfg.ShakeDuration), ease.OutQuad)
	e.shakeMag = e.cfg.ShakeMagnitude
}

// update ages every effect by dt and spawns speed lines behind a running
// player.
func (e *Effects) update(dt float64, p Player) {
	kept := e.particles[:0]
	for _, pt := range e.particles {
		pt.Life -= dt
		if pt.Life <= 0 {
			continue
		}
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
		kept = append(kept, pt)
	}
	e.particles = kept

	if math.Abs(p.VX) > e.cfg.TrailMinSpeed && e.cfg.TrailRate > 0 &&
		e.rng.Float64() < 1-math.Exp(-e.cfg.TrailRate*dt) {
		x := p.X - 10
		if p.Face < 0 {
			x = p.X + p.W + 10
		}
		e.lines = append(e.lines, SpeedLine{
			X:       x,
			Y:       p.Y + p.H/2 + (e.rng.Float64()-0.5)*p.H*0.6,
			Length:  e.cfg.TrailLength,
			Dir:     -p.Face,
			Life:    e.cfg.TrailLife,
			MaxLife: e.cfg.TrailLife,
		})
	}

	keptL := e.lines[:0]
	for _, l := range e.lines {
		l.Life -= dt
		if l.Life <= 0 {
			continue
		}
		l.X += float64(l.Dir) * e.cfg.TrailSpeed * dt
		keptL = append(keptL, l)
	}
	e.lines = keptL

	if e.shake != nil {
		mag, done := e.shake.Update(float32(dt))
		e.shakeMag = float64(mag)
		if done {
			e.shake = nil
			e.shakeMag = 0
		}
	}
	if e.shakeMag > 0 {
		e.shakeX = (e.rng.Float64()*2 - 1) * e.shakeMag
		e.shakeY = (e.rng.Float64()*2 - 1) * e.shakeMag
	} else {
		e.shakeX, e.shakeY = 0, 0
	}
}

// Alpha returns a particle's opacity in [0, 1]. It stays near full for
// most of the particle's life and fades out quickly at the end.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	age := core.ClampF(p.MaxLife-p.Life, 0, p.MaxLife)
	fade := ease.InQuad(float32(age), 0, 1, float32(p.MaxLife))
	return core.ClampF(1-float64(fade), 0, 1)
}

// Fade returns a speed line's remaining opacity in [0, 1].
func (l SpeedLine) Fade() float64 {
	if l.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(l.Life/l.MaxLife, 0, 1)
}
