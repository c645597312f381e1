package dash

import (
	"testing"

	"github.com/vovakirdan/cartoon-dash/internal/config"
	"github.com/vovakirdan/cartoon-dash/internal/core"
)

func TestBurstEmitsConfiguredCount(t *testing.T) {
	cfg := config.DefaultDashConfig().Effects
	fx := newEffects(cfg, 1)
	fx.burst(100, 100, core.ColorStar)

	if len(fx.particles) != cfg.BurstCount {
		t.Fatalf("burst emitted %d particles, expected %d", len(fx.particles), cfg.BurstCount)
	}
	for _, p := range fx.particles {
		if p.Color != core.ColorStar || p.Life != cfg.BurstLife {
			t.Errorf("unexpected particle %+v", p)
		}
		if p.VX < -cfg.BurstSpeed/2 || p.VX > cfg.BurstSpeed/2 {
			t.Errorf("vx %v outside burst range", p.VX)
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	cfg := config.DefaultDashConfig().Effects
	fx := newEffects(cfg, 1)
	fx.burst(100, 100, core.ColorHitSpark)

	idle := Player{W: 44, H: 56, Face: 1}
	for elapsed := 0.0; elapsed < cfg.BurstLife+0.05; elapsed += 1.0 / 120 {
		fx.update(1.0/120, idle)
	}
	if len(fx.particles) != 0 {
		t.Errorf("%d particles outlived their life", len(fx.particles))
	}
}

func TestParticleAlphaFades(t *testing.T) {
	p := Particle{Life: 0.6, MaxLife: 0.6}
	prev := p.Alpha()
	if prev != 1 {
		t.Errorf("fresh particle alpha = %v, expected 1", prev)
	}
	for p.Life > 0 {
		p.Life -= 0.05
		a := p.Alpha()
		if a > prev || a < 0 || a > 1 {
			t.Fatalf("alpha %v after %v, previous %v", a, p.Life, prev)
		}
		prev = a
	}
	if p.Alpha() != 0 {
		t.Errorf("dead particle alpha = %v, expected 0", p.Alpha())
	}
}

func TestSpeedLinesOnlyWhenRunning(t *testing.T) {
	fx := newEffects(config.DefaultDashConfig().Effects, 1)
	standing := Player{X: 300, Y: 400, W: 44, H: 56, Face: 1}
	for i := 0; i < 240; i++ {
		fx.update(1.0/120, standing)
	}
	if len(fx.lines) != 0 {
		t.Fatal("standing player should leave no speed lines")
	}

	running := standing
	running.VX = 520
	for i := 0; i < 60; i++ {
		fx.update(1.0/120, running)
	}
	if len(fx.lines) == 0 {
		t.Fatal("running player should leave speed lines")
	}
	for _, l := range fx.lines {
		if l.Dir != -1 {
			t.Errorf("line drifts %d, expected behind a right-facing player", l.Dir)
		}
	}
}

func TestShakeDecaysToRest(t *testing.T) {
	cfg := config.DefaultDashConfig().Effects
	fx := newEffects(cfg, 1)
	fx.startShake()

	idle := Player{W: 44, H: 56, Face: 1}
	fx.update(1.0/120, idle)
	if fx.shakeMag <= 0 || fx.shakeMag > cfg.ShakeMagnitude {
		t.Fatalf("shake magnitude %v after start", fx.shakeMag)
	}
	for i := 0; i < 120; i++ {
		fx.update(1.0/120, idle)
	}
	if fx.shakeMag != 0 || fx.shakeX != 0 || fx.shakeY != 0 {
		t.Errorf("shake should settle, got mag=%v offset=(%v,%v)", fx.shakeMag, fx.shakeX, fx.shakeY)
	}
}

func TestEffectsDoNotAffectGameplay(t *testing.T) {
	plain := config.DefaultDashConfig()
	noisy := config.DefaultDashConfig()
	noisy.Effects.BurstCount = 50
	noisy.Effects.TrailRate = 200

	a := newTestGame(plain, 4)
	b := newTestGame(noisy, 4)
	pilot := NewAutopilot()
	for i := 0; i < 1800; i++ {
		pilot.Decide(a.Snapshot()).Apply(a.SetInput)
		pilot.Decide(b.Snapshot()).Apply(b.SetInput)
		a.Step(frame)
		b.Step(frame)
	}
	if a.State() != b.State() {
		t.Errorf("effects changed the outcome: %+v vs %+v", a.State(), b.State())
	}
}
