package dash

import (
	"github.com/vovakirdan/cartoon-dash/internal/config"
	"github.com/vovakirdan/cartoon-dash/internal/core"
)

// RunState holds the score, lives and countdown of a run together with its
// phase. Score only grows and lives only shrink until the next reset.
type RunState struct {
	Score    int
	Lives    int
	TimeLeft int
	Phase    core.Phase

	maxLives int
}

func newRunState(cfg config.DashRun) RunState {
	return RunState{
		Lives:    cfg.Lives,
		TimeLeft: cfg.Duration,
		Phase:    core.PhaseRunning,
		maxLives: cfg.Lives,
	}
}

func (s *RunState) award(points int) {
	if points > 0 {
		s.Score += points
	}
}

func (s *RunState) loseLife() {
	s.Lives = core.Clamp(s.Lives-1, 0, s.maxLives)
}

func (s *RunState) countdown() {
	s.TimeLeft = max(s.TimeLeft-1, 0)
}

// exhausted reports whether either budget has run out.
func (s *RunState) exhausted() bool {
	return s.Lives <= 0 || s.TimeLeft <= 0
}

func (s RunState) snapshot() core.GameState {
	return core.GameState{
		Score:    s.Score,
		Lives:    s.Lives,
		TimeLeft: s.TimeLeft,
		Phase:    s.Phase,
	}
}

// Tick decrements the countdown by one second. The host calls it once per
// wall-clock second while the run is Running; in any other phase it does
// nothing.
func (g *Game) Tick() {
	if g.state.Phase != core.PhaseRunning {
		return
	}
	g.state.countdown()
	g.checkEnd()
}

// TogglePause switches between Running and Paused. Ended is terminal.
func (g *Game) TogglePause() {
	switch g.state.Phase {
	case core.PhaseRunning:
		g.state.Phase = core.PhasePaused
	case core.PhasePaused:
		g.state.Phase = core.PhaseRunning
	}
}

// checkEnd moves the run to Ended once lives or time are exhausted.
func (g *Game) checkEnd() {
	if g.state.Phase == core.PhaseEnded || !g.state.exhausted() {
		return
	}
	g.state.Phase = core.PhaseEnded
	g.latch.Clear()
	g.acc = 0

	cx, cy := g.player.Rect().Center()
	g.emit(core.EventRunEnded, cx, cy)

	if !g.reported {
		g.reported = true
		if g.onRunEnded != nil {
			g.onRunEnded(g.state.Score)
		}
	}
}
