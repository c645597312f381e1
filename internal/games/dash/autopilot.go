package dash

import (
	"math"

	"github.com/vovakirdan/cartoon-dash/internal/core"
)

// Autopilot is a simple scripted driver used by headless simulations and
// the `sim` command. It jumps spikes that are about to reach the player and
// drifts toward the nearest star ahead.
type Autopilot struct {
	// JumpLead is how far ahead of the player a spike triggers a jump.
	JumpLead float64
	// Reach is how far ahead stars are considered.
	Reach float64
}

// NewAutopilot returns an autopilot tuned for the default tunables.
func NewAutopilot() Autopilot {
	return Autopilot{JumpLead: 90, Reach: 320}
}

// Intent is the set of actions an autopilot wants held.
type Intent struct {
	Left, Right, Jump bool
}

// Apply latches the intent on an input sink in a fixed order.
func (in Intent) Apply(set func(core.Action, bool)) {
	set(core.ActionLeft, in.Left)
	set(core.ActionRight, in.Right)
	set(core.ActionJump, in.Jump)
}

// Decide returns which actions should be held for the next frame.
func (a Autopilot) Decide(s Snapshot) Intent {
	p := s.Player
	var want Intent

	for _, h := range s.Hazards {
		gap := h.X - (p.X + p.W)
		if gap >= -h.W && gap <= a.JumpLead {
			want.Jump = true
			break
		}
	}

	target := math.NaN()
	best := math.Inf(1)
	for _, c := range s.Collectibles {
		d := c.X - (p.X + p.W/2)
		if d < -p.W || d > a.Reach {
			continue
		}
		if math.Abs(d) < best {
			best = math.Abs(d)
			target = c.X
		}
	}

	center := p.X + p.W/2
	switch {
	case !math.IsNaN(target) && target > center+p.W/4:
		want.Right = true
	case !math.IsNaN(target) && target < center-p.W/4:
		want.Left = true
	case math.IsNaN(target) && p.X > s.Width/3:
		want.Left = true
	}
	return want
}
