package dash

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/cartoon-dash/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	EyeChar      = 'o'
	StarChar     = '★'
	StarDimChar  = '☆'
	SpikeChar    = '▲'
	GroundChar   = '═'
	ShadowChar   = '▬'
	TrailChar    = '─'
	TrailDimChar = '╌'
	FarHillChar  = '░'
	NearHillChar = '▒'
	StripeChar   = '▒'
	SoilChar     = '░'
	HeartChar    = '♥'
)

// Parallax layers, slowest first.
var hills = []struct {
	period, height, speed float64
	char                  rune
	color                 core.Color
}{
	{period: 260, height: 150, speed: 40, char: FarHillChar, color: core.ColorMountainFar},
	{period: 180, height: 80, speed: 90, char: NearHillChar, color: core.ColorMountainNear},
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot())
}

// Draw renders a snapshot, scaling the playfield onto the whole screen.
func Draw(dst *core.Screen, s Snapshot) {
	if dst == nil || dst.Width() == 0 || dst.Height() == 0 || s.Width <= 0 || s.Height <= 0 {
		return
	}
	dst.Clear()
	v := view{
		sx: float64(dst.Width()) / s.Width,
		sy: float64(dst.Height()) / s.Height,
		ox: s.ShakeX,
		oy: s.ShakeY,
	}

	drawBackdrop(dst, s, v)
	drawHazards(dst, s, v)
	drawCollectibles(dst, s, v)
	drawTrails(dst, s, v)
	drawPlayer(dst, s, v)
	drawParticles(dst, s, v)
	drawHUD(dst, s)

	switch s.Phase {
	case core.PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.PhaseEnded:
		title := "TIME'S UP!"
		if s.Lives <= 0 {
			title = "GAME OVER"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	}
}

// view maps playfield pixels to screen cells, with the shake offset.
type view struct {
	sx, sy float64
	ox, oy float64
}

func (v view) col(x float64) int { return int(math.Floor((x + v.ox) * v.sx)) }
func (v view) row(y float64) int { return int(math.Floor((y + v.oy) * v.sy)) }

// cells returns the cell rectangle covering a playfield rectangle; every
// non-empty rectangle covers at least one cell.
func (v view) cells(r core.Rect) core.CellRect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1 := int(math.Ceil((r.Right()+v.ox)*v.sx)) - 1
	y1 := int(math.Ceil((r.Bottom()+v.oy)*v.sy)) - 1
	return core.CellRect{X: x0, Y: y0, W: max(x1-x0+1, 1), H: max(y1-y0+1, 1)}
}

// px returns the playfield coordinates at the center of a cell.
func (v view) px(c, r int) (float64, float64) {
	return (float64(c)+0.5)/v.sx - v.ox, (float64(r)+0.5)/v.sy - v.oy
}

func drawBackdrop(dst *core.Screen, s Snapshot, v view) {
	groundRow := v.row(s.GroundY)
	scroll := s.Elapsed * s.Speed

	for r := 0; r < dst.Height(); r++ {
		for c := 0; c < dst.Width(); c++ {
			x, y := v.px(c, r)
			switch {
			case r == groundRow:
				dst.SetColored(c, r, GroundChar, core.ColorGround)
			case r > groundRow:
				if math.Mod(x+scroll*330, 36) < 18 {
					dst.SetColored(c, r, StripeChar, core.ColorGroundStripe)
				} else {
					dst.SetColored(c, r, SoilChar, core.ColorGround)
				}
			default:
				for i := len(hills) - 1; i >= 0; i-- {
					h := hills[i]
					if s.GroundY-y < hillHeight(x+scroll*h.speed, h.period, h.height) {
						dst.SetColored(c, r, h.char, h.color)
						break
					}
				}
			}
		}
	}

	// Shadow under an airborne player
	if !s.Player.OnGround {
		cr := v.cells(s.Player.Rect())
		dst.DrawHLine(cr.X, groundRow, cr.W, ShadowChar, core.ColorShadow)
	}
}

// hillHeight returns the height of a triangular hill profile at x.
func hillHeight(x, period, height float64) float64 {
	off := math.Mod(x, period)
	if off < 0 {
		off += period
	}
	half := period / 2
	return height * (1 - math.Abs(off-half)/half)
}

func drawHazards(dst *core.Screen, s Snapshot, v view) {
	for _, h := range s.Hazards {
		dst.DrawRect(v.cells(h.Rect()), SpikeChar, core.ColorSpike)
	}
}

func drawCollectibles(dst *core.Screen, s Snapshot, v view) {
	for _, c := range s.Collectibles {
		ch := StarChar
		if math.Sin(c.Phase) < -0.5 {
			ch = StarDimChar
		}
		dst.SetColored(v.col(c.X), v.row(c.Y), ch, core.ColorStar)
	}
}

func drawTrails(dst *core.Screen, s Snapshot, v view) {
	for _, l := range s.SpeedLines {
		ch := TrailChar
		if l.Fade() < 0.4 {
			ch = TrailDimChar
		}
		x0 := math.Min(l.X, l.X+float64(l.Dir)*l.Length)
		c0 := v.col(x0)
		n := max(int(math.Round(l.Length*v.sx)), 1)
		dst.DrawHLine(c0, v.row(l.Y), n, ch, core.ColorTrail)
	}
}

func drawPlayer(dst *core.Screen, s Snapshot, v view) {
	// Blink while the hit cooldown runs
	if s.Invulnerable && int(s.Elapsed*10)%2 == 1 {
		return
	}
	p := s.Player
	cr := v.cells(p.Rect())
	dst.DrawRect(cr, PlayerChar, core.ColorPlayer)

	eye := cr.Right() - 1
	if p.Face < 0 {
		eye = cr.X
	}
	dst.SetColored(eye, cr.Y, EyeChar, core.ColorEyes)
}

func drawParticles(dst *core.Screen, s Snapshot, v view) {
	for _, p := range s.Particles {
		var ch rune
		switch a := p.Alpha(); {
		case a > 0.66:
			ch = '✦'
		case a > 0.33:
			ch = '*'
		case a > 0:
			ch = '·'
		default:
			continue
		}
		dst.SetColored(v.col(p.X), v.row(p.Y), ch, p.Color)
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	hearts := strings.Repeat(string(HeartChar), max(s.Lives, 0))
	hud := fmt.Sprintf(" Score: %d  Lives: %s  Time: %ds ", s.Score, hearts, s.TimeLeft)
	dst.DrawText(1, 0, hud, core.ColorHUD)
}

// drawCenteredMessage draws a boxed two-line message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 4
	box := core.CellRect{X: (dst.Width() - w) / 2, Y: dst.Height()/2 - 2, W: w, H: 4}
	dst.DrawRect(core.CellRect{X: box.X + 1, Y: box.Y + 1, W: box.W - 2, H: box.H - 2}, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHUD)
	dst.DrawTextCentered(box.Y+1, title, core.ColorHUD)
	dst.DrawTextCentered(box.Y+2, subtitle, core.ColorHUDDim)
}
