package core

// Color is a palette slot for a screen cell. The platform layer decides how
// each slot is drawn (the TUI maps them to lipgloss colors).
type Color uint8

// Palette slots, named after what they paint.
const (
	ColorDefault Color = iota
	ColorSkyHigh
	ColorSkyLow
	ColorMountainFar
	ColorMountainNear
	ColorGround
	ColorGroundStripe
	ColorPlayer
	ColorPlayerOutline
	ColorEyes
	ColorStar
	ColorStarOutline
	ColorSpike
	ColorJumpSpark
	ColorHitSpark
	ColorTrail
	ColorShadow
	ColorHUD
	ColorHUDDim
)

var colorNames = [...]string{
	ColorDefault:       "default",
	ColorSkyHigh:       "sky_high",
	ColorSkyLow:        "sky_low",
	ColorMountainFar:   "mountain_far",
	ColorMountainNear:  "mountain_near",
	ColorGround:        "ground",
	ColorGroundStripe:  "ground_stripe",
	ColorPlayer:        "player",
	ColorPlayerOutline: "player_outline",
	ColorEyes:          "eyes",
	ColorStar:          "star",
	ColorStarOutline:   "star_outline",
	ColorSpike:         "spike",
	ColorJumpSpark:     "jump_spark",
	ColorHitSpark:      "hit_spark",
	ColorTrail:         "trail",
	ColorShadow:        "shadow",
	ColorHUD:           "hud",
	ColorHUDDim:        "hud_dim",
}

// String returns the palette slot name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
