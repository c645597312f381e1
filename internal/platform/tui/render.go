package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cartoon-dash/internal/core"
)

func fg(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// colorStyles maps palette slots to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorSkyHigh:       fg("#7ec8ff"),
	core.ColorSkyLow:        fg("#cdeaff"),
	core.ColorMountainFar:   fg("#8fb8de"),
	core.ColorMountainNear:  fg("#5e8fbf"),
	core.ColorGround:        fg("#6cc070"),
	core.ColorGroundStripe:  fg("#4e9f52"),
	core.ColorPlayer:        fg("#ff7f50"),
	core.ColorPlayerOutline: fg("#c4532c"),
	core.ColorEyes:          fg("#ffffff").Background(lipgloss.Color("#ff7f50")),
	core.ColorStar:          fg("#ffd54a").Bold(true),
	core.ColorStarOutline:   fg("#e0a800"),
	core.ColorSpike:         fg("#9aa0a6"),
	core.ColorJumpSpark:     fg("#8ec5ff"),
	core.ColorHitSpark:      fg("#ff6b6b"),
	core.ColorTrail:         fg("#ffffff").Faint(true),
	core.ColorShadow:        fg("#2e5e30"),
	core.ColorHUD:           fg("#fff6d5").Bold(true),
	core.ColorHUDDim:        fg("241"),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
