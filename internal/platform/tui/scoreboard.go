package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cartoon-dash/internal/core"
)

// Sidebar layout constants
const (
	minWidthForSidebar = 72 // Minimum terminal width to show the sidebar
	sidebarWidth       = 22 // Outer width of the sidebar, border included
)

// Sidebar is the scoreboard panel shown beside the playfield. The session
// best lives in memory only and is forgotten when the program exits.
type Sidebar struct {
	State     core.GameState
	Best      int
	Runs      int
	Recording bool
	Playback  string // Progress text while replaying, empty otherwise
	Status    string // Transient message, e.g. a saved screenshot path
}

// View renders the sidebar at the given height.
func (s Sidebar) View(height int) string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	value := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd54a"))

	row := func(name, v string) string {
		return label.Render(fmt.Sprintf("%-7s", name)) + value.Render(v)
	}

	lives := strings.Repeat("♥", max(s.State.Lives, 0))
	if lives == "" {
		lives = "-"
	}

	lines := []string{
		title.Render("CARTOON DASH"),
		"",
		row("Score", fmt.Sprintf("%d", s.State.Score)),
		row("Lives", lives),
		row("Time", fmt.Sprintf("%ds", s.State.TimeLeft)),
		"",
		row("Best", fmt.Sprintf("%d", s.Best)),
		row("Runs", fmt.Sprintf("%d", s.Runs)),
		"",
		label.Render(phaseLabel(s.State.Phase)),
	}
	if s.Recording {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")).Render("● REC"))
	}
	if s.Playback != "" {
		lines = append(lines, label.Render("▶ "+s.Playback))
	}
	if s.Status != "" {
		lines = append(lines, "", label.Render(s.Status))
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth-2).
		Height(max(height-2, 1)).
		Padding(0, 1)

	return style.Render(strings.Join(lines, "\n"))
}

func phaseLabel(p core.Phase) string {
	switch p {
	case core.PhasePaused:
		return "Paused"
	case core.PhaseEnded:
		return "Run over"
	default:
		return "Running"
	}
}
