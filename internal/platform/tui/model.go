package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cartoon-dash/internal/core"
	"github.com/vovakirdan/cartoon-dash/internal/replay"
	"github.com/vovakirdan/cartoon-dash/internal/storage"
)

// Sim is the game surface the UI drives. *dash.Game and *replay.Recorder
// both satisfy it.
type Sim interface {
	Step(dt float64) core.StepResult
	Tick()
	SetInput(action core.Action, pressed bool)
	Reset()
	Reseed(seed int64)
	Seed() int64
	State() core.GameState
	Render(dst *core.Screen)
}

// Options configures a Model.
type Options struct {
	Runtime  core.RuntimeConfig
	Logger   *log.Logger      // Defaults to a discarding logger
	Store    *storage.Store   // Receives finished recordings, may be nil
	Recorder *replay.Recorder // Set when the game is being recorded
}

// Summary describes a finished session.
type Summary struct {
	Runs int
	Best int
}

// Model is the Bubble Tea model for running Cartoon Dash.
type Model struct {
	game      Sim
	recorder  *replay.Recorder
	playback  *replay.Player
	store     *storage.Store
	logger    *log.Logger
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	held      *HeldKeys
	frames    *Interval
	countdown *Interval
	sidebar   Sidebar
	width     int
	height    int
	lastFrame time.Time
	runOver   bool
	quitting  bool
}

// NewModel creates a model that plays the given game live.
func NewModel(game Sim, opts Options) Model {
	m := newModel(opts)
	m.game = game
	m.recorder = opts.Recorder
	m.sidebar.Recording = opts.Recorder != nil
	m.sidebar.State = game.State()
	return m
}

// NewPlaybackModel creates a model that replays a recording. Only the quit,
// help, screenshot and copy keys are live during playback.
func NewPlaybackModel(p *replay.Player, opts Options) Model {
	m := newModel(opts)
	m.playback = p
	m.game = p.Game()
	m.sidebar.State = m.game.State()
	m.sidebar.Playback = m.progress()
	return m
}

func newModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return Model{
		store:     opts.Store,
		logger:    logger,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		held:      NewHeldKeys(),
		frames:    frameInterval(cfg.TickRate),
		countdown: countdownInterval(),
	}
}

// Init starts the frame loop and, for live runs, the countdown.
func (m Model) Init() tea.Cmd {
	if m.playback != nil {
		return m.frames.Start()
	}
	m.logger.Info("run started", "seed", m.game.Seed())
	return tea.Batch(m.frames.Start(), m.countdown.Start())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		if !m.frames.Valid(msg.gen) {
			return m, nil
		}
		if m.playback != nil {
			return m.handlePlaybackFrame()
		}
		return m.handleFrame(msg.At)

	case CountdownMsg:
		if !m.countdown.Valid(msg.gen) {
			return m, nil
		}
		return m.handleCountdown()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyFrame()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.frames.Stop()
		m.countdown.Stop()
		return m, tea.Quit
	}
	if m.playback != nil {
		return m, nil
	}

	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		if m.game.State().Phase != core.PhaseRunning {
			return m, nil
		}
		for _, released := range m.held.Press(action, time.Now()) {
			m.game.SetInput(released, false)
		}
		m.game.SetInput(action, true)

	case core.ActionPause:
		return m.togglePause()

	case core.ActionRestart:
		if m.runOver {
			return m.restart()
		}
	}

	return m, nil
}

// togglePause sends a complete press to the game and follows its phase:
// the timers stop while paused and restart on resume.
func (m Model) togglePause() (tea.Model, tea.Cmd) {
	if m.game.State().Phase == core.PhaseEnded {
		return m, nil
	}
	m.game.SetInput(core.ActionPause, true)
	m.game.SetInput(core.ActionPause, false)
	m.sidebar.State = m.game.State()

	if m.sidebar.State.Paused() {
		m.logger.Debug("paused")
		m.frames.Stop()
		m.countdown.Stop()
		return m, nil
	}
	m.logger.Debug("resumed")
	m.lastFrame = time.Time{}
	return m, tea.Batch(m.frames.Start(), m.countdown.Start())
}

// restart starts a new run with a fresh seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reseed(m.config.Seed)
	m.game.Reset()
	m.held.Clear()
	m.runOver = false
	m.lastFrame = time.Time{}
	m.sidebar.State = m.game.State()
	m.sidebar.Status = ""
	m.logger.Info("run started", "seed", m.config.Seed)
	return m, tea.Batch(m.frames.Start(), m.countdown.Start())
}

// handleResize fits the playfield into the terminal. The simulation uses
// fixed logical coordinates, so resizing never resets the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW, m.config.ScreenH = m.canvasSize()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// canvasSize returns the cells available to the playfield.
func (m Model) canvasSize() (int, int) {
	w := m.width
	if m.showSidebar() {
		w -= sidebarWidth
	}
	return max(w, 0), max(m.height-1, 0) // Last row holds the help bar
}

func (m Model) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// handleFrame advances the live game by the wall-clock time since the
// previous frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	m.lastFrame = now

	for _, a := range m.held.Expire(now) {
		m.game.SetInput(a, false)
	}

	m.observe(m.game.Step(dt))
	return m, m.follow(m.frames)
}

// handlePlaybackFrame applies the next recorded frame.
func (m Model) handlePlaybackFrame() (tea.Model, tea.Cmd) {
	res, ok := m.playback.Advance()
	m.observe(res)
	m.sidebar.Playback = m.progress()
	if !ok {
		m.frames.Stop()
		m.sidebar.Status = "Replay finished"
		return m, nil
	}
	return m, m.frames.Next()
}

// handleCountdown ticks the run's countdown once.
func (m Model) handleCountdown() (tea.Model, tea.Cmd) {
	m.game.Tick()
	m.observe(core.StepResult{State: m.game.State()})
	return m, m.follow(m.countdown)
}

// follow reschedules an interval while the run is live and stops every
// timer once it is not.
func (m Model) follow(i *Interval) tea.Cmd {
	if m.sidebar.State.Phase != core.PhaseRunning {
		m.frames.Stop()
		m.countdown.Stop()
		return nil
	}
	return i.Next()
}

// observe records a step's outcome.
func (m *Model) observe(res core.StepResult) {
	m.sidebar.State = res.State
	for _, ev := range res.Events {
		m.logger.Debug(ev.Kind.String(), "x", int(ev.X), "y", int(ev.Y), "score", ev.Score, "lives", ev.Lives)
	}
	if res.State.GameOver() && !m.runOver {
		m.finishRun(res.State)
	}
}

// finishRun updates the session scoreboard and stores the recording.
func (m *Model) finishRun(st core.GameState) {
	m.runOver = true
	if m.playback != nil {
		return
	}

	m.sidebar.Runs++
	if st.Score > m.sidebar.Best {
		m.sidebar.Best = st.Score
	}
	m.logger.Info("run ended", "score", st.Score, "lives", st.Lives, "time_left", st.TimeLeft)

	if m.recorder == nil || m.store == nil {
		return
	}
	id, err := m.store.SaveReplay(m.recorder.Recording())
	if err != nil {
		m.logger.Error("could not save replay", "error", err)
		m.sidebar.Status = "Replay not saved"
		return
	}
	m.logger.Info("replay saved", "id", id)
	m.sidebar.Status = fmt.Sprintf("Replay #%d saved", id)
}

func (m Model) progress() string {
	done, total := m.playback.Progress()
	return fmt.Sprintf("%d/%d", done, total)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".dash", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dash_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.sidebar.Status = "Screenshot saved"
}

// copyFrame puts the current frame on the system clipboard as plain text.
func (m *Model) copyFrame() {
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.logger.Warn("clipboard unavailable", "error", err)
		m.sidebar.Status = "Clipboard unavailable"
		return
	}
	m.sidebar.Status = "Frame copied"
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	canvas := RenderScreen(m.screen)

	if m.showSidebar() {
		canvas = lipgloss.JoinHorizontal(lipgloss.Top, canvas, m.sidebar.View(m.screen.Height()))
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return canvas + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Summary returns the session's run count and best score.
func (m Model) Summary() Summary {
	return Summary{Runs: m.sidebar.Runs, Best: m.sidebar.Best}
}

// Run starts the Bubble Tea program for a live game.
func Run(game Sim, opts Options) (Summary, error) {
	return run(NewModel(game, opts))
}

// RunPlayback starts the Bubble Tea program replaying a recording.
func RunPlayback(p *replay.Player, opts Options) error {
	_, err := run(NewPlaybackModel(p, opts))
	return err
}

func run(model Model) (Summary, error) {
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return Summary{}, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return Summary{}, nil
	}
	return m.Summary(), nil
}
