// Package tui provides the Bubble Tea integration for Cartoon Dash.
// It handles the terminal UI loop, input mapping, and run orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to advance the simulation by one frame.
type FrameMsg struct {
	gen int
	At  time.Time
}

// CountdownMsg asks the model to tick the run's countdown.
type CountdownMsg struct {
	gen int
}

// Interval is a cancellable repeating timer built on tea.Tick.
// Every Start or Stop bumps a generation counter; messages from an older
// generation are stale and must be dropped by the receiver, which is how a
// pending tick is cancelled.
type Interval struct {
	period  time.Duration
	gen     int
	running bool
	msg     func(gen int, t time.Time) tea.Msg
}

// NewInterval creates a stopped interval.
func NewInterval(period time.Duration, msg func(gen int, t time.Time) tea.Msg) *Interval {
	return &Interval{period: period, msg: msg}
}

// Start begins a new generation and schedules its first message.
func (i *Interval) Start() tea.Cmd {
	i.gen++
	i.running = true
	return i.schedule()
}

// Stop cancels any pending message.
func (i *Interval) Stop() {
	i.gen++
	i.running = false
}

// Running reports whether the interval is active.
func (i *Interval) Running() bool {
	return i.running
}

// Valid reports whether a message of the given generation is current.
func (i *Interval) Valid(gen int) bool {
	return i.running && gen == i.gen
}

// Next schedules the following message of the current generation.
func (i *Interval) Next() tea.Cmd {
	if !i.running {
		return nil
	}
	return i.schedule()
}

func (i *Interval) schedule() tea.Cmd {
	gen := i.gen
	return tea.Tick(i.period, func(t time.Time) tea.Msg {
		return i.msg(gen, t)
	})
}

// frameInterval returns an interval emitting FrameMsg at the given rate.
func frameInterval(fps int) *Interval {
	if fps <= 0 {
		fps = 60
	}
	return NewInterval(time.Second/time.Duration(fps), func(gen int, t time.Time) tea.Msg {
		return FrameMsg{gen: gen, At: t}
	})
}

// countdownInterval returns an interval emitting CountdownMsg every second.
func countdownInterval() *Interval {
	return NewInterval(time.Second, func(gen int, _ time.Time) tea.Msg {
		return CountdownMsg{gen: gen}
	})
}
