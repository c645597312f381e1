package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this for deterministic simulation; screen size only matters
// to renderers, the playfield itself has fixed logical dimensions.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the state of the run's state machine.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseEnded
)

// String returns a lowercase name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a run.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score
	Lives    int   // Remaining lives
	TimeLeft int   // Remaining seconds on the countdown
	Phase    Phase // Running, Paused or Ended
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseEnded
}

// Paused reports whether the run is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// EventKind identifies a gameplay event reported by a step.
type EventKind int

const (
	EventJump EventKind = iota
	EventCollect
	EventHit
	EventRunEnded
)

// String returns a lowercase name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventCollect:
		return "collect"
	case EventHit:
		return "hit"
	case EventRunEnded:
		return "run_ended"
	default:
		return "unknown"
	}
}

// Event is a single gameplay event with the playfield position it happened at.
type Event struct {
	Kind  EventKind
	X, Y  float64
	Score int // Score after the event
	Lives int // Lives after the event
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
