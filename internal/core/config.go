package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size their world and seed gameplay randomness.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for obstacle placement (0 = platform picks one)
}

// GameState is the part of the simulation a shell needs between ticks.
type GameState struct {
	Score    int  // Current distance score
	Best     int  // Best score seen in this process
	GameOver bool // Whether the current run has ended
}

// Event is a one-shot notification produced by a tick.
// Shells use events for cosmetic feedback (sound, flashes) only.
type Event int

const (
	EventJump Event = iota + 1
	EventAirJump
	EventCrash
	EventSpeedUp
	EventRestart
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventAirJump:
		return "air-jump"
	case EventCrash:
		return "crash"
	case EventSpeedUp:
		return "speed-up"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
	Quit   bool // The shell should stop its loop
}

// Has reports whether ev was produced this tick.
func (r StepResult) Has(ev Event) bool {
	for _, e := range r.Events {
		if e == ev {
			return true
		}
	}
	return false
}

// RunSummary describes one finished (or in-progress) run.
type RunSummary struct {
	Seed  int64   // Level seed the run was played on
	Score int     // Distance score
	Ticks int     // Ticks survived
	Speed float64 // Speed multiplier reached
	Cause string  // Why the run ended ("obstacle", "gap", "resize" or "none")
}
