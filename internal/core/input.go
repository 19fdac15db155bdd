package core

// Intent is a discrete request delivered to the simulation once per tick.
// Shells translate physical keys into intents; games never see raw keys.
type Intent int

const (
	IntentNone    Intent = iota
	IntentJump           // Space, W, Up
	IntentRestart        // R, only meaningful after game over
	IntentQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentJump:
		return "Jump"
	case IntentRestart:
		return "Restart"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IntentLatch holds at most one intent between ticks.
// Quit always wins; otherwise the first intent of the tick is kept, so a
// burst of key repeats still produces a single jump request.
type IntentLatch struct {
	pending Intent
}

// Push records an intent for the next tick.
func (l *IntentLatch) Push(i Intent) {
	if i == IntentNone {
		return
	}
	if i == IntentQuit || l.pending == IntentNone {
		l.pending = i
	}
}

// Take returns the pending intent and clears the latch.
func (l *IntentLatch) Take() Intent {
	i := l.pending
	l.pending = IntentNone
	return i
}
