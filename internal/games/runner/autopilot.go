package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/level"
)

// Autopilot is a simple IntentSource that plays the game: it jumps from
// the ground as soon as a hazard enters the column in front of the player
// and restarts after a crash.
type Autopilot struct {
	clock *Clock
	lead  int
	jumps int
}

// NewAutopilot creates an autopilot for clock.
func NewAutopilot(clock *Clock) *Autopilot {
	return &Autopilot{clock: clock, lead: 1}
}

// Poll implements IntentSource.
func (a *Autopilot) Poll() core.Intent {
	if a.clock.GameOver() {
		return core.IntentRestart
	}
	p := a.clock.Player()
	if !p.Grounded() {
		return core.IntentNone
	}
	if hazardAt(a.clock.Level(), p.X()+a.lead) {
		a.jumps++
		return core.IntentJump
	}
	return core.IntentNone
}

// Jumps returns how many jumps the autopilot has requested.
func (a *Autopilot) Jumps() int {
	return a.jumps
}

// hazardAt reports whether column x holds an obstacle or a missing platform.
func hazardAt(lvl *level.Generator, x int) bool {
	platform := lvl.PlatformRow()
	if lvl.CellAt(x, platform) == level.CellEmpty {
		return true
	}
	for y := 1; y <= platform; y++ {
		if lvl.HasObstacleAt(x, y) {
			return true
		}
	}
	return false
}
