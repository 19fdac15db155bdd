package runner

import (
	"github.com/vovakirdan/tui-runner/internal/games/runner/level"
)

// Cause records why a run ended.
type Cause int

const (
	CauseNone     Cause = iota
	CauseObstacle       // Ran into a spike or block
	CauseGap            // Reached ground level over a missing platform
	CauseResize         // Playfield resized mid-run
)

// String returns a short name used in logs and the journal.
func (c Cause) String() string {
	switch c {
	case CauseObstacle:
		return "obstacle"
	case CauseGap:
		return "gap"
	case CauseResize:
		return "resize"
	default:
		return "none"
	}
}

// collide checks the player's cell after both the body and the terrain
// have advanced. The row is truncated toward zero, not rounded.
//
// The gap rule applies whenever the body is at or below the platform row,
// including while airborne and descending through it.
func (c *Clock) collide() Cause {
	x := c.player.X()
	y := c.player.Row()

	if c.level.HasObstacleAt(x, y) {
		return CauseObstacle
	}

	platform := c.level.PlatformRow()
	if y >= platform && c.level.CellAt(x, platform) == level.CellEmpty {
		return CauseGap
	}
	return CauseNone
}
