// Package runner ties the level and the player together: a variable-rate
// fixed-tick clock, collision, scoring and the registry-facing game.
package runner

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/level"
	"github.com/vovakirdan/tui-runner/internal/games/runner/player"
)

// ClockOption customizes a Clock.
type ClockOption func(*Clock)

// WithSimulatedTime measures the jump cooldown in simulated time (the sum of
// elapsed tick intervals) instead of wall time. Headless runs and tests use
// it so results do not depend on how fast the host executes ticks.
func WithSimulatedTime() ClockOption {
	return func(c *Clock) {
		c.simulated = true
	}
}

// Clock owns the per-tick update order, scoring and speed progression.
// It is not safe for concurrent use; a single loop drives it.
type Clock struct {
	cfg    config.RunnerConfig
	level  *level.Generator
	player *player.Body

	seed      int64
	ticks     int
	score     int
	best      int
	runs      int
	speed     float64
	gameOver  bool
	cause     Cause
	simulated bool
	elapsed   time.Duration

	// Size requested while the run was over, applied by the next restart.
	pendingW, pendingH int
}

// NewClock builds the level and player for a width x height playfield and
// resets them with seed. Configuration that fails validation, fairness or
// the playfield checks panics: it is a programming error, not a runtime
// condition.
func NewClock(cfg config.RunnerConfig, width, height int, seed int64, opts ...ClockOption) *Clock {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("runner: %v", err))
	}
	c := &Clock{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	c.build(width, height, seed)
	c.Reset(seed)
	return c
}

// build creates the level and player for a width x height playfield.
func (c *Clock) build(width, height int, seed int64) {
	if err := CheckPlayfield(c.cfg, width, height); err != nil {
		panic(fmt.Sprintf("runner: %v", err))
	}
	c.level = level.New(c.cfg.Level, width, height, seed)
	c.player = player.New(c.cfg.Player, c.level.PlatformRow())
	if c.simulated {
		c.player.SetClock(c.simulatedNow)
	}
}

func (c *Clock) simulatedNow() time.Time {
	return time.Unix(0, 0).Add(c.elapsed)
}

// Reset starts a new run on a level generated from seed. Best score and
// simulated time survive; everything else returns to its initial value.
func (c *Clock) Reset(seed int64) {
	c.seed = seed
	c.ticks = 0
	c.score = 0
	c.speed = 1.0
	c.gameOver = false
	c.cause = CauseNone
	c.level.Reset(seed)
	c.player.Reset(c.level.PlatformRow())
}

// Resize moves the session to a width x height playfield. Best score, the
// run count and simulated time carry over.
//
// A run in progress ends with CauseResize and a new one starts on the same
// seed at the new size; the ended run is returned with ok set when it had
// survived at least one tick. After game over the final frame stays as it
// is and the next restart applies the new size. A resize to the current
// size while alive changes nothing.
func (c *Clock) Resize(width, height int) (ended core.RunSummary, ok bool) {
	if err := CheckPlayfield(c.cfg, width, height); err != nil {
		panic(fmt.Sprintf("runner: %v", err))
	}
	if c.gameOver {
		c.pendingW, c.pendingH = width, height
		return core.RunSummary{}, false
	}
	if width == c.level.Width() && height == c.level.Height() {
		return core.RunSummary{}, false
	}

	if c.ticks > 0 {
		c.cause = CauseResize
		ended, ok = c.Summary(), true
		c.runs++
		c.best = max(c.best, c.score)
	}
	c.build(width, height, c.seed)
	c.Reset(c.seed)
	return ended, ok
}

// Step applies at most one intent and advances the simulation by one tick.
// Jump is honored only while alive and Restart only after game over; a
// restarted run uses the next seed so consecutive runs differ.
func (c *Clock) Step(in core.Intent) core.StepResult {
	var events []core.Event

	switch in {
	case core.IntentQuit:
		return core.StepResult{State: c.State(), Quit: true}
	case core.IntentRestart:
		if c.gameOver {
			if c.pendingW > 0 {
				c.build(c.pendingW, c.pendingH, c.seed+1)
				c.pendingW, c.pendingH = 0, 0
			}
			c.Reset(c.seed + 1)
			events = append(events, core.EventRestart)
		}
	case core.IntentJump:
		if !c.gameOver {
			switch c.player.Jump() {
			case player.JumpFromGround:
				events = append(events, core.EventJump)
			case player.JumpInAir:
				events = append(events, core.EventAirJump)
			}
		}
	}

	if c.gameOver {
		return core.StepResult{State: c.State(), Events: events}
	}

	c.elapsed += c.TickInterval()
	c.player.Update()
	c.level.Scroll()

	if cause := c.collide(); cause != CauseNone {
		c.gameOver = true
		c.cause = cause
		c.runs++
		if c.score > c.best {
			c.best = c.score
		}
		events = append(events, core.EventCrash)
		return core.StepResult{State: c.State(), Events: events}
	}

	c.ticks++
	c.score = c.ticks / c.cfg.Clock.TicksPerPoint

	if c.ticks%c.cfg.Clock.SpeedEvery == 0 {
		prev := c.speed
		c.speed = c.speedAt(c.ticks)
		if c.speed > prev {
			events = append(events, core.EventSpeedUp)
		}
	}

	return core.StepResult{State: c.State(), Events: events}
}

// speedAt is computed from the tick count rather than accumulated, so the
// multiplier lands exactly on each step and on the cap.
func (c *Clock) speedAt(ticks int) float64 {
	steps := ticks / c.cfg.Clock.SpeedEvery
	return math.Min(1.0+c.cfg.Clock.SpeedStep*float64(steps), c.cfg.Clock.MaxSpeed)
}

// TickInterval returns the current target duration of one tick.
func (c *Clock) TickInterval() time.Duration {
	base := time.Duration(c.cfg.Clock.BaseTickMs) * time.Millisecond
	return time.Duration(float64(base) / c.speed)
}

// State returns the shell-facing summary of the current run.
func (c *Clock) State() core.GameState {
	return core.GameState{
		Score:    c.score,
		Best:     c.best,
		GameOver: c.gameOver,
	}
}

// Summary describes the current (or just finished) run.
func (c *Clock) Summary() core.RunSummary {
	return core.RunSummary{
		Seed:  c.seed,
		Score: c.score,
		Ticks: c.ticks,
		Speed: c.speed,
		Cause: c.cause.String(),
	}
}

// Score returns the distance score of the current run.
func (c *Clock) Score() int { return c.score }

// Best returns the best score of any run ended in this process, including
// runs cut short by a resize.
func (c *Clock) Best() int { return c.best }

// Speed returns the current speed multiplier.
func (c *Clock) Speed() float64 { return c.speed }

// Ticks returns the ticks survived in the current run.
func (c *Clock) Ticks() int { return c.ticks }

// Runs returns how many runs have ended since the clock was created.
func (c *Clock) Runs() int { return c.runs }

// GameOver reports whether the current run has ended.
func (c *Clock) GameOver() bool { return c.gameOver }

// Cause returns why the current run ended, or CauseNone while alive.
func (c *Clock) Cause() Cause { return c.cause }

// Seed returns the seed of the current level.
func (c *Clock) Seed() int64 { return c.seed }

// Level exposes the terrain for rendering and inspection. Callers must
// treat it as read-only.
func (c *Clock) Level() *level.Generator { return c.level }

// Player exposes the body for rendering and inspection. Callers must
// treat it as read-only.
func (c *Clock) Player() *player.Body { return c.player }
