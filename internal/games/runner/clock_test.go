package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/level"
)

const (
	testW = 80
	testH = 24
)

func newTestClock(t *testing.T, seed int64) *Clock {
	t.Helper()
	return NewClock(config.DefaultRunnerConfig(), testW, testH, seed, WithSimulatedTime())
}

// runAutopilot steps c with an autopilot for n ticks and fails the test on
// any crash.
func runAutopilot(t *testing.T, c *Clock, n int) {
	t.Helper()
	ap := NewAutopilot(c)
	for i := 0; i < n; i++ {
		res := c.Step(ap.Poll())
		require.False(t, res.State.GameOver, "autopilot crashed at tick %d (%s)", c.Ticks(), c.Cause())
	}
}

func TestNewClockInitialState(t *testing.T) {
	c := newTestClock(t, 1)

	assert.Zero(t, c.Ticks())
	assert.Zero(t, c.Score())
	assert.Zero(t, c.Best())
	assert.Equal(t, 1.0, c.Speed())
	assert.Equal(t, 50*time.Millisecond, c.TickInterval())
	assert.False(t, c.GameOver())
	assert.Equal(t, CauseNone, c.Cause())
	assert.Equal(t, int64(1), c.Seed())
	assert.Equal(t, testH-3, c.Level().PlatformRow())
	assert.Equal(t, float64(testH-3), c.Player().Y())
}

func TestNewClockPanics(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Level.Weights = config.ObstacleWeights{}
	assert.Panics(t, func() { NewClock(cfg, testW, testH, 1) }, "invalid config")

	cfg = config.DefaultRunnerConfig()
	cfg.Level.MidBlockHeight = 8
	assert.Panics(t, func() { NewClock(cfg, testW, testH, 1) }, "unclearable block")

	assert.Panics(t, func() { NewClock(config.DefaultRunnerConfig(), testW, 8, 1) }, "too short")
	assert.Panics(t, func() { NewClock(config.DefaultRunnerConfig(), 4, testH, 1) }, "too narrow")
}

func TestGapFallDeath(t *testing.T) {
	c := newTestClock(t, 3)
	x := c.Player().X()

	// The column in front of the player becomes the player's column after
	// this tick's scroll.
	c.Level().Stamp(x+1, level.KindGap)

	res := c.Step(core.IntentNone)
	assert.True(t, res.State.GameOver)
	assert.True(t, res.Has(core.EventCrash))
	assert.Equal(t, CauseGap, c.Cause())
	assert.Zero(t, c.Ticks(), "the fatal tick is not counted")
}

func TestLandingInGapKillsOnLandingTick(t *testing.T) {
	c := newTestClock(t, 3)
	x := c.Player().X()

	// A jump stays airborne for seven ticks and lands on the eighth.
	c.Level().Stamp(x+8, level.KindGap)

	res := c.Step(core.IntentJump)
	require.True(t, res.Has(core.EventJump))
	for i := 2; i <= 7; i++ {
		res = c.Step(core.IntentNone)
		require.False(t, res.State.GameOver, "died early on tick %d", i)
	}

	res = c.Step(core.IntentNone)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, CauseGap, c.Cause())
	assert.Equal(t, 7, c.Ticks())
}

func TestObstacleCollision(t *testing.T) {
	for _, kind := range []level.ObstacleKind{level.KindSpike, level.KindLowBlock, level.KindMidBlock} {
		t.Run(kind.String(), func(t *testing.T) {
			c := newTestClock(t, 5)
			c.Level().Stamp(c.Player().X()+1, kind)

			res := c.Step(core.IntentNone)
			assert.True(t, res.State.GameOver)
			assert.Equal(t, CauseObstacle, c.Cause())
		})
	}
}

func TestJumpClearsObstacles(t *testing.T) {
	kinds := []level.ObstacleKind{
		level.KindSpike, level.KindDoubleSpike, level.KindLowBlock, level.KindMidBlock, level.KindGap,
	}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			c := newTestClock(t, 5)
			x := c.Player().X()
			c.Level().Stamp(x+1, kind)
			if kind == level.KindGap {
				for i := 2; i <= 4; i++ {
					c.Level().Stamp(x+i, level.KindGap)
				}
			}

			c.Step(core.IntentJump)
			for i := 0; i < 10; i++ {
				res := c.Step(core.IntentNone)
				require.False(t, res.State.GameOver, "crashed on %s", c.Cause())
			}
			assert.True(t, c.Player().Grounded())
		})
	}
}

func TestAirJumpResetsVelocity(t *testing.T) {
	c := newTestClock(t, 9)
	impulse := config.DefaultRunnerConfig().Player.JumpImpulse
	gravity := config.DefaultRunnerConfig().Player.Gravity

	res := c.Step(core.IntentJump)
	require.True(t, res.Has(core.EventJump))
	for i := 0; i < 4; i++ {
		c.Step(core.IntentNone)
	}
	require.False(t, c.Player().Grounded())
	require.Greater(t, c.Player().Velocity(), 0.0, "falling before the second jump")

	res = c.Step(core.IntentJump)
	require.True(t, res.Has(core.EventAirJump))
	assert.InDelta(t, impulse+gravity, c.Player().Velocity(), 1e-9, "impulse replaces velocity")
	assert.Equal(t, 3, c.Player().Stamina())
	assert.Len(t, c.Player().Particles(), 4)

	ceiling := float64(config.DefaultRunnerConfig().Player.CeilingRow)
	for i := 0; i < 10; i++ {
		c.Step(core.IntentJump)
		assert.GreaterOrEqual(t, c.Player().Y(), ceiling)
		assert.GreaterOrEqual(t, c.Player().Stamina(), 0)
	}
}

func TestIntentGating(t *testing.T) {
	c := newTestClock(t, 11)

	res := c.Step(core.IntentRestart)
	assert.False(t, res.Has(core.EventRestart), "restart ignored while alive")
	assert.Equal(t, 1, c.Ticks())
	assert.Equal(t, int64(11), c.Seed())

	c.Level().Stamp(c.Player().X()+1, level.KindSpike)
	res = c.Step(core.IntentNone)
	require.True(t, res.State.GameOver)
	ticks := c.Ticks()

	res = c.Step(core.IntentJump)
	assert.Empty(t, res.Events, "jump ignored after game over")
	assert.True(t, c.Player().Grounded())
	assert.Equal(t, ticks, c.Ticks(), "time stops after game over")

	res = c.Step(core.IntentRestart)
	assert.True(t, res.Has(core.EventRestart))
	assert.False(t, c.GameOver())
	// The restart is applied first and the fresh run then advances within
	// the same step, so one tick has already been survived.
	assert.Equal(t, 1, c.Ticks())
	assert.Equal(t, int64(12), c.Seed(), "restart moves to the next seed")

	res = c.Step(core.IntentQuit)
	assert.True(t, res.Quit)
}

func TestScoreTracksTicks(t *testing.T) {
	c := newTestClock(t, 13)
	ap := NewAutopilot(c)

	prev := 0
	for i := 0; i < 1000; i++ {
		res := c.Step(ap.Poll())
		require.False(t, res.State.GameOver)
		assert.Equal(t, c.Ticks()/10, res.State.Score)
		assert.GreaterOrEqual(t, res.State.Score, prev)
		prev = res.State.Score
	}
	assert.Equal(t, 100, c.Score())
}

func TestSpeedRatchet(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Clock.SpeedEvery = 20
	c := NewClock(cfg, testW, testH, 17, WithSimulatedTime())
	ap := NewAutopilot(c)

	speedUps := 0
	prev := c.Speed()
	for i := 0; i < 400; i++ {
		res := c.Step(ap.Poll())
		require.False(t, res.State.GameOver)
		if res.Has(core.EventSpeedUp) {
			speedUps++
			assert.Zero(t, c.Ticks()%20)
		}
		assert.GreaterOrEqual(t, c.Speed(), prev, "speed never decreases")
		prev = c.Speed()
	}

	assert.Equal(t, 12, speedUps, "0.05 steps from 1.0 to the 1.6 cap")
	assert.Equal(t, 1.6, c.Speed())
	assert.Equal(t, time.Duration(float64(50*time.Millisecond)/1.6), c.TickInterval())
}

func TestFixedPresetKeepsSpeed(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	config.ApplyPreset(&cfg, config.DifficultyFixed)
	cfg.Clock.SpeedEvery = 10
	c := NewClock(cfg, testW, testH, 17, WithSimulatedTime())

	runAutopilot(t, c, 200)
	assert.Equal(t, 1.0, c.Speed())
	assert.Equal(t, 50*time.Millisecond, c.TickInterval())
}

func TestBestScoreUpdatedOnCrash(t *testing.T) {
	c := newTestClock(t, 19)
	runAutopilot(t, c, 250)
	assert.Zero(t, c.Best(), "best only changes when a run ends")

	c.Level().Stamp(c.Player().X()+1, level.KindSpike)
	for !c.GameOver() {
		c.Step(core.IntentNone)
	}
	best := c.Best()
	assert.GreaterOrEqual(t, best, 25)
	assert.Equal(t, 1, c.Runs())

	c.Step(core.IntentRestart)
	c.Level().Stamp(c.Player().X()+1, level.KindSpike)
	c.Step(core.IntentNone)
	require.True(t, c.GameOver())
	assert.Equal(t, best, c.Best(), "a worse run keeps the best")
	assert.Equal(t, 2, c.Runs())
}

func TestResetRoundTrip(t *testing.T) {
	c := newTestClock(t, 23)
	runAutopilot(t, c, 900)
	require.Greater(t, c.Speed(), 1.0)

	c.Reset(99)
	assert.Zero(t, c.Ticks())
	assert.Zero(t, c.Score())
	assert.Equal(t, 1.0, c.Speed())
	assert.Equal(t, 50*time.Millisecond, c.TickInterval())
	assert.False(t, c.GameOver())
	assert.True(t, c.Player().Grounded())
	assert.Equal(t, c.Player().MaxStamina(), c.Player().Stamina())

	lvl := c.Level()
	safe := config.DefaultRunnerConfig().Level.SafeStart
	for x := 0; x < safe; x++ {
		assert.Equal(t, level.CellPlatform, lvl.CellAt(x, lvl.PlatformRow()), "column %d", x)
		for y := 0; y < lvl.Height(); y++ {
			assert.False(t, lvl.HasObstacleAt(x, y), "obstacle at (%d,%d) after reset", x, y)
		}
	}
}

func TestResizeAfterCrashKeepsBest(t *testing.T) {
	c := newTestClock(t, 19)
	runAutopilot(t, c, 250)
	c.Level().Stamp(c.Player().X()+1, level.KindSpike)
	for !c.GameOver() {
		c.Step(core.IntentNone)
	}
	best := c.Best()
	require.Positive(t, best)

	_, ended := c.Resize(100, 30)
	assert.False(t, ended, "a finished run is not ended twice")
	assert.Equal(t, best, c.Best())
	assert.Equal(t, 1, c.Runs())
	assert.True(t, c.GameOver(), "the game over screen stays up")
	assert.Equal(t, testW, c.Level().Width(), "the new size waits for a restart")

	c.Step(core.IntentRestart)
	assert.False(t, c.GameOver())
	assert.Equal(t, 100, c.Level().Width())
	assert.Equal(t, 30, c.Level().Height())
	assert.Equal(t, 30-3, c.Level().PlatformRow())
	assert.Equal(t, float64(30-3), c.Player().Y())
	assert.Equal(t, int64(20), c.Seed())
	assert.Equal(t, best, c.Best())
}

func TestResizeMidRunEndsRun(t *testing.T) {
	c := newTestClock(t, 5)
	runAutopilot(t, c, 40)
	score := c.Score()
	require.Positive(t, score)

	run, ended := c.Resize(60, 20)
	require.True(t, ended)
	assert.Equal(t, "resize", run.Cause)
	assert.Equal(t, score, run.Score)
	assert.Equal(t, 40, run.Ticks)
	assert.Equal(t, int64(5), run.Seed)
	assert.Equal(t, score, c.Best())
	assert.Equal(t, 1, c.Runs())

	assert.False(t, c.GameOver())
	assert.Zero(t, c.Ticks())
	assert.Equal(t, int64(5), c.Seed(), "a resize replays the same seed")
	assert.Equal(t, 60, c.Level().Width())
	assert.Equal(t, 20-3, c.Level().PlatformRow())
	runAutopilot(t, c, 40)
}

func TestResizeWithoutProgress(t *testing.T) {
	c := newTestClock(t, 5)

	_, ended := c.Resize(testW, testH)
	assert.False(t, ended, "same size is ignored")

	_, ended = c.Resize(70, 22)
	assert.False(t, ended, "an untouched run is rebuilt without being recorded")
	assert.Zero(t, c.Runs())
	assert.Equal(t, 70, c.Level().Width())

	assert.Panics(t, func() { c.Resize(70, 8) }, "too short")
	assert.Panics(t, func() { c.Resize(4, 22) }, "too narrow")
}

func TestClockDeterminism(t *testing.T) {
	run := func() core.RunSummary {
		c := newTestClock(t, 12345)
		ap := NewAutopilot(c)
		for i := 0; i < 600; i++ {
			c.Step(ap.Poll())
		}
		return c.Summary()
	}
	assert.Equal(t, run(), run())
}

func TestCauseString(t *testing.T) {
	assert.Equal(t, "none", CauseNone.String())
	assert.Equal(t, "obstacle", CauseObstacle.String())
	assert.Equal(t, "gap", CauseGap.String())
	assert.Equal(t, "resize", CauseResize.String())
}
