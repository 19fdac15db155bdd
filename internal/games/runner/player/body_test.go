package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
)

const platformRow = 17

// fakeClock is a manually advanced time source for cooldown tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newBody(t *testing.T) (*Body, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Unix(1000, 0)}
	b := New(config.DefaultRunnerConfig().Player, platformRow)
	b.SetClock(clk.Now)
	return b, clk
}

func TestNewBodyStartsGrounded(t *testing.T) {
	b, _ := newBody(t)

	assert.True(t, b.Grounded())
	assert.Equal(t, float64(platformRow), b.Y())
	assert.Equal(t, platformRow, b.Row())
	assert.Zero(t, b.Velocity())
	assert.Equal(t, 5, b.Stamina())
	assert.Equal(t, 5, b.X())
	assert.Equal(t, ModeGrounded, b.Mode())
	assert.Equal(t, GlyphGrounded, b.Glyph())
	assert.Equal(t, "[■■■■■]", b.StaminaBar())
	assert.Empty(t, b.Particles())
}

func TestNewPanicsOnInvalidConfig(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Player
	cfg.MaxStamina = 0
	assert.Panics(t, func() { New(cfg, platformRow) })
}

func TestGroundJump(t *testing.T) {
	b, _ := newBody(t)

	require.Equal(t, JumpFromGround, b.Jump())
	assert.False(t, b.Grounded())
	assert.Equal(t, -3.5, b.Velocity())
	assert.Equal(t, 4, b.Stamina())
	assert.Equal(t, "[■■■■□]", b.StaminaBar())
	assert.Empty(t, b.Particles(), "ground jumps leave no burst")

	b.Update()
	assert.InDelta(t, -2.7, b.Velocity(), 1e-9)
	assert.InDelta(t, 14.3, b.Y(), 1e-9)
	assert.Equal(t, 14, b.Row())
	assert.Equal(t, GlyphAirborne, b.Glyph())
}

func TestJumpCooldown(t *testing.T) {
	b, clk := newBody(t)

	require.True(t, b.TapJump())

	clk.Advance(10 * time.Millisecond)
	assert.Equal(t, RejectedCooldown, b.Jump())
	assert.Equal(t, 4, b.Stamina(), "rejected jump must not spend stamina")

	clk.Advance(19 * time.Millisecond)
	assert.False(t, b.TapJump())

	clk.Advance(time.Millisecond)
	assert.True(t, b.TapJump(), "cooldown is exclusive of its end")
	assert.Equal(t, 3, b.Stamina())
}

func TestAirJumpResetsVelocity(t *testing.T) {
	b, clk := newBody(t)

	require.True(t, b.TapJump())
	for i := 0; i < 5; i++ {
		b.Update()
	}
	require.Greater(t, b.Velocity(), 0.0, "body should be falling")

	clk.Advance(time.Second)
	require.Equal(t, JumpInAir, b.Jump())
	assert.Equal(t, -3.5, b.Velocity(), "impulse replaces velocity")
	assert.Equal(t, 3, b.Stamina())
}

func TestAirJumpSpawnsBurst(t *testing.T) {
	b, clk := newBody(t)

	require.True(t, b.TapJump())
	b.Update()
	clk.Advance(time.Second)
	require.True(t, b.TapJump())

	x, y := b.X(), b.Row()
	assert.Equal(t, []Particle{
		{X: x, Y: y + 1, Life: 4},
		{X: x - 1, Y: y + 1, Life: 3},
		{X: x + 1, Y: y + 1, Life: 3},
		{X: x, Y: y + 2, Life: 2},
	}, b.Particles())

	// The burst tick's own update leaves the new particles alone; after
	// that each particle lives out exactly its lifetime.
	counts := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		b.Update()
		counts = append(counts, len(b.Particles()))
	}
	assert.Equal(t, []int{4, 4, 3, 1, 0}, counts)
}

func TestStaminaBounds(t *testing.T) {
	b, clk := newBody(t)

	for i := 0; i < 5; i++ {
		require.True(t, b.TapJump(), "jump %d", i)
		b.Update()
		clk.Advance(50 * time.Millisecond)
	}
	assert.Zero(t, b.Stamina())
	assert.Equal(t, "[□□□□□]", b.StaminaBar())

	assert.Equal(t, RejectedNoStamina, b.Jump())
	assert.Zero(t, b.Stamina())

	for !b.Grounded() {
		b.Update()
		assert.GreaterOrEqual(t, b.Stamina(), 0)
		assert.LessOrEqual(t, b.Stamina(), b.MaxStamina())
	}
	assert.Equal(t, 5, b.Stamina(), "landing refills stamina")
	assert.Equal(t, float64(platformRow), b.Y())
	assert.Zero(t, b.Velocity())
}

func TestCeilingClamp(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	b := New(config.DefaultRunnerConfig().Player, 8)
	b.SetClock(clk.Now)

	require.True(t, b.TapJump())
	b.Update()
	assert.InDelta(t, 5.3, b.Y(), 1e-9)

	clk.Advance(time.Second)
	require.True(t, b.TapJump())
	b.Update()
	assert.Equal(t, 3.0, b.Y())
	assert.Zero(t, b.Velocity())

	for i := 0; i < 50 && !b.Grounded(); i++ {
		clk.Advance(time.Second)
		b.TapJump()
		b.Update()
		assert.GreaterOrEqual(t, b.Y(), 3.0)
		assert.LessOrEqual(t, b.Y(), 8.0)
	}
}

func TestModeExhaustedWhileGrounded(t *testing.T) {
	b, _ := newBody(t)
	b.stamina = 0
	assert.Equal(t, ModeExhausted, b.Mode())
	assert.Equal(t, GlyphExhausted, b.Glyph())
}

func TestResetRestoresInitialState(t *testing.T) {
	b, clk := newBody(t)

	require.True(t, b.TapJump())
	b.Update()
	clk.Advance(time.Second)
	require.True(t, b.TapJump())
	require.NotEmpty(t, b.Particles())

	b.Reset(platformRow)
	assert.True(t, b.Grounded())
	assert.Equal(t, float64(platformRow), b.Y())
	assert.Zero(t, b.Velocity())
	assert.Equal(t, 5, b.Stamina())
	assert.Empty(t, b.Particles())

	// Cooldown history is cleared with the rest of the state.
	assert.True(t, b.TapJump())
}

func TestJumpArc(t *testing.T) {
	arc := JumpArc(config.DefaultRunnerConfig().Player, platformRow)

	assert.Equal(t, 7, arc.AirTicks)
	require.Len(t, arc.Rows, 7)
	assert.Equal(t, 14, arc.Rows[0])
	assert.GreaterOrEqual(t, arc.Height, 5)
	assert.Equal(t, platformRow-arc.ApexRow, arc.Height)
	for _, row := range arc.Rows {
		assert.LessOrEqual(t, row, platformRow-3, "every airborne row clears a three-tall block")
	}
}

func TestJumpOutcomeString(t *testing.T) {
	assert.Equal(t, "ground", JumpFromGround.String())
	assert.Equal(t, "air", JumpInAir.String())
	assert.Equal(t, "cooldown", RejectedCooldown.String())
	assert.Equal(t, "no-stamina", RejectedNoStamina.String())
	assert.False(t, RejectedCooldown.Accepted())
}
