package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks the configuration for values the simulation cannot run with.
// Physics-dependent fairness is checked by the runner, which owns both the
// player and the level.
func (c RunnerConfig) Validate() error {
	if err := c.Level.Validate(); err != nil {
		return err
	}
	if err := c.Player.Validate(); err != nil {
		return err
	}
	return c.Clock.Validate()
}

// Validate checks level generation parameters.
func (l LevelConfig) Validate() error {
	w := l.Weights
	if w.Spike < 0 || w.DoubleSpike < 0 || w.LowBlock < 0 || w.MidBlock < 0 || w.Gap < 0 {
		return invalid("obstacle weights must not be negative")
	}
	if w.Total() <= 0 {
		return invalid("obstacle weights sum to zero")
	}
	if l.MinSpacing < 1 {
		return invalid("min_spacing must be at least 1, got %d", l.MinSpacing)
	}
	if l.MinSpacing > l.MaxSpacing {
		return invalid("min_spacing %d > max_spacing %d", l.MinSpacing, l.MaxSpacing)
	}
	if l.GapMin < 1 || l.GapMin > l.GapMax {
		return invalid("gap range [%d, %d] is empty", l.GapMin, l.GapMax)
	}
	if l.DoubleSpikeGap < 1 {
		return invalid("double_spike_gap must be at least 1, got %d", l.DoubleSpikeGap)
	}
	if l.LowBlockHeight < 1 || l.MidBlockHeight < l.LowBlockHeight {
		return invalid("block heights must satisfy 1 <= low (%d) <= mid (%d)", l.LowBlockHeight, l.MidBlockHeight)
	}
	if l.SafeStart < l.MaxExtent() {
		return invalid("safe_start %d is shorter than the widest obstacle (%d columns)", l.SafeStart, l.MaxExtent())
	}
	if l.Background.StarPeriod < 1 || l.Background.CloudPeriod < 1 {
		return invalid("background periods must be at least 1")
	}
	if l.Background.Stars < 0 || l.Background.Clouds < 0 {
		return invalid("background element counts must not be negative")
	}
	return nil
}

// MaxExtent returns the widest horizontal footprint any obstacle can have.
func (l LevelConfig) MaxExtent() int {
	doubleSpike := l.DoubleSpikeGap + 2
	if l.GapMax > doubleSpike {
		return l.GapMax
	}
	return doubleSpike
}

// Validate checks player physics parameters.
func (p PlayerConfig) Validate() error {
	if p.X < 0 {
		return invalid("player x must not be negative, got %d", p.X)
	}
	if p.Gravity <= 0 {
		return invalid("gravity must be positive, got %v", p.Gravity)
	}
	if p.JumpImpulse >= 0 {
		return invalid("jump_impulse must be negative (upward), got %v", p.JumpImpulse)
	}
	if p.CeilingRow < 1 {
		return invalid("ceiling_row must leave the HUD row free, got %d", p.CeilingRow)
	}
	if p.MaxStamina < 1 {
		return invalid("max_stamina must be at least 1, got %d", p.MaxStamina)
	}
	if p.JumpCooldownMs < 0 {
		return invalid("jump_cooldown_ms must not be negative, got %d", p.JumpCooldownMs)
	}
	return nil
}

// Validate checks timing and scoring parameters.
func (c ClockConfig) Validate() error {
	if c.BaseTickMs <= 0 {
		return invalid("base_tick_ms must be positive, got %d", c.BaseTickMs)
	}
	if c.SpeedStep < 0 {
		return invalid("speed_step must not be negative, got %v", c.SpeedStep)
	}
	if c.SpeedEvery <= 0 {
		return invalid("speed_every must be positive, got %d", c.SpeedEvery)
	}
	if c.MaxSpeed < 1 {
		return invalid("max_speed must be at least 1.0, got %v", c.MaxSpeed)
	}
	if c.TicksPerPoint <= 0 {
		return invalid("ticks_per_point must be positive, got %d", c.TicksPerPoint)
	}
	return nil
}
