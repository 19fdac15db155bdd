// Package player implements the runner's tap-jump kinematics and stamina.
// The body knows nothing about terrain: it falls to a fixed ground row and
// the simulation decides whether that row actually holds a platform.
package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Display glyphs
const (
	GlyphGrounded  = '●'
	GlyphExhausted = '○'
	GlyphAirborne  = '◉'
	StaminaFull    = '■'
	StaminaEmpty   = '□'
)

// Mode is the visual classification of the body.
type Mode int

const (
	ModeGrounded Mode = iota
	ModeExhausted
	ModeAirborne
)

// JumpOutcome describes what a jump request did.
type JumpOutcome int

const (
	JumpFromGround JumpOutcome = iota
	JumpInAir
	RejectedNoStamina
	RejectedCooldown
)

// Accepted reports whether the jump was applied.
func (o JumpOutcome) Accepted() bool {
	return o == JumpFromGround || o == JumpInAir
}

// String returns a short name for logs.
func (o JumpOutcome) String() string {
	switch o {
	case JumpFromGround:
		return "ground"
	case JumpInAir:
		return "air"
	case RejectedNoStamina:
		return "no-stamina"
	case RejectedCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Body is the player's kinematic and stamina state.
type Body struct {
	cfg       config.PlayerConfig
	cooldown  time.Duration
	now       func() time.Time
	groundY   float64
	y         float64
	velocity  float64
	grounded  bool
	stamina   int
	lastJump  time.Time
	particles []Particle
	fresh     int // particles appended since the last Update
}

// New creates a body standing on platformRow. Invalid configuration panics.
func New(cfg config.PlayerConfig, platformRow int) *Body {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("player: %v", err))
	}
	b := &Body{
		cfg:      cfg,
		cooldown: time.Duration(cfg.JumpCooldownMs) * time.Millisecond,
		now:      time.Now,
	}
	b.Reset(platformRow)
	return b
}

// SetClock replaces the time source used for the jump cooldown.
func (b *Body) SetClock(now func() time.Time) {
	b.now = now
}

// Reset puts the body back on the ground with full stamina.
func (b *Body) Reset(platformRow int) {
	b.groundY = float64(platformRow)
	b.y = b.groundY
	b.velocity = 0
	b.grounded = true
	b.stamina = b.cfg.MaxStamina
	b.lastJump = time.Time{}
	b.particles = b.particles[:0]
	b.fresh = 0
}

// TapJump applies the jump impulse if stamina and the cooldown allow it.
// It reports whether the jump was accepted.
func (b *Body) TapJump() bool {
	return b.Jump().Accepted()
}

// Jump is TapJump with the reason for the result.
// The impulse replaces the current velocity rather than adding to it.
func (b *Body) Jump() JumpOutcome {
	if b.stamina <= 0 {
		return RejectedNoStamina
	}
	now := b.now()
	if !b.lastJump.IsZero() && now.Sub(b.lastJump) < b.cooldown {
		return RejectedCooldown
	}

	wasAirborne := !b.grounded

	b.velocity = b.cfg.JumpImpulse
	b.grounded = false
	b.stamina--
	b.lastJump = now

	if wasAirborne {
		b.spawnBurst()
		return JumpInAir
	}
	return JumpFromGround
}

// Update advances one physics tick: particles age, then gravity and
// semi-implicit Euler integration while airborne.
func (b *Body) Update() {
	b.ageParticles()

	if b.grounded {
		return
	}

	b.velocity += b.cfg.Gravity
	b.y += b.velocity

	ceiling := float64(b.cfg.CeilingRow)
	if b.y < ceiling {
		b.y = ceiling
		b.velocity = 0
	}

	if b.y >= b.groundY {
		b.y = b.groundY
		b.velocity = 0
		b.grounded = true
		b.stamina = b.cfg.MaxStamina
	}
}

// X returns the fixed horizontal column.
func (b *Body) X() int {
	return b.cfg.X
}

// Y returns the continuous vertical position (rows grow downward).
func (b *Body) Y() float64 {
	return b.y
}

// Row returns the grid row the body occupies.
func (b *Body) Row() int {
	return core.Trunc(b.y)
}

// Velocity returns the vertical velocity; negative is upward.
func (b *Body) Velocity() float64 {
	return b.velocity
}

// Grounded reports whether the body is resting on its ground row.
func (b *Body) Grounded() bool {
	return b.grounded
}

// Stamina returns the remaining jumps.
func (b *Body) Stamina() int {
	return b.stamina
}

// MaxStamina returns the stamina capacity.
func (b *Body) MaxStamina() int {
	return b.cfg.MaxStamina
}

// Mode classifies the body for display.
func (b *Body) Mode() Mode {
	switch {
	case !b.grounded:
		return ModeAirborne
	case b.stamina <= 0:
		return ModeExhausted
	default:
		return ModeGrounded
	}
}

// Glyph returns the character used to draw the body.
func (b *Body) Glyph() rune {
	switch b.Mode() {
	case ModeAirborne:
		return GlyphAirborne
	case ModeExhausted:
		return GlyphExhausted
	default:
		return GlyphGrounded
	}
}

// StaminaBar renders stamina as filled and empty boxes, e.g. "[■■■□□]".
func (b *Body) StaminaBar() string {
	var sb strings.Builder
	sb.WriteRune('[')
	for i := 0; i < b.cfg.MaxStamina; i++ {
		if i < b.stamina {
			sb.WriteRune(StaminaFull)
		} else {
			sb.WriteRune(StaminaEmpty)
		}
	}
	sb.WriteRune(']')
	return sb.String()
}
