package runner

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner/level"
	"github.com/vovakirdan/tui-runner/internal/games/runner/player"
)

// ErrUnfair is wrapped by every fairness violation.
var ErrUnfair = errors.New("unclearable level")

// ErrTooNarrow is returned for playfields that cannot show the column the
// player stands on and the one ahead of it.
var ErrTooNarrow = errors.New("playfield too narrow")

// CheckFairness verifies that every obstacle the level can generate is
// clearable by one jump with the configured physics on a playfield of the
// given height.
//
// The world scrolls one column per tick at every speed multiplier, so the
// jump arc measured in columns does not shrink as the game speeds up and a
// single check covers the whole run.
func CheckFairness(cfg config.RunnerConfig, height int) error {
	platformRow := height - 3
	tallest := max(cfg.Level.LowBlockHeight, cfg.Level.MidBlockHeight)

	if platformRow-tallest < cfg.Player.CeilingRow {
		return fmt.Errorf("%w: %d-tall block leaves no row below the ceiling at height %d",
			ErrUnfair, tallest, height)
	}

	arc := player.JumpArc(cfg.Player, platformRow)
	if tallest >= arc.Height {
		return fmt.Errorf("%w: %d-tall block reaches the jump apex (%d rows)",
			ErrUnfair, tallest, arc.Height)
	}
	if extent := cfg.Level.MaxExtent(); extent >= arc.AirTicks {
		return fmt.Errorf("%w: %d-column obstacle outlasts %d airborne ticks",
			ErrUnfair, extent, arc.AirTicks)
	}
	if cfg.Level.MinSpacing <= arc.AirTicks {
		return fmt.Errorf("%w: min spacing %d leaves no landing room after %d airborne ticks",
			ErrUnfair, cfg.Level.MinSpacing, arc.AirTicks)
	}
	return nil
}

// maxSearchHeight bounds MinPlayableHeight; no sane physics needs more rows.
const maxSearchHeight = 256

// MinPlayableHeight returns the smallest playfield height on which cfg
// passes CheckFairness, or 0 if none up to a generous bound does.
func MinPlayableHeight(cfg config.RunnerConfig) int {
	for h := level.MinHeight; h <= maxSearchHeight; h++ {
		if CheckFairness(cfg, h) == nil {
			return h
		}
	}
	return 0
}

// MinPlayableWidth returns the narrowest playfield that holds the player's
// column and one column of look-ahead.
func MinPlayableWidth(cfg config.RunnerConfig) int {
	return cfg.Player.X + 2
}

// CheckPlayfield reports whether a width x height playfield can host cfg:
// wide enough for the player and tall enough to pass CheckFairness.
func CheckPlayfield(cfg config.RunnerConfig, width, height int) error {
	if need := MinPlayableWidth(cfg); width < need {
		return fmt.Errorf("%w: %d columns, need %d", ErrTooNarrow, width, need)
	}
	return CheckFairness(cfg, height)
}
