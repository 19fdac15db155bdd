package config

import "fmt"

// DifficultyPreset represents a named speed progression.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the speed progression based on a difficulty preset.
// Terrain generation is never touched: every preset keeps the same fairness
// guarantees, only the tick rate ramps differently.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Clock.SpeedEvery = 600
		cfg.Clock.MaxSpeed = 1.3
	case DifficultyNormal:
		// Config values as loaded
	case DifficultyHard:
		cfg.Clock.SpeedStep = 0.1
		cfg.Clock.SpeedEvery = 300
		cfg.Clock.MaxSpeed = 2.0
	case DifficultyFixed:
		cfg.Clock.SpeedStep = 0
	}
}
