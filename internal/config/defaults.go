package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Level: LevelConfig{
			SafeStart:      20,
			MinSpacing:     14,
			MaxSpacing:     22,
			GapMin:         3,
			GapMax:         4,
			DoubleSpikeGap: 3,
			LowBlockHeight: 2,
			MidBlockHeight: 3,
			Weights: ObstacleWeights{
				Spike:       35,
				DoubleSpike: 12,
				LowBlock:    25,
				MidBlock:    10,
				Gap:         18,
			},
			Background: BackgroundConfig{
				Seed:        42,
				Stars:       15,
				Clouds:      5,
				StarPeriod:  3,
				CloudPeriod: 2,
			},
		},
		Player: PlayerConfig{
			X:              5,
			Gravity:        0.8,
			JumpImpulse:    -3.5,
			CeilingRow:     3,
			MaxStamina:     5,
			JumpCooldownMs: 30,
		},
		Clock: ClockConfig{
			BaseTickMs:    50,
			SpeedStep:     0.05,
			SpeedEvery:    400,
			MaxSpeed:      1.6,
			TicksPerPoint: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
