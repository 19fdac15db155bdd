// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the runner.
package config

// RunnerConfig contains all tunables for the runner simulation.
type RunnerConfig struct {
	Level  LevelConfig  `yaml:"level"`
	Player PlayerConfig `yaml:"player"`
	Clock  ClockConfig  `yaml:"clock"`
}

// LevelConfig defines terrain generation parameters.
type LevelConfig struct {
	SafeStart      int              `yaml:"safe_start"`       // Obstacle-free columns after a reset
	MinSpacing     int              `yaml:"min_spacing"`      // Min normal columns between obstacles
	MaxSpacing     int              `yaml:"max_spacing"`      // Max normal columns between obstacles
	GapMin         int              `yaml:"gap_min"`          // Narrowest gap in columns
	GapMax         int              `yaml:"gap_max"`          // Widest gap in columns
	DoubleSpikeGap int              `yaml:"double_spike_gap"` // Clear columns between the two spikes
	LowBlockHeight int              `yaml:"low_block_height"`
	MidBlockHeight int              `yaml:"mid_block_height"`
	Weights        ObstacleWeights  `yaml:"weights"`
	Background     BackgroundConfig `yaml:"background"`
}

// ObstacleWeights are relative draw weights for each obstacle kind.
type ObstacleWeights struct {
	Spike       int `yaml:"spike"`
	DoubleSpike int `yaml:"double_spike"`
	LowBlock    int `yaml:"low_block"`
	MidBlock    int `yaml:"mid_block"`
	Gap         int `yaml:"gap"`
}

// Total returns the sum of all weights.
func (w ObstacleWeights) Total() int {
	return w.Spike + w.DoubleSpike + w.LowBlock + w.MidBlock + w.Gap
}

// BackgroundConfig defines the cosmetic parallax layer.
type BackgroundConfig struct {
	Seed        int64 `yaml:"seed"` // Fixed so the sky looks the same every run
	Stars       int   `yaml:"stars"`
	Clouds      int   `yaml:"clouds"`
	StarPeriod  int   `yaml:"star_period"`  // Scrolls per star step
	CloudPeriod int   `yaml:"cloud_period"` // Scrolls per cloud step
}

// PlayerConfig defines the player's physics and stamina budget.
type PlayerConfig struct {
	X              int     `yaml:"x"` // Fixed screen column
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"` // Negative = upward
	CeilingRow     int     `yaml:"ceiling_row"`
	MaxStamina     int     `yaml:"max_stamina"`
	JumpCooldownMs int     `yaml:"jump_cooldown_ms"`
}

// ClockConfig defines tick timing, speed progression and scoring.
type ClockConfig struct {
	BaseTickMs    int     `yaml:"base_tick_ms"`
	SpeedStep     float64 `yaml:"speed_step"`  // Added to the multiplier on each step
	SpeedEvery    int     `yaml:"speed_every"` // Ticks between steps
	MaxSpeed      float64 `yaml:"max_speed"`
	TicksPerPoint int     `yaml:"ticks_per_point"`
}
