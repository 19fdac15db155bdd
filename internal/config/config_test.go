package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultRunnerConfig(), cfg)
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultRunnerConfig().Level.Weights
	assert.Equal(t, 100, w.Total())
	assert.Equal(t, 35, w.Spike)
	assert.Equal(t, 18, w.Gap)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  max_stamina: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Player.MaxStamina)
	assert.Equal(t, 0.8, cfg.Player.Gravity, "untouched keys keep their defaults")
	assert.Equal(t, 14, cfg.Level.MinSpacing)
}

func TestValidateRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero weights", func(c *RunnerConfig) { c.Level.Weights = ObstacleWeights{} }},
		{"negative weight", func(c *RunnerConfig) { c.Level.Weights.Gap = -1 }},
		{"spacing inverted", func(c *RunnerConfig) { c.Level.MinSpacing, c.Level.MaxSpacing = 22, 14 }},
		{"gap inverted", func(c *RunnerConfig) { c.Level.GapMin, c.Level.GapMax = 5, 3 }},
		{"safe start too short", func(c *RunnerConfig) { c.Level.SafeStart = 2 }},
		{"upward gravity", func(c *RunnerConfig) { c.Player.Gravity = -0.8 }},
		{"downward impulse", func(c *RunnerConfig) { c.Player.JumpImpulse = 3.5 }},
		{"no stamina", func(c *RunnerConfig) { c.Player.MaxStamina = 0 }},
		{"zero tick", func(c *RunnerConfig) { c.Clock.BaseTickMs = 0 }},
		{"speed cap below one", func(c *RunnerConfig) { c.Clock.MaxSpeed = 0.5 }},
		{"zero speed interval", func(c *RunnerConfig) { c.Clock.SpeedEvery = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "error should wrap ErrInvalid: %v", err)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clock:\n  base_tick_ms: 40\n"), 0o600))

	cfg, src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, src)
	assert.Equal(t, 40, cfg.Clock.BaseTickMs)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("level:\n  min_spacing: 30\n  max_spacing: 10\n"), 0o600))
	_, _, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultRunnerConfig(), cfg)
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	assert.Zero(t, cfg.Clock.SpeedStep)
	assert.NoError(t, cfg.Validate())

	cfg = DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	assert.Greater(t, cfg.Clock.MaxSpeed, DefaultRunnerConfig().Clock.MaxSpeed)
	assert.Equal(t, DefaultRunnerConfig().Level, cfg.Level, "presets never alter terrain generation")

	cfg = DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	assert.Equal(t, DefaultRunnerConfig(), cfg)
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		_, err := ParsePreset(s)
		assert.NoError(t, err, s)
	}
	_, err := ParsePreset("nightmare")
	assert.Error(t, err)
}
