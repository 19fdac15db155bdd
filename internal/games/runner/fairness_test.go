package runner

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestDefaultConfigIsFair(t *testing.T) {
	if err := CheckFairness(config.DefaultRunnerConfig(), 24); err != nil {
		t.Fatalf("default config should be fair at 24 rows: %v", err)
	}
}

func TestCheckFairnessRejects(t *testing.T) {
	tests := []struct {
		name   string
		height int
		mutate func(*config.RunnerConfig)
	}{
		{"block reaches apex", 24, func(c *config.RunnerConfig) { c.Level.MidBlockHeight = 6 }},
		{"gap outlasts airtime", 24, func(c *config.RunnerConfig) { c.Level.GapMax = 7 }},
		{"double spike outlasts airtime", 24, func(c *config.RunnerConfig) { c.Level.DoubleSpikeGap = 5 }},
		{"spacing inside airtime", 24, func(c *config.RunnerConfig) { c.Level.MinSpacing = 7 }},
		{"weak jump", 24, func(c *config.RunnerConfig) { c.Player.JumpImpulse = -1.5 }},
		{"block touches ceiling", 8, func(c *config.RunnerConfig) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultRunnerConfig()
			tt.mutate(&cfg)
			err := CheckFairness(cfg, tt.height)
			if !errors.Is(err, ErrUnfair) {
				t.Errorf("CheckFairness() = %v, want ErrUnfair", err)
			}
		})
	}
}

func TestPresetsStayFair(t *testing.T) {
	for _, p := range []config.DifficultyPreset{
		config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed,
	} {
		cfg := config.DefaultRunnerConfig()
		config.ApplyPreset(&cfg, p)
		if err := CheckFairness(cfg, 24); err != nil {
			t.Errorf("preset %s: %v", p, err)
		}
	}
}

func TestMinPlayableHeight(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	h := MinPlayableHeight(cfg)
	if h == 0 || h > 24 {
		t.Fatalf("MinPlayableHeight() = %d, want a height up to 24", h)
	}
	if err := CheckFairness(cfg, h); err != nil {
		t.Errorf("height %d should be fair: %v", h, err)
	}
	if err := CheckFairness(cfg, h-1); err == nil {
		t.Errorf("height %d should be the minimum", h)
	}
}

func TestCheckPlayfieldWidth(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	if got := MinPlayableWidth(cfg); got != cfg.Player.X+2 {
		t.Fatalf("MinPlayableWidth() = %d, want %d", got, cfg.Player.X+2)
	}
	if err := CheckPlayfield(cfg, MinPlayableWidth(cfg), 24); err != nil {
		t.Errorf("minimum width should be playable: %v", err)
	}
	if err := CheckPlayfield(cfg, cfg.Player.X+1, 24); !errors.Is(err, ErrTooNarrow) {
		t.Errorf("expected ErrTooNarrow, got %v", err)
	}
	if err := CheckPlayfield(cfg, 80, 8); !errors.Is(err, ErrUnfair) {
		t.Errorf("expected ErrUnfair for a short playfield, got %v", err)
	}
}
