// runner is a stamina-based endless runner for the terminal.
//
// Usage:
//
//	runner play              - Play in the terminal
//	runner sim               - Run a headless simulation and print the runs
//	runner config            - Print or validate the game configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible terrain
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Speed preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Stamina Runner - an endless runner in your terminal",
	Long: `Stamina Runner is a terminal endless runner. Jump over spikes and
blocks, clear gaps, and spend your stamina on air jumps wisely: it only
refills when you touch the ground.

Available commands:
  play     - Play in the terminal
  sim      - Headless simulation, optionally driven by the autopilot
  config   - Print or validate the configuration

Examples:
  runner play
  runner play --backend tcell --sound
  runner play --difficulty hard --seed 42
  runner sim --ticks 10000
  runner config --validate ./my-runner.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from the global flags and checks
// that it can produce a playable level.
func loadConfig() (config.RunnerConfig, config.Source, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyPreset(&cfg, preset)
	if runner.MinPlayableHeight(cfg) == 0 {
		return cfg, source, fmt.Errorf("config (%s): %w at any terminal height", source, runner.ErrUnfair)
	}
	return cfg, source, nil
}

// newLogger returns a logger writing to path, or a silent one when path
// is empty. The returned func closes the file.
func newLogger(path, prefix string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, func() { f.Close() }, nil
}
