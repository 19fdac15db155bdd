package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagWidth     int
	flagHeight    int
	flagTop       int
	flagVerbose   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal, as fast as possible, on simulated time.

With --autopilot (the default) a simple bot plays and restarts after every
crash until the tick limit. Without it the player never jumps and the
simulation stops at the first crash.

Examples:
  runner sim
  runner sim --ticks 20000 --seed 7
  runner sim --autopilot=false --height 16
  runner sim --difficulty hard --verbose`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 5000, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Let the autopilot play")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Playfield width")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Playfield height")
	simCmd.Flags().IntVar(&flagTop, "top", 10, "Number of runs to list")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every run to stderr")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	if err := runner.CheckPlayfield(cfg, flagWidth, flagHeight); err != nil {
		return fmt.Errorf("playfield %dx%d: %w", flagWidth, flagHeight, err)
	}

	level := log.WarnLevel
	if flagVerbose {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "sim",
	})
	logger.Info("config loaded", "source", source)

	journal, err := storage.OpenJournal()
	if err != nil {
		return err
	}
	defer journal.Close()

	game := runner.New(cfg,
		runner.WithJournal(journal),
		runner.WithLogger(logger),
		runner.WithClockOptions(runner.WithSimulatedTime()),
	)
	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	game.Reset(core.RuntimeConfig{ScreenW: flagWidth, ScreenH: flagHeight, Seed: seed})

	var input runner.IntentSource = runner.IntentSourceFunc(func() core.Intent { return core.IntentNone })
	var pilot *runner.Autopilot
	if flagAutopilot {
		pilot = runner.NewAutopilot(game.Clock())
		input = pilot
	}

	var loop *runner.Loop
	frame := func(res core.StepResult) {
		if !flagAutopilot && res.State.GameOver {
			loop.Stop()
		}
	}
	loop = runner.NewLoop(game, input,
		runner.Unpaced(),
		runner.WithMaxTicks(flagTicks),
		runner.WithFrame(frame),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	if err := loop.Run(ctx); err != nil {
		logger.Warn("simulation interrupted", "ticks", loop.Ticks())
	}

	return printSim(game, journal, loop.Ticks(), seed, pilot)
}

func printSim(game *runner.Game, journal *storage.Journal, ticks int, seed int64, pilot *runner.Autopilot) error {
	clock := game.Clock()
	count, err := journal.Count()
	if err != nil {
		return err
	}
	best, err := journal.Best()
	if err != nil {
		return err
	}

	fmt.Printf("Simulated %d ticks (seed %d, %dx%d)\n", ticks, seed, flagWidth, flagHeight)
	if pilot != nil {
		fmt.Printf("Autopilot jumps: %d\n", pilot.Jumps())
	}
	fmt.Printf("Runs ended: %d  Best: %d\n", count, best)
	if !clock.GameOver() {
		fmt.Printf("Current run: score %d, %d ticks, speed %.2fx\n", clock.Score(), clock.Ticks(), clock.Speed())
	}

	causes, err := journal.CauseCounts()
	if err != nil {
		return err
	}
	for _, cause := range slices.Sorted(maps.Keys(causes)) {
		fmt.Printf("  %-10s %d\n", cause, causes[cause])
	}

	top, err := journal.Top(flagTop)
	if err != nil {
		return err
	}
	if len(top) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %s\n", "Rank", "Score", "Ticks", "Speed", "Cause")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %s\n", "----", "-----", "-----", "-----", "-----")
	for i, run := range top {
		fmt.Printf("  %-4d  %-8d  %-8d  %-6.2f  %s\n", i+1, run.Score, run.Ticks, run.Speed, run.Cause)
	}
	return nil
}
