package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/term"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagBackend string
	flagSound   bool
	flagVolume  float64
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start a run in the current terminal.

Controls:
  Space/W/Up - Jump (again in the air while stamina lasts)
  R          - Restart (after game over)
  Tab        - Session runs (after game over, tea backend)
  Ctrl+S     - Screenshot (tea backend)
  Q/Ctrl+C   - Quit

Backends:
  tea    - Bubble Tea program with help line and runs table (default)
  tcell  - Raw tcell screen driven by a fixed-step loop

Examples:
  runner play
  runner play --backend tcell
  runner play --sound --volume 0.3
  runner play --log-file runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend: tea or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.4, "Sound volume between 0 and 1")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagBackend != "tea" && flagBackend != "tcell" {
		return fmt.Errorf("unknown backend %q (want tea or tcell)", flagBackend)
	}

	logger, closeLog, err := newLogger(flagLogFile, "runner")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	// The journal only lives for this session; the game still works without it.
	opts := []runner.Option{runner.WithLogger(logger)}
	journal, err := storage.OpenJournal()
	if err != nil {
		logger.Warn("run journal unavailable", "err", err)
		journal = nil
	} else {
		defer journal.Close()
		opts = append(opts, runner.WithJournal(journal))
	}

	runner.Configure(cfg, opts...)
	game, err := registry.Create(runner.ID)
	if err != nil {
		return err
	}

	var cues tui.Cues
	if flagSound {
		player := audio.NewPlayer(flagVolume, logger)
		if err := player.Open(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			cues = player
		}
	}

	minWidth, minHeight := runner.MinPlayableWidth(cfg), runner.MinPlayableHeight(cfg)
	if flagBackend == "tcell" {
		return playTcell(cmd.Context(), game, minWidth, minHeight, cues, logger)
	}

	width, height := 80, 24
	if w, h, termErr := xterm.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.Run(game, core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed}, tui.Options{
		Journal:   journal,
		Cues:      cues,
		Logger:    logger,
		MinWidth:  minWidth,
		MinHeight: minHeight,
	})
}

func playTcell(ctx context.Context, game registry.Game, minWidth, minHeight int, cues tui.Cues, logger *log.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	shell := term.New(screen, game, term.Options{
		Seed:      flagSeed,
		MinWidth:  minWidth,
		MinHeight: minHeight,
		Cues:      cues,
		Logger:    logger,
	})
	return shell.Run(ctx)
}
