package runner

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// ID and Title identify the game in the registry.
const (
	ID    = "runner"
	Title = "Stamina Runner"
)

// recentRuns is how many journaled runs the game-over overlay lists.
const recentRuns = 5

// Option customizes a Game.
type Option func(*Game)

// WithJournal records every finished run and lists recent ones on the
// game-over screen.
func WithJournal(j *storage.Journal) Option {
	return func(g *Game) { g.journal = j }
}

// WithLogger sets the logger for run start and end messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithClockOptions passes options through to the Clock built on Reset.
func WithClockOptions(opts ...ClockOption) Option {
	return func(g *Game) { g.clockOpts = append(g.clockOpts, opts...) }
}

// Game adapts a Clock to the registry.Game interface and renders it.
type Game struct {
	cfg       config.RunnerConfig
	runtime   core.RuntimeConfig
	clock     *Clock
	clockOpts []ClockOption
	journal   *storage.Journal
	logger    *log.Logger
	recent    []storage.RunEntry
}

// New creates a game with the given configuration. Call Reset before use.
func New(cfg config.RunnerConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset builds a fresh clock sized to the runtime screen. A zero seed is
// replaced by a time-based one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.runtime = runtime
	g.clock = NewClock(g.cfg, runtime.ScreenW, runtime.ScreenH, runtime.Seed, g.clockOpts...)
	g.recent = nil

	g.logger.Info("run started",
		"seed", runtime.Seed,
		"width", runtime.ScreenW,
		"height", runtime.ScreenH,
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.Intent) core.StepResult {
	res := g.clock.Step(in)

	if res.Has(core.EventCrash) {
		g.finishRun(g.clock.Summary())
	}
	if res.Has(core.EventRestart) {
		g.logger.Info("run started", "seed", g.clock.Seed())
	}
	if res.Has(core.EventSpeedUp) {
		g.logger.Debug("speed up", "speed", g.clock.Speed(), "ticks", g.clock.Ticks())
	}
	return res
}

// Resize moves the game to a new playfield without losing the session's
// best score. A run cut short by the resize is journaled like a crash.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW, g.runtime.ScreenH = width, height
	if run, ok := g.clock.Resize(width, height); ok {
		g.finishRun(run)
	}
	g.logger.Info("playfield resized", "width", width, "height", height, "game_over", g.clock.GameOver())
}

// finishRun journals a run that has ended.
func (g *Game) finishRun(run core.RunSummary) {
	g.logger.Info("run ended",
		"score", run.Score,
		"ticks", run.Ticks,
		"speed", run.Speed,
		"cause", run.Cause,
		"best", g.clock.Best(),
	)

	if g.journal == nil {
		return
	}
	if _, err := g.journal.Record(run); err != nil {
		g.logger.Warn("cannot journal run", "err", err)
		return
	}
	recent, err := g.journal.Recent(recentRuns)
	if err != nil {
		g.logger.Warn("cannot read journal", "err", err)
		return
	}
	g.recent = recent
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.clock.State()
}

// TickInterval returns the clock's current tick duration.
func (g *Game) TickInterval() time.Duration {
	return g.clock.TickInterval()
}

// Clock exposes the underlying simulation.
func (g *Game) Clock() *Clock {
	return g.clock
}

// Recent returns the journaled runs shown on the game-over screen.
func (g *Game) Recent() []storage.RunEntry {
	return g.recent
}

// Settings used by games created through the registry.
var (
	settingsMu sync.Mutex
	settings   = struct {
		cfg  config.RunnerConfig
		opts []Option
	}{cfg: config.DefaultRunnerConfig()}
)

// Configure sets the configuration and options used by registry-created
// games. Shells call it once during startup.
func Configure(cfg config.RunnerConfig, opts ...Option) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings.cfg = cfg
	settings.opts = opts
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		settingsMu.Lock()
		defer settingsMu.Unlock()
		return New(settings.cfg, settings.opts...)
	})
}
