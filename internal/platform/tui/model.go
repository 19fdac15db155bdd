package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// idleInterval paces ticks while the game is not running (terminal too
// small or the runs table open).
const idleInterval = 100 * time.Millisecond

// helpRows is the space reserved below the playfield for the help line.
const helpRows = 1

// Cues receives tick events for cosmetic feedback such as sound.
type Cues interface {
	Play(ev core.Event)
}

// Options configures the shell.
type Options struct {
	Journal   *storage.Journal // Enables the runs table; may be nil
	Cues      Cues             // May be nil
	Logger    *log.Logger      // May be nil
	MinHeight int              // Smallest playfield the game can run on
	MinWidth  int
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	keys     KeyMap
	help     help.Model
	latch    core.IntentLatch
	state    core.GameState
	runs     *runsView
	width    int
	height   int
	started  bool
	reset    bool // The game has been reset at least once
	quitting bool
}

// NewModel creates a model for game sized to the terminal (width x height),
// keeping one row for the help line. The game is reset immediately if the
// playfield is large enough.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	width, height := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenH = max(0, height-helpRows)

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.start()
	return m
}

// fits reports whether the current playfield can hold the game.
func (m *Model) fits() bool {
	return m.config.ScreenW > 0 && m.config.ScreenW >= m.opts.MinWidth &&
		m.config.ScreenH >= m.opts.MinHeight
}

// start sizes the game to the current playfield if it fits: the first
// time with a full reset, afterwards with a resize that keeps the session.
func (m *Model) start() {
	m.started = m.fits()
	if !m.started {
		m.opts.Logger.Warn("terminal too small",
			"width", m.config.ScreenW, "height", m.config.ScreenH,
			"need_width", m.opts.MinWidth, "need_height", m.opts.MinHeight)
		return
	}
	if m.reset {
		m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	} else {
		m.game.Reset(m.config)
		m.reset = true
	}
	m.state = m.game.State()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval())
}

func (m Model) interval() time.Duration {
	if !m.started || m.runs != nil {
		return idleInterval
	}
	return m.game.TickInterval()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey latches an intent for the next tick or drives the runs table.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.runs != nil {
		closeView, quit, cmd := m.runs.update(msg, m.keys)
		switch {
		case quit:
			m.quitting = true
			return m, tea.Quit
		case closeView:
			m.runs = nil
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Runs):
		if m.state.GameOver && m.opts.Journal != nil {
			m.runs = newRunsView(m.opts.Journal, m.width, m.height)
		}
		return m, nil
	}

	intent := m.keys.Intent(msg)
	if intent == core.IntentQuit && !m.started {
		m.quitting = true
		return m, tea.Quit
	}
	m.latch.Push(intent)
	return m, nil
}

// handleResize resizes the playfield. A running game restarts at the new
// size since the terrain grid is fixed for the lifetime of a clock; a
// finished game keeps its final frame and picks up the size on restart.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	if m.runs != nil {
		m.runs.resize(msg.Width, msg.Height)
	}

	w, h := msg.Width, max(0, msg.Height-helpRows)
	if w == m.config.ScreenW && h == m.config.ScreenH && m.started {
		return m, nil
	}

	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	m.start()
	return m, nil
}

// handleTick runs one simulation step with the latched intent.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.started || m.runs != nil {
		return m, tickCmd(m.interval())
	}

	result := m.game.Step(m.latch.Take())
	m.state = result.State

	if m.opts.Cues != nil {
		for _, ev := range result.Events {
			m.opts.Cues.Play(ev)
		}
	}

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.interval())
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if !m.started {
		return
	}
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.runs != nil {
		return m.runs.view(m.help, m.keys)
	}
	if !m.started {
		msg := fmt.Sprintf("Terminal too small: need %d rows for the playfield, have %d.\nResize or press q to quit.",
			m.opts.MinHeight, m.config.ScreenH)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
