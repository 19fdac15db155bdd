// Package term is a tcell shell for the runner. Unlike the Bubble Tea
// shell it drives the game with runner.Loop: a single goroutine polls
// input without blocking, steps, draws and sleeps out the tick.
package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// ErrTooSmall is returned when the terminal cannot hold the playfield.
var ErrTooSmall = errors.New("term: terminal too small")

// eventBuffer bounds input events queued between ticks.
const eventBuffer = 64

// Cues receives tick events for cosmetic feedback such as sound.
type Cues interface {
	Play(ev core.Event)
}

// Options configures the shell.
type Options struct {
	Seed      int64
	MinWidth  int
	MinHeight int
	Cues      Cues        // May be nil
	Logger    *log.Logger // May be nil
}

// Shell owns a tcell screen and runs one game on it.
type Shell struct {
	screen tcell.Screen
	game   registry.Game
	opts   Options
	buf    *core.Screen
	events chan tcell.Event
	latch  core.IntentLatch
}

// New creates a shell. The screen must already be initialized; the
// caller remains responsible for Fini.
func New(screen tcell.Screen, game registry.Game, opts Options) *Shell {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Shell{
		screen: screen,
		game:   game,
		opts:   opts,
		events: make(chan tcell.Event, eventBuffer),
	}
}

// Run plays until the player quits or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	w, h := s.screen.Size()
	if !s.fits(w, h) {
		return fmt.Errorf("%w: %dx%d, need %dx%d", ErrTooSmall, w, h, s.opts.MinWidth, s.opts.MinHeight)
	}
	s.reset(w, h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.pump(ctx)

	loop := runner.NewLoop(s.game, runner.IntentSourceFunc(s.poll), runner.WithFrame(s.frame))
	err := loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Shell) fits(w, h int) bool {
	return w >= s.opts.MinWidth && h >= s.opts.MinHeight
}

func (s *Shell) reset(w, h int) {
	seed := s.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.buf = core.NewScreen(w, h)
	s.game.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: seed})
}

// pump moves events from the blocking PollEvent into a channel the loop
// can drain without blocking.
func (s *Shell) pump(ctx context.Context) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// poll drains pending events and returns the intent latched for this tick.
func (s *Shell) poll() core.Intent {
	for {
		select {
		case ev := <-s.events:
			s.handle(ev)
		default:
			return s.latch.Take()
		}
	}
}

func (s *Shell) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.latch.Push(KeyIntent(ev))
	case *tcell.EventResize:
		s.screen.Sync()
		w, h := ev.Size()
		if !s.fits(w, h) {
			s.opts.Logger.Warn("terminal too small, keeping previous size", "width", w, "height", h)
			return
		}
		// A running game restarts at the new size; a finished one keeps
		// its final frame and takes the size on restart.
		s.buf = core.NewScreen(w, h)
		s.game.Resize(w, h)
	}
}

// KeyIntent maps a tcell key event to a simulation intent.
func KeyIntent(ev *tcell.EventKey) core.Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return core.IntentQuit
	case tcell.KeyUp:
		return core.IntentJump
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w', 'W':
			return core.IntentJump
		case 'r', 'R':
			return core.IntentRestart
		case 'q', 'Q':
			return core.IntentQuit
		}
	}
	return core.IntentNone
}

func (s *Shell) frame(res core.StepResult) {
	if s.opts.Cues != nil {
		for _, ev := range res.Events {
			s.opts.Cues.Play(ev)
		}
	}
	if res.Quit {
		return
	}
	s.draw()
}

// draw renders the game into the buffer and copies it to the screen.
func (s *Shell) draw() {
	s.game.Render(s.buf)
	s.screen.Clear()
	for y := 0; y < s.buf.Height(); y++ {
		for x := 0; x < s.buf.Width(); x++ {
			cell := s.buf.GetCell(x, y)
			if cell.Rune == ' ' {
				continue
			}
			s.screen.SetContent(x, y, cell.Rune, nil, Style(cell.Color))
		}
	}
	s.screen.Show()
}
