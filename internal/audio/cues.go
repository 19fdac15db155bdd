// Package audio turns simulation events into short synthesized cues.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// SampleRate is the output rate handed to the speaker.
const SampleRate = beep.SampleRate(44100)

// Player mixes event cues into a single speaker stream. A Player that
// was never opened, or failed to open, ignores Play.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	open   bool
	logger *log.Logger
}

// NewPlayer creates a player at the given volume in [0, 1].
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Open initializes the speaker and starts the mixer.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.open = true
	return nil
}

// Close silences pending cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.open = false
}

// Play queues the cue for ev.
func (p *Player) Play(ev core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	s, err := Render(ev, SampleRate, p.volume)
	if err != nil {
		p.logger.Warn("cue skipped", "event", ev, "err", err)
		return
	}
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
