package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// release is the fade applied to the tail of every tone to avoid clicks.
const release = 8 * time.Millisecond

// Tone is one note of a cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// Pattern returns the notes played for ev, or nil if ev is silent.
func Pattern(ev core.Event) []Tone {
	switch ev {
	case core.EventJump:
		return []Tone{{Freq: 660, Duration: 60 * time.Millisecond, Wave: WaveSine}}
	case core.EventAirJump:
		return []Tone{
			{Freq: 880, Duration: 35 * time.Millisecond, Wave: WaveSquare},
			{Freq: 1175, Duration: 45 * time.Millisecond, Wave: WaveSquare},
		}
	case core.EventCrash:
		return []Tone{
			{Freq: 160, Duration: 120 * time.Millisecond, Wave: WaveSaw},
			{Duration: 180 * time.Millisecond, Wave: WaveNoise},
		}
	case core.EventSpeedUp:
		return []Tone{
			{Freq: 880, Duration: 70 * time.Millisecond, Wave: WaveSine},
			{Freq: 1320, Duration: 90 * time.Millisecond, Wave: WaveSine},
		}
	case core.EventRestart:
		return []Tone{{Freq: 523.25, Duration: 80 * time.Millisecond, Wave: WaveSine}}
	default:
		return nil
	}
}

// Render builds the streamer for ev at the given volume in [0, 1].
// It returns nil for silent events.
func Render(ev core.Event, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	tones := Pattern(ev)
	if len(tones) == 0 {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		s, err := toneStreamer(t, rate)
		if err != nil {
			return nil, fmt.Errorf("audio: %s: %w", ev, err)
		}
		parts = append(parts, s)
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

func toneStreamer(t Tone, rate beep.SampleRate) (beep.Streamer, error) {
	n := rate.N(t.Duration)
	var src beep.Streamer
	if t.Wave == WaveSine {
		sine, err := generators.SineTone(rate, t.Freq)
		if err != nil {
			return nil, err
		}
		src = beep.Take(n, sine)
	} else {
		src = &oscillator{freq: t.Freq, wave: t.Wave, rate: rate, total: n}
	}
	return &fade{streamer: src, total: n, release: rate.N(release)}, nil
}

// oscillator generates the non-sine waves for a fixed number of samples.
type oscillator struct {
	freq  float64
	phase float64
	pos   int
	total int
	wave  Wave
	rate  beep.SampleRate
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.pos >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.pos >= o.total {
			return i, true
		}
		var v float64
		switch o.wave {
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade ramps the last release samples of a streamer down to zero.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	release  int
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.release > 0 && f.pos >= start {
			vol := float64(f.total-f.pos) / float64(f.release)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume scales s linearly. Zero or less is silent since log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
