package runner

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// IntentSource yields the intent for the next tick. Poll must not block:
// it returns IntentNone when nothing is pending.
type IntentSource interface {
	Poll() core.Intent
}

// IntentSourceFunc adapts a function to IntentSource.
type IntentSourceFunc func() core.Intent

// Poll implements IntentSource.
func (f IntentSourceFunc) Poll() core.Intent { return f() }

// Stepper is anything the loop can drive: a bare Clock or a Game.
type Stepper interface {
	Step(in core.Intent) core.StepResult
	TickInterval() time.Duration
}

// LoopOption customizes a Loop.
type LoopOption func(*Loop)

// WithFrame registers a callback invoked after every tick, typically to render.
func WithFrame(fn func(core.StepResult)) LoopOption {
	return func(l *Loop) { l.frame = fn }
}

// WithMaxTicks stops the loop after n ticks. Zero means unbounded.
func WithMaxTicks(n int) LoopOption {
	return func(l *Loop) { l.maxTicks = n }
}

// Unpaced disables the end-of-tick sleep so the loop runs as fast as the
// host allows. Used for headless simulation.
func Unpaced() LoopOption {
	return func(l *Loop) { l.paced = false }
}

// WithSleep replaces the pacing sleep; tests use it to observe durations.
func WithSleep(fn func(context.Context, time.Duration)) LoopOption {
	return func(l *Loop) { l.sleep = fn }
}

// Loop drives a Stepper at its current tick interval on the calling
// goroutine: poll input, step, report the frame, then sleep whatever is
// left of the interval. An overrun tick is followed immediately by the
// next one with no catch-up.
type Loop struct {
	sim      Stepper
	input    IntentSource
	frame    func(core.StepResult)
	maxTicks int
	paced    bool
	now      func() time.Time
	sleep    func(context.Context, time.Duration)
	running  atomic.Bool
	ticks    int
}

// NewLoop creates a paced loop over sim reading intents from input.
func NewLoop(sim Stepper, input IntentSource, opts ...LoopOption) *Loop {
	l := &Loop{
		sim:   sim,
		input: input,
		frame: func(core.StepResult) {},
		paced: true,
		now:   time.Now,
		sleep: sleepContext,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run executes ticks until Quit is requested, Stop is called, the tick
// limit is reached or ctx is cancelled. Only cancellation yields an error.
func (l *Loop) Run(ctx context.Context) error {
	l.running.Store(true)
	defer l.running.Store(false)

	for l.running.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.maxTicks > 0 && l.ticks >= l.maxTicks {
			return nil
		}

		start := l.now()
		res := l.sim.Step(l.input.Poll())
		l.ticks++
		l.frame(res)
		if res.Quit {
			return nil
		}

		if !l.paced {
			continue
		}
		if remaining := l.sim.TickInterval() - l.now().Sub(start); remaining > 0 {
			l.sleep(ctx, remaining)
		}
	}
	return nil
}

// Stop asks the loop to exit before its next tick. Safe to call from any
// goroutine.
func (l *Loop) Stop() {
	l.running.Store(false)
}

// Running reports whether Run is executing.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Ticks returns how many ticks the loop has executed.
func (l *Loop) Ticks() int {
	return l.ticks
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
