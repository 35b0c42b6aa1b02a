// Package reveal animates text appearing one grapheme at a time.
package reveal

import (
	"fmt"
	"time"

	"github.com/rivo/uniseg"

	"github.com/san-kum/chatflow/internal/timing"
)

// DefaultStep is the number of graphemes revealed per tick.
const DefaultStep = 1

type Options struct {
	Text       string
	Interval   time.Duration
	StartDelay time.Duration
	Enabled    bool
	// Step is graphemes per tick; zero means DefaultStep.
	Step int
}

func (o Options) validate() error {
	if o.Interval <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidInterval, o.Interval)
	}
	if o.StartDelay < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDelay, o.StartDelay)
	}
	if o.Step < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidStep, o.Step)
	}
	return nil
}

func (o Options) step() int {
	if o.Step == 0 {
		return DefaultStep
	}
	return o.Step
}

// Revealer exposes a growing prefix of a fixed string. Each run owns at
// most one delay timer and one tick timer; every callback carries the
// generation it was armed for and does nothing once that run is gone.
type Revealer struct {
	sched  timing.Scheduler
	opts   Options
	bounds []int

	gen   uint64
	shown int
	done  bool
	delay timing.Timer
	tick  timing.Timer

	onChange func()
}

func New(sched timing.Scheduler, opts Options) (*Revealer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Revealer{
		sched:  sched,
		opts:   opts,
		bounds: graphemeBounds(opts.Text),
	}, nil
}

// graphemeBounds returns the byte offset just past each grapheme cluster.
func graphemeBounds(s string) []int {
	bounds := make([]int, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, end := g.Positions()
		bounds = append(bounds, end)
	}
	return bounds
}

// OnChange registers fn to run after every applied tick.
func (r *Revealer) OnChange(fn func()) { r.onChange = fn }

func (r *Revealer) Options() Options { return r.opts }

// Start begins a fresh run: the prefix resets to empty and, if enabled,
// ticking begins after the start delay. Any previous run is cancelled.
func (r *Revealer) Start() {
	r.cancel()
	r.shown = 0
	r.done = false
	if !r.opts.Enabled {
		return
	}
	gen := r.gen
	r.delay = r.sched.AfterFunc(r.opts.StartDelay, func() {
		if gen != r.gen {
			return
		}
		r.delay = nil
		if len(r.bounds) == 0 {
			r.complete()
			return
		}
		r.armTick(gen)
	})
}

// Restart discards the current run and starts again with the same options.
func (r *Revealer) Restart() { r.Start() }

// Reconfigure replaces the options. Identical options leave the current
// run alone; anything else discards it and starts over from zero.
func (r *Revealer) Reconfigure(opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if opts == r.opts {
		return nil
	}
	r.opts = opts
	r.bounds = graphemeBounds(opts.Text)
	r.Start()
	return nil
}

// Stop cancels all pending timers. The revealed prefix is left as is.
func (r *Revealer) Stop() { r.cancel() }

func (r *Revealer) cancel() {
	r.gen++
	r.delay = timing.StopTimer(r.delay)
	r.tick = timing.StopTimer(r.tick)
}

func (r *Revealer) armTick(gen uint64) {
	r.tick = r.sched.AfterFunc(r.opts.Interval, func() {
		if gen != r.gen {
			return
		}
		r.tick = nil
		r.shown = min(r.shown+r.opts.step(), len(r.bounds))
		if r.shown == len(r.bounds) {
			r.complete()
			return
		}
		r.notify()
		// The change callback may have stopped or restarted the run.
		if gen != r.gen {
			return
		}
		r.armTick(gen)
	})
}

func (r *Revealer) complete() {
	r.done = true
	r.notify()
}

func (r *Revealer) notify() {
	if r.onChange != nil {
		r.onChange()
	}
}

// Displayed returns the currently revealed prefix.
func (r *Revealer) Displayed() string {
	if r.shown == 0 {
		return ""
	}
	return r.opts.Text[:r.bounds[r.shown-1]]
}

// Done reports whether the whole text has been revealed.
func (r *Revealer) Done() bool { return r.done }

// Progress returns revealed and total grapheme counts.
func (r *Revealer) Progress() (shown, total int) { return r.shown, len(r.bounds) }

// Active reports whether a timer of the current run is armed.
func (r *Revealer) Active() bool { return r.delay != nil || r.tick != nil }
