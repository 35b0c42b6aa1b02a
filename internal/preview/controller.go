// Package preview drives the landing page chat preview: a typing
// indicator, then a streamed reply, then a settled transcript.
package preview

import (
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/chatflow/internal/reveal"
	"github.com/san-kum/chatflow/internal/timing"
)

const (
	DefaultTypingDelay = 1800 * time.Millisecond
	DefaultInterval    = 18 * time.Millisecond
)

var ErrInvalidTypingDelay = errors.New("preview: typing delay must not be negative")

type Options struct {
	TypingDelay time.Duration
	Interval    time.Duration
	Step        int
}

func DefaultOptions() Options {
	return Options{TypingDelay: DefaultTypingDelay, Interval: DefaultInterval}
}

// Controller sequences Typing -> Streaming -> Done.
//
// The phase timer and the revealer's start delay are armed in parallel
// from the same TypingDelay; neither is derived from the other's firing.
// Completion of the revealer moves straight to Done, so a late phase
// timer can never pull the phase back.
type Controller struct {
	sched timing.Scheduler
	opts  Options
	rev   *reveal.Revealer

	phase Phase
	timer timing.Timer
	gen   uint64

	onPhase  func(Phase)
	onChange func()
}

func New(sched timing.Scheduler, script string, opts Options) (*Controller, error) {
	if opts.TypingDelay < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTypingDelay, opts.TypingDelay)
	}
	rev, err := reveal.New(sched, reveal.Options{
		Text:       script,
		Interval:   opts.Interval,
		StartDelay: opts.TypingDelay,
		Enabled:    true,
		Step:       opts.Step,
	})
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	c := &Controller{sched: sched, opts: opts, rev: rev}
	rev.OnChange(c.revealed)
	return c, nil
}

// OnPhase registers fn to run after each applied phase transition.
func (c *Controller) OnPhase(fn func(Phase)) { c.onPhase = fn }

// OnChange registers fn to run whenever the displayed reply grows.
func (c *Controller) OnChange(fn func()) { c.onChange = fn }

// Start (re)runs the animation from Typing.
func (c *Controller) Start() {
	c.Stop()
	c.phase = Typing
	gen := c.gen
	c.timer = c.sched.AfterFunc(c.opts.TypingDelay, func() {
		if gen != c.gen {
			return
		}
		c.timer = nil
		c.advance(Streaming)
	})
	c.rev.Start()
}

// Stop cancels the phase timer and the revealer.
func (c *Controller) Stop() {
	c.gen++
	c.timer = timing.StopTimer(c.timer)
	c.rev.Stop()
}

func (c *Controller) revealed() {
	if c.rev.Done() {
		c.advance(Done)
	}
	if c.onChange != nil {
		c.onChange()
	}
}

// advance applies p only if it moves the phase forward.
func (c *Controller) advance(p Phase) bool {
	if p <= c.phase {
		return false
	}
	c.phase = p
	if p == Done {
		c.timer = timing.StopTimer(c.timer)
	}
	if c.onPhase != nil {
		c.onPhase(p)
	}
	return true
}

func (c *Controller) Phase() Phase { return c.phase }

func (c *Controller) Displayed() string { return c.rev.Displayed() }

func (c *Controller) Done() bool { return c.rev.Done() }

func (c *Controller) Progress() (shown, total int) { return c.rev.Progress() }

// ShowTyping reports whether the typing indicator should be drawn.
func (c *Controller) ShowTyping() bool { return c.phase == Typing }

// ShowCaret reports whether the streaming caret should follow the text.
func (c *Controller) ShowCaret() bool { return c.phase != Typing && !c.rev.Done() }

func (c *Controller) Options() Options { return c.opts }
