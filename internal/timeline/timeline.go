// Package timeline replays the chat preview on a virtual clock and
// records every visible change, for inspection and export.
package timeline

import (
	"time"

	"github.com/san-kum/chatflow/internal/preview"
	"github.com/san-kum/chatflow/internal/timing"
)

// DefaultLimit bounds the number of timer callbacks a recording may run.
const DefaultLimit = 1 << 16

type Frame struct {
	At        time.Duration
	Phase     preview.Phase
	PhaseName string
	Shown     int
	Total     int
	Done      bool
	Displayed string
}

type Recording struct {
	TypingDelay time.Duration
	Interval    time.Duration
	Step        int
	Frames      []Frame
}

// Record runs the preview for script to completion and captures a frame
// at start and at each phase change or reveal tick.
func Record(script string, opts preview.Options, limit int) (*Recording, error) {
	clock := timing.NewVirtual()
	ctrl, err := preview.New(clock, script, opts)
	if err != nil {
		return nil, err
	}
	rec := &Recording{TypingDelay: opts.TypingDelay, Interval: opts.Interval, Step: opts.Step}

	capture := func() {
		shown, total := ctrl.Progress()
		f := Frame{
			At:        clock.Elapsed(),
			Phase:     ctrl.Phase(),
			PhaseName: ctrl.Phase().String(),
			Shown:     shown,
			Total:     total,
			Done:      ctrl.Done(),
			Displayed: ctrl.Displayed(),
		}
		if n := len(rec.Frames); n > 0 {
			last := rec.Frames[n-1]
			if last.Phase == f.Phase && last.Shown == f.Shown && last.Done == f.Done {
				return
			}
		}
		rec.Frames = append(rec.Frames, f)
	}
	ctrl.OnPhase(func(preview.Phase) { capture() })
	ctrl.OnChange(capture)

	ctrl.Start()
	capture()
	if limit <= 0 {
		limit = DefaultLimit
	}
	clock.RunUntilIdle(limit)
	ctrl.Stop()
	return rec, nil
}

// PhaseStart returns when p was first entered, if it was.
func (r *Recording) PhaseStart(p preview.Phase) (time.Duration, bool) {
	for _, f := range r.Frames {
		if f.Phase == p {
			return f.At, true
		}
	}
	return 0, false
}

// Final returns the last captured frame.
func (r *Recording) Final() Frame {
	if len(r.Frames) == 0 {
		return Frame{}
	}
	return r.Frames[len(r.Frames)-1]
}
