package visibility

import (
	"errors"
	"fmt"
)

// DefaultThreshold is the fraction of a section that must be on screen
// before it counts as seen.
const DefaultThreshold = 0.15

// ErrInvalidThreshold is returned for thresholds outside [0, 1].
var ErrInvalidThreshold = errors.New("visibility: threshold must be within [0, 1]")

// Tracker is a one-shot visibility flag for a bound region.
type Tracker struct {
	observer  *Observer
	threshold float64
	obs       *Observation
	visible   bool
	onVisible func()
}

func NewTracker(o *Observer, threshold float64) (*Tracker, error) {
	if threshold < 0 || threshold > 1 || threshold != threshold {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, threshold)
	}
	return &Tracker{observer: o, threshold: threshold}, nil
}

// OnVisible registers fn to run once, when the tracker first flips.
func (t *Tracker) OnVisible(fn func()) { t.onVisible = fn }

func (t *Tracker) Threshold() float64 { return t.threshold }

// Visible reports whether the bound region has ever met the threshold.
func (t *Tracker) Visible() bool { return t.visible }

// Observing reports whether an observation is currently live.
func (t *Tracker) Observing() bool { return t.obs != nil }

// Bind releases any prior observation and starts observing r. A nil r
// leaves the tracker unbound; Visible keeps its current value either way.
func (t *Tracker) Bind(r *Region) {
	t.Release()
	if r == nil {
		return
	}
	obs := t.observer.Observe(*r, t.sample)
	if obs.Active() {
		t.obs = obs
	}
}

// Move updates the geometry of the bound region without rebinding.
func (t *Tracker) Move(r Region) {
	if t.obs != nil {
		t.obs.Move(r)
	}
}

// Release drops the current observation, if any.
func (t *Tracker) Release() {
	if t.obs != nil {
		t.obs.Release()
		t.obs = nil
	}
}

func (t *Tracker) sample(obs *Observation, s Sample) {
	if !s.Intersecting || s.Ratio < t.threshold {
		return
	}
	obs.Release()
	if t.obs == obs {
		t.obs = nil
	}
	if t.visible {
		return
	}
	t.visible = true
	if t.onVisible != nil {
		t.onVisible()
	}
}
