package timing

import "time"

// Timer is a handle to a pending one-shot callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call prevented
	// the callback from running.
	Stop() bool
}

// Scheduler arms one-shot callbacks. Callbacks for a single scheduler
// never run concurrently with each other.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
	Now() time.Time
}

// StopTimer stops t if it is non-nil and returns nil, so owners can write
// r.tick = timing.StopTimer(r.tick).
func StopTimer(t Timer) Timer {
	if t != nil {
		t.Stop()
	}
	return nil
}
