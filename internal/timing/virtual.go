package timing

import (
	"sort"
	"time"
)

// Epoch is the start time of every Virtual clock.
var Epoch = time.Unix(0, 0).UTC()

// Virtual is a manually advanced clock. It is not safe for concurrent use;
// like the UI loop it stands in for, it is driven from one goroutine.
type Virtual struct {
	now   time.Time
	seq   uint64
	queue []*virtualTimer
}

type virtualTimer struct {
	v       *Virtual
	due     time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

func NewVirtual() *Virtual {
	return &Virtual{now: Epoch}
}

func (v *Virtual) Now() time.Time { return v.now }

// Elapsed returns the time advanced since Epoch.
func (v *Virtual) Elapsed() time.Duration { return v.now.Sub(Epoch) }

func (v *Virtual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	v.seq++
	t := &virtualTimer{v: v, due: v.now.Add(d), seq: v.seq, fn: fn}
	i := sort.Search(len(v.queue), func(i int) bool {
		q := v.queue[i]
		return q.due.After(t.due) || (q.due.Equal(t.due) && q.seq > t.seq)
	})
	v.queue = append(v.queue, nil)
	copy(v.queue[i+1:], v.queue[i:])
	v.queue[i] = t
	return t
}

func (t *virtualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	q := t.v.queue
	for i, other := range q {
		if other == t {
			t.v.queue = append(q[:i], q[i+1:]...)
			break
		}
	}
	return true
}

// Pending returns the number of armed timers.
func (v *Virtual) Pending() int { return len(v.queue) }

// NextDue returns the due time of the earliest armed timer.
func (v *Virtual) NextDue() (time.Time, bool) {
	if len(v.queue) == 0 {
		return time.Time{}, false
	}
	return v.queue[0].due, true
}

// Step fires the earliest armed timer, moving the clock to its due time.
// It reports false when nothing is armed.
func (v *Virtual) Step() bool {
	if len(v.queue) == 0 {
		return false
	}
	t := v.queue[0]
	v.queue = v.queue[1:]
	if t.due.After(v.now) {
		v.now = t.due
	}
	t.fired = true
	t.fn()
	return true
}

// Advance moves the clock forward by d, firing every timer that falls due
// on the way, including timers armed by those callbacks. It returns the
// number of callbacks run.
func (v *Virtual) Advance(d time.Duration) int {
	return v.AdvanceTo(v.now.Add(d))
}

// AdvanceTo is Advance with an absolute target time.
func (v *Virtual) AdvanceTo(target time.Time) int {
	fired := 0
	for len(v.queue) > 0 && !v.queue[0].due.After(target) {
		v.Step()
		fired++
	}
	if target.After(v.now) {
		v.now = target
	}
	return fired
}

// RunUntilIdle fires timers until none remain or limit callbacks have run.
func (v *Virtual) RunUntilIdle(limit int) int {
	fired := 0
	for fired < limit && v.Step() {
		fired++
	}
	return fired
}
