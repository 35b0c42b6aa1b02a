package preview_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/chatflow/internal/preview"
	"github.com/san-kum/chatflow/internal/timing"
)

// expiredTimer models a runtime timer that has already fired by the time
// its owner stops it, so Stop cannot prevent the callback.
type expiredTimer struct {
	fn      func()
	stopped bool
	expired bool
}

func (t *expiredTimer) Stop() bool {
	if t.expired {
		return false
	}
	was := !t.stopped
	t.stopped = true
	return was
}

// reverseScheduler fires timers that fall due at the same instant in the
// reverse of the order they were armed.
type reverseScheduler struct {
	now    time.Time
	timers []*expiredTimer
}

func (s *reverseScheduler) Now() time.Time { return s.now }

func (s *reverseScheduler) AfterFunc(d time.Duration, fn func()) timing.Timer {
	t := &expiredTimer{fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *reverseScheduler) fireAll() {
	batch := s.timers
	s.timers = nil
	for _, t := range batch {
		t.expired = !t.stopped
	}
	for i := len(batch) - 1; i >= 0; i-- {
		if batch[i].expired {
			batch[i].fn()
		}
	}
}

var _ = Describe("Controller with completion before the phase timer", func() {
	It("keeps Done when a stale Streaming arrives afterwards", func() {
		sched := &reverseScheduler{}
		ctrl, err := preview.New(sched, "", preview.Options{TypingDelay: 10 * time.Millisecond, Interval: time.Millisecond})
		Expect(err).NotTo(HaveOccurred())

		var phases []preview.Phase
		ctrl.OnPhase(func(p preview.Phase) { phases = append(phases, p) })
		ctrl.Start()
		Expect(sched.timers).To(HaveLen(2))

		sched.fireAll()

		Expect(ctrl.Phase()).To(Equal(preview.Done))
		Expect(ctrl.Done()).To(BeTrue())
		Expect(ctrl.ShowCaret()).To(BeFalse())
		Expect(phases).To(Equal([]preview.Phase{preview.Done}))
		Expect(sched.timers).To(BeEmpty())
	})
})
