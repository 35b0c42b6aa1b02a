package timing

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireMsg carries an expired Loop timer into the Bubble Tea update loop.
type FireMsg struct {
	timer *loopTimer
}

// Loop is a wall-clock Scheduler whose callbacks run wherever
// Dispatch is called. In the TUI that is Model.Update, so all timer
// callbacks share the update goroutine with key and resize handling.
type Loop struct {
	mu     sync.Mutex
	ready  chan *loopTimer
	done   chan struct{}
	closed bool
	now    func() time.Time
}

type loopTimer struct {
	loop      *Loop
	fn        func()
	rt        *time.Timer
	cancelled bool
	ran       bool
}

func NewLoop() *Loop {
	return &Loop{
		ready: make(chan *loopTimer, 64),
		done:  make(chan struct{}),
		now:   time.Now,
	}
}

func (l *Loop) Now() time.Time { return l.now() }

func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{loop: l, fn: fn}
	lt.rt = time.AfterFunc(d, func() { l.enqueue(lt) })
	return lt
}

func (l *Loop) enqueue(lt *loopTimer) {
	select {
	case l.ready <- lt:
	case <-l.done:
	}
}

func (t *loopTimer) Stop() bool {
	t.loop.mu.Lock()
	prevented := !t.cancelled && !t.ran
	t.cancelled = true
	t.loop.mu.Unlock()
	t.rt.Stop()
	return prevented
}

// Listen returns a command that waits for the next expired timer. Callers
// re-issue it after every FireMsg, as with any channel-backed tea.Cmd.
func (l *Loop) Listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case lt := <-l.ready:
			return FireMsg{timer: lt}
		case <-l.done:
			return nil
		}
	}
}

// Dispatch runs the callback carried by msg unless its timer was stopped
// after it expired.
func (l *Loop) Dispatch(msg FireMsg) {
	lt := msg.timer
	if lt == nil {
		return
	}
	l.mu.Lock()
	if lt.cancelled || lt.ran {
		l.mu.Unlock()
		return
	}
	lt.ran = true
	l.mu.Unlock()
	lt.fn()
}

// Close releases goroutines blocked in Listen or in expiring timers.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	close(l.done)
}
