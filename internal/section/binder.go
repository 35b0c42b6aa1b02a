// Package section maps per-section visibility to a reveal presentation.
package section

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/chatflow/internal/timing"
	"github.com/san-kum/chatflow/internal/visibility"
)

// ID names a page section.
type ID string

const (
	Hero         ID = "hero"
	Features     ID = "features"
	Integrations ID = "integrations"
	Stats        ID = "stats"
	Pricing      ID = "pricing"
	FAQs         ID = "faqs"
	CTA          ID = "cta"
)

// Presentation is the reveal state a section is drawn in.
type Presentation int

const (
	// Hidden draws the section as blank space, offset below its slot.
	Hidden Presentation = iota
	// Settled draws the section in place.
	Settled
)

func (p Presentation) String() string {
	if p == Settled {
		return "visible-settled"
	}
	return "hidden-offset"
}

// SettleRows is how far below its slot a section starts when revealed.
const SettleRows = 2

// Binder owns the visibility tracker of one section. When the tracker
// fires, the section slides up SettleRows rows over the settle duration.
type Binder struct {
	id      ID
	tracker *visibility.Tracker
	sched   timing.Scheduler
	settle  time.Duration

	offset   int
	timer    timing.Timer
	onChange func(ID)
}

// NewBinder creates a binder for id. A zero settle duration reveals the
// section in place immediately.
func NewBinder(id ID, obs *visibility.Observer, threshold float64, sched timing.Scheduler, settle time.Duration) (*Binder, error) {
	tr, err := visibility.NewTracker(obs, threshold)
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", id, err)
	}
	b := &Binder{id: id, tracker: tr, sched: sched, settle: settle}
	tr.OnVisible(b.revealed)
	return b, nil
}

func (b *Binder) ID() ID { return b.id }

// OnChange registers fn to run whenever the presentation or settle
// offset changes.
func (b *Binder) OnChange(fn func(ID)) { b.onChange = fn }

// Bind attaches the tracker to the section's rows. A nil region unbinds.
func (b *Binder) Bind(r *visibility.Region) { b.tracker.Bind(r) }

// Move updates the section's rows after a relayout.
func (b *Binder) Move(r visibility.Region) { b.tracker.Move(r) }

// Release drops the observation and any settle animation.
func (b *Binder) Release() {
	b.tracker.Release()
	b.timer = timing.StopTimer(b.timer)
	b.offset = 0
}

func (b *Binder) Visible() bool { return b.tracker.Visible() }

func (b *Binder) Observing() bool { return b.tracker.Observing() }

func (b *Binder) Presentation() Presentation {
	if b.tracker.Visible() {
		return Settled
	}
	return Hidden
}

// Offset is the number of rows the section is still drawn below its slot.
func (b *Binder) Offset() int { return b.offset }

func (b *Binder) revealed() {
	if b.settle > 0 && b.sched != nil {
		b.offset = SettleRows
		b.armSettle()
	}
	b.notify()
}

func (b *Binder) armSettle() {
	step := b.settle / SettleRows
	b.timer = b.sched.AfterFunc(step, func() {
		b.timer = nil
		b.offset--
		if b.offset > 0 {
			b.armSettle()
		}
		b.notify()
	})
}

func (b *Binder) notify() {
	if b.onChange != nil {
		b.onChange(b.id)
	}
}

// Render draws body in the binder's presentation. The result always has
// the same number of lines as body, so layout never shifts on reveal.
func (b *Binder) Render(body string) string {
	lines := strings.Split(body, "\n")
	if b.Presentation() == Hidden {
		return strings.Repeat("\n", len(lines)-1)
	}
	if b.offset <= 0 {
		return body
	}
	n := min(b.offset, len(lines))
	shifted := make([]string, 0, len(lines))
	for i := 0; i < n; i++ {
		shifted = append(shifted, "")
	}
	shifted = append(shifted, lines[:len(lines)-n]...)
	return strings.Join(shifted, "\n")
}
