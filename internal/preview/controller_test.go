package preview_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/chatflow/internal/preview"
	"github.com/san-kum/chatflow/internal/reveal"
	"github.com/san-kum/chatflow/internal/timing"
)

const script = "Here are the 3 key takeaways."

var _ = Describe("Controller", func() {
	var (
		clock  *timing.Virtual
		ctrl   *preview.Controller
		phases []preview.Phase
	)

	BeforeEach(func() {
		clock = timing.NewVirtual()
		phases = nil
		var err error
		ctrl, err = preview.New(clock, script, preview.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		ctrl.OnPhase(func(p preview.Phase) { phases = append(phases, p) })
		ctrl.Start()
	})

	It("starts in Typing with the indicator shown", func() {
		Expect(ctrl.Phase()).To(Equal(preview.Typing))
		Expect(ctrl.ShowTyping()).To(BeTrue())
		Expect(ctrl.ShowCaret()).To(BeFalse())
		Expect(ctrl.Displayed()).To(BeEmpty())
	})

	It("stays in Typing until the typing delay elapses", func() {
		clock.Advance(preview.DefaultTypingDelay - time.Millisecond)
		Expect(ctrl.Phase()).To(Equal(preview.Typing))

		clock.Advance(time.Millisecond)
		Expect(ctrl.Phase()).To(Equal(preview.Streaming))
		Expect(ctrl.ShowCaret()).To(BeTrue())
		Expect(ctrl.Displayed()).To(BeEmpty())
	})

	It("reaches Done exactly when the last grapheme is revealed", func() {
		_, total := ctrl.Progress()
		completion := preview.DefaultTypingDelay + time.Duration(total)*preview.DefaultInterval

		clock.Advance(completion - time.Millisecond)
		Expect(ctrl.Phase()).To(Equal(preview.Streaming))
		Expect(ctrl.Done()).To(BeFalse())

		clock.Advance(time.Millisecond)
		Expect(ctrl.Phase()).To(Equal(preview.Done))
		Expect(ctrl.Displayed()).To(Equal(script))
		Expect(ctrl.ShowCaret()).To(BeFalse())
		Expect(clock.Pending()).To(BeZero())
	})

	It("never observes a phase regression", func() {
		last := ctrl.Phase()
		for i := 0; i < 400; i++ {
			clock.Advance(9 * time.Millisecond)
			Expect(ctrl.Phase()).To(BeNumerically(">=", last))
			last = ctrl.Phase()
		}
		Expect(phases).To(Equal([]preview.Phase{preview.Streaming, preview.Done}))
	})

	It("cancels everything on Stop", func() {
		clock.Advance(preview.DefaultTypingDelay + 5*preview.DefaultInterval)
		ctrl.Stop()
		Expect(clock.Pending()).To(BeZero())
		shown := ctrl.Displayed()
		clock.Advance(time.Hour)
		Expect(ctrl.Displayed()).To(Equal(shown))
		Expect(ctrl.Phase()).To(Equal(preview.Streaming))
	})

	It("replays from Typing on restart", func() {
		clock.Advance(time.Hour)
		Expect(ctrl.Phase()).To(Equal(preview.Done))

		ctrl.Start()
		Expect(ctrl.Phase()).To(Equal(preview.Typing))
		Expect(ctrl.Displayed()).To(BeEmpty())
		clock.Advance(time.Hour)
		Expect(ctrl.Phase()).To(Equal(preview.Done))
		Expect(ctrl.Displayed()).To(Equal(script))
	})
})

var _ = Describe("Controller configuration", func() {
	It("rejects a zero tick interval", func() {
		_, err := preview.New(timing.NewVirtual(), script, preview.Options{TypingDelay: time.Second})
		Expect(err).To(MatchError(reveal.ErrInvalidInterval))
	})

	It("rejects a negative typing delay", func() {
		_, err := preview.New(timing.NewVirtual(), script, preview.Options{TypingDelay: -time.Second, Interval: time.Millisecond})
		Expect(err).To(MatchError(preview.ErrInvalidTypingDelay))
	})

	It("lets Done win for an empty reply", func() {
		clock := timing.NewVirtual()
		ctrl, err := preview.New(clock, "", preview.Options{TypingDelay: 10 * time.Millisecond, Interval: time.Millisecond})
		Expect(err).NotTo(HaveOccurred())
		ctrl.Start()
		clock.Advance(time.Second)
		Expect(ctrl.Phase()).To(Equal(preview.Done))
		Expect(clock.Pending()).To(BeZero())
	})
})

var _ = DescribeTable("Phase names",
	func(p preview.Phase, name string) {
		Expect(p.String()).To(Equal(name))
		parsed, ok := preview.ParsePhase(name)
		Expect(ok).To(BeTrue())
		Expect(parsed).To(Equal(p))
	},
	Entry("typing", preview.Typing, "typing"),
	Entry("streaming", preview.Streaming, "streaming"),
	Entry("done", preview.Done, "done"),
)
