package sched

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/sarchlab/ticksim/idgen"
)

// chainEvent schedules a follow-up event through the handle passed into
// Execute.
type chainEvent struct {
	EventBase

	delay Tick
	log   *[]string
	label string
	depth int
}

func (e *chainEvent) Execute(s *TimedEventScheduler) {
	*e.log = append(*e.log, e.label)

	if e.depth > 0 {
		follow := &chainEvent{
			EventBase: NewEventBase(e.Tick()+e.delay, e.Name()),
			delay:     e.delay,
			log:       e.log,
			label:     e.label + "'",
			depth:     e.depth - 1,
		}
		s.Schedule(follow)
	}
}

var _ = Describe("TimedEventScheduler", func() {
	var (
		mockCtrl  *gomock.Controller
		scheduler *TimedEventScheduler
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		scheduler = NewTimedEventScheduler()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should execute due events in tick order", func() {
		var order []string

		scheduler.ScheduleFunc(9, func() {
			order = append(order, "late")
		}, "late")
		scheduler.ScheduleFunc(2, func() {
			order = append(order, "early")
		}, "early")
		scheduler.ScheduleFunc(5, func() {
			order = append(order, "middle")
		}, "middle")

		scheduler.Advance(9)

		Expect(order).To(Equal([]string{"early", "middle", "late"}))
	})

	It("should execute same-tick events in descending priority order", func() {
		var order []int

		low := NewFuncEvent(4, func() { order = append(order, 0) }, "low")
		high := NewFuncEvent(4, func() { order = append(order, 10) }, "high")
		high.SetPriority(10)

		scheduler.Schedule(low)
		scheduler.Schedule(high)

		scheduler.Advance(4)

		Expect(order).To(Equal([]int{10, 0}))
	})

	It("should fall back to schedule order for full ties", func() {
		var order []string

		scheduler.ScheduleFunc(3, func() {
			order = append(order, "a")
		}, "a")
		scheduler.ScheduleFunc(3, func() {
			order = append(order, "b")
		}, "b")

		scheduler.Advance(3)

		Expect(order).To(Equal([]string{"a", "b"}))
	})

	It("should execute a mock event exactly once", func() {
		evt := NewMockTimedEvent(mockCtrl)
		evt.EXPECT().Tick().Return(Tick(5)).AnyTimes()
		evt.EXPECT().Priority().Return(0).AnyTimes()
		evt.EXPECT().Name().Return("mock").AnyTimes()
		evt.EXPECT().Execute(scheduler).Times(1)

		scheduler.Schedule(evt)

		scheduler.Advance(5)
		scheduler.Advance(50)
	})

	It("should pass the scheduler handle into Execute for follow-ups", func() {
		var log []string

		scheduler.Schedule(&chainEvent{
			EventBase: NewEventBase(1, "chain"),
			delay:     2,
			log:       &log,
			label:     "x",
			depth:     2,
		})

		scheduler.Advance(1)
		Expect(log).To(Equal([]string{"x"}))

		scheduler.Advance(3)
		Expect(log).To(Equal([]string{"x", "x'"}))

		scheduler.Advance(5)
		Expect(log).To(Equal([]string{"x", "x'", "x''"}))
	})

	It("should capture priority at schedule time", func() {
		var order []string

		late := NewFuncEvent(4, func() { order = append(order, "late") },
			"late")
		early := NewFuncEvent(4, func() { order = append(order, "early") },
			"early")
		early.SetPriority(5)

		scheduler.Schedule(late)
		scheduler.Schedule(early)

		// Raising the priority after scheduling must not reorder the queue.
		late.SetPriority(100)

		scheduler.Advance(4)

		Expect(order).To(Equal([]string{"early", "late"}))
	})

	Context("cancellation", func() {
		It("should never execute a cancelled event", func() {
			runs := 0
			id := scheduler.ScheduleFunc(3, func() { runs++ }, "")

			Expect(scheduler.Cancel(id)).To(BeTrue())
			Expect(scheduler.Cancel(id)).To(BeFalse())

			scheduler.Advance(3)

			Expect(runs).To(Equal(0))
		})

		It("should allow an event to cancel a later event", func() {
			runs := 0
			lateID := scheduler.ScheduleFunc(8, func() { runs++ }, "late")

			scheduler.ScheduleFunc(4, func() {
				Expect(scheduler.Cancel(lateID)).To(BeTrue())
			}, "canceller")

			scheduler.Advance(4)
			scheduler.Advance(8)

			Expect(runs).To(Equal(0))
		})

		It("should report false for unknown ids", func() {
			Expect(scheduler.Cancel(idgen.ID(42))).To(BeFalse())
		})
	})

	Context("clear", func() {
		It("should make Advance a no-op until new events arrive", func() {
			runs := 0
			scheduler.ScheduleFunc(1, func() { runs++ }, "")
			scheduler.ScheduleFunc(2, func() { runs++ }, "")

			scheduler.Clear()
			scheduler.Advance(100)

			Expect(runs).To(Equal(0))

			scheduler.ScheduleFunc(101, func() { runs++ }, "")
			scheduler.Advance(101)

			Expect(runs).To(Equal(1))
		})
	})

	It("should count pending events", func() {
		id := scheduler.ScheduleFunc(1, func() {}, "")
		scheduler.ScheduleFunc(2, func() {}, "")

		Expect(scheduler.PendingCount()).To(Equal(2))

		scheduler.Cancel(id)

		Expect(scheduler.PendingCount()).To(Equal(1))

		scheduler.Advance(2)

		Expect(scheduler.PendingCount()).To(Equal(0))
	})
})
