package sched

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/sarchlab/ticksim/gameevent"
	"github.com/sarchlab/ticksim/idgen"
	"github.com/sarchlab/ticksim/world"
)

var _ = Describe("ActionScheduler", func() {
	var (
		mockCtrl  *gomock.Controller
		scheduler *ActionScheduler
		registry  *world.Registry
		sink      *MockEventSink
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		scheduler = NewActionScheduler()
		registry = world.NewRegistry()
		sink = NewMockEventSink(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should run due actions in ascending tick order", func() {
		target := registry.Create()
		damage := 0

		scheduler.Schedule(5, target,
			func(e world.Entity, r *world.Registry) {
				Expect(damage).To(Equal(15))
				damage += 10
			}, nil)
		scheduler.Schedule(3, target,
			func(e world.Entity, r *world.Registry) {
				Expect(damage).To(Equal(0))
				damage += 15
			}, nil)

		sink.EXPECT().Enqueue(gomock.Any()).Times(2)

		scheduler.Advance(5, registry, sink)

		Expect(damage).To(Equal(25))
		Expect(scheduler.PendingCount()).To(Equal(0))
	})

	It("should run same-tick actions in schedule order", func() {
		target := registry.Create()
		var order []string

		scheduler.Schedule(4, target,
			func(world.Entity, *world.Registry) {
				order = append(order, "first")
			}, nil)
		scheduler.Schedule(4, target,
			func(world.Entity, *world.Registry) {
				order = append(order, "second")
			}, nil)

		scheduler.Advance(4, registry, nil)

		Expect(order).To(Equal([]string{"first", "second"}))
	})

	It("should emit an ActionCompleted event for each executed action", func() {
		target := registry.Create()

		id := scheduler.Schedule(1, target,
			func(world.Entity, *world.Registry) {}, nil)

		sink.EXPECT().Enqueue(gameevent.ActionCompleted{
			ActionID: id,
			Entity:   target,
		})

		scheduler.Advance(1, registry, sink)
	})

	It("should run actions at most once", func() {
		target := registry.Create()
		runs := 0

		scheduler.Schedule(2, target,
			func(world.Entity, *world.Registry) { runs++ }, nil)

		scheduler.Advance(2, registry, nil)
		scheduler.Advance(10, registry, nil)
		scheduler.Advance(100, registry, nil)

		Expect(runs).To(Equal(1))
	})

	It("should leave not-yet-due actions pending", func() {
		target := registry.Create()
		runs := 0

		scheduler.Schedule(10, target,
			func(world.Entity, *world.Registry) { runs++ }, nil)

		scheduler.Advance(9, registry, nil)

		Expect(runs).To(Equal(0))
		Expect(scheduler.PendingCount()).To(Equal(1))

		scheduler.Advance(10, registry, nil)

		Expect(runs).To(Equal(1))
	})

	It("should make past-tick actions eligible on the next advance", func() {
		target := registry.Create()
		runs := 0

		scheduler.Schedule(-5, target,
			func(world.Entity, *world.Registry) { runs++ }, nil)

		scheduler.Advance(0, registry, nil)

		Expect(runs).To(Equal(1))
	})

	Context("cancellation", func() {
		It("should never run a cancelled action", func() {
			target := registry.Create()
			runs := 0

			id := scheduler.Schedule(3, target,
				func(world.Entity, *world.Registry) { runs++ }, nil)

			Expect(scheduler.Cancel(id)).To(BeTrue())

			scheduler.Advance(3, registry, nil)

			Expect(runs).To(Equal(0))
		})

		It("should report true exactly once per id", func() {
			target := registry.Create()
			id := scheduler.Schedule(3, target,
				func(world.Entity, *world.Registry) {}, nil)

			Expect(scheduler.Cancel(id)).To(BeTrue())
			Expect(scheduler.Cancel(id)).To(BeFalse())
			Expect(scheduler.Cancel(idgen.ID(9999))).To(BeFalse())
		})

		It("should report false after execution", func() {
			target := registry.Create()
			id := scheduler.Schedule(3, target,
				func(world.Entity, *world.Registry) {}, nil)

			scheduler.Advance(3, registry, nil)

			Expect(scheduler.Cancel(id)).To(BeFalse())
		})

		It("should support an onComplete that cancels a later action", func() {
			target := registry.Create()
			lateRuns := 0

			lateID := scheduler.Schedule(8, target,
				func(world.Entity, *world.Registry) { lateRuns++ }, nil)

			scheduler.Schedule(5, target,
				func(world.Entity, *world.Registry) {},
				func(id idgen.ID, e world.Entity,
					r *world.Registry, s EventSink) {
					Expect(scheduler.Cancel(lateID)).To(BeTrue())
				})

			scheduler.Advance(5, registry, nil)
			scheduler.Advance(8, registry, nil)

			Expect(lateRuns).To(Equal(0))
		})

		It("should allow an action to cancel a same-tick sibling", func() {
			target := registry.Create()
			siblingRuns := 0

			var siblingID idgen.ID
			scheduler.Schedule(4, target,
				func(world.Entity, *world.Registry) {
					Expect(scheduler.Cancel(siblingID)).To(BeTrue())
				}, nil)
			siblingID = scheduler.Schedule(4, target,
				func(world.Entity, *world.Registry) { siblingRuns++ }, nil)

			scheduler.Advance(4, registry, nil)

			Expect(siblingRuns).To(Equal(0))
		})
	})

	Context("validity gate", func() {
		It("should drop actions on destroyed targets without side effects",
			func() {
				target := registry.Create()
				runs := 0
				completions := 0

				scheduler.Schedule(5, target,
					func(world.Entity, *world.Registry) { runs++ },
					func(idgen.ID, world.Entity,
						*world.Registry, EventSink) {
						completions++
					})

				registry.Destroy(target)

				// No sink expectation: no event may be emitted.
				scheduler.Advance(5, registry, sink)

				Expect(runs).To(Equal(0))
				Expect(completions).To(Equal(0))
				Expect(scheduler.PendingCount()).To(Equal(0))
			})

		It("should not let a recycled slot revive a stale action", func() {
			target := registry.Create()
			runs := 0

			scheduler.Schedule(5, target,
				func(world.Entity, *world.Registry) { runs++ }, nil)

			registry.Destroy(target)
			replacement := registry.Create()
			Expect(registry.Valid(replacement)).To(BeTrue())

			scheduler.Advance(5, registry, nil)

			Expect(runs).To(Equal(0))
		})
	})

	Context("reentrancy", func() {
		It("should run a follow-up scheduled for the same tick in the same "+
			"pass", func() {
			target := registry.Create()
			var order []string

			scheduler.Schedule(2, target,
				func(world.Entity, *world.Registry) {
					order = append(order, "original")
					scheduler.Schedule(2, target,
						func(world.Entity, *world.Registry) {
							order = append(order, "follow-up")
						}, nil)
				}, nil)

			scheduler.Advance(2, registry, nil)

			Expect(order).To(Equal([]string{"original", "follow-up"}))
		})

		It("should keep a follow-up scheduled for a later tick pending",
			func() {
				target := registry.Create()
				followUpRuns := 0

				scheduler.Schedule(2, target,
					func(world.Entity, *world.Registry) {
						scheduler.Schedule(7, target,
							func(world.Entity, *world.Registry) {
								followUpRuns++
							}, nil)
					}, nil)

				scheduler.Advance(2, registry, nil)
				Expect(followUpRuns).To(Equal(0))

				scheduler.Advance(7, registry, nil)
				Expect(followUpRuns).To(Equal(1))
			})
	})

	Context("clear", func() {
		It("should discard all pending actions without running them", func() {
			target := registry.Create()
			runs := 0

			for i := 0; i < 5; i++ {
				scheduler.Schedule(Tick(i), target,
					func(world.Entity, *world.Registry) { runs++ }, nil)
			}

			scheduler.Clear()
			scheduler.Advance(100, registry, nil)

			Expect(runs).To(Equal(0))
			Expect(scheduler.PendingCount()).To(Equal(0))
		})

		It("should keep ids monotonic across Clear", func() {
			target := registry.Create()

			first := scheduler.Schedule(1, target,
				func(world.Entity, *world.Registry) {}, nil)

			scheduler.Clear()

			second := scheduler.Schedule(1, target,
				func(world.Entity, *world.Registry) {}, nil)

			Expect(second > first).To(BeTrue())
		})
	})
})
