package sched

import (
	"github.com/sarchlab/ticksim/hooking"
	"github.com/sarchlab/ticksim/idgen"
)

// A TimedEventScheduler defers polymorphic events. Each active event runs
// exactly once; events sharing a tick run in descending priority order, and
// ties beyond that drain in schedule order.
//
// All methods must be called from the simulation loop goroutine. An event's
// Execute may call Schedule and Cancel on the scheduler that is running it.
type TimedEventScheduler struct {
	hooking.HookableBase

	ids   idgen.Generator
	queue *TickQueue[TimedEvent]
}

// NewTimedEventScheduler creates a TimedEventScheduler with its own ID space.
func NewTimedEventScheduler() *TimedEventScheduler {
	return &TimedEventScheduler{
		ids:   idgen.New(),
		queue: NewTickQueue[TimedEvent](),
	}
}

// Schedule registers an event and returns the ID to use for cancellation.
// The event's tick and priority are captured now; later mutation of the event
// does not affect its position in the queue.
func (s *TimedEventScheduler) Schedule(evt TimedEvent) idgen.ID {
	id := s.ids.Generate()
	s.queue.Push(id, evt.Tick(), evt.Priority(), evt)

	s.InvokeHook(hooking.HookCtx{
		Domain: s,
		Pos:    HookPosItemScheduled,
		Item: ItemInfo{
			ID:   id,
			Tick: evt.Tick(),
			Kind: "timed-event",
			Name: evt.Name(),
		},
	})

	return id
}

// ScheduleFunc wraps a no-argument function as an event with priority 0 and
// schedules it. The name may be empty.
func (s *TimedEventScheduler) ScheduleFunc(
	tick Tick,
	fn func(),
	name string,
) idgen.ID {
	return s.Schedule(NewFuncEvent(tick, fn, name))
}

// Cancel prevents a pending event from ever running. It returns true iff the
// event was still pending.
func (s *TimedEventScheduler) Cancel(id idgen.ID) bool {
	if !s.queue.MarkCancelled(id) {
		return false
	}

	s.InvokeHook(hooking.HookCtx{
		Domain: s,
		Pos:    HookPosItemCancelled,
		Item:   ItemInfo{ID: id, Kind: "timed-event"},
	})

	return true
}

// Advance runs all active events with tick <= now, in (tick ascending,
// priority descending) order. Each event executes synchronously before the
// next is dequeued. Panics raised by Execute are not recovered.
func (s *TimedEventScheduler) Advance(now Tick) {
	for {
		id, evt, ok := s.queue.PopDue(now)
		if !ok {
			return
		}

		info := ItemInfo{
			ID:   id,
			Tick: evt.Tick(),
			Kind: "timed-event",
			Name: evt.Name(),
		}

		s.InvokeHook(hooking.HookCtx{
			Domain: s,
			Pos:    HookPosBeforeExecute,
			Item:   info,
			Detail: now,
		})

		evt.Execute(s)

		s.InvokeHook(hooking.HookCtx{
			Domain: s,
			Pos:    HookPosAfterExecute,
			Item:   info,
			Detail: now,
		})
	}
}

// Clear discards all pending events without running them. IDs keep growing
// monotonically afterwards.
func (s *TimedEventScheduler) Clear() {
	s.queue.Clear()
}

// PendingCount returns the number of events that are scheduled and not yet
// executed or cancelled.
func (s *TimedEventScheduler) PendingCount() int {
	return s.queue.NumActive()
}
