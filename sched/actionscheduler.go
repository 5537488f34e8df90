package sched

import (
	"github.com/sarchlab/ticksim/gameevent"
	"github.com/sarchlab/ticksim/hooking"
	"github.com/sarchlab/ticksim/idgen"
	"github.com/sarchlab/ticksim/world"
)

// An Action is a unit of work bound to an entity. It runs when the clock
// reaches the tick it was scheduled for, provided the entity is still valid.
type Action func(target world.Entity, registry *world.Registry)

// A CompletionCallback runs after its action completed. It may schedule or
// cancel further work on the same scheduler and enqueue more events.
type CompletionCallback func(
	id idgen.ID,
	target world.Entity,
	registry *world.Registry,
	sink EventSink,
)

// A ScheduledAction bundles the parameters of one deferred action. ID is
// assigned by the scheduler; a caller-set ID is ignored.
type ScheduledAction struct {
	ID         idgen.ID
	Tick       Tick
	Target     world.Entity
	Action     Action
	OnComplete CompletionCallback
}

// An ActionScheduler defers actions against entities in a world registry.
// Each active action runs exactly once, in tick order; same-tick actions run
// in the order they were scheduled.
//
// All methods must be called from the simulation loop goroutine. Callbacks
// may call Schedule and Cancel on the scheduler that is running them.
type ActionScheduler struct {
	hooking.HookableBase

	ids   idgen.Generator
	queue *TickQueue[ScheduledAction]
}

// NewActionScheduler creates an ActionScheduler with its own ID space.
func NewActionScheduler() *ActionScheduler {
	return &ActionScheduler{
		ids:   idgen.New(),
		queue: NewTickQueue[ScheduledAction](),
	}
}

// Schedule registers an action to run at the given tick and returns the ID to
// use for cancellation. The tick is not validated; a tick at or before the
// current clock makes the action eligible on the very next Advance. The
// target is not resolved here, only at execution time. A nil onComplete is
// allowed.
func (s *ActionScheduler) Schedule(
	tick Tick,
	target world.Entity,
	action Action,
	onComplete CompletionCallback,
) idgen.ID {
	return s.ScheduleAction(ScheduledAction{
		Tick:       tick,
		Target:     target,
		Action:     action,
		OnComplete: onComplete,
	})
}

// ScheduleAction registers a pre-built ScheduledAction.
func (s *ActionScheduler) ScheduleAction(action ScheduledAction) idgen.ID {
	action.ID = s.ids.Generate()
	s.queue.Push(action.ID, action.Tick, 0, action)

	s.InvokeHook(hooking.HookCtx{
		Domain: s,
		Pos:    HookPosItemScheduled,
		Item:   ItemInfo{ID: action.ID, Tick: action.Tick, Kind: "action"},
	})

	return action.ID
}

// Cancel prevents a pending action from ever running. It returns true iff
// the action was still pending, so a second Cancel of the same ID returns
// false.
func (s *ActionScheduler) Cancel(id idgen.ID) bool {
	if !s.queue.MarkCancelled(id) {
		return false
	}

	s.InvokeHook(hooking.HookCtx{
		Domain: s,
		Pos:    HookPosItemCancelled,
		Item:   ItemInfo{ID: id, Kind: "action"},
	})

	return true
}

// Advance runs all active actions with tick <= now, in ascending tick order.
// An action whose target is no longer valid in the registry is discarded
// without running and without emitting an event. For every action that runs,
// an ActionCompleted event is enqueued to the sink before the completion
// callback fires. A nil sink suppresses event emission.
//
// Panics raised by callbacks are not recovered; they abort the pass and leave
// the remaining due items pending for the next Advance.
func (s *ActionScheduler) Advance(
	now Tick,
	registry *world.Registry,
	sink EventSink,
) {
	for {
		id, action, ok := s.queue.PopDue(now)
		if !ok {
			return
		}

		info := ItemInfo{ID: id, Tick: action.Tick, Kind: "action"}

		if !registry.Valid(action.Target) {
			s.InvokeHook(hooking.HookCtx{
				Domain: s,
				Pos:    HookPosItemDropped,
				Item:   info,
				Detail: now,
			})

			continue
		}

		s.InvokeHook(hooking.HookCtx{
			Domain: s,
			Pos:    HookPosBeforeExecute,
			Item:   info,
			Detail: now,
		})

		action.Action(action.Target, registry)

		if sink != nil {
			sink.Enqueue(gameevent.ActionCompleted{
				ActionID: id,
				Entity:   action.Target,
			})
		}

		if action.OnComplete != nil {
			action.OnComplete(id, action.Target, registry, sink)
		}

		s.InvokeHook(hooking.HookCtx{
			Domain: s,
			Pos:    HookPosAfterExecute,
			Item:   info,
			Detail: now,
		})
	}
}

// Clear discards all pending actions without running them. IDs keep growing
// monotonically afterwards.
func (s *ActionScheduler) Clear() {
	s.queue.Clear()
}

// PendingCount returns the number of actions that are scheduled and not yet
// executed or cancelled.
func (s *ActionScheduler) PendingCount() int {
	return s.queue.NumActive()
}
