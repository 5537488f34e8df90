// Package sched implements tick-indexed deferred execution. Two schedulers
// are provided on top of one tombstone priority queue: ActionScheduler runs
// callbacks against entities in a world registry, and TimedEventScheduler
// runs self-contained events ordered by tick and priority.
package sched

import (
	"github.com/sarchlab/ticksim/hooking"
	"github.com/sarchlab/ticksim/idgen"
)

// Tick is the discrete unit of simulated time. The schedulers have no other
// notion of "when".
type Tick int64

// TimeTeller can reveal the current tick of a simulation.
type TimeTeller interface {
	Now() Tick
}

// EventSink receives the events that the scheduler produces. Delivery to
// subscribers is the sink's responsibility; the scheduler only ever enqueues.
type EventSink interface {
	Enqueue(evt interface{})
}

// HookPosItemScheduled marks when an item is registered with a scheduler.
var HookPosItemScheduled = &hooking.HookPos{Name: "Item Scheduled"}

// HookPosItemCancelled marks when a pending item is cancelled.
var HookPosItemCancelled = &hooking.HookPos{Name: "Item Cancelled"}

// HookPosBeforeExecute marks right before a due item runs.
var HookPosBeforeExecute = &hooking.HookPos{Name: "Before Execute"}

// HookPosAfterExecute marks right after a due item finished running.
var HookPosAfterExecute = &hooking.HookPos{Name: "After Execute"}

// HookPosItemDropped marks when a due item is discarded without running
// because its target is no longer valid.
var HookPosItemDropped = &hooking.HookPos{Name: "Item Dropped"}

// ItemInfo describes a scheduler item at a hook site. It is the Item of the
// HookCtx for all scheduler hook positions; the Detail carries the current
// tick at execution-related positions.
type ItemInfo struct {
	ID   idgen.ID
	Tick Tick
	Kind string
	Name string
}
