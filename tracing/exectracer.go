// Package tracing records what the schedulers do, turning hook invocations
// into database rows.
package tracing

import (
	"github.com/sarchlab/ticksim/datarecording"
	"github.com/sarchlab/ticksim/hooking"
	"github.com/sarchlab/ticksim/sched"
)

const tableName = "scheduler_trace"

// A traceEntry is one row of the scheduler trace table.
type traceEntry struct {
	ItemID  uint64
	Kind    string
	Name    string
	DueTick int64
	NowTick int64
	Outcome string
}

// An ExecTracer is a hook that records every schedule, cancel, execute, and
// drop into a DataRecorder. Attach it to any scheduler with AcceptHook.
type ExecTracer struct {
	timeTeller sched.TimeTeller
	recorder   datarecording.DataRecorder
}

// NewExecTracer creates an ExecTracer writing through the given recorder. The
// timeTeller provides the tick stamped on rows for positions that are not
// tied to an Advance pass.
func NewExecTracer(
	timeTeller sched.TimeTeller,
	recorder datarecording.DataRecorder,
) *ExecTracer {
	recorder.CreateTable(tableName, traceEntry{})

	return &ExecTracer{
		timeTeller: timeTeller,
		recorder:   recorder,
	}
}

// Func records the hook invocation. Unknown positions are ignored.
func (t *ExecTracer) Func(ctx hooking.HookCtx) {
	var outcome string

	switch ctx.Pos {
	case sched.HookPosItemScheduled:
		outcome = "scheduled"
	case sched.HookPosItemCancelled:
		outcome = "cancelled"
	case sched.HookPosAfterExecute:
		outcome = "executed"
	case sched.HookPosItemDropped:
		outcome = "dropped"
	default:
		return
	}

	info := ctx.Item.(sched.ItemInfo)

	now := t.timeTeller.Now()
	if tick, ok := ctx.Detail.(sched.Tick); ok {
		now = tick
	}

	t.recorder.InsertData(tableName, traceEntry{
		ItemID:  uint64(info.ID),
		Kind:    info.Kind,
		Name:    info.Name,
		DueTick: int64(info.Tick),
		NowTick: int64(now),
		Outcome: outcome,
	})
}
