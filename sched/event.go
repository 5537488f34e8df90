package sched

// A TimedEvent is a self-contained unit of work keyed by tick and priority.
// Execute receives the scheduler that is running the event so that an event
// can register follow-up events without holding a back-pointer.
type TimedEvent interface {
	// Tick returns the tick at or after which the event becomes eligible.
	Tick() Tick

	// Name is a human-readable label used for tracing. It may be empty.
	Name() string

	// Priority orders events within the same tick. Higher runs first. The
	// value is captured at schedule time.
	Priority() int

	// Execute performs the event.
	Execute(s *TimedEventScheduler)
}

// EventBase provides the tick, name, and priority fields for concrete events
// to embed.
type EventBase struct {
	tick     Tick
	name     string
	priority int
}

// NewEventBase creates an EventBase with priority 0.
func NewEventBase(tick Tick, name string) EventBase {
	return EventBase{
		tick: tick,
		name: name,
	}
}

// Tick returns the tick the event is due at.
func (e EventBase) Tick() Tick {
	return e.tick
}

// Name returns the label of the event.
func (e EventBase) Name() string {
	return e.name
}

// Priority returns the same-tick ordering priority.
func (e EventBase) Priority() int {
	return e.priority
}

// SetPriority changes the priority. It has no effect on an event that is
// already scheduled.
func (e *EventBase) SetPriority(priority int) {
	e.priority = priority
}

// A FuncEvent wraps a no-argument function as a TimedEvent with priority 0.
type FuncEvent struct {
	EventBase

	fn func()
}

// NewFuncEvent creates a FuncEvent. The name may be empty.
func NewFuncEvent(tick Tick, fn func(), name string) *FuncEvent {
	return &FuncEvent{
		EventBase: NewEventBase(tick, name),
		fn:        fn,
	}
}

// Execute calls the wrapped function.
func (e *FuncEvent) Execute(*TimedEventScheduler) {
	e.fn()
}
