// Package simulation assembles the pieces of a tick-driven simulation: the
// clock, the entity registry, the event bus, both schedulers, and the
// optional recording and monitoring services.
package simulation

import (
	"github.com/sarchlab/ticksim/datarecording"
	"github.com/sarchlab/ticksim/dispatch"
	"github.com/sarchlab/ticksim/monitoring"
	"github.com/sarchlab/ticksim/sched"
	"github.com/sarchlab/ticksim/tracing"
	"github.com/sarchlab/ticksim/world"
)

// A Simulation owns the tick clock and the collaborators that scheduled work
// runs against.
type Simulation struct {
	id  string
	now sched.Tick

	registry   *world.Registry
	dispatcher *dispatch.Dispatcher
	actions    *sched.ActionScheduler
	events     *sched.TimedEventScheduler

	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
	tracer       *tracing.ExecTracer
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// Now returns the current tick.
func (s *Simulation) Now() sched.Tick {
	return s.now
}

// Registry returns the entity registry of the simulation.
func (s *Simulation) Registry() *world.Registry {
	return s.registry
}

// Dispatcher returns the event bus of the simulation.
func (s *Simulation) Dispatcher() *dispatch.Dispatcher {
	return s.dispatcher
}

// Actions returns the action scheduler of the simulation.
func (s *Simulation) Actions() *sched.ActionScheduler {
	return s.actions
}

// Events returns the timed-event scheduler of the simulation.
func (s *Simulation) Events() *sched.TimedEventScheduler {
	return s.events
}

// DataRecorder returns the data recorder used in the simulation.
func (s *Simulation) DataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// Monitor returns the monitor used in the simulation. It is nil when
// monitoring is disabled.
func (s *Simulation) Monitor() *monitoring.Monitor {
	return s.monitor
}

// Step advances the clock by one tick and runs everything that became due:
// first the action scheduler, then the timed-event scheduler, then the
// buffered events on the bus.
func (s *Simulation) Step() {
	s.now++

	s.actions.Advance(s.now, s.registry, s.dispatcher)
	s.events.Advance(s.now)
	s.dispatcher.Dispatch()
}

// RunUntil steps the simulation until the clock reaches the given tick.
func (s *Simulation) RunUntil(tick sched.Tick) {
	for s.now < tick {
		s.Step()
	}
}

// Terminate ends the simulation, flushing and closing the data recorder.
func (s *Simulation) Terminate() {
	s.dataRecorder.Close()
}
