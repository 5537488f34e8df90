// Package schedutil provides common scheduling patterns built on top of the
// action scheduler, such as damage over time and action chains.
package schedutil

import (
	"github.com/sarchlab/ticksim/idgen"
	"github.com/sarchlab/ticksim/sched"
	"github.com/sarchlab/ticksim/world"
)

// Health is the hit-point component the combat helpers operate on.
type Health struct {
	Current int
	Max     int
}

// ScheduleDamageOverTime schedules numTicks damage applications against the
// target, one every interval ticks starting at startTick. Applications on a
// target that lost its Health component are skipped. The optional onDamage
// callback observes each application.
func ScheduleDamageOverTime(
	s *sched.ActionScheduler,
	target world.Entity,
	damage, numTicks, interval int,
	startTick sched.Tick,
	onDamage func(e world.Entity, damage int),
) []idgen.ID {
	ids := make([]idgen.ID, 0, numTicks)

	for i := 0; i < numTicks; i++ {
		tick := startTick + sched.Tick(i*interval)

		id := s.Schedule(tick, target,
			func(e world.Entity, r *world.Registry) {
				health, ok := world.Get[Health](r, e)
				if !ok {
					return
				}

				health.Current -= damage
				world.Add(r, e, health)

				if onDamage != nil {
					onDamage(e, damage)
				}
			}, nil)

		ids = append(ids, id)
	}

	return ids
}

// ScheduleAttack schedules an attack that removes damage hit points from the
// target at the given tick. The action is bound to the attacker, so it is
// dropped if the attacker dies first; a dead target makes it a no-op.
func ScheduleAttack(
	s *sched.ActionScheduler,
	attacker, target world.Entity,
	damage int,
	tick sched.Tick,
	onAttack func(attacker, target world.Entity, damage int),
) idgen.ID {
	return s.Schedule(tick, attacker,
		func(e world.Entity, r *world.Registry) {
			if !r.Valid(target) {
				return
			}

			health, ok := world.Get[Health](r, target)
			if !ok {
				return
			}

			health.Current -= damage
			world.Add(r, target, health)

			if onAttack != nil {
				onAttack(e, target, damage)
			}
		}, nil)
}

// ScheduleDelayed schedules an action delayTicks after the current tick.
func ScheduleDelayed(
	s *sched.ActionScheduler,
	target world.Entity,
	delayTicks int,
	now sched.Tick,
	action sched.Action,
) idgen.ID {
	return s.Schedule(now+sched.Tick(delayTicks), target, action, nil)
}

// ScheduleRecurring schedules the same action count times, once every
// interval ticks starting at startTick.
func ScheduleRecurring(
	s *sched.ActionScheduler,
	target world.Entity,
	interval, count int,
	startTick sched.Tick,
	action sched.Action,
) []idgen.ID {
	ids := make([]idgen.ID, 0, count)

	for i := 0; i < count; i++ {
		tick := startTick + sched.Tick(i*interval)
		ids = append(ids, s.Schedule(tick, target, action, nil))
	}

	return ids
}

// A ChainStep is one link of an action chain.
type ChainStep struct {
	Tick   sched.Tick
	Action sched.Action
}

// ScheduleChain schedules a series of actions on one entity.
func ScheduleChain(
	s *sched.ActionScheduler,
	target world.Entity,
	steps []ChainStep,
) []idgen.ID {
	ids := make([]idgen.ID, 0, len(steps))

	for _, step := range steps {
		ids = append(ids, s.Schedule(step.Tick, target, step.Action, nil))
	}

	return ids
}
