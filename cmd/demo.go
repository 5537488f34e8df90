package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/ticksim/dispatch"
	"github.com/sarchlab/ticksim/gameevent"
	"github.com/sarchlab/ticksim/idgen"
	"github.com/sarchlab/ticksim/sched"
	"github.com/sarchlab/ticksim/schedutil"
	"github.com/sarchlab/ticksim/simulation"
	"github.com/sarchlab/ticksim/world"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run demo simulations.",
}

var demoActionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Run a small combat scenario on the action scheduler.",
	Run: func(cmd *cobra.Command, args []string) {
		runActionsDemo()
	},
}

var demoEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Run a few timed events on the timed-event scheduler.",
	Run: func(cmd *cobra.Command, args []string) {
		runEventsDemo()
	},
}

var demoCombinedCmd = &cobra.Command{
	Use:   "combined",
	Short: "Run both schedulers inside a full simulation.",
	Run: func(cmd *cobra.Command, args []string) {
		monitorPort, _ := cmd.Flags().GetInt("monitor-port")
		trace, _ := cmd.Flags().GetBool("trace")
		output, _ := cmd.Flags().GetString("output")
		runCombinedDemo(monitorPort, trace, output)
	},
}

func init() {
	demoCombinedCmd.Flags().Int("monitor-port", 0,
		"serve the monitoring API on this port (0 disables monitoring)")
	demoCombinedCmd.Flags().Bool("trace", false,
		"record a scheduler trace in the output database")
	demoCombinedCmd.Flags().String("output", "",
		"name of the output database file")

	demoCmd.AddCommand(demoActionsCmd)
	demoCmd.AddCommand(demoEventsCmd)
	demoCmd.AddCommand(demoCombinedCmd)
	rootCmd.AddCommand(demoCmd)
}

func printHealth(r *world.Registry, e world.Entity, name string) {
	health, ok := world.Get[schedutil.Health](r, e)
	if !ok {
		fmt.Printf("  %s: dead\n", name)
		return
	}

	fmt.Printf("  %s: %d/%d hp\n", name, health.Current, health.Max)
}

// runActionsDemo plays a 10-tick fight between a player and an enemy, with a
// delayed counter-attack, a finishing blow that announces the end of combat,
// and a poison damage-over-time effect.
func runActionsDemo() {
	registry := world.NewRegistry()
	bus := dispatch.New()
	actions := sched.NewActionScheduler()

	player := registry.Create()
	world.Add(registry, player, schedutil.Health{Current: 100, Max: 100})

	enemy := registry.Create()
	world.Add(registry, enemy, schedutil.Health{Current: 50, Max: 50})

	dispatch.Subscribe(bus, func(evt gameevent.ActionCompleted) {
		fmt.Printf("  [bus] action %d completed on entity %d\n",
			evt.ActionID, evt.Entity)
	})
	dispatch.Subscribe(bus, func(evt gameevent.CombatEnd) {
		fmt.Printf("  [bus] combat over, winner entity %d\n", evt.Winner)
	})

	actions.Schedule(5, enemy,
		func(e world.Entity, r *world.Registry) {
			health, _ := world.Get[schedutil.Health](r, player)
			health.Current -= 10
			world.Add(r, player, health)
			fmt.Println("  enemy strikes the player for 10")
		}, nil)

	schedutil.ScheduleAttack(actions, player, enemy, 15, 3,
		func(attacker, target world.Entity, damage int) {
			fmt.Printf("  player opens with a hit for %d\n", damage)
		})

	actions.Schedule(7, player,
		func(e world.Entity, r *world.Registry) {
			health, _ := world.Get[schedutil.Health](r, enemy)
			health.Current -= 20
			world.Add(r, enemy, health)
			fmt.Println("  player lands the finishing blow for 20")
		},
		func(
			id idgen.ID,
			target world.Entity,
			r *world.Registry,
			sink sched.EventSink,
		) {
			health, ok := world.Get[schedutil.Health](r, enemy)
			if ok && health.Current < 20 {
				sink.Enqueue(gameevent.CombatEnd{Winner: player})
			}
		})

	schedutil.ScheduleDamageOverTime(actions, enemy, 5, 3, 2, 4,
		func(e world.Entity, damage int) {
			fmt.Printf("  poison ticks on the enemy for %d\n", damage)
		})

	for now := sched.Tick(1); now <= 10; now++ {
		fmt.Printf("tick %d\n", now)
		actions.Advance(now, registry, bus)
		bus.Dispatch()
		printHealth(registry, player, "player")
		printHealth(registry, enemy, "enemy")
	}
}

// gameStartEvent is a custom timed event that kicks off the event demo and
// schedules a follow-up through the scheduler handle it receives.
type gameStartEvent struct {
	sched.EventBase
}

func (e *gameStartEvent) Execute(s *sched.TimedEventScheduler) {
	fmt.Println("  the game starts")

	s.ScheduleFunc(e.Tick()+1, func() {
		fmt.Println("  the world finished loading")
	}, "world-loaded")
}

// runEventsDemo schedules a handful of timed events, including a custom event
// type and one event that is cancelled before its tick arrives.
func runEventsDemo() {
	events := sched.NewTimedEventScheduler()

	start := &gameStartEvent{EventBase: sched.NewEventBase(1, "game-start")}
	start.SetPriority(10)
	events.Schedule(start)

	events.ScheduleFunc(3, func() {
		fmt.Println("  a merchant arrives in town")
	}, "merchant-arrival")

	events.ScheduleFunc(5, func() {
		fmt.Println("  night falls")
	}, "nightfall")

	cancelled := events.ScheduleFunc(4, func() {
		fmt.Println("  this should never print")
	}, "doomed-event")

	events.Cancel(cancelled)
	fmt.Printf("cancelled event %d before it could run\n", cancelled)

	for now := sched.Tick(1); now <= 6; now++ {
		fmt.Printf("tick %d\n", now)
		events.Advance(now)
	}
}

// runCombinedDemo runs the combat scenario and the timed events together
// inside a Simulation, optionally with tracing and monitoring.
func runCombinedDemo(monitorPort int, trace bool, output string) {
	builder := simulation.MakeBuilder()

	if monitorPort > 0 {
		builder = builder.WithMonitorPort(monitorPort)
	} else {
		builder = builder.WithoutMonitoring()
	}

	if trace {
		builder = builder.WithTracing()
	}

	if output != "" {
		builder = builder.WithOutputFileName(output)
	}

	sim := builder.Build()
	defer sim.Terminate()

	registry := sim.Registry()

	player := registry.Create()
	world.Add(registry, player, schedutil.Health{Current: 100, Max: 100})

	enemy := registry.Create()
	world.Add(registry, enemy, schedutil.Health{Current: 50, Max: 50})

	dispatch.Subscribe(sim.Dispatcher(),
		func(evt gameevent.EntityDamaged) {
			fmt.Printf("  [bus] entity %d took %d %s damage\n",
				evt.Entity, evt.Damage, evt.DamageType)
		})
	dispatch.Subscribe(sim.Dispatcher(),
		func(evt gameevent.CombatEnd) {
			fmt.Printf("  [bus] combat over, winner entity %d\n", evt.Winner)
		})

	schedutil.ScheduleAttack(sim.Actions(), player, enemy, 15, 3,
		func(attacker, target world.Entity, damage int) {
			sim.Dispatcher().Enqueue(gameevent.EntityDamaged{
				Entity:     target,
				Damage:     damage,
				Source:     attacker,
				DamageType: "physical",
			})
		})

	schedutil.ScheduleDamageOverTime(sim.Actions(), enemy, 5, 3, 2, 4,
		func(e world.Entity, damage int) {
			sim.Dispatcher().Enqueue(gameevent.EntityDamaged{
				Entity:     e,
				Damage:     damage,
				Source:     world.NullEntity,
				DamageType: "poison",
			})
		})

	sim.Actions().Schedule(7, player,
		func(e world.Entity, r *world.Registry) {
			health, _ := world.Get[schedutil.Health](r, enemy)
			health.Current -= 20
			world.Add(r, enemy, health)
		},
		func(
			id idgen.ID,
			target world.Entity,
			r *world.Registry,
			sink sched.EventSink,
		) {
			sink.Enqueue(gameevent.CombatEnd{Winner: player})
		})

	sim.Events().ScheduleFunc(1, func() {
		fmt.Println("  the fight begins")
	}, "combat-start")

	sim.Events().ScheduleFunc(8, func() {
		fmt.Println("  the dust settles")
	}, "combat-aftermath")

	for sim.Now() < 10 {
		sim.Step()
		fmt.Printf("tick %d\n", sim.Now())
		printHealth(registry, player, "player")
		printHealth(registry, enemy, "enemy")
	}
}
