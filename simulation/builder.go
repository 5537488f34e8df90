package simulation

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/xid"

	"github.com/sarchlab/ticksim/datarecording"
	"github.com/sarchlab/ticksim/dispatch"
	"github.com/sarchlab/ticksim/monitoring"
	"github.com/sarchlab/ticksim/sched"
	"github.com/sarchlab/ticksim/tracing"
	"github.com/sarchlab/ticksim/world"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	tracingOn      bool
	outputFileName string
}

// MakeBuilder creates a new builder. Defaults can be set through the
// environment (or a .env file): TICKSIM_MONITOR_PORT for the monitor port
// and TICKSIM_OUTPUT for the recording file name.
func MakeBuilder() Builder {
	_ = godotenv.Load()

	b := Builder{
		monitorOn: true,
	}

	if port, err := strconv.Atoi(
		os.Getenv("TICKSIM_MONITOR_PORT")); err == nil {
		b.monitorPort = port
	}

	b.outputFileName = os.Getenv("TICKSIM_OUTPUT")

	return b
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithTracing makes the simulation record every scheduler operation through
// the data recorder.
func (b Builder) WithTracing() Builder {
	b.tracingOn = true
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		registry:   world.NewRegistry(),
		dispatcher: dispatch.New(),
		actions:    sched.NewActionScheduler(),
		events:     sched.NewTimedEventScheduler(),
	}

	s.id = xid.New().String()

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "ticksim_" + s.id
	}
	s.dataRecorder = datarecording.NewDataRecorder(outputPath)

	if b.tracingOn {
		s.tracer = tracing.NewExecTracer(s, s.dataRecorder)
		s.actions.AcceptHook(s.tracer)
		s.events.AcceptHook(s.tracer)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterClock(s)
		s.monitor.RegisterScheduler("actions", s.actions)
		s.monitor.RegisterScheduler("events", s.events)
		s.monitor.StartServer()
	}

	return s
}
