// Package monitoring turns a running simulation into a small web server so
// that the state of the schedulers can be inspected from outside the process.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/ticksim/sched"
)

// A PendingCounter reports how many items a scheduler still holds.
type PendingCounter interface {
	PendingCount() int
}

type namedScheduler struct {
	name      string
	scheduler PendingCounter
}

// Monitor exposes the simulation clock and the registered schedulers over
// HTTP.
type Monitor struct {
	timeTeller  sched.TimeTeller
	portNumber  int
	openBrowser bool
	schedulers  []namedScheduler
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser makes StartServer open the monitor page in the default browser.
func (m *Monitor) WithBrowser() *Monitor {
	m.openBrowser = true
	return m
}

// RegisterClock registers the clock whose tick the monitor reports.
func (m *Monitor) RegisterClock(t sched.TimeTeller) {
	m.timeTeller = t
}

// RegisterScheduler registers a scheduler to be monitored under a unique
// name.
func (m *Monitor) RegisterScheduler(name string, s PendingCounter) {
	for _, registered := range m.schedulers {
		if registered.name == name {
			panic("scheduler " + name + " already registered")
		}
	}

	m.schedulers = append(m.schedulers, namedScheduler{
		name:      name,
		scheduler: s,
	})
}

// StartServer starts the monitor as a web server.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/schedulers", m.listSchedulers)
	r.HandleFunc("/api/scheduler/{name}", m.schedulerDetails)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", url)

	if m.openBrowser {
		err := browser.OpenURL(url)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open browser: %s\n", err)
		}
	}

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"now\":%d}", m.timeTeller.Now())
}

type schedulerRsp struct {
	Name    string `json:"name"`
	Pending int    `json:"pending"`
}

func (m *Monitor) listSchedulers(w http.ResponseWriter, _ *http.Request) {
	rsp := make([]schedulerRsp, 0, len(m.schedulers))
	for _, s := range m.schedulers {
		rsp = append(rsp, schedulerRsp{
			Name:    s.name,
			Pending: s.scheduler.PendingCount(),
		})
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) schedulerDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	scheduler := m.findSchedulerOr404(w, name)
	if scheduler == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(scheduler)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) findSchedulerOr404(
	w http.ResponseWriter,
	name string,
) PendingCounter {
	for _, s := range m.schedulers {
		if s.name == name {
			return s.scheduler
		}
	}

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte("Scheduler not found"))
	dieOnErr(err)

	return nil
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	rsp, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(rsp)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
