// Correlated incident engine driving the paired metrics and log tables.
package incident

import (
	"math"
	"math/rand"
	"time"

	"datasynth/internal/config"
)

const (
	// TickStep is the spacing between consecutive metric observations.
	TickStep = 5 * time.Minute

	// logWindowSeconds bounds log timestamps relative to their tick.
	logWindowSeconds = 300

	// Incident ignition probabilities per selected tick.
	igniteProbability = 0.10
	mixedProbability  = 0.05
)

// Engine produces two time-aligned tables (VM metrics and application
// logs) sharing timestamps, hostnames, and a per-host incident state
// machine. One Engine may serve many runs; each run builds its own
// host-state map, so concurrent Generate calls on separate engines
// never share mutable state.
type Engine struct {
	hosts        []config.Host
	maxIntervals int
	rng          *rand.Rand
	now          func() time.Time
}

// NewEngine creates an engine over the configured host pool. The
// caller supplies the random source so runs are reproducible.
func NewEngine(cfg *config.GeneratorConfig, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		hosts:        cfg.Hosts,
		maxIntervals: cfg.Limits.MaxIntervals,
		rng:          rng,
		now:          time.Now,
	}
}

// Generate runs the engine for intervalCount ticks under the given
// scenario. Validation happens before any rows are produced; on error
// both tables are absent, never partially filled.
func (e *Engine) Generate(intervalCount int, scenario Scenario) (*Result, error) {
	if _, err := ParseScenario(string(scenario)); err != nil {
		return nil, err
	}
	if intervalCount < 1 {
		return nil, ErrInvalidIntervalCount
	}
	if e.maxIntervals > 0 && intervalCount > e.maxIntervals {
		return nil, ErrLimitExceeded
	}

	ignite := 0.0
	switch scenario {
	case ScenarioPerformanceIssues:
		ignite = igniteProbability
	case ScenarioMixed:
		ignite = mixedProbability
	}

	states := make(map[string]*hostState, len(e.hosts))
	anchor := e.now().UTC().Add(-24 * time.Hour)

	res := &Result{Metrics: make([]MetricsRow, 0, intervalCount)}
	for i := 0; i < intervalCount; i++ {
		ts := anchor.Add(time.Duration(i) * TickStep)
		host := e.hosts[e.rng.Intn(len(e.hosts))]

		st, ok := states[host.Name]
		if !ok {
			st = &hostState{
				baselineCPU:    20 + e.rng.Float64()*20,
				baselineMemory: 30 + e.rng.Float64()*20,
			}
			states[host.Name] = st
		}

		// Recovery first: an incident ends once the elapsed ticks reach
		// the planned duration, and the host may re-ignite on the same
		// tick it recovered.
		if st.incidentActive {
			elapsed := int(ts.Sub(st.incidentStart) / TickStep)
			if elapsed >= st.plannedTicks {
				st.incidentActive = false
			}
		}
		if !st.incidentActive && ignite > 0 && e.rng.Float64() < ignite {
			st.incidentActive = true
			st.incidentStart = ts
			st.plannedTicks = 3 + e.rng.Intn(7) // 3..9 ticks, 15-45 minutes
		}

		res.Metrics = append(res.Metrics, e.metricsRow(ts, host.Name, st))
		res.Logs = append(res.Logs, e.logRows(ts, host, st)...)
	}
	return res, nil
}

// metricsRow emits one observation. Load averages are derived from
// cpu%, not sampled, so they stay correlated within the row.
func (e *Engine) metricsRow(ts time.Time, hostname string, st *hostState) MetricsRow {
	var cpu, mem, availGB, netMbps float64
	var diskOps int
	if st.incidentActive {
		cpu = math.Min(st.baselineCPU+40+e.rng.Float64()*20, 95)
		mem = math.Min(st.baselineMemory+20+e.rng.Float64()*20, 95)
		availGB = 0.5 + e.rng.Float64()*1.5
		diskOps = 500 + e.rng.Intn(1500)
		netMbps = 200 + e.rng.Float64()*800
	} else {
		cpu = st.baselineCPU + e.rng.Float64()*10 - 5
		mem = st.baselineMemory + e.rng.Float64()*10 - 5
		availGB = 4 + e.rng.Float64()*4
		diskOps = 20 + e.rng.Intn(280)
		netMbps = 10 + e.rng.Float64()*90
	}
	// Round before deriving the load averages so the emitted cpu value
	// and its derived fields stay exactly consistent.
	cpu = round2(clampPercent(cpu))
	mem = round2(clampPercent(mem))

	return MetricsRow{
		Timestamp:         ts,
		Hostname:          hostname,
		CPUPercent:        cpu,
		MemoryPercent:     mem,
		MemoryAvailableGB: round2(availGB),
		DiskIOOps:         diskOps,
		NetworkMbps:       round2(netMbps),
		Load1:             round2(cpu / 25),
		Load5:             round2(cpu / 30),
	}
}

// logRows emits 1-5 log entries for the tick, each within the
// five-minute window and on the tick's host. During an incident each
// entry independently has a 40% chance of error mode.
func (e *Engine) logRows(ts time.Time, host config.Host, st *hostState) []LogRow {
	count := 1 + e.rng.Intn(5)
	rows := make([]LogRow, 0, count)
	for i := 0; i < count; i++ {
		service := host.Services[e.rng.Intn(len(host.Services))]
		errorMode := st.incidentActive && e.rng.Float64() < 0.4

		row := LogRow{
			Timestamp: ts.Add(time.Duration(e.rng.Intn(logWindowSeconds)) * time.Second),
			Hostname:  host.Name,
			Service:   service,
			Message:   Message(e.rng, service, errorMode),
		}
		if errorMode {
			row.Level = errorLevels[e.rng.Intn(len(errorLevels))]
			row.ResponseTimeMS = 500 + e.rng.Intn(4500)
			row.BytesTransferred = e.rng.Intn(1001)
			row.StatusCode = 400 + e.rng.Intn(200)
		} else {
			row.Level = normalLevels[e.rng.Intn(len(normalLevels))]
			row.ResponseTimeMS = 1 + e.rng.Intn(500)
			row.BytesTransferred = 1000 + e.rng.Intn(99001)
		}
		rows = append(rows, row)
	}
	return rows
}

var (
	errorLevels  = []string{"ERROR", "WARN", "CRITICAL"}
	normalLevels = []string{"INFO", "DEBUG"}
)

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
