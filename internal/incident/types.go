// Row structs for the correlated VM metrics and application log tables.
package incident

import (
	"errors"
	"fmt"
	"time"

	"datasynth/internal/dataset"
)

// Scenario selects whether and how incidents are injected during a run.
type Scenario string

const (
	ScenarioPerformanceIssues Scenario = "performance_issues"
	ScenarioNormalOperations  Scenario = "normal_operations"
	ScenarioMixed             Scenario = "mixed_scenarios"
)

var (
	// ErrInvalidScenario is returned for an unknown scenario string,
	// before any generation work begins.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrInvalidIntervalCount is returned when fewer than one interval
	// is requested.
	ErrInvalidIntervalCount = errors.New("interval count must be at least 1")

	// ErrLimitExceeded is returned when the requested interval count is
	// above the configured maximum. The run is rejected up front so the
	// two tables can never end up with mismatched lengths.
	ErrLimitExceeded = errors.New("interval count exceeds configured maximum")
)

// ParseScenario validates a scenario string from the CLI or web UI.
func ParseScenario(s string) (Scenario, error) {
	switch sc := Scenario(s); sc {
	case ScenarioPerformanceIssues, ScenarioNormalOperations, ScenarioMixed:
		return sc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidScenario, s)
	}
}

// MetricsRow is one VM observation for one host at one tick.
type MetricsRow struct {
	Timestamp         time.Time `json:"timestamp"`
	Hostname          string    `json:"hostname"`
	CPUPercent        float64   `json:"cpu_usage_percent"`
	MemoryPercent     float64   `json:"memory_usage_percent"`
	MemoryAvailableGB float64   `json:"memory_available_gb"`
	DiskIOOps         int       `json:"disk_io_ops"`
	NetworkMbps       float64   `json:"network_throughput_mbps"`
	Load1             float64   `json:"load_average_1min"`
	Load5             float64   `json:"load_average_5min"`
}

// LogRow is one application log entry emitted within the five-minute
// window following its parent tick, on the same host.
type LogRow struct {
	Timestamp        time.Time `json:"timestamp"`
	Hostname         string    `json:"hostname"`
	Service          string    `json:"service"`
	Level            string    `json:"level"`
	Message          string    `json:"message"`
	ResponseTimeMS   int       `json:"response_time_ms"`
	BytesTransferred int       `json:"bytes_transferred"`
	StatusCode       int       `json:"status_code,omitempty"`
}

// Result holds the two aligned tables produced by one run.
type Result struct {
	Metrics []MetricsRow
	Logs    []LogRow
}

// MetricsTable converts the metrics rows for the export layer.
func (r *Result) MetricsTable() *dataset.Table {
	t := dataset.New("vm_metrics",
		"timestamp", "hostname", "cpu_usage_percent", "memory_usage_percent",
		"memory_available_gb", "disk_io_ops", "network_throughput_mbps",
		"load_average_1min", "load_average_5min")
	for _, m := range r.Metrics {
		t.Append(m.Timestamp, m.Hostname, m.CPUPercent, m.MemoryPercent,
			m.MemoryAvailableGB, m.DiskIOOps, m.NetworkMbps, m.Load1, m.Load5)
	}
	return t
}

// LogsTable converts the log rows for the export layer.
func (r *Result) LogsTable() *dataset.Table {
	t := dataset.New("app_logs",
		"timestamp", "hostname", "service", "level", "message",
		"response_time_ms", "bytes_transferred", "status_code")
	for _, l := range r.Logs {
		t.Append(l.Timestamp, l.Hostname, l.Service, l.Level, l.Message,
			l.ResponseTimeMS, l.BytesTransferred, l.StatusCode)
	}
	return t
}

// hostState tracks the simulated health of one host during a single
// run. States are created lazily on first selection and discarded when
// the run ends; concurrent runs never share them.
type hostState struct {
	baselineCPU    float64
	baselineMemory float64
	incidentActive bool
	incidentStart  time.Time
	plannedTicks   int
}
