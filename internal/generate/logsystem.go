package generate

import (
	"math"
	"time"

	"datasynth/internal/dataset"
	"datasynth/internal/incident"
)

var (
	logLevels      = []string{"DEBUG", "INFO", "INFO", "INFO", "WARN", "ERROR"}
	systemStatuses = []string{"healthy", "healthy", "healthy", "degraded", "critical"}
)

// appLogsTable builds a standalone application log dataset over the
// configured host pool, reusing the per-service message catalogs. The
// entries carry no incident correlation; use the incident engine for
// the paired metrics+logs scenario.
func (g *Generator) appLogsTable(count int) *dataset.Table {
	t := dataset.New("app_logs",
		"timestamp", "hostname", "service", "level", "message",
		"response_time_ms", "bytes_transferred")

	now := g.anchor
	for i := 0; i < count; i++ {
		host := g.hosts[g.rng.Intn(len(g.hosts))]
		service := host.Services[g.rng.Intn(len(host.Services))]
		level := g.pick(logLevels)
		errorMode := level == "ERROR"
		t.Append(
			now.Add(-time.Duration(g.rng.Intn(86400))*time.Second),
			host.Name,
			service,
			level,
			incident.Message(g.rng, service, errorMode),
			1+g.rng.Intn(5000),
			g.rng.Intn(100000),
		)
	}
	return t
}

// systemTable builds point-in-time system snapshots, one host sample
// per row.
func (g *Generator) systemTable(count int) *dataset.Table {
	t := dataset.New("system",
		"timestamp", "hostname", "cpu_usage_percent",
		"memory_usage_percent", "disk_usage_percent", "process_count",
		"uptime_hours", "status")

	now := g.anchor
	for i := 0; i < count; i++ {
		host := g.hosts[g.rng.Intn(len(g.hosts))]
		t.Append(
			now.Add(-time.Duration(g.rng.Intn(86400))*time.Second),
			host.Name,
			round2f(5+g.rng.Float64()*90),
			round2f(10+g.rng.Float64()*85),
			round2f(20+g.rng.Float64()*75),
			50+g.rng.Intn(450),
			math.Round(g.rng.Float64()*8760*10)/10,
			g.pick(systemStatuses),
		)
	}
	return t
}
