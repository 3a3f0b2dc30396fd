package export

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	"datasynth/internal/incident"
)

const defaultGreptimePort = 4001

// GreptimeWriter persists the correlated metrics and log tables to
// GreptimeDB via the gRPC ingester client. The server creates both
// tables on first write.
type GreptimeWriter struct {
	client *greptime.Client
	log    *slog.Logger
}

// NewGreptimeWriter connects to GreptimeDB at endpoint, given as host
// or host:port.
func NewGreptimeWriter(endpoint, database string, log *slog.Logger) (*GreptimeWriter, error) {
	host, port, err := splitEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	client, err := greptime.NewClient(greptime.NewConfig(host).
		WithPort(port).
		WithDatabase(database))
	if err != nil {
		return nil, err
	}
	return &GreptimeWriter{client: client, log: log}, nil
}

// WriteResult batch-inserts both tables from one engine run.
func (w *GreptimeWriter) WriteResult(ctx context.Context, res *incident.Result) error {
	metrics, err := metricsIngestTable(res)
	if err != nil {
		return err
	}
	logs, err := logsIngestTable(res)
	if err != nil {
		return err
	}
	if _, err := w.client.Write(ctx, metrics, logs); err != nil {
		w.log.Error("greptime write failed", "err", err)
		return err
	}
	w.log.Info("wrote correlated tables",
		"metrics_rows", len(res.Metrics), "log_rows", len(res.Logs))
	return nil
}

func splitEndpoint(endpoint string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(endpoint)
	if err != nil {
		return endpoint, defaultGreptimePort, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return "", 0, fmt.Errorf("invalid greptime port %q", portStr)
	}
	return host, port, nil
}

func metricsIngestTable(res *incident.Result) (*table.Table, error) {
	tbl, err := table.New("vm_metrics")
	if err != nil {
		return nil, err
	}
	if err := tbl.AddTagColumn("hostname", types.STRING); err != nil {
		return nil, err
	}
	fields := []struct {
		name string
		typ  types.ColumnType
	}{
		{"cpu_usage_percent", types.FLOAT64},
		{"memory_usage_percent", types.FLOAT64},
		{"memory_available_gb", types.FLOAT64},
		{"disk_io_ops", types.INT64},
		{"network_throughput_mbps", types.FLOAT64},
		{"load_average_1min", types.FLOAT64},
		{"load_average_5min", types.FLOAT64},
	}
	for _, f := range fields {
		if err := tbl.AddFieldColumn(f.name, f.typ); err != nil {
			return nil, err
		}
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return nil, err
	}

	// Values follow column declaration order: tag, fields, timestamp.
	for _, m := range res.Metrics {
		err := tbl.AddRow(m.Hostname, m.CPUPercent, m.MemoryPercent,
			m.MemoryAvailableGB, int64(m.DiskIOOps), m.NetworkMbps,
			m.Load1, m.Load5, m.Timestamp)
		if err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func logsIngestTable(res *incident.Result) (*table.Table, error) {
	tbl, err := table.New("app_logs")
	if err != nil {
		return nil, err
	}
	for _, tag := range []string{"hostname", "service"} {
		if err := tbl.AddTagColumn(tag, types.STRING); err != nil {
			return nil, err
		}
	}
	fields := []struct {
		name string
		typ  types.ColumnType
	}{
		{"level", types.STRING},
		{"message", types.STRING},
		{"response_time_ms", types.INT64},
		{"bytes_transferred", types.INT64},
		{"status_code", types.INT64},
	}
	for _, f := range fields {
		if err := tbl.AddFieldColumn(f.name, f.typ); err != nil {
			return nil, err
		}
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return nil, err
	}

	for _, l := range res.Logs {
		err := tbl.AddRow(l.Hostname, l.Service, l.Level, l.Message,
			int64(l.ResponseTimeMS), int64(l.BytesTransferred),
			int64(l.StatusCode), l.Timestamp)
		if err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
