package export

import (
	"math/rand"
	"testing"

	"datasynth/internal/config"
	"datasynth/internal/incident"
)

func TestIngestTables_FromEngineRun(t *testing.T) {
	cfg := &config.GeneratorConfig{
		Hosts: []config.Host{
			{Name: "web-01", Services: []string{"nginx", "app"}},
			{Name: "db-01", Services: []string{"postgres"}},
		},
		Limits: config.Limits{MaxRecords: 5000, MaxIntervals: 2000},
	}
	engine := incident.NewEngine(cfg, rand.New(rand.NewSource(1)))
	res, err := engine.Generate(50, incident.ScenarioPerformanceIssues)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	metrics, err := metricsIngestTable(res)
	if err != nil {
		t.Fatalf("building metrics ingest table: %v", err)
	}
	if metrics == nil {
		t.Fatal("nil metrics table")
	}

	logs, err := logsIngestTable(res)
	if err != nil {
		t.Fatalf("building logs ingest table: %v", err)
	}
	if logs == nil {
		t.Fatal("nil logs table")
	}
}

func TestSplitEndpoint(t *testing.T) {
	cases := []struct {
		in       string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{"localhost:4001", "localhost", 4001, false},
		{"db.example.com:4002", "db.example.com", 4002, false},
		{"localhost", "localhost", 4001, false},
		{"localhost:notaport", "", 0, true},
	}
	for _, tc := range cases {
		host, port, err := splitEndpoint(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("splitEndpoint(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("splitEndpoint(%q) returned error: %v", tc.in, err)
			continue
		}
		if host != tc.wantHost || port != tc.wantPort {
			t.Errorf("splitEndpoint(%q) = (%q, %d), want (%q, %d)", tc.in, host, port, tc.wantHost, tc.wantPort)
		}
	}
}
