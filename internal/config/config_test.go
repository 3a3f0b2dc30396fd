package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.Hosts) == 0 {
		t.Fatal("default config has no hosts")
	}
	for _, h := range cfg.Hosts {
		if h.Name == "" || len(h.Services) == 0 {
			t.Errorf("host %+v incomplete", h)
		}
	}
	if cfg.Limits.MaxRecords <= 0 || cfg.Limits.MaxIntervals <= 0 {
		t.Errorf("default limits not set: %+v", cfg.Limits)
	}
}

func TestLoadConfig_Valid(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "hosts.yaml")
	yaml := `
hosts:
  - name: test-host-01
    services: [nginx, app]
limits:
  max_intervals: 100
`
	if err := os.WriteFile(tmpFile, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := Load(tmpFile, "../../schemas/datasynth.cue")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(cfg.Hosts) != 1 || cfg.Hosts[0].Name != "test-host-01" {
		t.Errorf("unexpected host data: %+v", cfg.Hosts)
	}
	if cfg.Limits.MaxIntervals != 100 {
		t.Errorf("MaxIntervals = %d, want 100", cfg.Limits.MaxIntervals)
	}
	// Unset limits fall back to defaults.
	if cfg.Limits.MaxRecords != Default().Limits.MaxRecords {
		t.Errorf("MaxRecords = %d, want default", cfg.Limits.MaxRecords)
	}
}

func TestLoadConfig_NoHosts(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(tmpFile, []byte("hosts: []\n"), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	if _, err := Load(tmpFile, "../../schemas/datasynth.cue"); err == nil {
		t.Fatal("expected error for config without hosts")
	}
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "bad.yaml")
	yaml := `
hosts:
  - name: test-host-01
    services: []
`
	if err := os.WriteFile(tmpFile, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	if _, err := Load(tmpFile, "../../schemas/datasynth.cue"); err == nil {
		t.Fatal("expected schema validation error for host without services")
	}
}
