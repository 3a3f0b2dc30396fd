// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Host describes one simulated machine and the services it runs.
type Host struct {
	Name     string   `yaml:"name"`
	Services []string `yaml:"services"`
}

// Limits bounds a single generation run. Requests above a limit are
// rejected before any rows are produced.
type Limits struct {
	MaxRecords   int `yaml:"max_records"`
	MaxIntervals int `yaml:"max_intervals"`
}

// GeneratorConfig is the root configuration for the generators.
type GeneratorConfig struct {
	Hosts  []Host `yaml:"hosts"`
	Limits Limits `yaml:"limits"`
}

// Default returns the built-in configuration used when no config file
// is supplied.
func Default() *GeneratorConfig {
	return &GeneratorConfig{
		Hosts: []Host{
			{Name: "web-server-01", Services: []string{"nginx", "app", "api"}},
			{Name: "web-server-02", Services: []string{"nginx", "app", "api"}},
			{Name: "db-server-01", Services: []string{"postgres", "backup"}},
			{Name: "cache-server-01", Services: []string{"redis", "app"}},
			{Name: "worker-01", Services: []string{"worker", "scheduler"}},
		},
		Limits: Limits{MaxRecords: 5000, MaxIntervals: 2000},
	}
}

// Load reads a YAML config, validates it against a CUE schema, and
// fills unset limits from the defaults.
func Load(configPath, cueSchemaPath string) (*GeneratorConfig, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg GeneratorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	def := Default()
	if cfg.Limits.MaxRecords <= 0 {
		cfg.Limits.MaxRecords = def.Limits.MaxRecords
	}
	if cfg.Limits.MaxIntervals <= 0 {
		cfg.Limits.MaxIntervals = def.Limits.MaxIntervals
	}
	if len(cfg.Hosts) == 0 {
		return nil, fmt.Errorf("config %s: no hosts defined", configPath)
	}
	for _, h := range cfg.Hosts {
		if len(h.Services) == 0 {
			return nil, fmt.Errorf("config %s: host %q has no services", configPath, h.Name)
		}
	}

	return &cfg, nil
}
