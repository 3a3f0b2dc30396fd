package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"datasynth/internal/dataset"
	"datasynth/internal/export"
	"datasynth/internal/incident"
)

var (
	corIntervals int
	corScenario  string
	corFormat    string
	corOut       string
)

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Generate correlated VM metrics and application logs",
	Long: "correlate runs the incident engine over the configured host pool and writes " +
		"two time-aligned tables (vm_metrics, app_logs) that share timestamps, hostnames, " +
		"and incident state. Set GREPTIMEDB_ENDPOINT to additionally persist both tables.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		scenario, err := incident.ParseScenario(corScenario)
		if err != nil {
			return err
		}
		format, err := export.ParseFormat(corFormat)
		if err != nil {
			return err
		}

		log := newLogger()
		var rng *rand.Rand
		if seed != 0 {
			rng = rand.New(rand.NewSource(seed))
		}
		engine := incident.NewEngine(cfg, rng)
		res, err := engine.Generate(corIntervals, scenario)
		if err != nil {
			return err
		}
		log.Info("correlated run complete",
			"scenario", scenario,
			"metrics_rows", len(res.Metrics),
			"log_rows", len(res.Logs))

		if endpoint := os.Getenv("GREPTIMEDB_ENDPOINT"); endpoint != "" {
			gw, err := export.NewGreptimeWriter(endpoint, "public", log)
			if err != nil {
				return err
			}
			if err := gw.WriteResult(cmd.Context(), res); err != nil {
				return err
			}
		}

		for _, t := range []*dataset.Table{res.MetricsTable(), res.LogsTable()} {
			if err := writeTable(t, format); err != nil {
				return err
			}
		}
		return nil
	},
}

func writeTable(t *dataset.Table, format export.Format) error {
	exp, err := export.For(format)
	if err != nil {
		return err
	}
	path := filepath.Join(corOut, fmt.Sprintf("%s.%s", t.Name, exp.Ext()))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return exp.Export(t, f)
}

func init() {
	correlateCmd.Flags().IntVar(&corIntervals, "intervals", 288, "Number of 5-minute intervals to simulate (288 = 24h)")
	correlateCmd.Flags().StringVar(&corScenario, "scenario", string(incident.ScenarioNormalOperations), "Scenario (performance_issues, normal_operations, mixed_scenarios)")
	correlateCmd.Flags().StringVar(&corFormat, "format", string(export.FormatCSV), "Export format (csv, json, xlsx, zip)")
	correlateCmd.Flags().StringVar(&corOut, "out", ".", "Output directory for vm_metrics and app_logs files")
}
