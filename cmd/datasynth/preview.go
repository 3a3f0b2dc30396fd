package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"datasynth/internal/generate"
	"datasynth/internal/incident"
	"datasynth/internal/preview"
)

var (
	prevKind     string
	prevCount    int
	prevScenario string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a dataset in the terminal",
	Long: "preview builds a dataset and shows its head in an interactive terminal table. " +
		"With --scenario set, the correlated vm_metrics table is previewed instead of --kind.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if prevScenario != "" {
			scenario, err := incident.ParseScenario(prevScenario)
			if err != nil {
				return err
			}
			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewSource(seed))
			}
			res, err := incident.NewEngine(cfg, rng).Generate(prevCount, scenario)
			if err != nil {
				return err
			}
			return preview.Run(res.MetricsTable())
		}

		kind, err := generate.ParseKind(prevKind)
		if err != nil {
			return err
		}
		table, err := generate.New(cfg, seed).Build(kind, prevCount)
		if err != nil {
			return err
		}
		return preview.Run(table)
	},
}

func init() {
	previewCmd.Flags().StringVar(&prevKind, "kind", string(generate.KindPersonal), "Dataset kind to preview")
	previewCmd.Flags().IntVar(&prevCount, "count", 100, "Number of records (or intervals with --scenario)")
	previewCmd.Flags().StringVar(&prevScenario, "scenario", "", "Preview the correlated metrics table for this scenario")
}
