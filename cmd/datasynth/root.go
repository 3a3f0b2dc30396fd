package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"datasynth/internal/config"
	"datasynth/internal/logging"
)

var (
	cfgPath    string
	schemaPath string
	seed       int64
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "datasynth",
	Short: "Synthetic tabular data toolkit",
	Long:  "datasynth generates realistic tabular datasets and correlated VM metrics + application logs for testing and development.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to generator configuration YAML (built-in defaults when empty)")
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "schemas/datasynth.cue", "Path to CUE schema file")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed (0 = wall clock, nonzero = reproducible output)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the configured YAML file or falls back to the
// built-in defaults when no path was given.
func loadConfig() (*config.GeneratorConfig, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(cfgPath, schemaPath)
}

func newLogger() *slog.Logger {
	return logging.New(verbose)
}
