// Command scaleup runs the seaweed scale-up batch: for every scenario and
// cluster it calibrates productivity, sizes the build-out and writes the
// daily harvest trace as CSV.
package main

import (
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/florianjehn/Seaweed-Scaleup-Model/internal/driver"
	"github.com/florianjehn/Seaweed-Scaleup-Model/internal/scenario"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configDir  string
		dataDir    string
		resultsDir string
		location   string
		scenarios  []string
		clusters   int
		workers    int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "scaleup",
		Short:         "Simulate the day-by-day scale-up of open-ocean seaweed farming",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := buildLogger(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			loader := scenario.NewLoader(configDir)
			base, err := loadBase(loader, location)
			if err != nil {
				return err
			}
			if location == "" {
				location = base.Location
			}
			if location == "" {
				return fmt.Errorf("no location given and none configured")
			}

			run := scenarios
			if len(run) == 0 {
				run = base.Scenarios
			}
			if len(run) == 0 {
				return fmt.Errorf("no scenarios given and none configured")
			}
			for _, name := range run {
				if err := checkScenarioName(name, base.Scenarios); err != nil {
					return err
				}
			}

			d := &driver.Driver{
				Loader:           loader,
				DataDir:          dataDir,
				ResultsDir:       resultsDir,
				Log:              logger,
				Workers:          workers,
				ClustersOverride: clusters,
			}
			return d.RunAll(cmd.Context(), location, run)
		},
	}

	cmd.Flags().StringVar(&configDir, "config", "config", "base directory of the layered YAML config")
	cmd.Flags().StringVar(&dataDir, "data", "data", "base directory of the growth-rate timeseries")
	cmd.Flags().StringVar(&resultsDir, "results", "results", "directory the CSV traces are written to")
	cmd.Flags().StringVar(&location, "location", "", "location key (defaults to the configured one)")
	cmd.Flags().StringSliceVar(&scenarios, "scenarios", nil, "scenarios to run (defaults to the configured list)")
	cmd.Flags().IntVar(&clusters, "clusters", 0, "override the configured cluster count")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent cluster runs per scenario (0 = all at once)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-harvest events")

	return cmd
}

// loadBase resolves the default+location layers; the scenario list and the
// configured location live there.
func loadBase(loader *scenario.Loader, location string) (scenario.Params, error) {
	raw, err := loader.LoadMerged(location, "")
	if err != nil {
		return scenario.Params{}, err
	}
	return scenario.Resolve(raw)
}

// checkScenarioName rejects names missing from the configured list and
// suggests the closest configured one.
func checkScenarioName(name string, known []string) error {
	if len(known) == 0 {
		return nil
	}
	best := ""
	bestDist := -1
	for _, k := range known {
		if k == name {
			return nil
		}
		dist := levenshtein.ComputeDistance(name, k)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = k, dist
		}
	}
	if bestDist >= 0 && bestDist <= len(best)/2 {
		return fmt.Errorf("unknown scenario %q (did you mean %q?)", name, best)
	}
	return fmt.Errorf("unknown scenario %q", name)
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
