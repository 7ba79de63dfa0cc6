// Package driver orchestrates the scenario × cluster batch: calibrate,
// size the production run, run it and persist the trace.
package driver

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/florianjehn/Seaweed-Scaleup-Model/internal/demand"
	"github.com/florianjehn/Seaweed-Scaleup-Model/internal/report"
	"github.com/florianjehn/Seaweed-Scaleup-Model/internal/scenario"
	"github.com/florianjehn/Seaweed-Scaleup-Model/internal/seaweed"
	"github.com/florianjehn/Seaweed-Scaleup-Model/internal/timeseries"
)

// Driver runs every requested scenario × cluster combination.
type Driver struct {
	Loader     *scenario.Loader
	DataDir    string // <DataDir>/<location>/<scenario>/actual_growth_rate_by_cluster.csv
	ResultsDir string
	Log        *zap.Logger
	Workers    int // concurrent cluster runs per scenario; <=0 runs all at once

	// ClustersOverride, when > 0, replaces the configured cluster count.
	ClustersOverride int
}

func (d *Driver) logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}

// RunAll runs the scenarios in order and writes the cross-cluster
// growth-rate summary at the end.
func (d *Driver) RunAll(ctx context.Context, location string, scenarios []string) error {
	var summary []report.GrowthRateRow
	for _, scn := range scenarios {
		rows, err := d.RunScenario(ctx, location, scn)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", scn, err)
		}
		summary = append(summary, rows...)
	}
	return report.WriteGrowthRateSummary(d.ResultsDir, location, summary)
}

// RunScenario resolves the scenario's parameters and fans its clusters out
// over a worker pool. Runs share nothing mutable, so no locking is needed;
// each worker writes only its own summary slot.
func (d *Driver) RunScenario(ctx context.Context, location, scn string) ([]report.GrowthRateRow, error) {
	raw, err := d.Loader.LoadMerged(location, scn)
	if err != nil {
		return nil, err
	}
	params, err := scenario.Resolve(raw)
	if err != nil {
		return nil, err
	}
	if d.ClustersOverride > 0 {
		params.Clusters = d.ClustersOverride
	}

	need := demand.SeaweedNeeded(
		params.GlobalPop,
		params.CaloriesPerPersonPerDay,
		params.FoodWaste,
		params.CaloriesPerTonneWet,
		params.SubstitutionLimit(),
	)
	log := d.logger().With(zap.String("location", location), zap.String("scenario", scn))
	log.Info("running scenario",
		zap.Int("clusters", params.Clusters),
		zap.Float64("seaweed_needed_per_day_t", need))

	rows := make([]report.GrowthRateRow, params.Clusters)
	g, ctx := errgroup.WithContext(ctx)
	if d.Workers > 0 {
		g.SetLimit(d.Workers)
	}
	for cluster := 1; cluster <= params.Clusters; cluster++ {
		cluster := cluster
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := d.runCluster(params, location, scn, cluster, need,
				log.With(zap.Int("cluster", cluster)))
			if err != nil {
				return fmt.Errorf("cluster %d: %w", cluster, err)
			}
			rows[cluster-1] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// runCluster calibrates one cluster, skips it when it is not productive
// enough, and otherwise runs and persists the production trace.
func (d *Driver) runCluster(p scenario.Params, location, scn string, cluster int, need float64, log *zap.Logger) (report.GrowthRateRow, error) {
	series, err := timeseries.Load(filepath.Join(d.DataDir, location, scn), cluster)
	if err != nil {
		return report.GrowthRateRow{}, err
	}
	mean := timeseries.Mean(series)
	row := report.GrowthRateRow{Scenario: scn, Cluster: cluster, MeanGrowthRate: mean}
	log.Info("cluster growth rate", zap.Float64("mean_fraction", mean))

	productivity, ok, err := seaweed.Productivity(
		seaweed.ConstantFraction(mean), p.CalibrationDays, p.PercentUsable, p.OptimalGrowthRate, p.HarvestLoss)
	if err != nil {
		return row, err
	}
	if !ok {
		// Not an error: the cluster just cannot sustain a harvest cycle.
		log.Warn("not productive enough, skipping cluster")
		return row, nil
	}

	maxArea := need / productivity
	log.Info("calibrated",
		zap.Float64("productivity_t_per_km2_day", productivity),
		zap.Float64("max_area_km2", maxArea))

	records, err := seaweed.Run(seaweed.RunConfig{
		InitialSeaweed:      p.InitialSeaweed,
		InitialAreaBuilt:    p.InitialAreaBuilt,
		InitialAreaUsed:     p.InitialAreaUsed,
		NewModuleAreaPerDay: p.NewModuleAreaPerDay,
		MinDensity:          p.MinDensity,
		MaxDensity:          p.MaxDensity,
		MaxArea:             maxArea,
		OptimalGrowthRate:   p.OptimalGrowthRate,
		GrowthFraction:      seaweed.SeriesFraction(series),
		InitialLag:          p.InitialLag,
		PercentUsable:       p.PercentUsable,
		HarvestLossPercent:  p.HarvestLoss,
		DaysToRun:           p.DaysToRun,
		Hooks: seaweed.Hooks{
			OnMaxAreaReached: func(day int) {
				log.Info("max area reached",
					zap.Int("day", day),
					zap.Float64("month", float64(day)/30))
			},
			OnHarvest: func(day, interval int, wet float64) {
				log.Debug("harvest",
					zap.Int("day", day),
					zap.Int("interval", interval),
					zap.Float64("wet_t", wet))
			},
		},
	})
	if err != nil {
		return row, err
	}

	stats := seaweed.SummarizeIntervals(records)
	log.Info("run finished",
		zap.Int("harvests", stats.Harvests),
		zap.Float64("interval_mean_days", stats.Mean),
		zap.Float64("cumulative_food_t", records[len(records)-1].CumulativeFood))

	// The calibrated productivity refers to growable area only; the report
	// carries the total built-area equivalent.
	totalArea := maxArea / (p.PercentUsable / 100)
	if err := report.WriteClusterRun(d.ResultsDir, location, scn, cluster, records, totalArea, need); err != nil {
		return row, err
	}
	return row, nil
}
