// Package report persists finished runs as tabular files, one per
// scenario/cluster plus one cross-cluster summary. Nothing is written
// while a run is still in progress; an aborted run persists nothing.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/florianjehn/Seaweed-Scaleup-Model/internal/seaweed"
)

// GrowthRateRow is one line of the cross-cluster summary.
type GrowthRateRow struct {
	Scenario       string
	Cluster        int
	MeanGrowthRate float64
}

var clusterHeader = []string{
	"day",
	"new_module_area_per_day",
	"growth_multiplier",
	"harvest_interval",
	"remaining_to_grow",
	"harvest_wet",
	"harvest_after_loss",
	"harvest_for_food",
	"new_area_used",
	"seaweed_need",
	"area_built",
	"area_used",
	"seaweed",
	"density",
	"cumulative_harvest_for_food",
	"max_area",
	"cluster",
	"seaweed_needed_per_day",
}

// WriteClusterRun writes the full daily trace of one cluster's production
// run to <resultsDir>/<location>/<scenario>/harvest_df_cluster_<n>.csv.
// maxArea is the total built-area equivalent (already scaled back by the
// usable percentage); seaweedNeeded is the demand per day driving the run.
func WriteClusterRun(resultsDir, location, scenario string, cluster int, records []seaweed.DailyRecord, maxArea, seaweedNeeded float64) error {
	dir := filepath.Join(resultsDir, location, scenario)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("harvest_df_cluster_%d.csv", cluster))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(clusterHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Day),
			num(r.NewModuleArea),
			num(r.GrowthMultiplier),
			optInt(r.HarvestInterval),
			opt(r.RemainingToGrow),
			opt(r.HarvestWet),
			opt(r.HarvestAfterLoss),
			opt(r.HarvestForFood),
			opt(r.NewAreaUsed),
			num(r.SeaweedNeed),
			num(r.AreaBuilt),
			num(r.AreaUsed),
			num(r.Seaweed),
			num(r.Density),
			num(r.CumulativeFood),
			num(maxArea),
			strconv.Itoa(cluster),
			num(seaweedNeeded),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteGrowthRateSummary writes the cross-cluster mean growth rates to
// <resultsDir>/<location>/scenario_max_growth_rates.csv.
func WriteGrowthRateSummary(resultsDir, location string, rows []GrowthRateRow) error {
	dir := filepath.Join(resultsDir, location)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	path := filepath.Join(dir, "scenario_max_growth_rates.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"scenario", "cluster", "max_growth_rate"}); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{r.Scenario, strconv.Itoa(r.Cluster), num(r.MeanGrowthRate)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// opt renders harvest-only fields, empty on non-harvest days.
func opt(v *float64) string {
	if v == nil {
		return ""
	}
	return num(*v)
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
