// Package timeseries reads the per-cluster daily growth-rate fractions
// produced by the upstream growth model.
package timeseries

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// FileName is the tabular export the growth model writes: one column per
// cluster, one row per calendar day.
const FileName = "actual_growth_rate_by_cluster.csv"

// columnName returns the header of a cluster's column.
func columnName(cluster int) string {
	return "growth_daily_cluster_" + strconv.Itoa(cluster)
}

// Load reads the growth-rate-fraction series for one cluster from
// dir/actual_growth_rate_by_cluster.csv. Values are fractions of the
// optimal growth rate, one per day.
func Load(dir string, cluster int) ([]float64, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open growth timeseries: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	want := columnName(cluster)
	col := -1
	for i, name := range rows[0] {
		if name == want {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%s: no column %q", path, want)
	}

	series := make([]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d column %q: %w", path, i+2, want, err)
		}
		series = append(series, v)
	}
	return series, nil
}

// Mean is the arithmetic mean of the series, used as the calibration
// scalar. An empty series yields 0.
func Mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}
