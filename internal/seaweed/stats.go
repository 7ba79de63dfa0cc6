package seaweed

import (
	"math"
	"sort"
)

// IntervalStats summarizes the harvest intervals of a finished run.
type IntervalStats struct {
	Harvests int     `json:"harvests"`
	Mean     float64 `json:"mean"`
	Var      float64 `json:"var"`
	StdDev   float64 `json:"std_dev"`
	P50      float64 `json:"p50"`
	P90      float64 `json:"p90"`
	P99      float64 `json:"p99"`
}

// SummarizeIntervals computes mean/variance/percentiles over every harvest
// interval recorded in the trace. A run without harvests yields the zero
// value.
func SummarizeIntervals(records []DailyRecord) IntervalStats {
	var xs []int
	for _, r := range records {
		if r.HarvestInterval != nil {
			xs = append(xs, *r.HarvestInterval)
		}
	}
	n := len(xs)
	if n == 0 {
		return IntervalStats{}
	}

	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return IntervalStats{
		Harvests: n,
		Mean:     mean,
		Var:      variance,
		StdDev:   math.Sqrt(variance),
		P50:      percentile(0.50),
		P90:      percentile(0.90),
		P99:      percentile(0.99),
	}
}
