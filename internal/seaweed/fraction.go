package seaweed

import "fmt"

// GrowthFraction supplies the day's growth-rate fraction: either one
// scalar applied every day or a per-day series.
type GrowthFraction struct {
	constant *float64
	series   []float64
}

// ConstantFraction applies v on every day of the run.
func ConstantFraction(v float64) GrowthFraction {
	return GrowthFraction{constant: &v}
}

// SeriesFraction indexes vs by day; it must cover the whole run.
func SeriesFraction(vs []float64) GrowthFraction {
	return GrowthFraction{series: vs}
}

// resolve turns the variant into a per-day accessor, validated against the
// run length so the day loop never has to inspect the input shape.
func (g GrowthFraction) resolve(days int) (func(day int) float64, error) {
	switch {
	case g.constant != nil:
		v := *g.constant
		return func(int) float64 { return v }, nil
	case g.series != nil:
		if len(g.series) < days {
			return nil, fmt.Errorf("%w: growth fraction series has %d values, run needs %d",
				ErrConfig, len(g.series), days)
		}
		s := g.series
		return func(day int) float64 { return s[day] }, nil
	default:
		return nil, fmt.Errorf("%w: growth fraction must be a constant or a series", ErrConfig)
	}
}
