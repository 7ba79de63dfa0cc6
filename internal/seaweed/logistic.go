package seaweed

import "math"

// BuildOutFunc yields the farm area in km² that can be built on a given
// day of the scale-up.
type BuildOutFunc func(day int) float64

// Fitted constants of the global build-out estimate. The fit assumes
// module construction ramps up slowly, accelerates around the midpoint
// and saturates once shipyards run at capacity.
const (
	buildOutMaxL = 4.15610385e03
	buildOutK    = 2.83799528e-02
	buildOutX0   = 1.57630971e02
	buildOutOff  = -4.10270637e01
)

// LogisticCurve evaluates a logistic growth curve at x.
func LogisticCurve(x, maxL, k, x0, off float64) float64 {
	return maxL/(1+math.Exp(-k*(x-x0))) + off
}

// FarmAreaPerDay is the default BuildOutFunc: the fitted logistic estimate
// of buildable area per day. Saturates at maxL+off for large day values.
func FarmAreaPerDay(day int) float64 {
	return LogisticCurve(float64(day), buildOutMaxL, buildOutK, buildOutX0, buildOutOff)
}
