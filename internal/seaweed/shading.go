package seaweed

import (
	"fmt"
	"math"
)

// Self-shading parameters for Gracilaria tikvahiae, from
// Lapointe & Ryther (1978), Aquaculture 15(3).
const (
	shadingOnset = 0.4 // kg/m²
	shadingDecay = 0.513
)

// SelfShading returns the growth attenuation caused by crowding.
// density is in kg/m² and must be strictly positive. Below the onset
// density there is no shading; above it the factor decays toward 0.
func SelfShading(density float64) (float64, error) {
	if math.IsNaN(density) || density <= 0 {
		return 0, fmt.Errorf("%w: self-shading needs density > 0, got %g", ErrDomain, density)
	}
	if density < shadingOnset {
		return 1, nil
	}
	return math.Exp(-shadingDecay * (density - shadingOnset)), nil
}
