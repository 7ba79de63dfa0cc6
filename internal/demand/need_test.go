package demand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeaweedNeeded(t *testing.T) {
	t.Run("reference values", func(t *testing.T) {
		// 7.8e9 people × 2100 kcal, 13 % waste, 30 % substitutable,
		// 288200 kcal per tonne wet.
		got := SeaweedNeeded(7.8e9, 2100, 13, 288200, 0.3)
		want := 7.8e9 * 2100 * 1.13 * 0.3 / 288200
		assert.InDelta(t, want, got, want*1e-12)
	})

	t.Run("no substitution means no need", func(t *testing.T) {
		assert.Zero(t, SeaweedNeeded(7.8e9, 2100, 13, 288200, 0))
	})

	t.Run("waste inflates demand linearly", func(t *testing.T) {
		base := SeaweedNeeded(1e9, 2000, 0, 288200, 0.2)
		wasted := SeaweedNeeded(1e9, 2000, 50, 288200, 0.2)
		assert.InDelta(t, base*1.5, wasted, base*1e-12)
	})
}
