package seaweed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductivity(t *testing.T) {
	t.Run("unit run stabilizes", func(t *testing.T) {
		// Reference configuration: 1 t on 1 km², no building, fraction 0.5
		// of a 5 %/day optimal rate over 500 days.
		records, err := Run(unitConfig())
		require.NoError(t, err)

		var intervals []int
		var lastFoodHarvest float64
		for _, r := range records {
			if r.HarvestInterval != nil {
				intervals = append(intervals, *r.HarvestInterval)
			}
			if r.HarvestForFood != nil {
				lastFoodHarvest = *r.HarvestForFood
			}
		}
		require.GreaterOrEqual(t, len(intervals), 3)
		tail := intervals[len(intervals)-3:]
		assert.Equal(t, tail[0], tail[1], "harvest interval must become constant")
		assert.Equal(t, tail[1], tail[2], "harvest interval must become constant")
		assert.GreaterOrEqual(t, lastFoodHarvest, 0.0)
	})

	t.Run("productive configuration", func(t *testing.T) {
		got, ok, err := Productivity(ConstantFraction(0.5), 500, 100, 5, 0)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Greater(t, got, 0.0)
	})

	t.Run("harvest loss lowers the yield", func(t *testing.T) {
		lossless, ok, err := Productivity(ConstantFraction(0.5), 500, 100, 5, 0)
		require.NoError(t, err)
		require.True(t, ok)

		lossy, ok, err := Productivity(ConstantFraction(0.5), 500, 100, 5, 20)
		require.NoError(t, err)
		require.True(t, ok)

		// With a fixed farm the harvest cycle itself is unchanged, so the
		// yield scales with the retained fraction of each harvest.
		assert.InEpsilon(t, lossless*0.8, lossy, 1e-12)
	})

	t.Run("no harvest means no productivity", func(t *testing.T) {
		got, ok, err := Productivity(ConstantFraction(0), 500, 100, 5, 0)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, got)
	})

	t.Run("engine errors pass through", func(t *testing.T) {
		_, _, err := Productivity(GrowthFraction{}, 500, 100, 5, 0)
		require.ErrorIs(t, err, ErrConfig)
	})
}
