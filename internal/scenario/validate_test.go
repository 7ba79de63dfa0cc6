package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func TestValidateRaw(t *testing.T) {
	t.Run("empty config is fine, resolution catches absence", func(t *testing.T) {
		require.NoError(t, ValidateRaw(RawConfig{}))
	})

	t.Run("density ordering", func(t *testing.T) {
		err := ValidateRaw(RawConfig{Farm: FarmConfig{
			MinDensity: fp(3600),
			MaxDensity: fp(1200),
		}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "min_density must be below")
	})

	t.Run("all violations reported together", func(t *testing.T) {
		err := ValidateRaw(RawConfig{
			Model: ModelConfig{
				HarvestLoss:   fp(150),
				PercentUsable: fp(0),
			},
			Farm: FarmConfig{InitialLag: ip(-1)},
			Demand: &DemandConfig{
				FoodLimit: fp(1.5),
			},
			Run: RunBlock{Clusters: ip(0)},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model.harvest_loss")
		assert.Contains(t, err.Error(), "model.percent_usable_for_growth")
		assert.Contains(t, err.Error(), "farm.initial_lag")
		assert.Contains(t, err.Error(), "demand.food_limit")
		assert.Contains(t, err.Error(), "run.clusters")
	})

	t.Run("used area cannot exceed built area", func(t *testing.T) {
		err := ValidateRaw(RawConfig{Farm: FarmConfig{
			InitialAreaBuilt: fp(10),
			InitialAreaUsed:  fp(20),
		}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "initial_area_used")
	})
}
