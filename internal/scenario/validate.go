package scenario

import (
	"fmt"
	"strings"
)

// ValidateRaw checks semantic constraints of a merged RawConfig. All
// violations are reported at once.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	if cfg.Model.OptimalGrowthRate != nil && *cfg.Model.OptimalGrowthRate <= 0 {
		errs = append(errs, "model.optimal_growth_rate must be > 0")
	}
	if cfg.Model.DaysToRun != nil && *cfg.Model.DaysToRun <= 0 {
		errs = append(errs, "model.days_to_run must be >= 1")
	}
	if cfg.Model.HarvestLoss != nil {
		if *cfg.Model.HarvestLoss < 0 || *cfg.Model.HarvestLoss > 100 {
			errs = append(errs, "model.harvest_loss must be in [0,100] percent")
		}
	}
	if cfg.Model.PercentUsable != nil {
		if *cfg.Model.PercentUsable <= 0 || *cfg.Model.PercentUsable > 100 {
			errs = append(errs, "model.percent_usable_for_growth must be in (0,100] percent")
		}
	}
	if cfg.Model.CalibrationDays != nil && *cfg.Model.CalibrationDays <= 0 {
		errs = append(errs, "model.calibration_days must be >= 1")
	}

	if cfg.Farm.MinDensity != nil && *cfg.Farm.MinDensity <= 0 {
		errs = append(errs, "farm.min_density must be > 0")
	}
	if cfg.Farm.MaxDensity != nil && *cfg.Farm.MaxDensity <= 0 {
		errs = append(errs, "farm.max_density must be > 0")
	}
	if cfg.Farm.MinDensity != nil && cfg.Farm.MaxDensity != nil &&
		*cfg.Farm.MinDensity >= *cfg.Farm.MaxDensity {
		errs = append(errs, "farm.min_density must be below farm.max_density")
	}
	if cfg.Farm.InitialSeaweed != nil && *cfg.Farm.InitialSeaweed <= 0 {
		errs = append(errs, "farm.initial_seaweed must be > 0")
	}
	if cfg.Farm.InitialAreaUsed != nil && *cfg.Farm.InitialAreaUsed <= 0 {
		errs = append(errs, "farm.initial_area_used must be > 0")
	}
	if cfg.Farm.InitialAreaBuilt != nil && cfg.Farm.InitialAreaUsed != nil &&
		*cfg.Farm.InitialAreaUsed > *cfg.Farm.InitialAreaBuilt {
		errs = append(errs, "farm.initial_area_used cannot exceed farm.initial_area_built")
	}
	if cfg.Farm.NewModuleAreaPerDay != nil && *cfg.Farm.NewModuleAreaPerDay < 0 {
		errs = append(errs, "farm.new_module_area_per_day must be >= 0")
	}
	if cfg.Farm.InitialLag != nil && *cfg.Farm.InitialLag < 0 {
		errs = append(errs, "farm.initial_lag must be >= 0")
	}

	if cfg.Demand != nil {
		if cfg.Demand.GlobalPop != nil && *cfg.Demand.GlobalPop <= 0 {
			errs = append(errs, "demand.global_pop must be > 0")
		}
		if cfg.Demand.CaloriesPerPersonPerDay != nil && *cfg.Demand.CaloriesPerPersonPerDay <= 0 {
			errs = append(errs, "demand.calories_per_person_per_day must be > 0")
		}
		if cfg.Demand.FoodWaste != nil {
			if *cfg.Demand.FoodWaste < 0 || *cfg.Demand.FoodWaste > 100 {
				errs = append(errs, "demand.food_waste must be in [0,100] percent")
			}
		}
		if cfg.Demand.CaloriesPerTonneWet != nil && *cfg.Demand.CaloriesPerTonneWet <= 0 {
			errs = append(errs, "demand.calories_per_t_seaweed_wet must be > 0")
		}
		for _, lim := range []struct {
			name string
			v    *float64
		}{
			{"demand.food_limit", cfg.Demand.FoodLimit},
			{"demand.feed_limit", cfg.Demand.FeedLimit},
			{"demand.biofuel_limit", cfg.Demand.BiofuelLimit},
		} {
			if lim.v != nil && (*lim.v < 0 || *lim.v > 1) {
				errs = append(errs, lim.name+" must be in [0,1]")
			}
		}
	}

	if cfg.Run.Clusters != nil && *cfg.Run.Clusters < 1 {
		errs = append(errs, "run.clusters must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
