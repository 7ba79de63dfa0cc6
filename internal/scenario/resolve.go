package scenario

import (
	"fmt"
	"strings"
)

// Defaults applied during resolution.
const (
	defaultCalibrationDays = 500
	defaultClusters        = 1
)

// Resolve validates a merged RawConfig and flattens it into Params,
// applying defaults for the optional fields. Required fields that are
// still missing after merging are reported together.
func Resolve(cfg RawConfig) (Params, error) {
	if err := ValidateRaw(cfg); err != nil {
		return Params{}, err
	}

	var missing []string
	need := func(name string, present bool) bool {
		if !present {
			missing = append(missing, name)
		}
		return present
	}

	p := Params{
		Version:         cfg.Version,
		CalibrationDays: defaultCalibrationDays,
		Clusters:        defaultClusters,
		Location:        cfg.Run.Location,
		Scenarios:       append([]string(nil), cfg.Run.Scenarios...),
	}

	if need("model.optimal_growth_rate", cfg.Model.OptimalGrowthRate != nil) {
		p.OptimalGrowthRate = *cfg.Model.OptimalGrowthRate
	}
	if need("model.days_to_run", cfg.Model.DaysToRun != nil) {
		p.DaysToRun = *cfg.Model.DaysToRun
	}
	if need("model.harvest_loss", cfg.Model.HarvestLoss != nil) {
		p.HarvestLoss = *cfg.Model.HarvestLoss
	}
	if need("model.percent_usable_for_growth", cfg.Model.PercentUsable != nil) {
		p.PercentUsable = *cfg.Model.PercentUsable
	}
	if cfg.Model.CalibrationDays != nil {
		p.CalibrationDays = *cfg.Model.CalibrationDays
	}

	if need("demand", cfg.Demand != nil) {
		d := cfg.Demand
		if need("demand.global_pop", d.GlobalPop != nil) {
			p.GlobalPop = *d.GlobalPop
		}
		if need("demand.calories_per_person_per_day", d.CaloriesPerPersonPerDay != nil) {
			p.CaloriesPerPersonPerDay = *d.CaloriesPerPersonPerDay
		}
		if need("demand.food_waste", d.FoodWaste != nil) {
			p.FoodWaste = *d.FoodWaste
		}
		if need("demand.calories_per_t_seaweed_wet", d.CaloriesPerTonneWet != nil) {
			p.CaloriesPerTonneWet = *d.CaloriesPerTonneWet
		}
		if d.FoodLimit != nil {
			p.FoodLimit = *d.FoodLimit
		}
		if d.FeedLimit != nil {
			p.FeedLimit = *d.FeedLimit
		}
		if d.BiofuelLimit != nil {
			p.BiofuelLimit = *d.BiofuelLimit
		}
	}

	if need("farm.min_density", cfg.Farm.MinDensity != nil) {
		p.MinDensity = *cfg.Farm.MinDensity
	}
	if need("farm.max_density", cfg.Farm.MaxDensity != nil) {
		p.MaxDensity = *cfg.Farm.MaxDensity
	}
	if need("farm.initial_seaweed", cfg.Farm.InitialSeaweed != nil) {
		p.InitialSeaweed = *cfg.Farm.InitialSeaweed
	}
	if need("farm.initial_area_built", cfg.Farm.InitialAreaBuilt != nil) {
		p.InitialAreaBuilt = *cfg.Farm.InitialAreaBuilt
	}
	if need("farm.initial_area_used", cfg.Farm.InitialAreaUsed != nil) {
		p.InitialAreaUsed = *cfg.Farm.InitialAreaUsed
	}
	if need("farm.new_module_area_per_day", cfg.Farm.NewModuleAreaPerDay != nil) {
		p.NewModuleAreaPerDay = *cfg.Farm.NewModuleAreaPerDay
	}
	if cfg.Farm.InitialLag != nil {
		p.InitialLag = *cfg.Farm.InitialLag
	}

	if cfg.Run.Clusters != nil {
		p.Clusters = *cfg.Run.Clusters
	}

	if len(missing) > 0 {
		return Params{}, fmt.Errorf("config incomplete, missing: %s", strings.Join(missing, ", "))
	}
	return p, nil
}
