package seaweed

// Calibration fixes the farm to a single km² with no further building so
// the harvest cycle can settle into a steady oscillation, then measures
// what one unit of area yields per day.
const (
	calibrationMinDensity = 1200 // t/km²
	calibrationMaxDensity = 3600 // t/km²
)

// Productivity runs a fixed-area calibration over calibrationDays and
// returns the steady-state yield in t per km² per day, derived from the
// last recorded harvest interval and the last recorded food harvest.
// The calibration run harvests with the same loss percentage as the
// production run, so the yield is net of handling losses.
// ok is false when the run never produced both, meaning the configuration
// is not productive enough to build on; that is an outcome, not an error.
func Productivity(fraction GrowthFraction, calibrationDays int, percentUsable, optimalGrowthRate, harvestLossPercent float64) (float64, bool, error) {
	records, err := Run(RunConfig{
		InitialSeaweed:     1,
		InitialAreaBuilt:   1,
		InitialAreaUsed:    1,
		MinDensity:         calibrationMinDensity,
		MaxDensity:         calibrationMaxDensity,
		MaxArea:            1,
		OptimalGrowthRate:  optimalGrowthRate,
		GrowthFraction:     fraction,
		PercentUsable:      percentUsable,
		HarvestLossPercent: harvestLossPercent,
		DaysToRun:          calibrationDays,
	})
	if err != nil {
		return 0, false, err
	}

	interval, haveInterval := lastInterval(records)
	food, haveFood := lastFood(records)
	if !haveInterval || !haveFood || interval == 0 {
		return 0, false, nil
	}
	return food / float64(interval), true, nil
}

// lastInterval returns the most recent recorded harvest interval.
func lastInterval(records []DailyRecord) (int, bool) {
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].HarvestInterval != nil {
			return *records[i].HarvestInterval, true
		}
	}
	return 0, false
}

// lastFood returns the most recent recorded food harvest.
func lastFood(records []DailyRecord) (float64, bool) {
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].HarvestForFood != nil {
			return *records[i].HarvestForFood, true
		}
	}
	return 0, false
}
