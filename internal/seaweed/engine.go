package seaweed

import "fmt"

// Unit convention: biomass in tonnes, area in km², density in t/km².
// The self-shading curve wants kg/m², so density crosses this factor
// exactly once, at the call into SelfShading.
const tonnesPerKm2ToKgPerM2 = 1.0 / 1000

// RunConfig holds the immutable inputs of one simulation run.
type RunConfig struct {
	InitialSeaweed   float64 // t
	InitialAreaBuilt float64 // km²
	InitialAreaUsed  float64 // km², must be > 0

	// NewModuleAreaPerDay > 0 hands expansion to BuildOut; exactly 0
	// fixes the area for the whole run (calibration mode).
	NewModuleAreaPerDay float64

	MinDensity float64 // t/km², re-seeding density after a harvest
	MaxDensity float64 // t/km², harvest trigger
	MaxArea    float64 // km², hard cap on built area

	OptimalGrowthRate  float64 // % per day
	GrowthFraction     GrowthFraction
	InitialLag         int     // days before any building starts
	PercentUsable      float64 // % of module area usable for growth
	HarvestLossPercent float64 // % of wet harvest lost, must be in [0,100]
	DaysToRun          int

	// BuildOut overrides the fitted logistic estimate; nil means
	// FarmAreaPerDay.
	BuildOut BuildOutFunc

	Hooks Hooks
}

// Hooks are optional observer callbacks so callers can log run events
// without the engine knowing about any logger. All fields may be nil.
type Hooks struct {
	OnMaxAreaReached func(day int)
	OnHarvest        func(day, interval int, wetMass float64)
}

// DayState is the engine's evolving state, mutated once per simulated day.
type DayState struct {
	AreaBuilt      float64
	AreaUsed       float64
	Seaweed        float64
	Density        float64
	Interval       int // days since the last harvest
	CumulativeFood float64
	SeaweedNeed    float64 // re-stocking need of the last harvest

	maxReached bool
}

// DailyRecord is one row of the run trace. Harvest-only fields are nil on
// days without a harvest; HarvestForFood stays nil when the whole harvest
// went into re-stocking newly built area.
type DailyRecord struct {
	Day              int     `json:"day"`
	NewModuleArea    float64 `json:"new_module_area_per_day"`
	GrowthMultiplier float64 `json:"growth_multiplier"`
	SeaweedNeed      float64 `json:"seaweed_need"`
	AreaBuilt        float64 `json:"area_built"`
	AreaUsed         float64 `json:"area_used"`
	Seaweed          float64 `json:"seaweed"`
	Density          float64 `json:"density"`
	CumulativeFood   float64 `json:"cumulative_harvest_for_food"`

	HarvestInterval  *int     `json:"harvest_interval,omitempty"`
	RemainingToGrow  *float64 `json:"remaining_to_grow,omitempty"`
	HarvestWet       *float64 `json:"harvest_wet,omitempty"`
	HarvestAfterLoss *float64 `json:"harvest_after_loss,omitempty"`
	HarvestForFood   *float64 `json:"harvest_for_food,omitempty"`
	NewAreaUsed      *float64 `json:"new_area_used,omitempty"`
}

// Run executes the daily growth/harvest state machine for cfg.DaysToRun
// days and returns the full trace, one record per day. A ConfigError or
// DomainError aborts the run; the partial trace is discarded.
func Run(cfg RunConfig) ([]DailyRecord, error) {
	if cfg.InitialAreaUsed <= 0 {
		return nil, fmt.Errorf("%w: initial used area must be > 0", ErrConfig)
	}
	if cfg.DaysToRun <= 0 {
		return nil, fmt.Errorf("%w: days to run must be > 0, got %d", ErrConfig, cfg.DaysToRun)
	}
	loss := cfg.HarvestLossPercent / 100
	if loss < 0 || loss > 1 {
		return nil, fmt.Errorf("%w: harvest loss must be within [0,100] percent, got %g",
			ErrConfig, cfg.HarvestLossPercent)
	}
	fraction, err := cfg.GrowthFraction.resolve(cfg.DaysToRun)
	if err != nil {
		return nil, err
	}
	buildOut := cfg.BuildOut
	if buildOut == nil {
		buildOut = FarmAreaPerDay
	}

	state := DayState{
		AreaBuilt: cfg.InitialAreaBuilt,
		AreaUsed:  cfg.InitialAreaUsed,
		Seaweed:   cfg.InitialSeaweed,
	}
	state.Density = state.Seaweed / state.AreaUsed

	records := make([]DailyRecord, 0, cfg.DaysToRun)
	for day := 0; day < cfg.DaysToRun; day++ {
		rec, err := step(&state, &cfg, day, fraction(day), buildOut, loss)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// step advances the state by one day and returns that day's record.
func step(s *DayState, cfg *RunConfig, day int, fraction float64, buildOut BuildOutFunc, loss float64) (DailyRecord, error) {
	rec := DailyRecord{Day: day}

	// A positive configured constant means the logistic build-out estimate
	// drives expansion; exactly zero keeps the area fixed.
	raw := cfg.NewModuleAreaPerDay
	if cfg.NewModuleAreaPerDay > 0 {
		raw = buildOut(day)
	}
	growthArea := raw * (cfg.PercentUsable / 100)

	// The coordination lag keeps the builder idle at the start of the run.
	if day > cfg.InitialLag {
		if s.AreaBuilt < cfg.MaxArea {
			rec.NewModuleArea = raw
			s.AreaBuilt += growthArea
			if s.AreaBuilt > cfg.MaxArea {
				s.AreaBuilt = cfg.MaxArea
			}
		} else if !s.maxReached {
			// Capped: terminal for area growth, harvesting continues.
			s.maxReached = true
			if cfg.Hooks.OnMaxAreaReached != nil {
				cfg.Hooks.OnMaxAreaReached(day)
			}
		}
	}

	shade, err := SelfShading(s.Density * tonnesPerKm2ToKgPerM2)
	if err != nil {
		return DailyRecord{}, err
	}

	mult := 1 + (cfg.OptimalGrowthRate*fraction*shade)/100
	if mult < 0 || mult > 2 {
		return DailyRecord{}, fmt.Errorf("%w: growth multiplier %g outside [0,2] on day %d",
			ErrDomain, mult, day)
	}
	rec.GrowthMultiplier = mult
	s.Seaweed *= mult
	s.Density = s.Seaweed / s.AreaUsed

	if s.Density >= cfg.MaxDensity {
		harvest(s, cfg, day, loss, &rec)
	}

	// Counts "days since harvest, starting the day after": a harvest
	// resets the counter to 0 above, this brings it to 1.
	s.Interval++

	rec.SeaweedNeed = s.SeaweedNeed
	rec.AreaBuilt = s.AreaBuilt
	rec.AreaUsed = s.AreaUsed
	rec.Seaweed = s.Seaweed
	rec.Density = s.Density
	rec.CumulativeFood = s.CumulativeFood
	return rec, nil
}

// harvest cuts the crop back to MinDensity, re-stocks built-but-unused
// area first and sells whatever is left as food.
func harvest(s *DayState, cfg *RunConfig, day int, loss float64, rec *DailyRecord) {
	interval := s.Interval
	rec.HarvestInterval = &interval
	s.Interval = 0

	remaining := s.AreaUsed * cfg.MinDensity
	rec.RemainingToGrow = &remaining
	wet := s.Seaweed - remaining
	rec.HarvestWet = &wet
	afterLoss := wet * (1 - loss)
	rec.HarvestAfterLoss = &afterLoss

	need := (s.AreaBuilt - s.AreaUsed) * cfg.MinDensity
	s.SeaweedNeed = need

	var newUsed float64
	if need > afterLoss {
		// Not enough to seed everything built: the whole harvest goes
		// back into the water as newly used area, nothing is sold.
		newUsed = afterLoss / cfg.MinDensity
		s.AreaUsed += newUsed
		s.Seaweed = remaining + afterLoss
	} else {
		food := afterLoss - need
		rec.HarvestForFood = &food
		s.CumulativeFood += food
		newUsed = need / cfg.MinDensity
		s.AreaUsed += newUsed
		s.Seaweed = s.AreaUsed * cfg.MinDensity
	}
	rec.NewAreaUsed = &newUsed

	// Both branches land exactly at MinDensity.
	s.Density = s.Seaweed / s.AreaUsed

	if cfg.Hooks.OnHarvest != nil {
		cfg.Hooks.OnHarvest(day, interval, wet)
	}
}
