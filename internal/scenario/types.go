package scenario

// RawConfig mirrors the YAML schema. Pointer fields distinguish "absent"
// from zero so layered files (default → location → scenario) can override
// each other.
type RawConfig struct {
	Version string        `yaml:"version"`
	Model   ModelConfig   `yaml:"model"`
	Demand  *DemandConfig `yaml:"demand,omitempty"`
	Farm    FarmConfig    `yaml:"farm"`
	Run     RunBlock      `yaml:"run"`
	Notes   string        `yaml:"notes,omitempty"`
}

// ModelConfig holds the growth-model knobs shared by calibration and
// production runs.
type ModelConfig struct {
	OptimalGrowthRate *float64 `yaml:"optimal_growth_rate"`        // % per day
	DaysToRun         *int     `yaml:"days_to_run"`                // production run length
	HarvestLoss       *float64 `yaml:"harvest_loss"`               // % of wet harvest lost
	PercentUsable     *float64 `yaml:"percent_usable_for_growth"`  // % of module area
	CalibrationDays   *int     `yaml:"calibration_days,omitempty"` // default 500
}

// DemandConfig sizes the aggregate seaweed need.
type DemandConfig struct {
	GlobalPop               *float64 `yaml:"global_pop"`
	CaloriesPerPersonPerDay *float64 `yaml:"calories_per_person_per_day"`
	FoodWaste               *float64 `yaml:"food_waste"` // %
	CaloriesPerTonneWet     *float64 `yaml:"calories_per_t_seaweed_wet"`
	FoodLimit               *float64 `yaml:"food_limit"`    // fraction
	FeedLimit               *float64 `yaml:"feed_limit"`    // fraction
	BiofuelLimit            *float64 `yaml:"biofuel_limit"` // fraction
}

// FarmConfig is the initial state of a production run.
type FarmConfig struct {
	MinDensity          *float64 `yaml:"min_density"` // t/km²
	MaxDensity          *float64 `yaml:"max_density"` // t/km²
	InitialSeaweed      *float64 `yaml:"initial_seaweed"`
	InitialAreaBuilt    *float64 `yaml:"initial_area_built"`
	InitialAreaUsed     *float64 `yaml:"initial_area_used"`
	NewModuleAreaPerDay *float64 `yaml:"new_module_area_per_day"`
	InitialLag          *int     `yaml:"initial_lag,omitempty"`
}

// RunBlock selects what the driver iterates over.
type RunBlock struct {
	Location  string   `yaml:"location,omitempty"`
	Scenarios []string `yaml:"scenarios,omitempty"`
	Clusters  *int     `yaml:"clusters,omitempty"`
}

// Params is the resolved flat configuration handed to the driver.
type Params struct {
	Version string

	OptimalGrowthRate float64
	DaysToRun         int
	HarvestLoss       float64
	PercentUsable     float64
	CalibrationDays   int

	GlobalPop               float64
	CaloriesPerPersonPerDay float64
	FoodWaste               float64
	CaloriesPerTonneWet     float64
	FoodLimit               float64
	FeedLimit               float64
	BiofuelLimit            float64

	MinDensity          float64
	MaxDensity          float64
	InitialSeaweed      float64
	InitialAreaBuilt    float64
	InitialAreaUsed     float64
	NewModuleAreaPerDay float64
	InitialLag          int

	Location  string
	Scenarios []string
	Clusters  int
}

// SubstitutionLimit is the total fraction of calories seaweed may cover.
func (p Params) SubstitutionLimit() float64 {
	return p.FoodLimit + p.FeedLimit + p.BiofuelLimit
}
