package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths locates the layered config files under one base directory.
type Paths struct {
	BaseDir string // e.g. "config"
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "default.yaml")
}
func (p Paths) LocationPath(location string) string {
	return filepath.Join(p.BaseDir, location+".yaml")
}
func (p Paths) ScenarioPath(location, scenario string) string {
	return filepath.Join(p.BaseDir, location, scenario+".yaml")
}

// Loader reads YAML configs and merges default → location → scenario.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: "$default", location, or "location/scenario"
}

// NewLoader creates a config loader rooted at baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

// WatchPaths lists the files the server should poll for hot reload.
func (l *Loader) WatchPaths(location string, scenarios []string) []string {
	paths := []string{l.paths.DefaultPath(), l.paths.LocationPath(location)}
	for _, s := range scenarios {
		paths = append(paths, l.paths.ScenarioPath(location, s))
	}
	return paths
}

// LoadMerged loads and merges default → location → scenario (scenario
// optional). The default file must exist; the others may be absent.
func (l *Loader) LoadMerged(location, scenario string) (RawConfig, error) {
	key := location
	if scenario != "" {
		key = location + "/" + scenario
	}
	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath(), true)
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	locCfg, err := readYAML(l.paths.LocationPath(location), false)
	if err != nil {
		return RawConfig{}, fmt.Errorf("read location %q: %w", location, err)
	}
	var scnCfg RawConfig
	if scenario != "" {
		scnCfg, err = readYAML(l.paths.ScenarioPath(location, scenario), false)
		if err != nil {
			return RawConfig{}, fmt.Errorf("read scenario %q: %w", scenario, err)
		}
	}

	merged := mergeRaw(defCfg, locCfg)
	merged = mergeRaw(merged, scnCfg)

	l.mu.Lock()
	l.cache["$default"] = defCfg
	l.cache[location] = mergeRaw(defCfg, locCfg)
	l.cache[key] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears the cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads one layer. When required is false a missing file yields a
// zero config without error, so locations and scenarios can rely entirely
// on the defaults.
func readYAML(path string, required bool) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw layers b over a: any value b provides replaces a's.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	out.Model = mergeModel(out.Model, b.Model)
	out.Farm = mergeFarm(out.Farm, b.Farm)

	switch {
	case out.Demand == nil && b.Demand != nil:
		c := *b.Demand
		out.Demand = &c
	case out.Demand != nil && b.Demand != nil:
		d := mergeDemand(*out.Demand, *b.Demand)
		out.Demand = &d
	}

	if b.Run.Location != "" {
		out.Run.Location = b.Run.Location
	}
	if len(b.Run.Scenarios) > 0 {
		out.Run.Scenarios = append([]string(nil), b.Run.Scenarios...)
	}
	if b.Run.Clusters != nil {
		out.Run.Clusters = b.Run.Clusters
	}

	return out
}

func mergeModel(a, b ModelConfig) ModelConfig {
	if b.OptimalGrowthRate != nil {
		a.OptimalGrowthRate = b.OptimalGrowthRate
	}
	if b.DaysToRun != nil {
		a.DaysToRun = b.DaysToRun
	}
	if b.HarvestLoss != nil {
		a.HarvestLoss = b.HarvestLoss
	}
	if b.PercentUsable != nil {
		a.PercentUsable = b.PercentUsable
	}
	if b.CalibrationDays != nil {
		a.CalibrationDays = b.CalibrationDays
	}
	return a
}

func mergeFarm(a, b FarmConfig) FarmConfig {
	if b.MinDensity != nil {
		a.MinDensity = b.MinDensity
	}
	if b.MaxDensity != nil {
		a.MaxDensity = b.MaxDensity
	}
	if b.InitialSeaweed != nil {
		a.InitialSeaweed = b.InitialSeaweed
	}
	if b.InitialAreaBuilt != nil {
		a.InitialAreaBuilt = b.InitialAreaBuilt
	}
	if b.InitialAreaUsed != nil {
		a.InitialAreaUsed = b.InitialAreaUsed
	}
	if b.NewModuleAreaPerDay != nil {
		a.NewModuleAreaPerDay = b.NewModuleAreaPerDay
	}
	if b.InitialLag != nil {
		a.InitialLag = b.InitialLag
	}
	return a
}

func mergeDemand(a, b DemandConfig) DemandConfig {
	if b.GlobalPop != nil {
		a.GlobalPop = b.GlobalPop
	}
	if b.CaloriesPerPersonPerDay != nil {
		a.CaloriesPerPersonPerDay = b.CaloriesPerPersonPerDay
	}
	if b.FoodWaste != nil {
		a.FoodWaste = b.FoodWaste
	}
	if b.CaloriesPerTonneWet != nil {
		a.CaloriesPerTonneWet = b.CaloriesPerTonneWet
	}
	if b.FoodLimit != nil {
		a.FoodLimit = b.FoodLimit
	}
	if b.FeedLimit != nil {
		a.FeedLimit = b.FeedLimit
	}
	if b.BiofuelLimit != nil {
		a.BiofuelLimit = b.BiofuelLimit
	}
	return a
}
