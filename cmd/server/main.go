// Command server exposes the growth model over HTTP: self-shading lookups,
// calibration runs and full simulations, plus resolved scenario configs
// with hot reload of the config directory.
package main

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/florianjehn/Seaweed-Scaleup-Model/internal/scenario"
	"github.com/florianjehn/Seaweed-Scaleup-Model/internal/seaweed"
)

type shadingResp struct {
	Factor float64 `json:"factor"`
	Err    string  `json:"err,omitempty"`
}

type calibrateResp struct {
	Productive   bool    `json:"productive"`
	Productivity float64 `json:"productivity,omitempty"` // t per km² per day
	Err          string  `json:"err,omitempty"`
}

type simulateResp struct {
	Records []seaweed.DailyRecord `json:"records,omitempty"`
	Stats   seaweed.IntervalStats `json:"interval_stats"`
	Err     string                `json:"err,omitempty"`
}

// queryFloat reads one float query parameter. ok reports whether the
// parameter carried a usable value; msg distinguishes a malformed value
// from a plain absent one.
func queryFloat(q url.Values, key string) (val float64, ok bool, msg string) {
	s := q.Get(key)
	if s == "" {
		return 0, false, ""
	}
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true, ""
	}
	return 0, false, "invalid " + key
}

// queryInt is queryFloat for integer parameters.
func queryInt(q url.Values, key string) (val int, ok bool, msg string) {
	s := q.Get(key)
	if s == "" {
		return 0, false, ""
	}
	if val, err := strconv.Atoi(s); err == nil {
		return val, true, ""
	}
	return 0, false, "invalid " + key
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /shading?density=<kg per m²>
func handleShading(w http.ResponseWriter, r *http.Request) {
	density, ok, msg := queryFloat(r.URL.Query(), "density")
	if !ok || msg != "" {
		http.Error(w, "missing/invalid param density", http.StatusBadRequest)
		return
	}
	factor, err := seaweed.SelfShading(density)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, shadingResp{Err: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, shadingResp{Factor: factor})
}

// GET /calibrate?fraction=&optimal=&usable=&days=&loss=
func handleCalibrate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fraction, ok, msg := queryFloat(q, "fraction")
	if !ok || msg != "" {
		http.Error(w, "missing/invalid param fraction", http.StatusBadRequest)
		return
	}
	optimal, ok, msg := queryFloat(q, "optimal")
	if !ok || msg != "" {
		http.Error(w, "missing/invalid param optimal", http.StatusBadRequest)
		return
	}
	usable, ok, _ := queryFloat(q, "usable")
	if !ok {
		usable = 100
	}
	days, ok, _ := queryInt(q, "days")
	if !ok {
		days = 500
	}
	loss, _, msg := queryFloat(q, "loss")
	if msg != "" {
		http.Error(w, "missing/invalid param loss", http.StatusBadRequest)
		return
	}
	productivity, productive, err := seaweed.Productivity(
		seaweed.ConstantFraction(fraction), days, usable, optimal, loss)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, calibrateResp{Err: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, calibrateResp{Productive: productive, Productivity: productivity})
}

// GET /simulate with the scalar engine config as query params. fraction is
// a single scalar applied every day; per-day series stay with the batch CLI.
func handleSimulate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cfg := seaweed.RunConfig{PercentUsable: 100}
	for _, p := range []struct {
		key      string
		dst      *float64
		required bool
	}{
		{"initial_seaweed", &cfg.InitialSeaweed, true},
		{"initial_area_built", &cfg.InitialAreaBuilt, true},
		{"initial_area_used", &cfg.InitialAreaUsed, true},
		{"new_module_area_per_day", &cfg.NewModuleAreaPerDay, false},
		{"min_density", &cfg.MinDensity, true},
		{"max_density", &cfg.MaxDensity, true},
		{"max_area", &cfg.MaxArea, true},
		{"optimal_growth_rate", &cfg.OptimalGrowthRate, true},
		{"percent_usable", &cfg.PercentUsable, false},
		{"harvest_loss", &cfg.HarvestLossPercent, false},
	} {
		v, ok, msg := queryFloat(q, p.key)
		if msg != "" || (p.required && !ok) {
			http.Error(w, "missing/invalid param "+p.key, http.StatusBadRequest)
			return
		}
		if ok {
			*p.dst = v
		}
	}
	fraction, ok, msg := queryFloat(q, "fraction")
	if !ok || msg != "" {
		http.Error(w, "missing/invalid param fraction", http.StatusBadRequest)
		return
	}
	cfg.GrowthFraction = seaweed.ConstantFraction(fraction)
	days, ok, msg := queryInt(q, "days")
	if !ok || msg != "" {
		http.Error(w, "missing/invalid param days", http.StatusBadRequest)
		return
	}
	cfg.DaysToRun = days
	if lag, ok, _ := queryInt(q, "initial_lag"); ok {
		cfg.InitialLag = lag
	}

	records, err := seaweed.Run(cfg)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, simulateResp{Err: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, simulateResp{
		Records: records,
		Stats:   seaweed.SummarizeIntervals(records),
	})
}

// GET /scenario?location=&name= returns the resolved parameters of one
// scenario after layering.
func handleScenario(loader *scenario.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		location := r.URL.Query().Get("location")
		if location == "" {
			http.Error(w, "missing param location", http.StatusBadRequest)
			return
		}
		raw, err := loader.LoadMerged(location, r.URL.Query().Get("name"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		params, err := scenario.Resolve(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, params)
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	configDir := os.Getenv("SCALEUP_CONFIG_DIR")
	if configDir == "" {
		configDir = "config"
	}
	addr := os.Getenv("SCALEUP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	loader := scenario.NewLoader(configDir)
	if base, err := loader.LoadMerged("", ""); err == nil {
		if params, err := scenario.Resolve(base); err == nil {
			watcher := scenario.NewWatcher(
				loader.WatchPaths(params.Location, params.Scenarios),
				5*time.Second,
				func(path string) {
					logger.Info("config changed, reloading", zap.String("path", path))
					loader.Invalidate()
				},
			)
			watcher.Start()
			defer watcher.Stop()
		}
	} else {
		logger.Warn("no usable config directory, scenario layering starts empty",
			zap.String("dir", configDir), zap.Error(err))
	}

	http.HandleFunc("/shading", handleShading)
	http.HandleFunc("/calibrate", handleCalibrate)
	http.HandleFunc("/simulate", handleSimulate)
	http.HandleFunc("/scenario", handleScenario(loader))

	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
