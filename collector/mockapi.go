package collector

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ftahirops/gridmix/model"
)

// Interval is one half-hour settlement period of the synthetic grid.
type Interval struct {
	From    time.Time
	To      time.Time
	Sources map[string]float64
}

// CleanPercent sums the low-carbon shares of the interval.
func (iv Interval) CleanPercent() float64 {
	var clean []float64
	for name, v := range iv.Sources {
		if model.IsClean(name) {
			clean = append(clean, v)
		}
	}
	return floats.Sum(clean)
}

const intervalLen = 30 * time.Minute

// SyntheticIntervals generates a deterministic mix for n half-hour periods
// starting at from. Solar follows the daylight curve, wind drifts slowly, and
// fossil plus imports fill the remainder.
func SyntheticIntervals(from time.Time, n int) []Interval {
	out := make([]Interval, 0, n)
	for i := 0; i < n; i++ {
		t := from.Add(time.Duration(i) * intervalLen)
		hour := float64(t.Hour()) + float64(t.Minute())/60
		day := float64(t.YearDay())

		solar := 28 * math.Max(0, math.Sin(math.Pi*(hour-6)/12))
		wind := 18 + 10*math.Cos(2*math.Pi*(hour+5*day)/24)
		src := map[string]float64{
			"solar":   solar,
			"wind":    wind,
			"nuclear": 14,
			"hydro":   4 + math.Mod(day, 3),
			"biomass": 6,
		}
		rest := 100 - (solar + wind + src["nuclear"] + src["hydro"] + src["biomass"])
		src["gas"] = rest * 0.6
		src["coal"] = rest * 0.15
		src["imports"] = rest * 0.2
		src["other"] = rest * 0.05
		out = append(out, Interval{From: t, To: t.Add(intervalLen), Sources: src})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DailyMix averages the intervals of each of the three days starting at day.
func DailyMix(day time.Time) model.EnergyMix {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	mix := model.EnergyMix{Days: make([]model.DailyEnergyData, 0, 3)}
	for d := 0; d < 3; d++ {
		from := start.AddDate(0, 0, d)
		ivs := SyntheticIntervals(from, 48)
		names := make(map[string][]float64)
		for _, iv := range ivs {
			for name, v := range iv.Sources {
				names[name] = append(names[name], v)
			}
		}
		sources := make(map[string]float64, len(names))
		clean := 0.0
		for name, vals := range names {
			avg := round2(stat.Mean(vals, nil))
			sources[name] = avg
			if model.IsClean(name) {
				clean += avg
			}
		}
		mix.Days = append(mix.Days, model.DailyEnergyData{
			Date:               from.Format("2006-01-02"),
			Sources:            sources,
			CleanEnergyPercent: round2(clean),
		})
	}
	return mix
}

// BestWindow finds the contiguous run of hours*2 intervals with the highest
// mean clean share. Ties keep the earliest window.
func BestWindow(ivs []Interval, hours int) (model.OptimalWindow, bool) {
	n := hours * 2
	if n <= 0 || len(ivs) < n {
		return model.OptimalWindow{}, false
	}
	clean := make([]float64, len(ivs))
	for i, iv := range ivs {
		clean[i] = iv.CleanPercent()
	}
	best, bestAvg := -1, math.Inf(-1)
	for i := 0; i+n <= len(clean); i++ {
		avg := stat.Mean(clean[i:i+n], nil)
		if avg > bestAvg {
			best, bestAvg = i, avg
		}
	}
	return model.OptimalWindow{
		StartTime:          ivs[best].From,
		EndTime:            ivs[best+n-1].To,
		CleanEnergyPercent: round2(bestAvg),
	}, true
}

// MockAPIPrefix is where the mock mounts both endpoints.
const MockAPIPrefix = "/api"

// MockAPI serves both endpoints from the synthetic grid, for demos and tests.
type MockAPI struct {
	now    func() time.Time
	log    zerolog.Logger
	router *mux.Router
}

// NewMockAPI builds the router. now defaults to time.Now.
func NewMockAPI(now func() time.Time, log zerolog.Logger) *MockAPI {
	if now == nil {
		now = time.Now
	}
	m := &MockAPI{now: now, log: log}
	// Routes sit on the root router so a wrong method answers 405.
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})
	r.HandleFunc(MockAPIPrefix+EnergyMixPath, m.handleEnergyMix).Methods(http.MethodGet)
	r.HandleFunc(MockAPIPrefix+OptimalWindowPath, m.handleOptimalWindow).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	m.router = r
	return m
}

// Handler returns the routes, optionally wrapped with an access log.
func (m *MockAPI) Handler(accessLog io.Writer) http.Handler {
	h := handlers.CORS(handlers.AllowedMethods([]string{http.MethodGet}))(m.router)
	if accessLog != nil {
		h = handlers.LoggingHandler(accessLog, h)
	}
	return h
}

// ListenAndServe serves on addr until ctx is done.
func (m *MockAPI) ListenAndServe(ctx context.Context, addr string, accessLog io.Writer) error {
	srv := &http.Server{Addr: addr, Handler: m.Handler(accessLog), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	m.log.Info().Str("addr", addr).Msg("mock api listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (m *MockAPI) handleEnergyMix(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, DailyMix(m.now()), m.log)
}

func (m *MockAPI) handleOptimalWindow(w http.ResponseWriter, r *http.Request) {
	hours, err := strconv.Atoi(r.URL.Query().Get("hours"))
	if err != nil || hours < model.MinChargingHours || hours > model.MaxChargingHours {
		http.Error(w, "hours must be an integer between 1 and 6", http.StatusBadRequest)
		return
	}
	from := m.now().Truncate(intervalLen).Add(intervalLen)
	win, ok := BestWindow(SyntheticIntervals(from, 96), hours)
	if !ok {
		http.Error(w, "not enough forecast data", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, win, m.log)
}

func writeJSON(w http.ResponseWriter, code int, v any, log zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}
