package collector

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftahirops/gridmix/model"
)

func TestSyntheticIntervalsSumTo100(t *testing.T) {
	for _, iv := range SyntheticIntervals(fixedNow(), 96) {
		total := 0.0
		for _, v := range iv.Sources {
			assert.GreaterOrEqual(t, v, 0.0)
			total += v
		}
		assert.InDelta(t, 100, total, 1e-9)
	}
}

func TestDailyMixIsDeterministic(t *testing.T) {
	a := DailyMix(fixedNow())
	b := DailyMix(fixedNow())
	assert.Equal(t, a, b)
	for _, d := range a.Days {
		clean := 0.0
		for name, v := range d.Sources {
			if model.IsClean(name) {
				clean += v
			}
		}
		assert.InDelta(t, clean, d.CleanEnergyPercent, 0.05)
	}
}

func TestBestWindowPicksHighestMean(t *testing.T) {
	base := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	shares := []float64{10, 20, 90, 80, 30, 95, 10, 10}
	ivs := make([]Interval, len(shares))
	for i, s := range shares {
		from := base.Add(time.Duration(i) * intervalLen)
		ivs[i] = Interval{From: from, To: from.Add(intervalLen), Sources: map[string]float64{"wind": s, "gas": 100 - s}}
	}

	w, ok := BestWindow(ivs, 1)
	require.True(t, ok)
	assert.Equal(t, base.Add(time.Hour), w.StartTime)
	assert.Equal(t, base.Add(2*time.Hour), w.EndTime)
	assert.Equal(t, 85.0, w.CleanEnergyPercent)

	_, ok = BestWindow(ivs[:1], 1)
	assert.False(t, ok)
}

func TestMockAPIRejectsBadHours(t *testing.T) {
	h := NewMockAPI(fixedNow, zerolog.Nop()).Handler(nil)
	for _, q := range []string{"0", "7", "x", ""} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/optimal-window?hours="+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "hours=%q", q)
	}
}

func TestMockAPIWindowWithinTwoDays(t *testing.T) {
	h := NewMockAPI(fixedNow, zerolog.Nop()).Handler(nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/optimal-window?hours=6", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var w model.OptimalWindow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &w))
	assert.Equal(t, 6*time.Hour, w.EndTime.Sub(w.StartTime))
	assert.False(t, w.EndTime.After(fixedNow().Add(49*time.Hour)))
}

func TestMockAPIMethodNotAllowed(t *testing.T) {
	h := NewMockAPI(fixedNow, zerolog.Nop()).Handler(nil)
	for _, path := range []string{"/api/energy-mix", "/api/optimal-window?hours=3"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
		assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"), path)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
