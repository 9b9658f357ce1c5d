package engine

import (
	"fmt"
	"time"

	"github.com/ftahirops/gridmix/model"
)

// Layouts for dates shown on the dashboard.
const (
	apiDateLayout    = "2006-01-02"
	dayHeaderLayout  = "2 Jan 2006"
	windowTimeLayout = "02 Jan 2006 15:04"
)

// FormatDay renders an API date ("2026-01-06") as "6 Jan 2026". Full
// ISO-8601 date-times keep the calendar day as written. Unparseable input is
// returned unchanged.
func FormatDay(date string) string {
	t, err := time.Parse(apiDateLayout, date)
	if err != nil {
		t, err = model.ParseTimestamp(date, time.UTC)
		if err != nil || t.IsZero() {
			return date
		}
	}
	return t.Format(dayHeaderLayout)
}

// FormatWindowTime renders a window boundary in loc, e.g. "06 Jan 2026 10:00".
func FormatWindowTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(windowTimeLayout)
}

// FormatPct renders a percentage with one decimal place.
func FormatPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// SliderFill is the filled fraction of the duration selector.
func SliderFill(hours int) float64 {
	f := float64(hours-1) / 5
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
