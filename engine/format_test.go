package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDay(t *testing.T) {
	assert.Equal(t, "6 Jan 2026", FormatDay("2026-01-06"))
	assert.Equal(t, "28 Feb 2026", FormatDay("2026-02-28"))
	assert.Equal(t, "6 Jan 2026", FormatDay("2026-01-06T00:00:00"))
	assert.Equal(t, "6 Jan 2026", FormatDay("2026-01-06T23:30:00-05:00"))
	assert.Equal(t, "not-a-date", FormatDay("not-a-date"))
	assert.Equal(t, "", FormatDay(""))
}

func TestFormatWindowTime(t *testing.T) {
	ts := time.Date(2026, 1, 6, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "06 Jan 2026 10:00", FormatWindowTime(ts, time.UTC))

	warsaw := time.FixedZone("CET", 3600)
	assert.Equal(t, "06 Jan 2026 11:00", FormatWindowTime(ts, warsaw))
}

func TestFormatPct(t *testing.T) {
	assert.Equal(t, "78.5%", FormatPct(78.5))
	assert.Equal(t, "65.0%", FormatPct(65))
	assert.Equal(t, "33.3%", FormatPct(100.0/3))
}

func TestSliderFill(t *testing.T) {
	assert.Equal(t, 0.0, SliderFill(1))
	assert.Equal(t, 0.4, SliderFill(3))
	assert.Equal(t, 1.0, SliderFill(6))
	assert.Equal(t, 1.0, SliderFill(9))
}
