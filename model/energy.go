package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DailyEnergyData is one day of the grid generation mix.
type DailyEnergyData struct {
	Date               string             `json:"date"`
	Sources            map[string]float64 `json:"sources"`
	CleanEnergyPercent float64            `json:"cleanEnergyPercent"`
}

// EnergyMix is the /energy-mix payload: today and the two following days.
type EnergyMix struct {
	Days []DailyEnergyData `json:"days"`
}

// EnergySource is one source with its display colour.
type EnergySource struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Segment is an EnergySource placed on the donut. Angles are in degrees,
// cumulative from 12 o'clock, clockwise.
type Segment struct {
	EnergySource
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	Angle      float64 `json:"angle"`
}

// OptimalWindow is the /optimal-window payload.
type OptimalWindow struct {
	StartTime          time.Time `json:"startTime"`
	EndTime            time.Time `json:"endTime"`
	CleanEnergyPercent float64   `json:"cleanEnergyPercent"`
}

// Zone-less ISO-8601 date-times, read as wall time in a caller-chosen zone.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp accepts RFC 3339 and zone-less ISO-8601 date-times. A value
// without an offset is wall time in loc (time.Local when nil). Empty input
// yields the zero time.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: not ISO-8601", s)
}

type optimalWindowWire struct {
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	CleanEnergyPercent float64 `json:"cleanEnergyPercent"`
}

// DecodeOptimalWindow decodes the /optimal-window payload, reading zone-less
// timestamps in loc.
func DecodeOptimalWindow(data []byte, loc *time.Location) (OptimalWindow, error) {
	var wire optimalWindowWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return OptimalWindow{}, err
	}
	start, err := ParseTimestamp(wire.StartTime, loc)
	if err != nil {
		return OptimalWindow{}, fmt.Errorf("startTime: %w", err)
	}
	end, err := ParseTimestamp(wire.EndTime, loc)
	if err != nil {
		return OptimalWindow{}, fmt.Errorf("endTime: %w", err)
	}
	return OptimalWindow{StartTime: start, EndTime: end, CleanEnergyPercent: wire.CleanEnergyPercent}, nil
}

// UnmarshalJSON reads zone-less timestamps as local time.
func (w *OptimalWindow) UnmarshalJSON(data []byte) error {
	dec, err := DecodeOptimalWindow(data, time.Local)
	if err != nil {
		return err
	}
	*w = dec
	return nil
}

// Hours returns the window length in whole hours.
func (w OptimalWindow) Hours() int {
	return int(w.EndTime.Sub(w.StartTime).Round(time.Hour) / time.Hour)
}

const (
	// MinChargingHours and MaxChargingHours bound the requested window length.
	MinChargingHours = 1
	MaxChargingHours = 6
	// DefaultChargingHours is the selector's initial position.
	DefaultChargingHours = 3
)

// ClampHours forces h into [MinChargingHours, MaxChargingHours].
func ClampHours(h int) int {
	if h < MinChargingHours {
		return MinChargingHours
	}
	if h > MaxChargingHours {
		return MaxChargingHours
	}
	return h
}
