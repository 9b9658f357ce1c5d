package engine

import (
	"math"
	"sort"

	"github.com/ftahirops/gridmix/model"
)

type sourceEntry struct {
	name  string
	value float64
}

// orderSources drops non-positive shares and orders the rest: clean sources
// first, each partition by value descending then name ascending.
func orderSources(sources map[string]float64) []sourceEntry {
	var clean, other []sourceEntry
	for name, v := range sources {
		if !(v > 0) || math.IsInf(v, 0) {
			continue
		}
		e := sourceEntry{name: name, value: v}
		if model.IsClean(name) {
			clean = append(clean, e)
		} else {
			other = append(other, e)
		}
	}
	byValue := func(es []sourceEntry) {
		sort.Slice(es, func(i, j int) bool {
			if es[i].value != es[j].value {
				return es[i].value > es[j].value
			}
			return es[i].name < es[j].name
		})
	}
	byValue(clean)
	byValue(other)
	return append(clean, other...)
}

// SourceList returns the coloured sources in display order.
func SourceList(sources map[string]float64) []model.EnergySource {
	entries := orderSources(sources)
	out := make([]model.EnergySource, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.EnergySource{
			Name:  e.name,
			Value: e.value,
			Color: model.Lookup(e.name).Color,
		})
	}
	return out
}

// BuildSegments turns a name->percentage map into donut segments with
// cumulative angles. A share of 100 spans the full 360 degrees.
func BuildSegments(sources map[string]float64) []model.Segment {
	list := SourceList(sources)
	segs := make([]model.Segment, 0, len(list))
	current := 0.0
	for _, src := range list {
		angle := src.Value / 100 * 360
		segs = append(segs, model.Segment{
			EnergySource: src,
			StartAngle:   current,
			EndAngle:     current + angle,
			Angle:        angle,
		})
		current += angle
	}
	return segs
}
