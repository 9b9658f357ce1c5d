package engine

import (
	"math"

	"github.com/ftahirops/gridmix/model"
)

// Logical canvas of the donut chart.
const (
	CanvasSize = 350.0
	CenterX    = CanvasSize / 2
	CenterY    = CanvasSize / 2

	SegmentRadius      = 80.0
	SegmentStroke      = 50.0
	SegmentHoverStroke = 65.0

	CleanRingRadius = 125.0
	CleanRingStroke = 19.0

	OverlayRadius = 80.0
	OverlayStroke = 120.0

	IconSize = 18.0
)

// Point is a position on the logical canvas.
type Point struct {
	X, Y float64
}

// ArcKind tells segment arcs from the decorations around them.
type ArcKind int

const (
	ArcSegment ArcKind = iota
	ArcClean
	ArcOverlay
)

// Arc is one stroke-dashed circle. Dash and Gap follow the SVG
// stroke-dasharray convention; Rotation is applied about the centre.
type Arc struct {
	Kind        ArcKind
	Name        string
	Color       string
	Radius      float64
	StrokeWidth float64
	Dash        float64
	Gap         float64
	Rotation    float64
	StartAngle  float64
	Sweep       float64
	Hovered     bool
}

// Donut is the full scene for one day.
type Donut struct {
	Segments   []Arc
	CleanRing  Arc
	CleanIcon  Point
	CleanAngle float64
	// Overlay is non-nil until the chart is fully revealed.
	Overlay *Arc
}

// Circumference returns 2πr.
func Circumference(r float64) float64 {
	return 2 * math.Pi * r
}

// PolarToCartesian converts an angle measured clockwise from 12 o'clock.
func PolarToCartesian(cx, cy, r, angleDeg float64) Point {
	rad := (angleDeg - 90) * math.Pi / 180
	return Point{X: cx + r*math.Cos(rad), Y: cy + r*math.Sin(rad)}
}

// SegmentArc lays out one segment on the inner ring.
func SegmentArc(seg model.Segment, hovered bool) Arc {
	c := Circumference(SegmentRadius)
	dash := seg.Angle / 360 * c
	width := SegmentStroke
	if hovered {
		width = SegmentHoverStroke
	}
	return Arc{
		Name:        seg.Name,
		Color:       seg.Color,
		Radius:      SegmentRadius,
		StrokeWidth: width,
		Dash:        dash,
		Gap:         c - dash,
		Rotation:    seg.StartAngle - 90,
		StartAngle:  seg.StartAngle,
		Sweep:       seg.Angle,
		Hovered:     hovered,
	}
}

func clampPct(pct float64) float64 {
	switch {
	case math.IsNaN(pct) || pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// CleanRing lays out the outer ring whose filled length is proportional to pct.
func CleanRing(pct float64) Arc {
	pct = clampPct(pct)
	c := Circumference(CleanRingRadius)
	return Arc{
		Kind:        ArcClean,
		Name:        "clean",
		Color:       model.CleanRingColor,
		Radius:      CleanRingRadius,
		StrokeWidth: CleanRingStroke,
		Dash:        pct / 100 * c,
		Gap:         c,
		Rotation:    -90,
		StartAngle:  0,
		Sweep:       pct / 100 * 360,
	}
}

// CleanArcMidpoint returns the angle halfway along the clean arc and the
// point on the ring at that angle.
func CleanArcMidpoint(pct float64) (float64, Point) {
	angle := clampPct(pct) / 100 * 360 / 2
	return angle, PolarToCartesian(CenterX, CenterY, CleanRingRadius, angle)
}

// RevealOverlay is the neutral ring covering the part of the chart not yet
// revealed. progress 0 covers the whole circle, 1 covers nothing.
func RevealOverlay(progress float64) Arc {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	c := Circumference(OverlayRadius)
	return Arc{
		Kind:        ArcOverlay,
		Name:        "overlay",
		Color:       "#ffffff",
		Radius:      OverlayRadius,
		StrokeWidth: OverlayStroke,
		Dash:        (1 - progress) * c,
		Gap:         progress * c,
		Rotation:    progress*360 - 90,
		StartAngle:  progress * 360,
		Sweep:       (1 - progress) * 360,
	}
}

// BuildDonut assembles the scene. reveal is the progress of the opening
// transition: at 0 the segment and clean arcs are suppressed and only the
// overlay is drawn, at 1 the overlay is gone.
func BuildDonut(segs []model.Segment, cleanPct float64, hovered string, reveal float64) Donut {
	if reveal <= 0 {
		ov := RevealOverlay(0)
		return Donut{Overlay: &ov}
	}
	d := Donut{
		Segments:  make([]Arc, 0, len(segs)),
		CleanRing: CleanRing(cleanPct),
	}
	for _, s := range segs {
		d.Segments = append(d.Segments, SegmentArc(s, hovered != "" && s.Name == hovered))
	}
	d.CleanAngle, d.CleanIcon = CleanArcMidpoint(cleanPct)
	if reveal < 1 {
		ov := RevealOverlay(reveal)
		d.Overlay = &ov
	}
	return d
}

// Hidden reports whether nothing but the placeholder is drawn.
func (d Donut) Hidden() bool {
	return d.Overlay != nil && d.Overlay.Sweep >= 360
}

// ClockAngle returns the angle of p around the centre, clockwise from
// 12 o'clock, in [0, 360), and its distance from the centre.
func ClockAngle(p Point) (angle, dist float64) {
	dx := p.X - CenterX
	dy := p.Y - CenterY
	dist = math.Hypot(dx, dy)
	angle = math.Atan2(dx, -dy) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return angle, dist
}

func (a Arc) covers(angle, dist float64) bool {
	if a.Sweep <= 0 || math.Abs(dist-a.Radius) > a.StrokeWidth/2 {
		return false
	}
	if a.Sweep >= 360 {
		return true
	}
	return angle >= a.StartAngle && angle < a.StartAngle+a.Sweep
}

// ArcAt returns the arc painted at p. The overlay is on top, then the
// segments, then the clean ring.
func (d Donut) ArcAt(p Point) (Arc, bool) {
	angle, dist := ClockAngle(p)
	if d.Overlay != nil && d.Overlay.covers(angle, dist) {
		return *d.Overlay, true
	}
	for _, a := range d.Segments {
		if a.covers(angle, dist) {
			return a, true
		}
	}
	if d.CleanRing.covers(angle, dist) {
		return d.CleanRing, true
	}
	return Arc{}, false
}

// HitTest returns the segment visible at p, if any.
func (d Donut) HitTest(p Point) (string, bool) {
	a, ok := d.ArcAt(p)
	if !ok || a.Kind != ArcSegment {
		return "", false
	}
	return a.Name, true
}
