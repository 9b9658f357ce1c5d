package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftahirops/gridmix/model"
)

func TestSegmentArcDash(t *testing.T) {
	seg := model.Segment{
		EnergySource: model.EnergySource{Name: "wind", Value: 25, Color: "#77a2f8"},
		StartAngle:   90, EndAngle: 180, Angle: 90,
	}
	a := SegmentArc(seg, false)
	c := 2 * math.Pi * 80
	assert.InDelta(t, c/4, a.Dash, 1e-9)
	assert.InDelta(t, c*3/4, a.Gap, 1e-9)
	assert.Equal(t, 0.0, a.Rotation)
	assert.Equal(t, SegmentStroke, a.StrokeWidth)

	assert.Equal(t, SegmentHoverStroke, SegmentArc(seg, true).StrokeWidth)
}

func TestCleanArcMidpoint(t *testing.T) {
	angle, p := CleanArcMidpoint(0)
	assert.Equal(t, 0.0, angle)
	assert.InDelta(t, CenterX, p.X, 1e-9)
	assert.InDelta(t, CenterY-CleanRingRadius, p.Y, 1e-9)

	angle, p = CleanArcMidpoint(100)
	assert.Equal(t, 180.0, angle)
	assert.InDelta(t, CenterX, p.X, 1e-9)
	assert.InDelta(t, CenterY+CleanRingRadius, p.Y, 1e-9)

	for pct := 0.0; pct <= 100; pct += 2.5 {
		_, p := CleanArcMidpoint(pct)
		assert.InDelta(t, CleanRingRadius, math.Hypot(p.X-CenterX, p.Y-CenterY), 1e-9, "pct %v", pct)
	}
}

func TestCleanRingDegenerate(t *testing.T) {
	empty := CleanRing(0)
	assert.Equal(t, 0.0, empty.Dash)
	assert.Equal(t, 0.0, empty.Sweep)

	full := CleanRing(100)
	assert.InDelta(t, Circumference(CleanRingRadius), full.Dash, 1e-9)
	assert.Equal(t, 360.0, full.Sweep)

	assert.Equal(t, full, CleanRing(140))
	assert.Equal(t, empty, CleanRing(math.NaN()))
}

func TestClockAngle(t *testing.T) {
	tests := []struct {
		p    Point
		want float64
	}{
		{Point{CenterX, CenterY - 10}, 0},
		{Point{CenterX + 10, CenterY}, 90},
		{Point{CenterX, CenterY + 10}, 180},
		{Point{CenterX - 10, CenterY}, 270},
	}
	for _, tt := range tests {
		got, dist := ClockAngle(tt.p)
		assert.InDelta(t, tt.want, got, 1e-9)
		assert.InDelta(t, 10, dist, 1e-9)
	}
}

func TestBuildDonutHiddenSuppressesArcs(t *testing.T) {
	d := BuildDonut(BuildSegments(sampleSources), 65, "", 0)
	assert.True(t, d.Hidden())
	assert.Empty(t, d.Segments)
	_, ok := d.HitTest(PolarToCartesian(CenterX, CenterY, SegmentRadius, 10))
	assert.False(t, ok)

	a, ok := d.ArcAt(PolarToCartesian(CenterX, CenterY, SegmentRadius, 10))
	require.True(t, ok)
	assert.Equal(t, ArcOverlay, a.Kind)
}

func TestBuildDonutHitTest(t *testing.T) {
	d := BuildDonut(BuildSegments(sampleSources), 65, "", 1)
	require.Nil(t, d.Overlay)

	// solar spans 0..108, wind 108..198, nuclear 198..234, coal 234..306, gas 306..360
	cases := map[float64]string{10: "solar", 150: "wind", 220: "nuclear", 300: "coal", 350: "gas"}
	for angle, want := range cases {
		got, ok := d.HitTest(PolarToCartesian(CenterX, CenterY, SegmentRadius, angle))
		require.True(t, ok, "angle %v", angle)
		assert.Equal(t, want, got, "angle %v", angle)
	}

	_, ok := d.HitTest(Point{CenterX, CenterY})
	assert.False(t, ok, "hole of the donut")

	a, ok := d.ArcAt(PolarToCartesian(CenterX, CenterY, CleanRingRadius, 100))
	require.True(t, ok)
	assert.Equal(t, ArcClean, a.Kind)
	_, ok = d.ArcAt(PolarToCartesian(CenterX, CenterY, CleanRingRadius, 300))
	assert.False(t, ok, "clean ring stops at 65%")
}

func TestBuildDonutHoverThickens(t *testing.T) {
	d := BuildDonut(BuildSegments(sampleSources), 65, "wind", 1)
	for _, a := range d.Segments {
		if a.Name == "wind" {
			assert.True(t, a.Hovered)
			assert.Equal(t, SegmentHoverStroke, a.StrokeWidth)
		} else {
			assert.Equal(t, SegmentStroke, a.StrokeWidth)
		}
	}
	// Only reachable with the thicker stroke.
	p := PolarToCartesian(CenterX, CenterY, SegmentRadius+30, 150)
	got, ok := d.HitTest(p)
	require.True(t, ok)
	assert.Equal(t, "wind", got)
}

func TestRevealOverlayProgress(t *testing.T) {
	d := BuildDonut(BuildSegments(sampleSources), 65, "", 0.5)
	require.NotNil(t, d.Overlay)
	assert.False(t, d.Hidden())
	assert.Equal(t, 180.0, d.Overlay.StartAngle)

	got, ok := d.HitTest(PolarToCartesian(CenterX, CenterY, SegmentRadius, 10))
	require.True(t, ok)
	assert.Equal(t, "solar", got)
	_, ok = d.HitTest(PolarToCartesian(CenterX, CenterY, SegmentRadius, 300))
	assert.False(t, ok, "still covered")
}
