package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftahirops/gridmix/engine"
	"github.com/ftahirops/gridmix/model"
)

func sampleCard() card {
	return newCard(threeDays().Days[0])
}

func TestCardLinesHaveFixedWidth(t *testing.T) {
	c := sampleCard()
	for _, phase := range []RevealPhase{RevealPending, RevealOpening, Revealed} {
		c.reveal, c.frame = phase, revealFrames/2
		lines := c.render(false)
		assert.Len(t, lines, cardListTop+len(c.sources)+1)
		for i, l := range lines {
			assert.Equal(t, cardOuter, lipgloss.Width(l), "phase %d line %d: %q", phase, i, plain(l))
		}
	}
	for i, l := range renderSkeleton() {
		assert.Equal(t, cardOuter, lipgloss.Width(l), "skeleton line %d", i)
	}
}

func TestCardHeader(t *testing.T) {
	lines := sampleCard().render(false)
	header := plain(lines[1])
	assert.Contains(t, header, "6 Jan 2026")
	assert.Contains(t, header, "65.0% Clean Energy")
}

func TestCardListOrderAndMarkers(t *testing.T) {
	c := sampleCard()
	lines := c.render(false)[cardListTop : cardListTop+len(c.sources)]
	want := []string{"Solar", "Wind", "Nuclear", "Coal", "Gas"}
	require.Len(t, lines, len(want))
	for i, name := range want {
		l := plain(lines[i])
		assert.Contains(t, l, name)
		assert.Equal(t, i < 3, strings.Contains(l, model.CleanIcon), "clean marker on %s", name)
	}
	assert.Contains(t, plain(lines[0]), "30.0%")
}

func TestMoveHoverClamps(t *testing.T) {
	c := sampleCard()
	c.moveHover(-1)
	assert.Equal(t, "gas", c.hover, "entering upwards starts at the last row")
	c.moveHover(1)
	assert.Equal(t, "gas", c.hover)
	for i := 0; i < 10; i++ {
		c.moveHover(-1)
	}
	assert.Equal(t, "solar", c.hover)

	empty := newCard(model.DailyEnergyData{Date: "2026-01-06"})
	empty.moveHover(1)
	assert.Empty(t, empty.hover)
}

func TestRevealProgress(t *testing.T) {
	c := sampleCard()
	assert.Equal(t, 0.0, c.revealProgress())
	assert.True(t, c.donut().Hidden())

	c.advanceReveal()
	assert.Equal(t, RevealOpening, c.reveal)
	assert.InDelta(t, 1.0/revealFrames, c.revealProgress(), 1e-9)

	for i := 0; i < revealFrames; i++ {
		c.advanceReveal()
	}
	assert.Equal(t, Revealed, c.reveal)
	assert.Equal(t, 1.0, c.revealProgress())
	assert.Nil(t, c.donut().Overlay)
}

func TestRenderDonutShowsCleanMarker(t *testing.T) {
	c := sampleCard()
	c.reveal = Revealed
	rows := renderDonut(c.donut(), chartCols, chartRows)
	require.Len(t, rows, chartRows)

	_, p := engine.CleanArcMidpoint(c.day.CleanEnergyPercent)
	col, row := cellOf(p, chartCols, chartRows)
	assert.Contains(t, plain(rows[row]), model.CleanIcon)
	assert.Equal(t, 1, strings.Count(plain(strings.Join(rows, "\n")), model.CleanIcon))
	assert.GreaterOrEqual(t, col, 0)
}

func TestRenderDonutHoverDimsOthers(t *testing.T) {
	c := sampleCard()
	c.reveal = Revealed
	before := plain(strings.Join(renderDonut(c.donut(), chartCols, chartRows), ""))
	assert.NotContains(t, before, glyphDimmed)

	c.hover = "wind"
	after := plain(strings.Join(renderDonut(c.donut(), chartCols, chartRows), ""))
	assert.Contains(t, after, glyphDimmed)
	assert.Contains(t, after, glyphArc)
}

func TestChartHitOutOfGrid(t *testing.T) {
	c := sampleCard()
	c.reveal = Revealed
	_, ok := chartHit(c.donut(), -1, 0)
	assert.False(t, ok)
	_, ok = chartHit(c.donut(), chartCols, 0)
	assert.False(t, ok)
	_, ok = chartHit(c.donut(), chartCols/2, chartRows/2)
	assert.False(t, ok, "centre of the ring is empty")
}
