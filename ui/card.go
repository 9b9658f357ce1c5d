package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ftahirops/gridmix/engine"
	"github.com/ftahirops/gridmix/model"
)

// RevealPhase is where a card is in its opening transition.
type RevealPhase int

const (
	RevealPending RevealPhase = iota
	RevealOpening
	Revealed
)

const (
	revealFrames = 8
	revealFrame  = 40 * time.Millisecond
)

// Card geometry.
const (
	cardInner  = chartCols
	cardOuter  = cardInner + 5
	cardGap    = " "
	cardStride = cardOuter + len(cardGap)

	// line offsets inside a card block: header row and divider come first
	cardChartTop = boxContentY + 2
	cardListTop  = cardChartTop + chartRows + 1

	skeletonGlyph = "▒"
	skeletonRows  = 5
)

// card is one day of the mix. Chart and list share hover; cards never share
// state with each other.
type card struct {
	day      model.DailyEnergyData
	segments []model.Segment
	sources  []model.EnergySource
	hover    string
	reveal   RevealPhase
	frame    int
}

func newCard(day model.DailyEnergyData) card {
	return card{
		day:      day,
		segments: engine.BuildSegments(day.Sources),
		sources:  engine.SourceList(day.Sources),
	}
}

// advanceReveal steps the opening transition by one frame. Revealed is final.
func (c *card) advanceReveal() {
	switch c.reveal {
	case RevealPending:
		c.reveal = RevealOpening
		c.frame = 1
	case RevealOpening:
		c.frame++
		if c.frame >= revealFrames {
			c.reveal = Revealed
		}
	}
}

func (c card) revealProgress() float64 {
	switch c.reveal {
	case RevealPending:
		return 0
	case RevealOpening:
		return float64(c.frame) / revealFrames
	}
	return 1
}

func (c card) donut() engine.Donut {
	return engine.BuildDonut(c.segments, c.day.CleanEnergyPercent, c.hover, c.revealProgress())
}

// moveHover walks the hover through the list; from no hover it enters at
// the first (delta > 0) or last row.
func (c *card) moveHover(delta int) {
	if len(c.sources) == 0 {
		return
	}
	idx := -1
	for i, s := range c.sources {
		if s.Name == c.hover {
			idx = i
		}
	}
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(c.sources) - 1
	default:
		idx += delta
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.sources) {
		idx = len(c.sources) - 1
	}
	c.hover = c.sources[idx].Name
}

func borderStyle(focused bool) lipgloss.Style {
	if focused {
		return focusStyle
	}
	return dimStyle
}

func (c card) render(focused bool) []string {
	bs := borderStyle(focused)
	lines := make([]string, 0, cardListTop+len(c.sources)+1)

	header := spread(
		headerStyle.Render(engine.FormatDay(c.day.Date)),
		cleanColor(c.day.CleanEnergyPercent).Render(engine.FormatPct(c.day.CleanEnergyPercent)+" Clean Energy"),
		cardInner)
	lines = append(lines, boxTop(cardInner, bs), boxRow(header, cardInner, bs), boxMid(cardInner, bs))
	for _, l := range renderDonut(c.donut(), chartCols, chartRows) {
		lines = append(lines, boxRow(l, cardInner, bs))
	}
	lines = append(lines, boxMid(cardInner, bs))
	for _, l := range renderSourceList(c.sources, c.hover, cardInner) {
		lines = append(lines, boxRow(l, cardInner, bs))
	}
	return append(lines, boxBot(cardInner, bs))
}

// renderSkeleton is the placeholder shown while the mix is loading or failed.
func renderSkeleton() []string {
	bs := dimStyle
	block := func(n int) string { return dimStyle.Render(strings.Repeat(skeletonGlyph, n)) }
	lines := []string{boxTop(cardInner, bs), boxRow(block(12), cardInner, bs), boxMid(cardInner, bs)}
	ring := renderDonut(engine.BuildDonut(nil, 0, "", 0), chartCols, chartRows)
	for _, l := range ring {
		lines = append(lines, boxRow(strings.ReplaceAll(l, glyphOverlay, skeletonGlyph), cardInner, bs))
	}
	lines = append(lines, boxMid(cardInner, bs))
	for i := 0; i < skeletonRows; i++ {
		lines = append(lines, boxRow(block(3)+" "+block(10+i%3*3), cardInner, bs))
	}
	return append(lines, boxBot(cardInner, bs))
}
