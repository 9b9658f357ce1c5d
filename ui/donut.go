package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ftahirops/gridmix/engine"
	"github.com/ftahirops/gridmix/model"
)

// Character grid the donut is rasterized onto. Terminal cells are roughly
// twice as tall as wide, so 40x20 keeps the ring round.
const (
	chartCols = 40
	chartRows = 20
)

const (
	glyphArc     = "█"
	glyphDimmed  = "▓"
	glyphOverlay = "░"
)

// chartCell maps a grid cell to the logical canvas point at its centre.
func chartCell(col, row, cols, rows int) engine.Point {
	return engine.Point{
		X: (float64(col) + 0.5) / float64(cols) * engine.CanvasSize,
		Y: (float64(row) + 0.5) / float64(rows) * engine.CanvasSize,
	}
}

// cellOf is the inverse of chartCell.
func cellOf(p engine.Point, cols, rows int) (col, row int) {
	return int(p.X / engine.CanvasSize * float64(cols)), int(p.Y / engine.CanvasSize * float64(rows))
}

type cellPaint struct {
	glyph string
	style lipgloss.Style
	key   string
}

var blankCell = cellPaint{glyph: " ", key: ""}

func paintArc(a engine.Arc, anyHovered bool) cellPaint {
	switch a.Kind {
	case engine.ArcOverlay:
		return cellPaint{glyph: glyphOverlay, style: dimStyle, key: "overlay"}
	case engine.ArcClean:
		return cellPaint{glyph: glyphArc, style: fg(a.Color), key: "clean"}
	}
	g := glyphArc
	if anyHovered && !a.Hovered {
		g = glyphDimmed
	}
	return cellPaint{glyph: g, style: fg(a.Color), key: g + a.Color}
}

// renderDonut rasterizes the scene onto cols x rows cells. Runs of cells with
// the same paint share one styled span.
func renderDonut(d engine.Donut, cols, rows int) []string {
	anyHovered := false
	for _, a := range d.Segments {
		if a.Hovered {
			anyHovered = true
		}
	}

	iconCol, iconRow := -1, -1
	if !d.Hidden() {
		if a, ok := d.ArcAt(d.CleanIcon); !ok || a.Kind != engine.ArcOverlay {
			iconCol, iconRow = cellOf(d.CleanIcon, cols, rows)
		}
	}
	icon := cellPaint{glyph: model.CleanIcon, style: cleanStyle.Bold(true), key: "icon"}

	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		var sb strings.Builder
		var run strings.Builder
		cur := blankCell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur.key == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(cur.style.Render(run.String()))
			}
			run.Reset()
		}
		for c := 0; c < cols; c++ {
			p := blankCell
			if c == iconCol && r == iconRow {
				p = icon
			} else if a, ok := d.ArcAt(chartCell(c, r, cols, rows)); ok {
				p = paintArc(a, anyHovered)
			}
			if p.key != cur.key {
				flush()
				cur = p
			}
			run.WriteString(p.glyph)
		}
		flush()
		lines[r] = sb.String()
	}
	return lines
}

// chartHit resolves a grid cell to the segment drawn there.
func chartHit(d engine.Donut, col, row int) (string, bool) {
	if col < 0 || row < 0 || col >= chartCols || row >= chartRows {
		return "", false
	}
	return d.HitTest(chartCell(col, row, chartCols, chartRows))
}
