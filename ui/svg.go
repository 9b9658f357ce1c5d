package ui

import (
	"fmt"
	"html"
	"io"

	"github.com/ftahirops/gridmix/engine"
	"github.com/ftahirops/gridmix/model"
)

// errWriter keeps the first write error so the SVG body can be written
// without checking every line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func writeArc(ew *errWriter, class string, a engine.Arc) {
	ew.printf(`  <circle class="%s" data-source="%s" cx="%g" cy="%g" r="%g" fill="none" stroke="%s" stroke-width="%g" stroke-dasharray="%.3f %.3f" transform="rotate(%.3f %g %g)"/>`+"\n",
		class, html.EscapeString(a.Name), engine.CenterX, engine.CenterY, a.Radius,
		html.EscapeString(a.Color), a.StrokeWidth, a.Dash, a.Gap, a.Rotation, engine.CenterX, engine.CenterY)
}

// WriteSVG renders one day's donut as a standalone SVG document: a circle per
// segment, the clean-energy ring and its marker. hover thickens that segment.
func WriteSVG(w io.Writer, day model.DailyEnergyData, hover string) error {
	d := engine.BuildDonut(engine.BuildSegments(day.Sources), day.CleanEnergyPercent, hover, 1)
	ew := &errWriter{w: w}

	ew.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		engine.CanvasSize, engine.CanvasSize, engine.CanvasSize, engine.CanvasSize)
	ew.printf("  <title>%s - %s Clean Energy</title>\n",
		html.EscapeString(engine.FormatDay(day.Date)), engine.FormatPct(day.CleanEnergyPercent))
	for _, a := range d.Segments {
		writeArc(ew, "chart-segment", a)
	}
	writeArc(ew, "clean-arc", d.CleanRing)
	ew.printf(`  <text class="clean-icon" x="%.3f" y="%.3f" font-size="%g" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>`+"\n",
		d.CleanIcon.X, d.CleanIcon.Y, engine.IconSize, model.CleanIconColor, model.CleanIcon)
	ew.printf("</svg>\n")
	return ew.err
}
