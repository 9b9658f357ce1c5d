package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ftahirops/gridmix/engine"
	"github.com/ftahirops/gridmix/model"
	"github.com/ftahirops/gridmix/util"
)

// Button faces of the submit control.
const (
	faceIdle    = "Find Optimal Window"
	faceLoading = "Loading..."
	faceError   = "⚠ Error - Try Again"
)

const sliderMaxW = 36

// windowPanel is everything the optimal-window section needs to draw itself.
type windowPanel struct {
	state   engine.WindowState
	hours   int
	spinner string
	loc     *time.Location
	now     time.Time
	innerW  int
}

// buttonFace returns the label of the submit control for the current state.
func buttonFace(s engine.WindowState, spin string) string {
	switch {
	case s.Loading:
		return strings.TrimSpace(spin + " " + faceLoading)
	case s.Err != "":
		return faceError
	}
	return faceIdle
}

func renderButton(s engine.WindowState, spin string) string {
	face := buttonFace(s, spin)
	switch {
	case s.Loading:
		return buttonBusyStyle.Render(face)
	case s.Err != "":
		return buttonErrStyle.Render(face)
	}
	return buttonStyle.Render(face)
}

// renderSlider draws the duration track with a knob at (hours-1)/5 and the
// 1..6 tick labels beneath it.
func renderSlider(hours, width int) (track, labels string) {
	if width > sliderMaxW {
		width = sliderMaxW
	}
	knob := int(math.Round(engine.SliderFill(hours) * float64(width-1)))

	var tb strings.Builder
	tb.WriteString(accentStyle.Render(strings.Repeat("━", knob) + "●"))
	tb.WriteString(trackStyle.Render(strings.Repeat("─", width-knob-1)))

	var lb strings.Builder
	col := 0
	for n := model.MinChargingHours; n <= model.MaxChargingHours; n++ {
		at := int(math.Round(float64(n-1) / float64(model.MaxChargingHours-model.MinChargingHours) * float64(width-1)))
		if at > col {
			lb.WriteString(strings.Repeat(" ", at-col))
			col = at
		}
		digit := fmt.Sprintf("%d", n)
		if n == hours {
			lb.WriteString(accentStyle.Render(digit))
		} else {
			lb.WriteString(dimStyle.Render(digit))
		}
		col++
	}
	return tb.String(), lb.String()
}

func (p windowPanel) render() []string {
	bs := dimStyle
	w := p.innerW
	row := func(s string) string { return boxRow(s, w, bs) }

	lines := []string{boxTop(w, bs), row(titleStyle.Render("EV Charging Optimizer"))}
	for _, l := range wrap("Find the optimal charging window with maximum clean energy", dimStyle, w) {
		lines = append(lines, row(l))
	}
	lines = append(lines,
		boxMid(w, bs),
		row(labelStyle.Render("Select Charging Duration: ")+
			accentStyle.Render(fmt.Sprintf("%d %s", p.hours, util.Plural(p.hours, "Hour")))))
	track, labels := renderSlider(p.hours, w)
	lines = append(lines, row(track), row(labels), row(""), row(renderButton(p.state, p.spinner)))

	if p.state.Data != nil {
		lines = append(lines, boxMid(w, bs))
		for _, l := range p.renderResult(*p.state.Data) {
			lines = append(lines, row(l))
		}
	}
	return append(lines, boxBot(w, bs))
}

func (p windowPanel) renderResult(win model.OptimalWindow) []string {
	const keyW = 14
	kv := func(k, v string) string {
		return styledPad(labelStyle.Render(k), keyW) + v
	}
	rel := humanize.RelTime(win.StartTime, p.now, "ago", "from now")
	lines := []string{accentStyle.Render("⚡ Optimal Charging Window")}
	lines = append(lines, wrap("Best time to charge your EV with maximum clean energy", dimStyle, p.innerW)...)
	lines = append(lines,
		"",
		kv("Start Time", valueStyle.Render(engine.FormatWindowTime(win.StartTime, p.loc))+" "+dimStyle.Render("("+rel+")")),
		kv("End Time", valueStyle.Render(engine.FormatWindowTime(win.EndTime, p.loc))),
		kv("Clean Energy", cleanColor(win.CleanEnergyPercent).Render(engine.FormatPct(win.CleanEnergyPercent))),
		"")
	// the window's own length, so moving the slider afterwards does not relabel it
	hours := win.Hours()
	if hours <= 0 {
		hours = p.hours
	}
	info := fmt.Sprintf("ⓘ This charging window offers the highest percentage of renewable energy sources during your selected %d-hour duration.", hours)
	return append(lines, wrap(info, dimStyle, p.innerW)...)
}

// wrap word-wraps text to width and styles each resulting line.
func wrap(text string, st lipgloss.Style, width int) []string {
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = st.Render(strings.TrimRight(l, " "))
	}
	return lines
}
