package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ftahirops/gridmix/engine"
	"github.com/ftahirops/gridmix/model"
	"github.com/ftahirops/gridmix/util"
)

// renderSourceRow renders one list entry: coloured icon swatch, name, share
// and the clean marker. The hovered row gets a pointer and a bright name.
func renderSourceRow(src model.EnergySource, hovered bool, width int) string {
	st := model.Lookup(src.Name)
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(src.Color)).
		Foreground(colorWhite).
		Render(" " + st.Icon + " ")

	pointer := " "
	nameStyle := valueStyle
	if hovered {
		pointer = titleStyle.Render("▸")
		nameStyle = titleStyle
	}
	mark := " "
	if st.Clean {
		mark = cleanStyle.Render(model.CleanIcon)
	}

	pct := padLeft(engine.FormatPct(src.Value), 6)
	name := truncate(util.Capitalize(src.Name), width-16)
	left := pointer + swatch + " " + nameStyle.Render(name)
	return spread(left, valueStyle.Render(pct)+" "+mark, width)
}

// renderSourceList renders the card's list in segment order.
func renderSourceList(sources []model.EnergySource, hover string, width int) []string {
	if len(sources) == 0 {
		return []string{dimStyle.Render(util.CenterText("No generation reported", width))}
	}
	rows := make([]string, 0, len(sources))
	for _, s := range sources {
		rows = append(rows, renderSourceRow(s, s.Name == hover, width))
	}
	return rows
}
