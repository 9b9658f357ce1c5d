package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styledPad pads a styled string to the given visual width using spaces.
// Unlike fmt.Sprintf("%-Xs"), this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

// spread places left and right at the edges of width, at least one space apart.
func spread(left, right string, width int) string {
	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// ─── BOX DRAWING HELPERS ─────────────────────────────────────────────────────

// boxTop renders the top border of a rounded box.
// Total visual width = innerW + 5 (1 indent + 1 corner + innerW+2 dashes + 1 corner).
func boxTop(innerW int, border lipgloss.Style) string {
	return " " + border.Render("╭"+strings.Repeat("─", innerW+2)+"╮")
}

// boxBot renders the bottom border of a rounded box.
func boxBot(innerW int, border lipgloss.Style) string {
	return " " + border.Render("╰"+strings.Repeat("─", innerW+2)+"╯")
}

// boxMid renders a horizontal divider inside a box.
func boxMid(innerW int, border lipgloss.Style) string {
	return " " + border.Render("├"+strings.Repeat("─", innerW+2)+"┤")
}

// boxRow renders one content line inside a box, padded to innerW.
func boxRow(content string, innerW int, border lipgloss.Style) string {
	visW := lipgloss.Width(content)
	pad := innerW - visW
	if pad < 0 {
		pad = 0
	}
	return " " + border.Render("│") + " " + content + strings.Repeat(" ", pad) + " " + border.Render("│")
}

// Content inside a box starts this many cells right of and below its corner.
const (
	boxContentX = 3
	boxContentY = 1
)

// boxWidth is the rendered width of a box with the given inner width.
func boxWidth(innerW int) int {
	return innerW + 5
}

// joinColumns lays blocks side by side, each padded to width and separated
// by sep. Shorter blocks are padded with blank lines.
func joinColumns(blocks [][]string, width int, sep string) []string {
	maxLines := 0
	for _, b := range blocks {
		if len(b) > maxLines {
			maxLines = len(b)
		}
	}
	out := make([]string, 0, maxLines)
	for i := 0; i < maxLines; i++ {
		var sb strings.Builder
		for j, b := range blocks {
			if j > 0 {
				sb.WriteString(sep)
			}
			l := ""
			if i < len(b) {
				l = b[i]
			}
			if j < len(blocks)-1 {
				l = styledPad(l, width)
			}
			sb.WriteString(l)
		}
		out = append(out, sb.String())
	}
	return out
}

// truncate shortens s to maxLen runes with ellipsis if needed.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 0 {
		return ""
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func padLeft(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return strings.Repeat(" ", width-len(r)) + s
}

// panelInnerW computes the window panel's inner width from terminal width.
// The panel spans at most the full card row.
func panelInnerW(termWidth int) int {
	frame := boxWidth(0) + 1
	w := termWidth - frame
	if w < 44 {
		w = 44
	}
	if limit := 3*cardStride - frame; w > limit {
		w = limit
	}
	return w
}
