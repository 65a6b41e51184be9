package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a dim separator under the header
// row. Widths are measured with lipgloss so colored cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	measure := func(row []string) {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(cell)
			if i < len(widths)-1 {
				pad := widths[i] - lipgloss.Width(cell)
				if pad < 0 {
					pad = 0
				}
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	styledHeaders := make([]string, len(headers))
	for i, h := range headers {
		styledHeaders[i] = StyleHeader.Render(h)
	}
	writeRow(styledHeaders)

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(sep)

	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
