package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders an editing progress bar like [████░░░░]  50%.
// Green from two thirds up, yellow in the middle band, red below.
func RenderProgress(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}

	filled := pct * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 33 {
		style = StyleRed
	} else if pct < 66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), pct)
}
