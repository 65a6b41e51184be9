package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/khancreations/shootsync/internal/domain"
	"github.com/khancreations/shootsync/internal/priority"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusIndicator returns a colored marker such as "● IN PROGRESS".
func StatusIndicator(status domain.DeliveryStatus) string {
	switch status {
	case domain.DeliveryDelivered:
		return StyleGreen.Render("● DELIVERED")
	case domain.DeliveryInProgress:
		return StyleYellow.Render("● IN PROGRESS")
	case domain.DeliveryPending:
		return StyleBlue.Render("● PENDING")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// PriorityStyle maps a priority score to a color: urgent tiers burn red,
// attention tiers amber, the quiet default stays dim.
func PriorityStyle(score int) lipgloss.Style {
	switch {
	case score >= priority.TierEditingStalled:
		return StyleRed
	case score >= priority.TierPaymentOverdue:
		return StyleYellow
	case score >= priority.TierInProgress:
		return StyleBlue
	default:
		return StyleDim
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
