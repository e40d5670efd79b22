package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rxtech-lab/argo-terminal/internal/ticket"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for validation and submission errors.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	// OkStyle for transient confirmations.
	OkStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

	// LabelStyle for field labels.
	LabelStyle = lipgloss.NewStyle().Faint(true)
)

// sparkGlyphs are the block glyphs used for the terminal sparkline, from
// lowest to highest.
var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// FormatPriceWithTrend formats a price with a direction indicator derived
// from the rolling window.
func FormatPriceWithTrend(price float64, trend ticket.Trend) string {
	priceStr := fmt.Sprintf("%.2f", price)

	switch trend.Direction {
	case ticket.DirectionUp:
		return fmt.Sprintf("%s ▲ +%.2f%%", priceStr, trend.Percent)
	case ticket.DirectionDown:
		return fmt.Sprintf("%s ▼ %.2f%%", priceStr, trend.Percent)
	default:
		return priceStr
	}
}

// RenderSparkline draws the rolling price window as one line of block
// glyphs, resampled to at most width cells. A constant window renders flat
// rather than dividing by zero.
func RenderSparkline(values []float64, width int) string {
	if len(values) < 2 || width < 2 {
		return ""
	}

	if len(values) > width {
		values = values[len(values)-width:]
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	span := max - min
	if span == 0 {
		span = 1
	}

	var s strings.Builder
	for _, v := range values {
		idx := int((v - min) / span * float64(len(sparkGlyphs)-1))
		s.WriteRune(sparkGlyphs[idx])
	}

	return s.String()
}
