package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnlens/internal/ui/theme"
)

// ProgressBar displays a horizontal share bar with a two-decimal percent.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0..100
	ShowPercent bool
	Width       int
	Fill        color.Color
}

// NewProgressBar creates a new progress bar filled with the secondary color.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Fill:        theme.Secondary,
	}
}

// filledCells returns how many of barWidth cells are filled.
func (p ProgressBar) filledCells(barWidth int) int {
	filled := int(float64(barWidth) * p.Percent / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 9 // "  100.00%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := p.filledCells(barWidth)
	empty := barWidth - filled

	result += lipgloss.NewStyle().Background(p.Fill).Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %.2f%%", p.Percent))
	}

	return result
}
