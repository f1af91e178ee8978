package components

import (
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnlens/internal/ui/theme"
)

// holeRatio is the inner radius of the ring relative to the outer one.
const holeRatio = 0.55

type cellKind int

const (
	cellEmpty cellKind = iota
	cellFilled
	cellRest
)

// RingChart is a donut chart splitting a full turn into a filled share
// (clockwise from twelve o'clock) and the remainder.
type RingChart struct {
	Fraction  float64
	Radius    int
	Fill      color.Color
	Rest      color.Color
	CenterTag string
}

// NewRingChart creates a ring for fraction in [0,1], clamped.
func NewRingChart(fraction float64, radius int, fill color.Color, centerTag string) RingChart {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	if radius < 2 {
		radius = 2
	}
	return RingChart{
		Fraction:  fraction,
		Radius:    radius,
		Fill:      fill,
		Rest:      theme.Border,
		CenterTag: centerTag,
	}
}

// ringCells lays the ring out on a character grid. Terminal cells are
// roughly twice as tall as wide, so columns count half a unit.
func ringCells(radius int, fraction float64) [][]cellKind {
	r := float64(radius)
	rows := 2*radius + 1
	cols := 4*radius + 1
	limit := fraction * 2 * math.Pi

	grid := make([][]cellKind, rows)
	for row := 0; row < rows; row++ {
		grid[row] = make([]cellKind, cols)
		for col := 0; col < cols; col++ {
			x := float64(col-2*radius) / 2
			y := float64(row - radius)
			d := math.Hypot(x, y) / r
			if d > 1 || d < holeRatio {
				continue
			}
			theta := math.Atan2(x, -y)
			if theta < 0 {
				theta += 2 * math.Pi
			}
			if theta < limit {
				grid[row][col] = cellFilled
			} else {
				grid[row][col] = cellRest
			}
		}
	}
	return grid
}

// View renders the ring with CenterTag written into the hole.
func (rc RingChart) View() string {
	grid := ringCells(rc.Radius, rc.Fraction)
	fill := lipgloss.NewStyle().Foreground(rc.Fill)
	rest := lipgloss.NewStyle().Foreground(rc.Rest)
	tag := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	cols := len(grid[0])
	tagLen := len([]rune(rc.CenterTag))
	tagStart := (cols - tagLen) / 2
	for col := tagStart; col < tagStart+tagLen; col++ {
		if col < 0 || col >= cols || grid[rc.Radius][col] != cellEmpty {
			tagLen = 0
			break
		}
	}

	lines := make([]string, 0, len(grid))
	for row, cells := range grid {
		var b strings.Builder
		for col, c := range cells {
			switch c {
			case cellFilled:
				b.WriteString(fill.Render("█"))
			case cellRest:
				b.WriteString(rest.Render("█"))
			default:
				if row == rc.Radius && col == tagStart && tagLen > 0 {
					b.WriteString(tag.Render(rc.CenterTag))
				} else if row != rc.Radius || col < tagStart || col >= tagStart+tagLen {
					b.WriteString(" ")
				}
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
