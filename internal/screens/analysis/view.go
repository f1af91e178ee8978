package analysis

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnlens/internal/form"
	"github.com/abhisek/churnlens/internal/ui/layout"
	"github.com/abhisek/churnlens/internal/ui/theme"
)

const (
	groupCount = 3
	columnGap  = 2
)

func (s *AnalysisScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(s.text.heading))

	colWidth := layout.ColumnWidth(width-4, groupCount, columnGap)
	if layout.IsCompactWidth(width) {
		sections = append(sections, s.renderCompact(width-4))
	} else {
		cols := make([]string, groupCount)
		for g := 0; g < groupCount; g++ {
			cols[g] = s.renderGroup(g, colWidth)
		}
		gap := strings.Repeat(" ", columnGap)
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, cols[0], gap, cols[1], gap, cols[2]))
	}

	if help := s.focusedHelp(); help != "" {
		sections = append(sections, theme.Hint.Width(width-4).Render(help))
	}

	if s.notice != "" {
		sections = append(sections, theme.Hint.Width(width-4).Render("! "+s.notice))
	}

	if s.errMsg != "" {
		sections = append(sections, theme.Invalid.Width(width-4).Render("✗ "+s.errMsg))
	}

	sections = append(sections, lipgloss.NewStyle().Width(width-4).Align(lipgloss.Center).Render(s.submit.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// renderGroup renders one titled column of fields.
func (s *AnalysisScreen) renderGroup(group, width int) string {
	lines := []string{theme.GroupTitle.Render(s.schema.GroupTitle(group)), ""}
	for i, c := range s.controls {
		if c.field.Group != group {
			continue
		}
		lines = append(lines, s.renderControl(i, width)...)
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// renderCompact stacks two fields per line for narrow terminals.
func (s *AnalysisScreen) renderCompact(width int) string {
	half := layout.ColumnWidth(width, 2, columnGap)
	var rows []string
	for g := 0; g < groupCount; g++ {
		rows = append(rows, theme.GroupTitle.Render(s.schema.GroupTitle(g)))
		var pending []string
		for i, c := range s.controls {
			if c.field.Group != g {
				continue
			}
			cell := lipgloss.NewStyle().Width(half).Render(strings.Join(s.renderControl(i, half), "\n"))
			pending = append(pending, cell)
			if len(pending) == 2 {
				rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, pending[0], strings.Repeat(" ", columnGap), pending[1]))
				pending = nil
			}
		}
		if len(pending) == 1 {
			rows = append(rows, pending[0])
		}
	}
	return strings.Join(rows, "\n")
}

// renderControl returns the label line and the input line of control i.
func (s *AnalysisScreen) renderControl(i, width int) []string {
	c := s.controls[i]
	label := s.schema.Label(c.field.Name)
	labelStyle := theme.Unselected
	if i == s.focus {
		labelStyle = theme.Selected
		label = "▸ " + label
	} else {
		label = "  " + label
	}

	var input string
	if c.field.Kind == form.KindSelect {
		input = c.choice.View()
	} else {
		input = "  " + c.number.View()
	}
	return []string{
		labelStyle.MaxWidth(width).Render(label),
		input,
	}
}

func (s *AnalysisScreen) focusedHelp() string {
	if s.focus >= len(s.controls) {
		return ""
	}
	f := s.controls[s.focus].field
	help := s.schema.Help(f.Name)
	if f.Kind == form.KindNumber {
		bounds := boundsText(f)
		if help == "" {
			return bounds
		}
		return help + " " + bounds
	}
	return help
}

func boundsText(f form.Field) string {
	if f.HasMax() {
		return fmt.Sprintf("[%d–%d]", f.Min, f.Max)
	}
	return fmt.Sprintf("[≥ %d]", f.Min)
}
