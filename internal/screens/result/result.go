// Package result renders one prediction: the churn ring, the tier status
// and the recommendation panel.
package result

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnlens/internal/locale"
	"github.com/abhisek/churnlens/internal/predict"
	"github.com/abhisek/churnlens/internal/risk"
	"github.com/abhisek/churnlens/internal/router"
	"github.com/abhisek/churnlens/internal/screen"
	"github.com/abhisek/churnlens/internal/ui/components"
	"github.com/abhisek/churnlens/internal/ui/layout"
	"github.com/abhisek/churnlens/internal/ui/theme"
)

type texts struct {
	title       string
	probability string
	churn       string
	retention   string
	back        string
	quit        string
}

var uiTexts = map[locale.Locale]texts{
	locale.English: {
		title:       "Analysis result",
		probability: "Churn probability",
		churn:       "Churn",
		retention:   "Retention",
		back:        "Edit profile",
		quit:        "Quit",
	},
	locale.Portuguese: {
		title:       "Resultado da análise",
		probability: "Probabilidade de Rotatividade",
		churn:       "Rotatividade",
		retention:   "Retenção",
		back:        "Editar perfil",
		quit:        "Sair",
	},
}

// ringRadius keeps the ring inside the minimum content height.
const ringRadius = 5

// ResultScreen displays a predict.Result. It never feeds anything back
// to the form it was opened from.
type ResultScreen struct {
	result predict.Result
	locale locale.Locale
	text   texts
}

var _ screen.Screen = (*ResultScreen)(nil)

// New creates a ResultScreen for res.
func New(res predict.Result, loc locale.Locale) *ResultScreen {
	return &ResultScreen{
		result: res,
		locale: loc,
		text:   locale.Pick(uiTexts, loc),
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "b":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return r, nil
}

func (r *ResultScreen) Title() string {
	return r.text.title
}

// KeyHints implements screen.KeyHintProvider.
func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: r.text.back},
		{Key: "Ctrl+C", Description: r.text.quit},
	}
}

// Result returns the displayed prediction.
func (r *ResultScreen) Result() predict.Result {
	return r.result
}

func (r *ResultScreen) View(width, height int) string {
	a := r.result.Assessment
	tierColor := theme.RiskColor(a.Tier)

	chart := r.renderChart(tierColor)

	panelWidth := width - lipgloss.Width(chart) - 6
	if panelWidth < 30 {
		panelWidth = 30
	}
	panel := r.renderPanel(tierColor, panelWidth)

	var content string
	if layout.IsCompactWidth(width) {
		content = lipgloss.JoinVertical(lipgloss.Center, chart, "", panel)
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, chart, "    ", panel)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderChart draws the ring and its legend.
func (r *ResultScreen) renderChart(tierColor color.Color) string {
	ring := components.NewRingChart(r.result.Percent/100, ringRadius, tierColor, FormatPercent(r.result.Percent))
	ring.Rest = theme.Border

	churn := components.NewProgressBar(r.text.churn, r.result.Percent, true, 34)
	churn.Fill = tierColor
	retention := components.NewProgressBar(r.text.retention, r.result.RetentionPercent(), true, 34)
	retention.Fill = theme.Border

	legend := lipgloss.JoinVertical(lipgloss.Left, churn.View(), retention.View())
	return lipgloss.JoinVertical(lipgloss.Center, ring.View(), "", legend)
}

// renderPanel draws status, probability, recommendations and disclaimer.
func (r *ResultScreen) renderPanel(tierColor color.Color, width int) string {
	a := r.result.Assessment

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(tierColor).Bold(true).Render(a.Status))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("%s: %s", r.text.probability, FormatPercent(r.result.Percent))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(tierColor).Bold(true).Render(a.Title))
	b.WriteString("\n")
	for _, act := range a.Actions {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("• " + act.Heading))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).PaddingLeft(2).Width(width - 4).Render(act.Detail))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width - 4).Render(risk.Disclaimer(r.locale)))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tierColor).
		Padding(0, 1).
		Width(width).
		Render(b.String())
}

// FormatPercent renders a percentage with two decimals.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
