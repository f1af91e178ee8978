package about

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnlens/internal/locale"
	"github.com/abhisek/churnlens/internal/model"
	"github.com/abhisek/churnlens/internal/screen"
	"github.com/abhisek/churnlens/internal/ui/theme"
)

type section struct {
	heading string
	body    string
}

type page struct {
	title    string
	sections []section
	model    string
}

var pages = map[locale.Locale]page{
	locale.English: {
		title: "About",
		sections: []section{
			{"About this tool", "Uses machine learning to estimate how likely an employee is to leave. " +
				"The classifier was trained on historical HR records and turns a profile into a churn probability " +
				"with practical retention actions, to support leaders and HR teams in strategic decisions."},
			{"Machine learning", "Lets computers learn patterns from data without being explicitly programmed."},
			{"Random forest", "Combines many decision trees into a single, more robust and accurate model."},
			{"Why retention matters", "Keeping talent is key to growth. High turnover is expensive, hurts team morale " +
				"and drains knowledge. Investing in retention means understanding and valuing people."},
		},
		model: "Loaded model: %s, %d input features",
	},
	locale.Portuguese: {
		title: "Sobre",
		sections: []section{
			{"Sobre este app", "Utiliza Machine Learning para prever a probabilidade de um colaborador solicitar desligamento. " +
				"O modelo foi treinado com dados históricos e fornece insights práticos e ações de retenção personalizadas, " +
				"auxiliando líderes e equipes de RH na tomada de decisão estratégica."},
			{"Machine Learning", "Permite que computadores identifiquem padrões a partir de dados, sem programação explícita."},
			{"Random Forest", "Algoritmo que combina múltiplas árvores de decisão para criar um modelo mais robusto e preciso."},
			{"Por que a retenção é importante?", "Reter talentos é crucial para o crescimento e a sustentabilidade. " +
				"A alta rotatividade gera custos significativos, impacta a moral da equipe e causa perda de conhecimento."},
		},
		model: "Modelo carregado: %s, %d variáveis de entrada",
	},
}

// AboutScreen explains what the tool does and which model is loaded.
type AboutScreen struct {
	page page
	info model.Info
}

var _ screen.Screen = (*AboutScreen)(nil)

// New creates an AboutScreen describing info.
func New(loc locale.Locale, info model.Info) *AboutScreen {
	return &AboutScreen{page: locale.Pick(pages, loc), info: info}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	textWidth := width - 8
	if textWidth > 76 {
		textWidth = 76
	}

	var b strings.Builder
	for i, s := range a.page.sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(theme.GroupTitle.Render(s.heading))
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(textWidth).Render(s.body))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf(a.page.model, a.info.Kind, a.info.Features)))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Render(b.String()))
}

func (a *AboutScreen) Title() string {
	return a.page.title
}
