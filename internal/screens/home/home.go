package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/churnlens/internal/locale"
	"github.com/abhisek/churnlens/internal/model"
	"github.com/abhisek/churnlens/internal/router"
	"github.com/abhisek/churnlens/internal/screen"
	"github.com/abhisek/churnlens/internal/screens/about"
	"github.com/abhisek/churnlens/internal/screens/analysis"
	"github.com/abhisek/churnlens/internal/source"
	"github.com/abhisek/churnlens/internal/ui/components"
	"github.com/abhisek/churnlens/internal/ui/layout"
	"github.com/abhisek/churnlens/internal/ui/theme"
)

type texts struct {
	title      string
	analysis   string
	about      string
	quit       string
	kind       string
	features   string
	undeclared string
	rows       string
	navigate   string
	selectKey  string
}

var uiTexts = map[locale.Locale]texts{
	locale.English: {
		title:      "Home",
		analysis:   "New analysis",
		about:      "About",
		quit:       "Quit",
		kind:       "Model",
		features:   "Declared features",
		undeclared: "not declared",
		rows:       "Reference rows",
		navigate:   "Navigate",
		selectKey:  "Select",
	},
	locale.Portuguese: {
		title:      "Início",
		analysis:   "Nova análise",
		about:      "Sobre",
		quit:       "Sair",
		kind:       "Modelo",
		features:   "Variáveis declaradas",
		undeclared: "não declaradas",
		rows:       "Linhas de referência",
		navigate:   "Navegar",
		selectKey:  "Selecionar",
	},
}

// HomeScreen is the main menu with a summary of the loaded artifacts.
type HomeScreen struct {
	menu components.Menu
	info model.Info
	rows int
	text texts
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. Every analysis opened from it shares art and
// predictor.
func New(art *source.Artifacts, predictor analysis.Predictor, log *zap.Logger) *HomeScreen {
	text := locale.Pick(uiTexts, art.Locale)
	info := art.Classifier.Describe()

	items := []components.MenuItem{
		{Label: text.analysis, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: analysis.New(art.Schema, predictor, log)}
			}
		}},
		{Label: text.about, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: about.New(art.Locale, info)}
			}
		}},
		{Label: text.quit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		info: info,
		rows: art.Dataset.Len(),
		text: text,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// KeyHints implements screen.KeyHintProvider.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: h.text.navigate},
		{Key: "Enter", Description: h.text.selectKey},
		{Key: "Ctrl+C", Description: h.text.quit},
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("C H U R N L E N S")

	sections := []string{
		title,
		h.renderArtifactCard(cw),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(h.menu.View()),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n\n"))
}

// renderArtifactCard summarizes the loaded classifier and dataset.
func (h *HomeScreen) renderArtifactCard(cw int) string {
	key := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	kind := string(h.info.Kind)
	if h.info.Trees > 0 {
		kind = fmt.Sprintf("%s (%d trees)", kind, h.info.Trees)
	}
	features := fmt.Sprintf("%d", h.info.Features)
	if !h.info.Declared {
		features = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(h.text.undeclared)
	}

	lines := []string{
		key.Render(h.text.kind+": ") + val.Render(kind),
		key.Render(h.text.features+": ") + val.Render(features),
		key.Render(h.text.rows+": ") + val.Render(fmt.Sprintf("%d", h.rows)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (h *HomeScreen) Title() string {
	return h.text.title
}

// contentWidth returns the uniform width shared by the home sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}
