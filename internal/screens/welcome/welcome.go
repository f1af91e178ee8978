package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnlens/internal/locale"
	"github.com/abhisek/churnlens/internal/risk"
	"github.com/abhisek/churnlens/internal/router"
	"github.com/abhisek/churnlens/internal/screen"
	"github.com/abhisek/churnlens/internal/ui/components"
	"github.com/abhisek/churnlens/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 1000 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// logoShare is how far the splash ring fills once the animation settles.
const logoShare = 0.68

var taglines = map[locale.Locale]string{
	locale.English:    "Employee churn risk at a glance",
	locale.Portuguese: "Risco de rotatividade em um relance",
}

var continueHints = map[locale.Locale]string{
	locale.English:    "press any key to continue",
	locale.Portuguese: "pressione qualquer tecla para continuar",
}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	locale       locale.Locale
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen, loc locale.Locale) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		locale:      loc,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// ringShare returns the splash ring fill for the current frame.
func (w *WelcomeScreen) ringShare() float64 {
	if w.elapsed >= phase1End {
		return logoShare
	}
	return logoShare * float64(w.elapsed) / float64(phase1End)
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	ring := components.NewRingChart(w.ringShare(), 4, theme.RiskColor(risk.TierHigh), "")
	ring.Rest = theme.RiskColor(risk.TierLow)
	sections = append(sections, ring.View())

	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(locale.Pick(taglines, w.locale))
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(locale.Pick(continueHints, w.locale))
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
