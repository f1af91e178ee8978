package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/churnlens/internal/predict"
	"github.com/abhisek/churnlens/internal/router"
	"github.com/abhisek/churnlens/internal/screen"
	"github.com/abhisek/churnlens/internal/screens/home"
	"github.com/abhisek/churnlens/internal/screens/welcome"
	"github.com/abhisek/churnlens/internal/source"
	"github.com/abhisek/churnlens/internal/ui/layout"
)

// Options holds the dependencies the screens share.
type Options struct {
	Artifacts *source.Artifacts
	Predictor *predict.Predictor
	Logger    *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	status string
	log    *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	art := opts.Artifacts
	homeFactory := func() screen.Screen {
		return home.New(art, opts.Predictor, log)
	}
	info := art.Classifier.Describe()
	return AppModel{
		router: router.New(welcome.New(homeFactory, art.Locale)),
		status: fmt.Sprintf("%s · %s", info.Kind, art.Locale),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// footerHints prefers the active screen's own hints.
func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if frame := m.render(); frame != "" {
		v.SetContent(frame)
	}
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := newAppModel(opts)
	m.log.Info("starting tui", zap.String("status", m.status))
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
