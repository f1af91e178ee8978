package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/churnlens/internal/dataset"
	"github.com/abhisek/churnlens/internal/form"
	"github.com/abhisek/churnlens/internal/locale"
	"github.com/abhisek/churnlens/internal/model"
	"github.com/abhisek/churnlens/internal/predict"
	"github.com/abhisek/churnlens/internal/router"
	"github.com/abhisek/churnlens/internal/screens/analysis"
	"github.com/abhisek/churnlens/internal/screens/home"
	"github.com/abhisek/churnlens/internal/screens/result"
	"github.com/abhisek/churnlens/internal/source"
)

const testModel = `{
	"format_version": 1,
	"kind": "logistic_regression",
	"feature_names_in": ["Age", "Department_Sales"],
	"n_features_in": 2,
	"classes": [0, 1],
	"coef": [-0.05, 1.2],
	"intercept": 0.5
}`

func testOptions(t *testing.T) Options {
	t.Helper()
	clf, err := model.Parse([]byte(testModel))
	require.NoError(t, err)
	ds, err := dataset.Read(strings.NewReader("Education,JobLevel\n2,1\n1,2\n"))
	require.NoError(t, err)
	schema, err := form.NewSchema([]int{2, 1}, []int{1, 2}, locale.English)
	require.NoError(t, err)

	log := zaptest.NewLogger(t)
	return Options{
		Artifacts: &source.Artifacts{Classifier: clf, Dataset: ds, Schema: schema, Locale: locale.English},
		Predictor: predict.New(clf, locale.English, log),
		Logger:    log,
	}
}

// send feeds msg to m and then every message its command produces, one
// level deep. Tick commands are skipped.
func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

func TestApp_WelcomeToHomeToResultAndBack(t *testing.T) {
	m := newAppModel(testOptions(t))
	require.Equal(t, "", m.router.Active().Title())

	m = send(t, m, tea.KeyPressMsg{Code: ' ', Text: " "})
	require.IsType(t, &home.HomeScreen{}, m.router.Active())
	require.Equal(t, 1, m.router.Depth(), "welcome is replaced, not stacked")

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	formScreen, ok := m.router.Active().(*analysis.AnalysisScreen)
	require.True(t, ok, "expected the analysis form, got %T", m.router.Active())

	m = send(t, m, tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	res, ok := m.router.Active().(*result.ResultScreen)
	require.True(t, ok, "expected the result screen, got %T", m.router.Active())
	assert.Equal(t, 26.89, res.Result().Percent)

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Same(t, formScreen, m.router.Active(), "Esc returns to the same form")
	assert.Equal(t, 2, m.router.Depth())
}

func TestApp_EscAtRootIsNoop(t *testing.T) {
	m := newAppModel(testOptions(t))
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, next.(AppModel).router.Depth())
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(t))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_ViewFrame(t *testing.T) {
	m := newAppModel(testOptions(t))
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = send(t, m, tea.KeyPressMsg{Code: ' ', Text: " "})

	content := m.render()
	assert.Contains(t, content, "churnlens")
	assert.Contains(t, content, "logistic_regression · en")
	assert.Contains(t, content, "Navigate")
}

func TestApp_ViewTooSmall(t *testing.T) {
	m := newAppModel(testOptions(t))
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, m.render(), "Terminal too small")
}
