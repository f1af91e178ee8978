package about

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/churnlens/internal/locale"
	"github.com/abhisek/churnlens/internal/model"
)

func TestAboutScreen_DescribesLoadedModel(t *testing.T) {
	a := New(locale.English, model.Info{Kind: model.KindRandomForest, Features: 28})

	view := a.View(100, 40)
	assert.Equal(t, "About", a.Title())
	assert.Contains(t, view, "Why retention matters")
	assert.Contains(t, view, "random_forest, 28 input features")
}

func TestAboutScreen_Portuguese(t *testing.T) {
	a := New(locale.Portuguese, model.Info{Kind: model.KindLogisticRegression, Features: 2})
	assert.Equal(t, "Sobre", a.Title())
	assert.Contains(t, a.View(100, 40), "Modelo carregado")
}

func TestAboutScreen_IgnoresInput(t *testing.T) {
	a := New(locale.English, model.Info{})
	s, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Same(t, a, s)
	assert.Nil(t, cmd)
}
