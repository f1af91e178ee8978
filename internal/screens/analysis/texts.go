package analysis

import "github.com/abhisek/churnlens/internal/locale"

type texts struct {
	title       string
	heading     string
	submit      string
	navigate    string
	change      string
	reset       string
	back        string
	noFeatures  string
	invalid     string
	missing     string
	outOfDomain string // label, offending values, lower bound, upper bound
}

var uiTexts = map[locale.Locale]texts{
	locale.English: {
		title:       "New analysis",
		heading:     "Employee profile",
		submit:      "Predict churn risk",
		navigate:    "Move",
		change:      "Change",
		reset:       "Reset",
		back:        "Back",
		noFeatures:  "The model does not declare its input features. Check the model artifact.",
		invalid:     "Invalid values",
		missing:     "Missing values",
		outOfDomain: "%s lists %s, outside %d–%d; the model will reject those options.",
	},
	locale.Portuguese: {
		title:       "Nova análise",
		heading:     "Perfil do colaborador",
		submit:      "Prever risco",
		navigate:    "Mover",
		change:      "Alterar",
		reset:       "Limpar",
		back:        "Voltar",
		noFeatures:  "O modelo não declara as variáveis de entrada. Verifique o artefato do modelo.",
		invalid:     "Valores inválidos",
		missing:     "Valores em falta",
		outOfDomain: "%s inclui %s, fora de %d–%d; o modelo vai rejeitar essas opções.",
	},
}

func textsFor(loc locale.Locale) texts {
	return locale.Pick(uiTexts, loc)
}
