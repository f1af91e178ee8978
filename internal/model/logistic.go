package model

import (
	"fmt"
	"math"
)

// Logistic is a binary logistic regression.
type Logistic struct {
	names     []string
	classes   [2]int
	coef      []float64
	intercept float64
	source    string
}

var _ Classifier = (*Logistic)(nil)

func newLogistic(a *artifact) (*Logistic, error) {
	if len(a.Coef) != a.NFeaturesIn {
		return nil, fmt.Errorf("%w: %d coefficients for n_features_in=%d",
			ErrInvalidArtifact, len(a.Coef), a.NFeaturesIn)
	}
	return &Logistic{
		names:     copyNames(a.FeatureNamesIn),
		classes:   [2]int{a.Classes[0], a.Classes[1]},
		coef:      a.Coef,
		intercept: a.Intercept,
	}, nil
}

func (l *Logistic) PredictProba(row []float64) ([]float64, error) {
	if err := checkWidth(row, len(l.coef)); err != nil {
		return nil, err
	}

	z := l.intercept
	for i, w := range l.coef {
		z += w * row[i]
	}
	p1 := 1 / (1 + math.Exp(-z))
	return []float64{1 - p1, p1}, nil
}

func (l *Logistic) FeatureNames() []string {
	return copyNames(l.names)
}

func (l *Logistic) Describe() Info {
	return Info{
		Kind:     KindLogisticRegression,
		Features: len(l.coef),
		Declared: len(l.names) > 0,
		Classes:  l.classes,
		Source:   l.source,
	}
}
