// Package model loads the pre-trained churn classifier artifact and
// evaluates it. The artifact is produced by an external training pipeline
// and treated as opaque: a JSON document describing either a random forest
// or a logistic regression, plus the ordered feature names it was fit on.
package model

import (
	"errors"
	"fmt"
	"os"
)

// Kind identifies the estimator family stored in an artifact.
type Kind string

const (
	KindRandomForest       Kind = "random_forest"
	KindLogisticRegression Kind = "logistic_regression"
)

var (
	// ErrInvalidArtifact is returned when an artifact fails schema or
	// structural validation.
	ErrInvalidArtifact = errors.New("invalid model artifact")

	// ErrFeatureCount is returned when PredictProba receives a row whose
	// width differs from the training width.
	ErrFeatureCount = errors.New("feature count mismatch")
)

// Classifier is a fitted binary classifier.
type Classifier interface {
	// PredictProba returns [P(class0), P(class1)] for a single row.
	PredictProba(row []float64) ([]float64, error)

	// FeatureNames returns the ordered training-time feature names, or nil
	// when the artifact does not declare them.
	FeatureNames() []string

	// Describe returns summary information for display.
	Describe() Info
}

// Info summarises a loaded classifier.
type Info struct {
	Kind     Kind
	Features int
	Declared bool
	Trees    int
	Classes  [2]int
	Source   string
}

// Load reads and validates a classifier artifact from disk. A missing file
// is reported with an error wrapping os.ErrNotExist.
func Load(path string) (Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	setSource(c, path)
	return c, nil
}

// Parse validates raw artifact JSON and builds the classifier it describes.
func Parse(data []byte) (Classifier, error) {
	a, err := decodeArtifact(data)
	if err != nil {
		return nil, err
	}

	switch a.Kind {
	case KindRandomForest:
		return newForest(a)
	case KindLogisticRegression:
		return newLogistic(a)
	default:
		return nil, fmt.Errorf("%w: unsupported kind %q", ErrInvalidArtifact, a.Kind)
	}
}

func setSource(c Classifier, path string) {
	switch m := c.(type) {
	case *Forest:
		m.source = path
	case *Logistic:
		m.source = path
	}
}

func copyNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

func checkWidth(row []float64, want int) error {
	if len(row) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(row), want)
	}
	return nil
}
