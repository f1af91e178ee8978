// Package source loads the two read-only artifacts churnlens depends on: the
// reference dataset and the pre-trained classifier. They are loaded once at
// startup and passed explicitly to the form and the predictor.
package source

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/abhisek/churnlens/internal/config"
	"github.com/abhisek/churnlens/internal/dataset"
	"github.com/abhisek/churnlens/internal/form"
	"github.com/abhisek/churnlens/internal/locale"
	"github.com/abhisek/churnlens/internal/model"
)

// ErrMissingArtifact is returned when the dataset or classifier file is
// absent. It is fatal: no form is shown.
var ErrMissingArtifact = errors.New("missing artifact")

// Artifacts is the process-wide read-only state of a session.
type Artifacts struct {
	Classifier model.Classifier
	Dataset    *dataset.Dataset
	Schema     *form.Schema
	Locale     locale.Locale
}

// Open loads the classifier and dataset named by cfg and builds the form
// schema from the dataset's ordinal option lists.
func Open(cfg *config.Config, log *zap.Logger) (*Artifacts, error) {
	loc, err := locale.Parse(cfg.Locale)
	if err != nil {
		return nil, err
	}

	clf, err := model.Load(cfg.ModelPath)
	if err != nil {
		return nil, artifactError("classifier", cfg.ModelPath, err)
	}
	info := clf.Describe()
	log.Info("classifier loaded",
		zap.String("path", cfg.ModelPath),
		zap.String("kind", string(info.Kind)),
		zap.Int("features", info.Features),
		zap.Bool("declared", info.Declared),
		zap.Int("trees", info.Trees))
	if !info.Declared {
		log.Warn("classifier declares no feature names; predictions will fail",
			zap.String("path", cfg.ModelPath))
	}

	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return nil, artifactError("dataset", cfg.DatasetPath, err)
	}
	log.Info("dataset loaded", zap.String("path", cfg.DatasetPath), zap.Int("rows", ds.Len()))

	schema, err := buildSchema(ds, loc, log)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", cfg.DatasetPath, err)
	}

	return &Artifacts{
		Classifier: clf,
		Dataset:    ds,
		Schema:     schema,
		Locale:     loc,
	}, nil
}

func buildSchema(ds *dataset.Dataset, loc locale.Locale, log *zap.Logger) (*form.Schema, error) {
	edu, err := ds.UniqueInts(form.Education)
	if err != nil {
		return nil, err
	}
	lvl, err := ds.UniqueInts(form.JobLevel)
	if err != nil {
		return nil, err
	}

	schema, err := form.NewSchema(edu, lvl, loc)
	if err != nil {
		return nil, err
	}

	// The option lists come from observed data, not from the training
	// domain. A mismatch is reported, not patched.
	for _, name := range []string{form.Education, form.JobLevel} {
		extra, missing := schema.OutOfDomain(name)
		if len(extra) > 0 || len(missing) > 0 {
			log.Warn("ordinal options differ from the 1-5 domain",
				zap.String("field", name),
				zap.Ints("unexpected", extra),
				zap.Ints("missing", missing))
		}
	}
	return schema, nil
}

func artifactError(kind, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s file not found at %s", ErrMissingArtifact, kind, path)
	}
	return fmt.Errorf("load %s: %w", kind, err)
}
