package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/churnlens/internal/app"
	"github.com/abhisek/churnlens/internal/config"
	"github.com/abhisek/churnlens/internal/logging"
	"github.com/abhisek/churnlens/internal/predict"
	"github.com/abhisek/churnlens/internal/source"
)

// session is everything a command needs once startup succeeded.
type session struct {
	cfg       *config.Config
	log       *zap.Logger
	artifacts *source.Artifacts
}

// openSession loads configuration, starts logging and loads both
// artifacts. A missing artifact gets a hint on stderr.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("start logging: %w", err)
	}

	art, err := source.Open(cfg, log)
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		_ = log.Sync()
		if errors.Is(err, source.ErrMissingArtifact) {
			fmt.Fprintln(cmd.ErrOrStderr(),
				"Place churn_model.json and rh_data.csv next to the executable, or set CHURNLENS_MODEL_PATH and CHURNLENS_DATASET_PATH.")
		}
		return nil, err
	}

	return &session{cfg: cfg, log: log, artifacts: art}, nil
}

// runApp loads the artifacts and launches the TUI.
func runApp(cmd *cobra.Command) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.log.Sync()

	return app.Run(app.Options{
		Artifacts: s.artifacts,
		Predictor: predict.New(s.artifacts.Classifier, s.artifacts.Locale, s.log),
		Logger:    s.log,
	})
}
