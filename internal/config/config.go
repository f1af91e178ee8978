// Package config holds churnlens runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultModelFile   = "churn_model.json"
	DefaultDatasetFile = "rh_data.csv"
)

// Config holds the paths to the two artifacts plus logging and locale
// settings.
type Config struct {
	// ModelPath points to the serialized classifier artifact.
	ModelPath string `koanf:"model_path"`

	// DatasetPath points to the reference dataset used to populate
	// the Education and JobLevel option lists.
	DatasetPath string `koanf:"dataset_path"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile receives structured logs. The terminal is owned by the UI.
	LogFile string `koanf:"log_file"`

	// Locale selects display labels and recommendation texts: en, pt-BR.
	Locale string `koanf:"locale"`
}

// New returns a Config with defaults. Artifacts are looked up next to the
// running executable.
func New() *Config {
	dir := executableDir()
	return &Config{
		ModelPath:   filepath.Join(dir, DefaultModelFile),
		DatasetPath: filepath.Join(dir, DefaultDatasetFile),
		LogLevel:    "info",
		LogFile:     defaultLogPath(),
		Locale:      "en",
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("model_path must not be empty")
	}
	if c.DatasetPath == "" {
		return fmt.Errorf("dataset_path must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	switch c.Locale {
	case "en", "pt-BR":
	default:
		return fmt.Errorf("unknown locale: %q", c.Locale)
	}
	return nil
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// defaultLogPath follows XDG_STATE_HOME, falling back to ~/.local/state.
func defaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "churnlens.log")
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "churnlens", "churnlens.log")
}
