package testsupport

import (
	"path/filepath"
	"testing"

	"bckl/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp paths per test. It
// defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.LLM.APIKey = "test"
	cfg.Store.Path = filepath.Join(base, "backlog.csv")
	cfg.Logging.Dir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithStorePath overrides the backlog file location on the test config.
func WithStorePath(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Store.Path = path
	}
}

// WithModel overrides the completion model on the test config.
func WithModel(model string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.LLM.Model = model
	}
}
