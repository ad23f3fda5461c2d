package testsupport

import (
	"path/filepath"
	"testing"

	"foc/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a default config whose lock directory is a per-test temp
// dir, then applies opts.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Organize.LockDir = filepath.Join(t.TempDir(), "locks")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithUncategorizedFolder routes unmatched files into dir.
func WithUncategorizedFolder(dir string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.Uncategorized = config.UncategorizedFolder
		cfg.Organize.UncategorizedDir = dir
	}
}

// WithoutRaceOverwrite disables last-writer-wins renames.
func WithoutRaceOverwrite() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.OverwriteOnRace = false
	}
}
