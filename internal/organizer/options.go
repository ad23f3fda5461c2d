package organizer

import "foc/internal/config"

// OptionsFromConfig maps configuration onto run options.
func OptionsFromConfig(cfg *config.Config, dryRun bool) Options {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	opts := Options{
		DryRun:  dryRun,
		Exec:    ExecOptions{OverwriteOnRace: cfg.Organize.OverwriteOnRace},
		LockDir: cfg.Organize.LockDir,
	}
	if cfg.UncategorizedToFolder() {
		opts.Policy.UncategorizedDir = cfg.Organize.UncategorizedDir
	}
	return opts
}
