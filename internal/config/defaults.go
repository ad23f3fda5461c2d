package config

import "os"

const (
	defaultUncategorized    = UncategorizedLeave
	defaultUncategorizedDir = "Uncategorized"
	defaultOverwriteOnRace  = true
	defaultLogFormat        = "console"
	defaultLogLevel         = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Organize: Organize{
			Uncategorized:    defaultUncategorized,
			UncategorizedDir: defaultUncategorizedDir,
			OverwriteOnRace:  defaultOverwriteOnRace,
			LockDir:          os.TempDir(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
