package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOrganize() error {
	switch c.Organize.Uncategorized {
	case UncategorizedLeave, UncategorizedFolder:
	default:
		return fmt.Errorf("organize.uncategorized must be %q or %q, got %q", UncategorizedLeave, UncategorizedFolder, c.Organize.Uncategorized)
	}
	dir := c.Organize.UncategorizedDir
	if dir == "." || dir == ".." || strings.ContainsAny(dir, `/\`) || filepath.IsAbs(dir) {
		return fmt.Errorf("organize.uncategorized_dir must be a single folder name, got %q", dir)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
