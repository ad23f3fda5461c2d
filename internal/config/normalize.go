package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeOrganize(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeOrganize() error {
	c.Organize.Uncategorized = strings.ToLower(strings.TrimSpace(c.Organize.Uncategorized))
	if c.Organize.Uncategorized == "" {
		c.Organize.Uncategorized = defaultUncategorized
	}
	c.Organize.UncategorizedDir = strings.TrimSpace(c.Organize.UncategorizedDir)
	if c.Organize.UncategorizedDir == "" {
		c.Organize.UncategorizedDir = defaultUncategorizedDir
	}
	if strings.TrimSpace(c.Organize.LockDir) == "" {
		c.Organize.LockDir = os.TempDir()
	}
	var err error
	if c.Organize.LockDir, err = expandPath(c.Organize.LockDir); err != nil {
		return fmt.Errorf("organize.lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	} else {
		c.Logging.File = ""
	}
	return nil
}
