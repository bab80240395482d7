// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package config

import "fmt"

// validLogLevels are the accepted LOG_LEVEL values.
var validLogLevels = map[string]bool{
	"trace":    true,
	"debug":    true,
	"info":     true,
	"warn":     true,
	"warning":  true,
	"error":    true,
	"fatal":    true,
	"disabled": true,
}

// validModes are the accepted CF_MODE values.
var validModes = map[string]bool{
	"both": true,
	"user": true,
	"item": true,
}

// Validate checks all configuration sections and returns the first error
// found. Error messages name the environment variable that controls the
// offending setting.
func (c *Config) Validate() error {
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateCF(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateData() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("invalid DATA_DIR: must not be empty")
	}
	if c.Data.RatingsFile == "" {
		return fmt.Errorf("invalid RATINGS_FILE: must not be empty")
	}
	if c.Data.ItemsFile == "" {
		return fmt.Errorf("invalid ITEMS_FILE: must not be empty")
	}
	return nil
}

func (c *Config) validateCF() error {
	if c.CF.Neighbors < 1 {
		return fmt.Errorf("invalid CF_NEIGHBORS: %d (must be >= 1)", c.CF.Neighbors)
	}
	if !validModes[c.CF.Mode] {
		return fmt.Errorf("invalid CF_MODE: %q (must be both, user, or item)", c.CF.Mode)
	}
	if c.CF.Workers < 0 {
		return fmt.Errorf("invalid CF_WORKERS: %d (must be >= 0, 0 = all CPUs)", c.CF.Workers)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid LOG_LEVEL: %q (must be trace, debug, info, warn, error, or fatal)", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("invalid LOG_FORMAT: %q (must be json or console)", c.Logging.Format)
	}
	return nil
}
