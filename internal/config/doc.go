// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

// Package config provides layered configuration for Proximus using Koanf v2.
//
// Configuration is loaded from three sources with clear precedence
// (later sources override earlier ones):
//
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml, or CONFIG_PATH env var)
//  3. Environment variables
//
// # Sections
//
//   - data:    dataset location (directory, ratings file, items file)
//   - cf:      collaborative filtering defaults (neighbors, mode, workers)
//   - logging: log level, format, caller info
//
// # Environment Variables
//
//	DATA_DIR        - Dataset directory (default: ml-100k)
//	RATINGS_FILE    - Ratings file name within DATA_DIR (default: u.data)
//	ITEMS_FILE      - Item catalog file name within DATA_DIR (default: u.item)
//	CF_NEIGHBORS    - Default neighborhood size (default: 5)
//	CF_MODE         - Default prediction mode: both, user, item (default: both)
//	CF_WORKERS      - Similarity worker count, 0 = all CPUs (default: 0)
//	LOG_LEVEL       - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT      - json, console (default: console)
//	LOG_CALLER      - Include caller file:line (default: false)
//	CONFIG_PATH     - Explicit config file path
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Invalid configuration")
//	}
//
// All values are validated on load; Load returns an error naming the
// offending setting and its environment variable.
package config
