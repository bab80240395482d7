// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package config

// Config holds all application configuration, loaded via Load().
type Config struct {
	Data    DataConfig    `koanf:"data"`
	CF      CFConfig      `koanf:"cf"`
	Logging LoggingConfig `koanf:"logging"`
}

// DataConfig holds dataset location settings.
//
// The loader never derives paths from the working directory; every file it
// opens is Dir joined with one of the configured file names.
//
// Environment Variables:
//   - DATA_DIR: Dataset directory (default: ml-100k)
//   - RATINGS_FILE: Ratings file name within DATA_DIR (default: u.data)
//   - ITEMS_FILE: Item catalog file name within DATA_DIR (default: u.item)
type DataConfig struct {
	// Dir is the directory containing the MovieLens 100k files.
	// Default: ml-100k
	Dir string `koanf:"dir"`

	// RatingsFile is the tab-separated ratings file name within Dir.
	// Format: user_id<TAB>item_id<TAB>rating<TAB>timestamp
	// Default: u.data
	RatingsFile string `koanf:"ratings_file"`

	// ItemsFile is the pipe-separated, ISO-8859-1 encoded item catalog
	// file name within Dir.
	// Default: u.item
	ItemsFile string `koanf:"items_file"`
}

// CFConfig holds collaborative filtering defaults.
//
// Environment Variables:
//   - CF_NEIGHBORS: Default neighborhood size when not given on the command line (default: 5)
//   - CF_MODE: Default prediction mode: both, user, item (default: both)
//   - CF_WORKERS: Similarity worker count (default: 0 = use runtime.NumCPU())
type CFConfig struct {
	// Neighbors is the default neighborhood size K. The actual neighborhood
	// may be smaller when fewer peers exist.
	// Default: 5
	Neighbors int `koanf:"neighbors"`

	// Mode selects which prediction modes run: both, user, or item.
	// Default: both
	Mode string `koanf:"mode"`

	// Workers is the number of goroutines used for the similarity sweep.
	// 0 = use runtime.NumCPU(). 1 disables parallelism. Results are
	// identical regardless of the worker count.
	// Default: 0
	Workers int `koanf:"workers"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: console)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Console is the default for the interactive CLI; JSON suits
	// machine consumption.
	// Default: console
	Format string `koanf:"format"`

	// Caller includes caller file:line in log output.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file, and
// environment variables. Later sources override earlier ones:
//
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
