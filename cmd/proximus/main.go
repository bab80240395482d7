// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

// Package main is the entry point for the proximus command line tool.
//
// Proximus predicts how a MovieLens user would rate a movie, using
// neighborhood-based collaborative filtering over the MovieLens 100k
// dataset. Every invocation loads the dataset, answers one prediction
// query and exits; nothing persists between runs.
//
// # Usage
//
//	proximus [flags] predict <user_id> <item_id> [k]
//	proximus version
//
// user_id and item_id are 1-based MovieLens identifiers. k is the
// neighborhood size and falls back to the configured default when omitted.
//
// Flags must precede the predict command:
//
//	-config   path to a YAML config file (overrides the search path)
//	-data-dir MovieLens data directory (overrides config)
//	-mode     prediction mode: both, user or item (overrides config)
//	-format   output format: text or json (default: text)
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (DATA_DIR, CF_NEIGHBORS, CF_MODE, CF_WORKERS,
//     LOG_LEVEL, LOG_FORMAT)
//   - Config file (config.yaml, or CONFIG_PATH / -config)
//   - Built-in defaults
//
// # Output Formats
//
// Text output prints one block per prediction mode: the nearest neighbors,
// their ratings for the movie, the averages and the predicted rating. JSON
// output marshals the same results for machine consumption; predictions
// that cannot be computed from the available data render as null.
//
// # Exit Codes
//
//	0  prediction rendered
//	1  dataset or engine failure
//	2  invalid command line or out-of-range ids
//
// # Example Usage
//
// Predict how user 13 would rate movie 100 from its 5 nearest neighbors:
//
//	proximus predict 13 100 5
//
// Same query, JSON output, user-based only:
//
//	proximus -format json -mode user predict 13 100 5
//
// Against a dataset in a non-default location:
//
//	DATA_DIR=/srv/movielens/ml-100k proximus predict 13 100 5
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tomtom215/proximus/internal/config"
	"github.com/tomtom215/proximus/internal/dataset"
	"github.com/tomtom215/proximus/internal/logging"
	"github.com/tomtom215/proximus/internal/recommend"
	"github.com/tomtom215/proximus/internal/report"
)

const usage = `Usage: proximus [flags] predict <user_id> <item_id> [k]
       proximus version

Flags:
  -config string    path to a YAML config file
  -data-dir string  MovieLens data directory (overrides config)
  -mode string      prediction mode: both, user or item (overrides config)
  -format string    output format: text or json (default "text")`

// version is overridden at release time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

// cliOptions collects everything parsed from the command line.
type cliOptions struct {
	command    string
	configPath string
	dataDir    string
	mode       string
	format     string
	userID     int
	itemID     int
	k          int // 0 means use the configured default
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes one invocation and returns the process exit code. Output
// goes to stdout, diagnostics to the logger and stderr.
func run(args []string, stdout io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "proximus: %v\n%s\n", err, usage)
		return 2
	}

	if opts.command == "version" {
		fmt.Fprintf(stdout, "proximus %s\n", version)
		return 0
	}

	if opts.configPath != "" {
		if err := os.Setenv(config.ConfigPathEnvVar, opts.configPath); err != nil {
			fmt.Fprintf(os.Stderr, "proximus: set %s: %v\n", config.ConfigPathEnvVar, err)
			return 1
		}
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	// Command line beats config file and environment.
	if opts.dataDir != "" {
		cfg.Data.Dir = opts.dataDir
	}
	if opts.mode != "" {
		cfg.CF.Mode = opts.mode
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "proximus: %v\n", err)
		return 2
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	k := opts.k
	if k == 0 {
		k = cfg.CF.Neighbors
	}

	ctx := context.Background()

	loader := dataset.NewLoader(filepath.Join(cfg.Data.Dir, cfg.Data.RatingsFile), logger)
	engine, err := recommend.NewEngineFromLoader(ctx, loader, recommend.Config{Workers: cfg.CF.Workers}, logger)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to build recommendation engine")
		return 1
	}

	// The catalog only affects presentation, so a missing or unreadable
	// u.item downgrades to id-only output.
	catalog, err := dataset.LoadCatalog(ctx, filepath.Join(cfg.Data.Dir, cfg.Data.ItemsFile), logger)
	if err != nil {
		logging.Warn().Err(err).Msg("Item catalog unavailable, rendering item ids")
		catalog = nil
	}

	renderer := report.NewRenderer(stdout, catalog)

	if err := predictAndRender(engine, renderer, cfg.CF.Mode, opts.format, opts.userID, opts.itemID, k); err != nil {
		if errors.Is(err, recommend.ErrInvalidArgument) {
			fmt.Fprintf(os.Stderr, "proximus: %v\n", err)
			return 2
		}
		logging.Error().Err(err).Msg("Prediction failed")
		return 1
	}

	return 0
}

// predictAndRender runs the requested prediction mode and writes the result
// in the requested format.
func predictAndRender(engine *recommend.Engine, renderer *report.Renderer, mode, format string, userID, itemID, k int) error {
	if mode == "both" {
		rec, err := engine.Recommend(userID, itemID, k)
		if err != nil {
			return err
		}
		if format == "json" {
			return renderer.JSON(rec)
		}
		return renderer.Recommendation(userID, itemID, rec)
	}

	m, err := recommend.ParseMode(mode)
	if err != nil {
		return err
	}
	res, err := engine.Predict(recommend.Request{Mode: m, UserID: userID, ItemID: itemID, K: k})
	if err != nil {
		return err
	}
	if format == "json" {
		return renderer.JSON(res)
	}
	return renderer.Result(userID, itemID, res)
}

// parseArgs parses flags and the subcommand without touching global
// flag state.
func parseArgs(args []string) (*cliOptions, error) {
	opts := &cliOptions{}

	fs := flag.NewFlagSet("proximus", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&opts.dataDir, "data-dir", "", "MovieLens data directory")
	fs.StringVar(&opts.mode, "mode", "", "prediction mode: both, user or item")
	fs.StringVar(&opts.format, "format", "text", "output format: text or json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.format != "text" && opts.format != "json" {
		return nil, fmt.Errorf("invalid format %q (must be text or json)", opts.format)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return nil, errors.New("missing command (expected \"predict\" or \"version\")")
	}
	opts.command = rest[0]

	if opts.command == "version" {
		if len(rest) > 1 {
			return nil, errors.New("version takes no arguments")
		}
		return opts, nil
	}
	if opts.command != "predict" {
		return nil, fmt.Errorf("unknown command %q (expected \"predict\" or \"version\")", rest[0])
	}

	pos := rest[1:]
	if len(pos) < 2 || len(pos) > 3 {
		return nil, errors.New("predict requires <user_id> <item_id> [k]")
	}

	var err error
	if opts.userID, err = strconv.Atoi(pos[0]); err != nil {
		return nil, fmt.Errorf("user_id %q: not an integer", pos[0])
	}
	if opts.itemID, err = strconv.Atoi(pos[1]); err != nil {
		return nil, fmt.Errorf("item_id %q: not an integer", pos[1])
	}
	if len(pos) == 3 {
		if opts.k, err = strconv.Atoi(pos[2]); err != nil {
			return nil, fmt.Errorf("k %q: not an integer", pos[2])
		}
		if opts.k < 1 {
			return nil, fmt.Errorf("k %d: must be >= 1", opts.k)
		}
	}

	return opts, nil
}
