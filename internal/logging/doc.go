// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

// Package logging provides centralized zerolog-based structured logging for Proximus.
//
// This package wraps zerolog behind a small global logger so every part of
// the predictor (dataset loading, engine construction, prediction calls, CLI
// startup) emits structured events through one configured sink.
//
// # Overview
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output format for machine consumption
//   - Console output format for interactive CLI runs (default for the binary)
//   - Global logger configuration from the config package at startup
//   - Component-scoped child loggers via With()
//
// # Quick Start
//
//	import "github.com/tomtom215/proximus/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	// Log messages with structured fields
//	logging.Info().Int("users", 943).Int("items", 1682).Msg("Matrix loaded")
//	logging.Error().Err(err).Msg("Load failed")
//
// # Log Levels
//
// Supported log levels (from most to least verbose):
//
//	trace  - Very detailed diagnostic information
//	debug  - Per-prediction diagnostics (neighborhoods, distances)
//	info   - General operational information (default)
//	warn   - Warning conditions that should be addressed
//	error  - Error conditions requiring attention
//	fatal  - Fatal errors that terminate the program
//
// # Structured Logging Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Use structured fields instead of string formatting:
//
//	// Good - structured, searchable, efficient
//	logging.Info().
//	    Int("user_id", userID).
//	    Int("item_id", itemID).
//	    Int("k", k).
//	    Msg("Prediction complete")
//
//	// Avoid - unstructured, harder to parse
//	logging.Info().Msgf("predicted for user %d item %d", userID, itemID)
//
// # Component Loggers
//
// Create component-specific loggers with default fields:
//
//	loaderLogger := logging.With().Str("component", "dataset").Logger()
//	loaderLogger.Info().Msg("Loading ratings")
//
// # Output Formats
//
// JSON Format:
//
//	{"level":"info","time":"2026-08-23T10:30:00Z","message":"Matrix loaded","users":943}
//
// Console Format:
//
//	10:30:00 INF Matrix loaded users=943
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger
// is protected by sync.RWMutex for configuration changes.
//
// # Testing
//
// Create test loggers that capture output:
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	logger.Info().Msg("test message")
//	output := buf.String()
//
// # See Also
//
//   - github.com/rs/zerolog: Underlying logging library
//   - internal/config: LoggingConfig mapped onto Config at startup
package logging
