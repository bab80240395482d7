// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

// Package report renders prediction results for people and machines.
//
// The recommend engine returns plain data; this package owns all
// presentation. Text output is a fixed-width block per prediction mode with
// the neighbors, the averages and the predicted rating. JSON output is the
// result structure marshalled verbatim, with NaN fields rendered as null.
//
// A Renderer writes to any io.Writer, so tests capture output in a buffer
// and the CLI hands it os.Stdout. When an item catalog is attached, item
// ids resolve to movie titles in text output.
package report
