// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

// Package dataset reads MovieLens 100k files from disk.
//
// Two files matter:
//
//   - u.data: tab-separated ratings, one "user item rating timestamp" line
//     per rating. Loader parses it into a recommend.Matrix; the timestamp
//     column is ignored.
//   - u.item: pipe-separated item catalog with ISO-8859-1 encoded titles.
//     LoadCatalog parses it into a Catalog for human-readable output.
//
// # Identifier Mapping
//
// MovieLens ids are 1-based and may have gaps. The matrix is sized from the
// highest id seen per axis, so public id N always lands at row or column
// N-1 and absent ids become empty rows or columns. Nothing is renumbered;
// a prediction for user 42 always means MovieLens user 42.
//
// # Strictness
//
// The loader fails fast rather than repair: unparseable lines, out-of-range
// ratings and duplicate (user, item) pairs all abort the load with
// ErrMalformedData naming the file and line. A rating file that parses but
// contains no ratings is also malformed.
//
// # Example Usage
//
//	loader := dataset.NewLoader("ml-100k/u.data", logger)
//	matrix, err := loader.Load(ctx)
//	if err != nil {
//	    log.Fatal().Err(err).Msg("Load failed")
//	}
//
//	catalog, err := dataset.LoadCatalog(ctx, "ml-100k/u.item", logger)
package dataset
