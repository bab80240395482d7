// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package recommend

import "errors"

var (
	// ErrInvalidArgument indicates a malformed or out-of-range request
	// field. The wrapped message names the offending field. Returned before
	// any computation runs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDataUnavailable indicates that no usable rating matrix could be
	// obtained, either because the loader failed or because the matrix is
	// empty. Fatal to engine construction; never retried.
	ErrDataUnavailable = errors.New("rating data unavailable")
)
