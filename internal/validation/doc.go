// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library in a thread-safe
// singleton with human-readable error translation. The recommend package uses
// it to reject malformed prediction requests before any computation runs.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Error translation to messages that name the offending field
//   - Structured access to field, tag, and parameter of each violation
//
// # Quick Start
//
//	type Request struct {
//	    UserID int `validate:"required,min=1"`
//	    ItemID int `validate:"required,min=1"`
//	    K      int `validate:"required,min=1"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    // verr.Error() == "UserID must be at least 1"
//	    return fmt.Errorf("%w: %s", ErrInvalidArgument, verr.Error())
//	}
//
// # Validation Tags Used Here
//
// Numeric validations:
//   - required: field must be set (non-zero)
//   - min=n: minimum value n
//   - max=n: maximum value n
//   - gte=n / lte=n: inclusive bounds
//   - oneof=a b: value must be one of the listed values
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use; the underlying
// validator caches struct metadata after the first validation of each type.
package validation
