// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package recommend

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Mode selects the similarity axis for a prediction.
type Mode int

const (
	// ModeUser predicts from similar users' ratings of the target item.
	ModeUser Mode = iota
	// ModeItem predicts from the target user's ratings of similar items.
	ModeItem
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeUser:
		return "user"
	case ModeItem:
		return "item"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name ("user" or "item") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "user":
		return ModeUser, nil
	case "item":
		return ModeItem, nil
	default:
		return ModeUser, fmt.Errorf("%w: mode %q (must be user or item)", ErrInvalidArgument, s)
	}
}

// Request describes a single prediction query.
type Request struct {
	// Mode selects user-based or item-based prediction.
	Mode Mode `json:"mode"`

	// UserID is the 1-based public user identifier.
	UserID int `json:"user_id" validate:"required,min=1"`

	// ItemID is the 1-based public item identifier.
	ItemID int `json:"item_id" validate:"required,min=1"`

	// K is the requested neighborhood size. The actual neighborhood may be
	// smaller when fewer peers exist; see Result.Metadata.K.
	K int `json:"k" validate:"required,min=1"`

	// RequestID correlates log events and results. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Result is the outcome of one prediction.
type Result struct {
	// Predicted is the unclamped predicted rating. It may fall outside the
	// natural 1-5 display range, and is NaN when Degenerate is true.
	Predicted float64 `json:"predicted"`

	// Actual is the observed rating for the queried cell, 0 if unobserved.
	Actual float64 `json:"actual"`

	// TargetAvg is the target's own average rating on the active axis.
	// NaN when the target has no observed ratings.
	TargetAvg float64 `json:"target_avg"`

	// NeighborIDs lists the selected peers as 1-based public identifiers on
	// the active axis (user ids in user mode, item ids in item mode),
	// ascending by distance.
	NeighborIDs []int `json:"neighbor_ids"`

	// NeighborRatings lists each neighbor's observed rating for the target
	// cell, in NeighborIDs order, 0 where unobserved.
	NeighborRatings []float64 `json:"neighbor_ratings"`

	// Degenerate reports that the prediction is undefined: the neighborhood
	// distance sum was zero or undefined, or the target has no average
	// rating. Predicted is NaN in that case. This is a legitimate
	// sparse-data outcome, not an error.
	Degenerate bool `json:"degenerate"`

	// Metadata contains timing and diagnostic information.
	Metadata Metadata `json:"metadata"`
}

// Metadata contains timing and diagnostic information for one prediction.
type Metadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// Mode is the prediction mode used.
	Mode string `json:"mode"`

	// RequestedK is the neighborhood size the caller asked for.
	RequestedK int `json:"requested_k"`

	// K is the actual neighborhood size used, min(RequestedK, peer count).
	K int `json:"k"`

	// GeneratedAt is when the prediction was computed.
	GeneratedAt time.Time `json:"generated_at"`

	// LatencyMS is the prediction latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`
}

// Recommendation pairs the user-based and item-based predictions for one
// (user, item, k) query.
type Recommendation struct {
	UserBased *Result `json:"user_based"`
	ItemBased *Result `json:"item_based"`
}

// MarshalJSON renders NaN rating fields as null, since JSON has no NaN
// representation.
func (r Result) MarshalJSON() ([]byte, error) {
	type Alias Result
	aux := struct {
		Alias
		Predicted *float64 `json:"predicted"`
		TargetAvg *float64 `json:"target_avg"`
	}{Alias: Alias(r)}

	if !math.IsNaN(r.Predicted) {
		aux.Predicted = &r.Predicted
	}
	if !math.IsNaN(r.TargetAvg) {
		aux.TargetAvg = &r.TargetAvg
	}

	return json.Marshal(aux)
}
