// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package recommend

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/proximus/internal/metrics"
	"github.com/tomtom215/proximus/internal/validation"
)

// Loader produces a populated rating matrix, typically from a MovieLens
// dataset on disk. Implementations live outside this package so the engine
// stays independent of any file format.
type Loader interface {
	Load(ctx context.Context) (*Matrix, error)
}

// Config holds engine tuning knobs.
type Config struct {
	// Workers caps the goroutines used per distance sweep. Zero or negative
	// means one worker per CPU. One forces the serial path.
	Workers int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{Workers: 0}
}

// Engine answers rating predictions over an immutable rating matrix.
//
// Construction precomputes the item-axis transpose and the per-row averages
// for both axes, so Predict allocates only per-request state. All methods
// are safe for concurrent use.
type Engine struct {
	users   *Matrix // rows are users
	items   *Matrix // rows are items (transpose of users)
	userAvg []float64
	itemAvg []float64
	workers int
	logger  zerolog.Logger
}

// NewEngine builds an engine over m. The matrix must contain at least one
// observed rating; the engine assumes ownership and m must not be modified
// afterwards.
func NewEngine(m *Matrix, cfg Config, logger zerolog.Logger) (*Engine, error) {
	if m == nil || m.ObservedCount() == 0 {
		return nil, fmt.Errorf("%w: empty rating matrix", ErrDataUnavailable)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	items := m.Transpose()
	e := &Engine{
		users:   m,
		items:   items,
		userAvg: averageRatings(m),
		itemAvg: averageRatings(items),
		workers: workers,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}

	e.logger.Info().
		Int("users", m.Rows()).
		Int("items", m.Cols()).
		Int("ratings", m.ObservedCount()).
		Int("workers", workers).
		Msg("Recommendation engine ready")

	return e, nil
}

// NewEngineFromLoader loads a rating matrix through loader and builds an
// engine over it. Loader failures surface as ErrDataUnavailable.
func NewEngineFromLoader(ctx context.Context, loader Loader, cfg Config, logger zerolog.Logger) (*Engine, error) {
	m, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return NewEngine(m, cfg, logger)
}

// Users returns the number of user rows.
func (e *Engine) Users() int { return e.users.Rows() }

// Items returns the number of item columns.
func (e *Engine) Items() int { return e.users.Cols() }

// Ratings returns the number of observed ratings.
func (e *Engine) Ratings() int { return e.users.ObservedCount() }

// validateRequest rejects malformed requests before any computation runs.
// Every failure wraps ErrInvalidArgument and names the offending field.
func (e *Engine) validateRequest(req Request) error {
	switch req.Mode {
	case ModeUser, ModeItem:
	default:
		return fmt.Errorf("%w: mode %d (must be ModeUser or ModeItem)", ErrInvalidArgument, int(req.Mode))
	}

	if verr := validation.ValidateStruct(req); verr != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, verr.Error())
	}

	if req.UserID > e.users.Rows() {
		return fmt.Errorf("%w: user_id %d out of range [1, %d]", ErrInvalidArgument, req.UserID, e.users.Rows())
	}
	if req.ItemID > e.users.Cols() {
		return fmt.Errorf("%w: item_id %d out of range [1, %d]", ErrInvalidArgument, req.ItemID, e.users.Cols())
	}
	return nil
}

// Predict computes one prediction. Invalid requests fail with
// ErrInvalidArgument before any similarity work runs; sparse-data dead ends
// return a Result with Degenerate set rather than an error.
//
// Identical requests always produce identical results regardless of worker
// count or concurrent callers.
func (e *Engine) Predict(req Request) (*Result, error) {
	start := time.Now()

	if err := e.validateRequest(req); err != nil {
		metrics.RecordPredictionError(req.Mode.String())
		return nil, err
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	// Both modes run the same pipeline; item mode runs it over the
	// transpose, so the target row is the item and the rating column is
	// the user.
	var (
		axis     *Matrix
		target   int
		col      int
		peerAvgs []float64
	)
	switch req.Mode {
	case ModeUser:
		axis, target, col, peerAvgs = e.users, req.UserID-1, req.ItemID-1, e.userAvg
	case ModeItem:
		axis, target, col, peerAvgs = e.items, req.ItemID-1, req.UserID-1, e.itemAvg
	}
	targetAvg := peerAvgs[target]

	dists := distances(axis, target, e.workers)
	hood := selectNeighborhood(dists, req.K)
	predicted, degenerate := predictRating(axis, hood, col, targetAvg, peerAvgs)

	neighborIDs := make([]int, len(hood))
	neighborRatings := make([]float64, len(hood))
	for i, n := range hood {
		neighborIDs[i] = n.Peer + 1
		neighborRatings[i] = axis.Rating(n.Peer, col)
	}

	elapsed := time.Since(start)
	res := &Result{
		Predicted:       predicted,
		Actual:          axis.Rating(target, col),
		TargetAvg:       targetAvg,
		NeighborIDs:     neighborIDs,
		NeighborRatings: neighborRatings,
		Degenerate:      degenerate,
		Metadata: Metadata{
			RequestID:   requestID,
			Mode:        req.Mode.String(),
			RequestedK:  req.K,
			K:           len(hood),
			GeneratedAt: time.Now().UTC(),
			LatencyMS:   elapsed.Milliseconds(),
		},
	}

	e.logger.Debug().
		Str("request_id", requestID).
		Str("mode", req.Mode.String()).
		Int("user_id", req.UserID).
		Int("item_id", req.ItemID).
		Int("requested_k", req.K).
		Int("k", len(hood)).
		Bool("degenerate", degenerate).
		Dur("latency", elapsed).
		Msg("Prediction computed")

	metrics.RecordPrediction(req.Mode.String(), elapsed, degenerate)

	return res, nil
}

// Recommend runs both prediction modes for one (user, item, k) query under
// a shared request id.
func (e *Engine) Recommend(userID, itemID, k int) (*Recommendation, error) {
	requestID := uuid.NewString()

	userRes, err := e.Predict(Request{
		Mode:      ModeUser,
		UserID:    userID,
		ItemID:    itemID,
		K:         k,
		RequestID: requestID,
	})
	if err != nil {
		return nil, err
	}

	itemRes, err := e.Predict(Request{
		Mode:      ModeItem,
		UserID:    userID,
		ItemID:    itemID,
		K:         k,
		RequestID: requestID,
	})
	if err != nil {
		return nil, err
	}

	return &Recommendation{UserBased: userRes, ItemBased: itemRes}, nil
}
