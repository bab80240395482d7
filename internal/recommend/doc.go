// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

// Package recommend implements memory-based collaborative filtering over a
// sparse user-item rating matrix.
//
// # Architecture
//
// The prediction pipeline runs in one direction:
//
//	Matrix -> average ratings -> cosine distances -> neighborhood -> prediction
//
// Two interchangeable modes share the same pipeline:
//
//   - User-based: similarity between the target user's rating vector and
//     every other user's vector (matrix rows)
//   - Item-based: similarity between the target item's rating vector and
//     every other item's vector (the transposed matrix)
//
// # Algorithm
//
// For a target with average rating avgTarget and a neighborhood of the K
// nearest peers by cosine distance:
//
//	predicted = avgTarget
//	for each (peer, dist) in neighborhood:
//	    term = dist * (peerRating - peerAvg)   when the peer rated the target
//	         = 0                               otherwise
//	    predicted += term / sum(all neighborhood distances)
//
// The denominator sums every selected neighbor's distance even when that
// neighbor's term was zeroed for lacking a rating. This dilutes residual
// contributions on sparse data and is a deliberate, tested property of the
// algorithm; see the prediction tests before changing it.
//
// Missing ratings enter similarity as literal zeros, so sparsely-overlapping
// vectors look less alike than gap-aware metrics would report. This is the
// documented trade-off of zero-filled cosine distance.
//
// # Usage
//
//	matrix, err := loader.Load(ctx)
//	engine, err := recommend.NewEngine(matrix, recommend.DefaultConfig(), logger)
//
//	result, err := engine.Predict(recommend.Request{
//	    Mode:   recommend.ModeUser,
//	    UserID: 1,
//	    ItemID: 3,
//	    K:      5,
//	})
//
//	// Or both modes at once:
//	rec, err := engine.Recommend(1, 3, 5)
//
// # Degenerate Results
//
// Sparse data legitimately produces undefined predictions: a target with no
// ratings has no average, and a neighborhood of zero-distance duplicates has
// no usable weights. These cases return Result.Degenerate == true with a NaN
// predicted rating instead of an error; they are data outcomes, not failures.
//
// # Determinism and Thread Safety
//
// The matrix, its transpose, and both average vectors are computed once at
// engine construction and never mutated afterward, so concurrent Predict
// calls are safe without locking. Every call allocates its own scratch state.
// Neighborhoods are ordered ascending by distance with NaN distances last and
// ties broken by ascending peer index, so identical requests always return
// identical results, regardless of the similarity worker count.
package recommend
