// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package recommend

import "math"

// predictRating estimates the target row's rating for targetCol from the
// weighted residuals of its neighborhood:
//
//	predicted = targetAvg + sum(dist_i * (rating_i - peerAvg_i)) / sum(dist_i)
//
// The denominator sums the distance of every selected neighbor, rated or
// not; an unrated peer contributes nothing to the numerator but still
// dilutes the total weight. That asymmetry is intentional. See the package
// documentation before changing it.
//
// The result is degenerate, (NaN, true), when no meaningful estimate
// exists: the distance sum is 0 (all neighbors identical in orientation to
// the target), the distance sum is NaN (a zero-magnitude peer was selected),
// or the target row itself has no observed ratings.
func predictRating(m *Matrix, hood []Neighbor, targetCol int, targetAvg float64, peerAvgs []float64) (float64, bool) {
	var distanceSum float64
	for _, n := range hood {
		distanceSum += n.Distance
	}
	if distanceSum == 0 || math.IsNaN(distanceSum) || math.IsNaN(targetAvg) {
		return math.NaN(), true
	}

	predicted := targetAvg
	for _, n := range hood {
		rating := m.Rating(n.Peer, targetCol)
		if rating == 0 {
			// Unrated peers still weigh in distanceSum.
			continue
		}
		predicted += n.Distance * (rating - peerAvgs[n.Peer]) / distanceSum
	}
	return predicted, false
}
