// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package recommend

import (
	"math"
	"sort"
)

// Neighbor pairs a peer row index with its cosine distance from the target.
type Neighbor struct {
	Peer     int
	Distance float64
}

// selectNeighborhood returns the k nearest peers by ascending distance.
// The sort is stable and NaN orders after every finite value, so ties and
// degenerate peers resolve to the lowest peer index every time. The input
// slice is not modified.
func selectNeighborhood(dists []Neighbor, k int) []Neighbor {
	hood := make([]Neighbor, len(dists))
	copy(hood, dists)

	sort.SliceStable(hood, func(i, j int) bool {
		di, dj := hood[i].Distance, hood[j].Distance
		if math.IsNaN(di) {
			return false
		}
		if math.IsNaN(dj) {
			return true
		}
		return di < dj
	})

	if k < len(hood) {
		hood = hood[:k]
	}
	return hood
}
