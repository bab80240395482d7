// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package recommend

// averageRatings computes the mean observed rating of every row. Rows with
// no observed ratings get NaN (0/0), which downstream prediction surfaces as
// a degenerate result rather than a fabricated average.
func averageRatings(m *Matrix) []float64 {
	avgs := make([]float64, m.Rows())
	for r := 0; r < m.Rows(); r++ {
		var sum float64
		var n int
		for c := 0; c < m.Cols(); c++ {
			if m.Observed(r, c) {
				sum += m.Rating(r, c)
				n++
			}
		}
		avgs[r] = sum / float64(n)
	}
	return avgs
}
