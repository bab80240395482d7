// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package recommend

import (
	"math"
	"sync"
)

// minParallelPeers is the peer count below which the distance sweep stays
// serial. Spawning goroutines for a handful of dot products costs more than
// it saves.
const minParallelPeers = 64

// cosineDistance returns 1 minus the cosine similarity of two zero-filled
// vectors. Identical orientation gives 0, orthogonal gives 1. If either
// vector has zero magnitude the result is NaN (0/0); neighborhood selection
// orders NaN after every finite distance so such peers are only ever chosen
// when nothing better exists.
func cosineDistance(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}

// distances computes the cosine distance from the target row to every other
// row. Results are in ascending peer order regardless of worker count: each
// worker owns a contiguous slot range, so the layout never depends on
// scheduling.
func distances(m *Matrix, target, workers int) []Neighbor {
	peers := make([]int, 0, m.Rows()-1)
	for r := 0; r < m.Rows(); r++ {
		if r != target {
			peers = append(peers, r)
		}
	}

	dists := make([]Neighbor, len(peers))
	row := m.Row(target)

	if workers <= 1 || len(peers) < minParallelPeers {
		for i, p := range peers {
			dists[i] = Neighbor{Peer: p, Distance: cosineDistance(row, m.Row(p))}
		}
		return dists
	}

	var wg sync.WaitGroup
	chunk := (len(peers) + workers - 1) / workers
	for start := 0; start < len(peers); start += chunk {
		end := start + chunk
		if end > len(peers) {
			end = len(peers)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				p := peers[i]
				dists[i] = Neighbor{Peer: p, Distance: cosineDistance(row, m.Row(p))}
			}
		}(start, end)
	}
	wg.Wait()
	return dists
}
