// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citegraph

import (
	"math"

	"github.com/pdiddy/corpus-audit/pkg/types"
)

// pageRank runs the standard power method over the valid subgraph: uniform
// teleportation with the configured damping factor, and the rank of dangling
// nodes (zero out-degree) redistributed uniformly. Iteration stops when the
// L1 change drops below n*tolerance or after the configured cap. Scores sum
// to ~1 for any nonempty node set.
func pageRank(order []string, adjacency map[string][]string, cfg types.PageRankConfig) map[string]float64 {
	scores := make(map[string]float64, len(order))
	n := len(order)
	if n == 0 {
		return scores
	}

	damping := cfg.Damping
	if damping <= 0 || damping >= 1 {
		damping = 0.85
	}
	tolerance := cfg.Tolerance
	if tolerance <= 0 {
		tolerance = 1e-6
	}
	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = 100
	}

	for _, id := range order {
		scores[id] = 1.0 / float64(n)
	}

	for iter := 0; iter < maxIter; iter++ {
		next := make(map[string]float64, n)
		base := (1.0 - damping) / float64(n)
		for _, id := range order {
			next[id] = base
		}

		var dangling float64
		for _, id := range order {
			targets := adjacency[id]
			if len(targets) == 0 {
				dangling += scores[id]
				continue
			}
			share := damping * scores[id] / float64(len(targets))
			for _, dst := range targets {
				next[dst] += share
			}
		}

		danglingShare := damping * dangling / float64(n)
		var delta float64
		for _, id := range order {
			next[id] += danglingShare
			delta += math.Abs(next[id] - scores[id])
		}

		scores = next
		if delta < float64(n)*tolerance {
			break
		}
	}

	return scores
}
