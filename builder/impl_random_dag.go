// SPDX-License-Identifier: MIT
// Package: bellman/builder
//
// impl_random_dag.go - implementation of RandomDAG(n, p) constructor.
//
// Model:
//   - Same trials as RandomSparse, restricted to forward pairs i<j, so the
//     result is acyclic and index order is a topological order.
//   - Any weight policy, including negative weights, is safe for
//     shortest paths: a DAG has no cycles, hence no negative cycles.
//
// Contract: identical to RandomSparse.
//
// Complexity:
//   - Time: O(n²/2) Bernoulli trials.
//   - Space: O(n + E).

package builder

import "github.com/katalvlaran/bellman/core"

const methodRandomDAG = "RandomDAG"

// RandomDAG returns a Constructor that samples a random DAG over n vertices;
// each forward edge i→j (i<j) is included with probability p.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		return sampleEdges(methodRandomDAG, g, cfg, n, p, func(i, j int) bool { return i < j })
	}
}
