// SPDX-License-Identifier: MIT
// Package: bellman/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single vertex with no edges.
//   - Emits both u→v and v→u for every pair, ordered by (i asc, j asc), i≠j.
//     Each direction draws its own weight.
//   - No self-loops: core rejects them.
//
// Complexity:
//   - Time: O(n²), exactly n(n-1) edges.
//   - Space: O(n) extra.
//
// Determinism:
//   - Row-major emission: all out-edges of vertex 0 first, then vertex 1, ...

package builder

import (
	"fmt"

	"github.com/katalvlaran/bellman/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph on n vertices.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}

		var i, j int // row, column
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue // diagonal
				}
				if err = addEdge(methodComplete, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
