// SPDX-License-Identifier: MIT
// Package: bellman/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits directed edges (i-1)→i for i=1..n-1 in increasing order.
//   - Each edge draws one weight from cfg.weightFn; any sign is accepted.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(n) for the ID slice.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Deterministic emission order by increasing i.
//   - Deterministic weights given fixed cfg.rng/weightFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bellman/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path P_n.
// Single-source distances along P_n are prefix sums of the weights, which
// makes it the simplest fixture for checking relaxation order.
func Path(n int) Constructor {
	// Return a closure capturing n; BuildGraph supplies (g, cfg).
	return func(g *core.Graph[string], cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// Add n vertices with deterministic IDs.
		ids, err := addVertices(methodPath, g, cfg, n)
		if err != nil {
			return err
		}

		// Emit 0→1→2→...→(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err = addEdge(methodPath, g, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
