// SPDX-License-Identifier: MIT
// Package: bellman/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); C_2 is the two-edge cycle a→b→a.
//   - Emits edges in stable order i → (i+1)%n for i=0..n-1.
//   - With a negative WeightFn the result is the smallest negative-cycle fixture.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.
//   - Space: O(n) for the ID slice.
//
// Determinism:
//   - The closing edge (n-1)→0 is always emitted last.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bellman/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that builds the directed cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}

		// Ring edges; i=n-1 wraps to vertex 0.
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
