// SPDX-License-Identifier: MIT
// Package: bellman/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator over ordered pairs (i,j), i≠j: include each
//     directed edge independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability; NaN is rejected too).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc. Fixed seed ⇒ identical graph.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bellman/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random digraph
// over n vertices with independent edge probability p.
//
// Self-loops are never sampled (core rejects them). Edge weights come from
// cfg.weightFn in trial order, so the same seed yields the same weights.
// Complexity: O(n²) time, O(n + E) space.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		return sampleEdges(methodRandomSparse, g, cfg, n, p, func(i, j int) bool { return i != j })
	}
}

// sampleEdges validates (n, p), adds n vertices and runs one Bernoulli trial
// per admissible ordered pair in (i asc, j asc) order.
//
// Steps:
//  1. Validate n, p and the RNG before touching g.
//  2. Add vertices 0..n-1 through cfg.idFn.
//  3. For every pair admitted by admit, include the edge with probability p.
//
// p == 0 and p == 1 are decided without consuming randomness, so they work
// without an RNG. Shared by RandomSparse (i ≠ j) and RandomDAG (i < j).
func sampleEdges(method string, g *core.Graph[string], cfg builderConfig, n int, p float64, admit func(i, j int) bool) error {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if n < minRandomSparseVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if !(p >= probMin && p <= probMax) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	// RNG is only required when 0 < p < 1 (true stochastic sampling).
	if cfg.rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	// 2) Vertices 0..n-1.
	ids, err := addVertices(method, g, cfg, n)
	if err != nil {
		return err
	}

	// 3) Trials.
	var include bool
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !admit(i, j) {
				continue
			}
			switch {
			case p == probMin:
				include = false
			case p == probMax:
				include = true
			default:
				if cfg.rng == nil {
					return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
				}
				include = cfg.rng.Float64() < p
			}
			if !include {
				continue
			}
			if err = addEdge(method, g, cfg, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
