// SPDX-License-Identifier: MIT
// Package: bellman/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bellman/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors instead of panicking, and preserve determinism for a fixed config.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	// 1) Fresh graph and resolved config.
	g := core.NewGraph[string](gopts...)
	cfg := newBuilderConfig(bopts...)

	// 2) Constructors in caller order; the first failure aborts.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(0..n-1) in ascending index order.
// An idFn that repeats an ID is not an error here (AddVertex is idempotent);
// the duplicate surfaces later as a parallel edge or a self-loop.
// Complexity: O(n).
func addVertices(method string, g *core.Graph[string], cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge draws a weight and inserts u→v, wrapping failures with method context.
// Exactly one weight is drawn per call, also when AddEdge fails, so the RNG
// stream stays aligned with the trial order.
func addEdge(method string, g *core.Graph[string], cfg builderConfig, u, v string) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
