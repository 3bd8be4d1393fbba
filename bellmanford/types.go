// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, functional options and run statistics for BellmanFord.

package bellmanford

import (
	"errors"

	"github.com/go-logr/logr"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed in.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrInvalidSource indicates that the source vertex is not a vertex of the graph.
	ErrInvalidSource = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates that an edge still admits relaxation after
	// |V|-1 rounds, i.e. a negative-weight cycle is reachable from the source.
	// Shortest paths are undefined and no distances are returned.
	ErrNegativeCycle = errors.New("bellmanford: graph contains a negative-weight cycle reachable from source")

	// ErrDistanceOverflow indicates that dist[u] + w left the float64 range
	// for a reached tail u. The result would confuse a real distance with
	// ±Inf, so no distances are returned.
	ErrDistanceOverflow = errors.New("bellmanford: path weight overflows float64")
)

// Stats receives counters of a single run. Pass a pointer via WithStats.
type Stats struct {
	// Rounds is the number of full relaxation sweeps performed (≤ |V|-1).
	Rounds int

	// Relaxations is the number of successful distance improvements.
	Relaxations int
}

// Options configures the behavior of BellmanFord.
//
// EarlyExit – stop sweeping after a round that improved nothing.
//
//	Observable results are identical; only the round count changes.
//
// Logger    – receives V(1) progress records. Default logr.Discard().
// Stats     – optional out-parameter; nil means "not collected".
type Options struct {
	EarlyExit bool
	Logger    logr.Logger
	Stats     *Stats
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// WithEarlyExit enables the "no change in a full sweep" shortcut.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// WithLogger routes progress records to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithStats stores run counters into s when the run completes, including
// runs that end in ErrNegativeCycle. Panics on nil to surface programmer error early.
func WithStats(s *Stats) Option {
	if s == nil {
		panic("bellmanford: WithStats(nil)")
	}
	return func(o *Options) {
		o.Stats = s
	}
}

// DefaultOptions returns the defaults:
//   - EarlyExit: false (exactly |V|-1 rounds).
//   - Logger:    logr.Discard().
//   - Stats:     nil.
func DefaultOptions() Options {
	return Options{
		EarlyExit: false,
		Logger:    logr.Discard(),
	}
}
