// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative value or NaN,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrDistanceOverflow indicates that a path weight exceeded the float64 range.
	ErrDistanceOverflow = errors.New("dijkstra: path weight overflows float64")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices farther than this are not explored. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable. Default +Inf.
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored
// and stay at +Inf. Panics on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		// Panic in Option constructors is acceptable for invalid arguments.
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Panics on zero, negative or NaN.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no distance cap and no walls.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
