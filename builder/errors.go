// SPDX-License-Identifier: MIT
// Package: bellman/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, e.g. "Cycle: n=2 < min=3: builder: parameter too small".
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed, e.g. a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidWeightRange indicates integer weight bounds with max < min or a
// span max-min+1 that does not fit in an int.
var ErrInvalidWeightRange = errors.New("builder: invalid integer weight range")
