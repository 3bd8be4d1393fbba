// Package builder provides helper functions and types
// for configuring edge‐weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and must return finite values.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value (any sign).
// Panics if value is NaN or ±Inf.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Negative bounds are allowed. Panics if max < min or a bound is not finite.
// If rng is nil, yields DefaultEdgeWeight to keep a deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// CheckIntRange reports whether integers in [min, max] can be sampled:
// min ≤ max and the span max-min+1 fits in an int. It returns a wrapped
// ErrInvalidWeightRange otherwise.
// Complexity: O(1).
func CheckIntRange(min, max int) error {
	if max < min {
		return fmt.Errorf("min=%d > max=%d: %w", min, max, ErrInvalidWeightRange)
	}
	// max-min+1 ≤ MaxInt  ⇔  max-min < MaxInt; split on the sign of min so
	// neither side overflows while checking.
	var fits bool
	if min >= 0 {
		fits = max-min < math.MaxInt
	} else {
		fits = max < math.MaxInt+min
	}
	if !fits {
		return fmt.Errorf("span of [%d,%d] exceeds MaxInt: %w", min, max, ErrInvalidWeightRange)
	}

	return nil
}

// IntUniformWeightFn returns a WeightFn sampling integers uniformly in [min, max].
// Integer weights keep sums exact, which is what golden files and
// cross-checks between algorithms want. Panics when CheckIntRange fails.
// If rng is nil, yields DefaultEdgeWeight.
func IntUniformWeightFn(min, max int) WeightFn {
	if err := CheckIntRange(min, max); err != nil {
		panic(fmt.Sprintf("IntUniformWeightFn: %v", err))
	}
	span := max - min + 1

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(span))
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntWeight sets integer weights ∼ U{min..max} via IntUniformWeightFn.
func WithIntWeight(min, max int) BuilderOption {
	return WithWeightFn(IntUniformWeightFn(min, max))
}
