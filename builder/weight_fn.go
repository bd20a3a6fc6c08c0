package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn produces a non-negative edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [min, max). With a nil rng it yields
// DefaultEdgeWeight. Panics if min < 0 or max < min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
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

// IntWeightFn samples an integer uniformly in [min, max] inclusive. Integer
// weights keep path sums exact, which tests comparing distances rely on.
// With a nil rng it yields DefaultEdgeWeight. Panics if min < 0 or max < min.
func IntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntWeight sets integer weights uniformly drawn from [min,max].
func WithIntWeight(min, max int) BuilderOption {
	return WithWeightFn(IntWeightFn(min, max))
}
