// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// weight_fn.go - edge weight distributions for topology constructors.
// Every WeightFn returns DefaultEdgeWeight when given a nil RNG, so
// unseeded builds stay deterministic.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no distribution is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn draws one edge weight.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from the inclusive range [lo, hi].
// Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return uniform(rng, lo, hi)
	}
}

// uniform draws from [lo, hi]; the caller guarantees 0 ≤ lo ≤ hi, so
// hi-lo cannot overflow. The full range [0, MaxInt64] has no Int63n bound
// and is drawn with Int63.
func uniform(rng *rand.Rand, lo, hi int64) int64 {
	span := hi - lo
	switch span {
	case 0:
		return lo
	case math.MaxInt64:
		return rng.Int63()
	}

	return lo + rng.Int63n(span+1)
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}
