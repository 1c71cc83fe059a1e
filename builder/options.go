// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// options.go - functional options. Constructors of options panic on
// nonsensical values; a nil function argument is ignored.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption mutates builderConfig before use.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → ID function. A nil fn keeps the current scheme.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand shares an existing RNG stream. A nil r keeps the current RNG.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the weight generator used by topology constructors.
// A nil fn keeps the current generator.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithPartitionPrefix sets the bipartite side prefixes; empty means default.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}

// WithIDRange sets the inclusive endpoint range of RandomEdge.
// Panics unless 0 ≤ lo < hi: two distinct endpoints are needed and ids
// are non-negative.
func WithIDRange(lo, hi int) BuilderOption {
	if lo < 0 || lo >= hi {
		panic(fmt.Sprintf("builder: WithIDRange(%d,%d): require 0 ≤ lo < hi", lo, hi))
	}

	return func(c *builderConfig) {
		c.idMin, c.idMax = lo, hi
	}
}

// WithWeightRange sets the inclusive weight range of RandomEdge.
// Panics if lo < 0 or hi < lo.
func WithWeightRange(lo, hi int64) BuilderOption {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: WithWeightRange(%d,%d): require 0 ≤ lo ≤ hi", lo, hi))
	}

	return func(c *builderConfig) {
		c.wMin, c.wMax = lo, hi
	}
}
