// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn        = DefaultIDFn            ("0","1","2",...)
//   - rng         = nil                    (pure/deterministic unless seeded)
//   - weightFn    = DefaultWeightFn        (DefaultEdgeWeight)
//   - left/right  = "L" / "R"
//   - idMin/idMax = 8 / 16                 (RandomEdge endpoints, inclusive)
//   - wMin/wMax   = 1 / 20                 (RandomEdge weights, inclusive)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for topology constructors.
	weightFn WeightFn

	// Bipartite ID prefixes (left/right). Empty → defaults.
	leftPrefix  string
	rightPrefix string

	// RandomEdge ranges, inclusive.
	idMin, idMax int
	wMin, wMax   int64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"

	// DefaultRandomIDMin and DefaultRandomIDMax bound RandomEdge endpoints.
	DefaultRandomIDMin = 8
	DefaultRandomIDMax = 16

	// DefaultRandomWeightMin and DefaultRandomWeightMax bound RandomEdge weights.
	DefaultRandomWeightMin int64 = 1
	DefaultRandomWeightMax int64 = 20
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		idMin:       DefaultRandomIDMin,
		idMax:       DefaultRandomIDMax,
		wMin:        DefaultRandomWeightMin,
		wMax:        DefaultRandomWeightMax,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
