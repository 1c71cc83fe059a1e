// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// random_edge.go - the "random connection" action: one upsert triple with
// distinct integer endpoints and a bounded weight.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/graphcore/core"
)

const methodRandomEdges = "RandomEdges"

// RandomEdge draws endpoints u != v uniformly from [idMin, idMax] and a
// weight uniformly from [wMin, wMax] (defaults 8..16 and 1..20).
//
// r is the RNG to draw from; when nil, the RNG from WithSeed/WithRand is
// used, and with neither ErrNeedRandSource is returned.
// Complexity: O(1).
func RandomEdge(r *rand.Rand, opts ...BuilderOption) (u, v string, w int64, err error) {
	cfg := newBuilderConfig(opts...)
	if r != nil {
		cfg.rng = r
	}
	if cfg.rng == nil {
		return "", "", 0, fmt.Errorf("RandomEdge: %w", ErrNeedRandSource)
	}
	u, v, w = randomTriple(cfg)

	return u, v, w, nil
}

// RandomEdges upserts count edges drawn as by RandomEdge. Redrawn pairs
// replace the earlier weight, so the graph may gain fewer than count edges.
// Requires an RNG (ErrNeedRandSource).
// Complexity: O(count).
func RandomEdges(count int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if count < 0 {
			return fmt.Errorf("%s: count=%d < 0: %w", methodRandomEdges, count, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomEdges, ErrNeedRandSource)
		}
		for i := 0; i < count; i++ {
			u, v, w := randomTriple(cfg)
			if err := addEdge(g, methodRandomEdges, u, v, w); err != nil {
				return err
			}
		}

		return nil
	}
}

// randomTriple needs cfg.rng != nil and 0 ≤ idMin < idMax. The second
// endpoint is drawn from one slot fewer and shifted past the first, so the
// pair is distinct without retries.
func randomTriple(cfg builderConfig) (string, string, int64) {
	lo, hi := int64(cfg.idMin), int64(cfg.idMax)
	a := uniform(cfg.rng, lo, hi)
	b := uniform(cfg.rng, lo, hi-1)
	if b >= a {
		b++
	}

	return strconv.FormatInt(a, 10), strconv.FormatInt(b, 10), uniform(cfg.rng, cfg.wMin, cfg.wMax)
}
