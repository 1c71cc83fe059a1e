// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// impl_star.go - Star with a fixed "Center" hub.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterVertexID is the hub label used by Star.
	CenterVertexID = "Center"
)

// Star builds a hub "Center" joined to leaves idFn(1)..idFn(n-1).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addNodes(g, methodStar, []string{CenterVertexID}); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, CenterVertexID, cfg.idFn(i), cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
