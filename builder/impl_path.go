// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// impl_path.go - Path P_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds the simple path idFn(0) - idFn(1) - ... - idFn(n-1).
// Edges are emitted in index order with weights from cfg.weightFn.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := makeIDs(cfg, n)
		if err := addNodes(g, methodPath, ids); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, ids[i-1], ids[i], cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
