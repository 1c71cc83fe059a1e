// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// impl_complete.go - Complete graph K_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n; pairs (i,j), i<j, are emitted in row-major order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := makeIDs(cfg, n)
		if err := addNodes(g, methodComplete, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, ids[i], ids[j], cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
