// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// impl_cycle.go - Cycle C_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds the ring i - (i+1)%n for i in [0,n).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := makeIDs(cfg, n)
		if err := addNodes(g, methodCycle, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, ids[i], ids[(i+1)%n], cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
