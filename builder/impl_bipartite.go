// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// impl_bipartite.go - Complete bipartite K_{n1,n2}.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite builds K_{n1,n2} with labels leftPrefix+i and
// rightPrefix+j (default "L0".., "R0"..). Every left node is joined to
// every right node; no edge stays within a side.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := makeIDs(builderConfig{idFn: SymbolNumberIDFn(cfg.leftPrefix)}, n1)
		right := makeIDs(builderConfig{idFn: SymbolNumberIDFn(cfg.rightPrefix)}, n2)
		if err := addNodes(g, methodCompleteBipartite, left); err != nil {
			return err
		}
		if err := addNodes(g, methodCompleteBipartite, right); err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, methodCompleteBipartite, u, v, cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
