// SPDX-License-Identifier: MIT
//
// File: greedy.go
// Role: Largest-first greedy vertex coloring and proper-coloring validation.
// Determinism:
//   - Nodes are ordered by descending degree; ties keep insertion order
//     (stable sort over core.Graph.Nodes()).
// Guarantees:
//   - The result is a proper coloring.
//   - Colors used ≤ max degree + 1.

package coloring

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/graphcore/core"
)

// Greedy colors g with the largest-first heuristic: visit nodes by
// descending degree and give each the smallest color index not used by an
// already-colored neighbor. This is not a minimum coloring.
//
// A nil or empty graph yields an empty Coloring.
// Complexity: O(V log V + E).
func Greedy(g *core.Graph) Coloring {
	c := make(Coloring)
	if g == nil {
		return c
	}

	order := g.Nodes()
	slices.SortStableFunc(order, func(a, b core.NodeID) int {
		return cmp.Compare(g.Degree(b), g.Degree(a))
	})

	for _, u := range order {
		nbs, _ := g.Neighbors(u)
		used := make(map[int]bool, len(nbs))
		for _, v := range nbs {
			if col, ok := c[v]; ok {
				used[col] = true
			}
		}
		col := 0
		for used[col] {
			col++
		}
		c[u] = col
	}

	return c
}

// Validate checks that c assigns a color to every node of g and that no
// edge joins two nodes of the same color.
// Returns ErrGraphNil, ErrUncolored or ErrConflict (wrapped with the offending nodes).
// Complexity: O(V + E).
func Validate(g *core.Graph, c Coloring) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, n := range g.Nodes() {
		if _, ok := c[n]; !ok {
			return fmt.Errorf("%w: %q", ErrUncolored, n)
		}
	}
	for _, e := range g.Edges() {
		if c[e.U] == c[e.V] {
			return fmt.Errorf("%w: %q and %q both %d", ErrConflict, e.U, e.V, c[e.U])
		}
	}

	return nil
}

// sortedKeys returns the nodes of c in display order.
func sortedKeys(c Coloring) []core.NodeID {
	return slices.SortedFunc(maps.Keys(c), core.NodeID.Compare)
}
