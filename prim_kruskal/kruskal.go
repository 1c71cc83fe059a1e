// Package prim_kruskal provides Kruskal's algorithm for the minimum spanning
// forest of an undirected, weighted *core.Graph.
package prim_kruskal

import (
	"slices"

	"github.com/katalvlaran/graphcore/core"
)

// Kruskal computes a minimum spanning FOREST with a disjoint-set (union-find)
// using path compression and union by rank. On a disconnected graph the
// result holds |V| − (#components) edges, one tree per component.
//
// Steps:
//  1. Collect canonical edges (graph.Edges(), already sorted by (U, V)).
//  2. Stable-sort by weight so equal weights keep (U, V) order.
//  3. For each edge whose endpoints are in different sets, union and keep it.
//
// Error Conditions:
//   - ErrInvalidGraph: graph is nil.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Nodes()
	edges := graph.Edges()
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		default:
			return 0
		}
	})

	parent := make(map[core.NodeID]core.NodeID, len(vertices))
	rank := make(map[core.NodeID]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u core.NodeID) core.NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	union := func(ru, rv core.NodeID) {
		if rank[ru] < rank[rv] {
			parent[ru] = rv

			return
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
	}

	forest := make([]core.Edge, 0, len(vertices))
	var total int64
	for _, e := range edges {
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}
		union(ru, rv)
		forest = append(forest, e)
		total += e.Weight
		if len(forest) == len(vertices)-1 {
			break
		}
	}

	return forest, total, nil
}
