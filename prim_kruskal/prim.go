// Package prim_kruskal provides Prim's algorithm for the minimum spanning
// forest of an undirected, weighted *core.Graph.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphcore/core"
)

// Prim computes a minimum spanning FOREST: one minimum spanning tree per
// connected component, returned as a single edge slice.
//
// Each tree is grown from a seed with a min-heap of frontier edges. The first
// seed is root when non-zero, otherwise the smallest node in display order;
// each further seed is the smallest still-unvisited node. Isolated nodes
// contribute no edges. Edges are oriented U = tree side, V = newly reached
// node, in the order they join the forest.
//
// Error Conditions:
//   - ErrInvalidGraph      : graph is nil.
//   - core.ErrNodeNotFound : root is non-zero and absent.
//
// Empty graph → empty slice, weight 0, no error.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root core.NodeID) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	if !root.IsZero() && !graph.HasNode(root) {
		return nil, 0, fmt.Errorf("%w: %q", core.ErrNodeNotFound, root)
	}

	seeds := graph.NodesSortedForDisplay()
	if !root.IsZero() {
		seeds = append([]core.NodeID{root}, seeds...)
	}

	n := len(seeds)
	visited := make(map[core.NodeID]bool, n)
	forest := make([]core.Edge, 0, n)
	var total int64

	pq := &edgePQ{}
	for _, seed := range seeds {
		if visited[seed] {
			continue
		}

		// grow one tree
		visited[seed] = true
		pushFrontier(graph, pq, visited, seed)
		for pq.Len() > 0 {
			e := heap.Pop(pq).(core.Edge)
			if visited[e.V] {
				continue // would close a cycle
			}
			visited[e.V] = true
			forest = append(forest, e)
			total += e.Weight
			pushFrontier(graph, pq, visited, e.V)
		}
	}

	return forest, total, nil
}

// pushFrontier pushes every edge from u to an unvisited neighbor.
func pushFrontier(graph *core.Graph, pq *edgePQ, visited map[core.NodeID]bool, u core.NodeID) {
	neighbors, _ := graph.Neighbors(u)
	for _, v := range neighbors {
		if visited[v] {
			continue
		}
		w, _ := graph.Weight(u, v)
		heap.Push(pq, core.Edge{U: u, V: v, Weight: w})
	}
}

// edgePQ implements heap.Interface for a min-heap of core.Edge, ordered by
// Weight, then by the reached node V, then by U (display order).
type edgePQ []core.Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less reports whether element i should sort before j.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if c := a.V.Compare(b.V); c != 0 {
		return c < 0
	}

	return a.U.Less(b.U)
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new core.Edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
