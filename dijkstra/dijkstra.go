// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Lazy decrease-key Dijkstra over core.Graph and the ShortestPath query.
// Determinism:
//   - Heap ties on distance are broken by node display order (NodeID.Compare).
//   - Neighbors are relaxed in display order.
//   - A predecessor is replaced only on a strictly shorter distance.
// Precondition:
//   - Edge weights are non-negative. Negative weights are not detected and
//     yield unspecified (but terminating) results.

package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/graphcore/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//   - dist: dist[v] = minimum distance, or Infinity if v is unreachable
//     (or beyond MaxDistance).
//   - prev: predecessor map when WithReturnPath is set, nil otherwise.
//     prev[v] is absent for the source and for unreachable v.
//   - err:  ErrEmptySource, ErrNilGraph or ErrVertexNotFound (checked in that order).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[core.NodeID]int64, map[core.NodeID]core.NodeID, error) {
	cfg := DefaultOptions(core.NodeID{})
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source.IsZero() {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.NodeID]int64, n),
		prev:    make(map[core.NodeID]core.NodeID, n),
		visited: make(map[core.NodeID]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath answers a single source→target query.
//
//   - source or target absent → Outcome NotFound, Cost Infinity.
//   - target unreachable      → Outcome NoPath, Cost Infinity.
//   - source == target        → Path [source], Cost 0.
//
// Complexity: O((V + E) log V).
func ShortestPath(g *core.Graph, source, target core.NodeID) Result {
	miss := Result{Cost: Infinity, Outcome: NotFound}
	if g == nil || !g.HasNode(source) || !g.HasNode(target) {
		return miss
	}

	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return miss
	}
	if dist[target] == Infinity {
		return Result{Cost: Infinity, Outcome: NoPath}
	}

	return Result{
		Path:    walkBack(prev, source, target),
		Cost:    dist[target],
		Outcome: Found,
	}
}

// walkBack rebuilds the source→target path from the predecessor map.
func walkBack(prev map[core.NodeID]core.NodeID, source, target core.NodeID) []core.NodeID {
	path := []core.NodeID{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}

// runner holds the mutable state of one Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[core.NodeID]int64
	prev    map[core.NodeID]core.NodeID
	visited map[core.NodeID]bool
	pq      nodePQ
}

// init sets every distance to Infinity and seeds the heap with the source.
func (r *runner) init() {
	for _, v := range r.g.Nodes() {
		r.dist[v] = Infinity
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unsettled vertex until the heap drains or the
// frontier passes MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of the settled vertex u.
func (r *runner) relax(u core.NodeID) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, v := range neighbors {
		if r.visited[v] {
			continue
		}
		w, _ := r.g.Weight(u, v)
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		if w > 0 && r.dist[u] > Infinity-w {
			continue // would overflow
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and its tentative distance.
type nodeItem struct {
	id   core.NodeID
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, display order).
// Stale entries stay in the heap and are skipped on Pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id.Less(pq[j].id)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
