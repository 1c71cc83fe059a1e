// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - Edges(g, source): discovery edges in depth-first preorder
//   - DFS(g, startID, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Neighbors are explored in display order, so the traversal is deterministic.
//
// Complexity:
//
//   - Time:   O(V + E log d), plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphcore/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// Edges returns the (discoverer, discovered) pairs of a depth-first search
// from source, in discovery order, covering only source's component.
// An absent source yields an empty, non-nil slice.
func Edges(g *core.Graph, source core.NodeID) []core.Pair {
	res, err := DFS(g, source)
	if err != nil {
		return []core.Pair{}
	}

	return res.Edges
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers every component (starting with startID when it is present, then
// the remaining vertices in display order); otherwise it starts only from startID.
// On error the partial result is returned alongside it.
func DFS(g *core.Graph, startID core.NodeID, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	hasStart := g.HasNode(startID)
	if !dopts.FullTraversal && !hasStart {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.NodeCount()
	res := &DFSResult{
		Order:    make([]core.NodeID, 0, n),
		Preorder: make([]core.NodeID, 0, n),
		Edges:    make([]core.Pair, 0, n),
		Depth:    make(map[core.NodeID]int, n),
		Parent:   make(map[core.NodeID]core.NodeID, n),
		Visited:  make(map[core.NodeID]bool, n),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	var roots []core.NodeID
	if hasStart {
		roots = append(roots, startID)
	}
	if dopts.FullTraversal {
		roots = append(roots, g.NodesSortedForDisplay()...)
	}
	for _, r := range roots {
		if res.Visited[r] {
			continue
		}
		res.Roots = append(res.Roots, r)
		if err := walker.traverse(r, 0); err != nil {
			return res, err
		}
	}

	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits vertex id at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id core.NodeID, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Preorder = append(w.res.Preorder, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, nid := range nbs {
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.opts.SkippedNeighbors++
				continue
			}
			w.res.Parent[nid] = id
			w.res.Edges = append(w.res.Edges, core.Pair{From: id, To: nid})
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
