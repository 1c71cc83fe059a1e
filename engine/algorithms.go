// SPDX-License-Identifier: MIT
//
// File: algorithms.go
// Role: Algorithm and derived-view entry points. Every call recomputes from
// the current graph; nothing is cached.

package engine

import (
	"github.com/katalvlaran/graphcore/bfs"
	"github.com/katalvlaran/graphcore/coloring"
	"github.com/katalvlaran/graphcore/core"
	"github.com/katalvlaran/graphcore/dfs"
	"github.com/katalvlaran/graphcore/dijkstra"
	"github.com/katalvlaran/graphcore/matrix"
	"github.com/katalvlaran/graphcore/metrics"
	"github.com/katalvlaran/graphcore/prim_kruskal"
)

// lookup resolves a label; the zero NodeID stands for "absent".
func (e *Engine) lookup(label string) core.NodeID {
	id, _ := e.g.Lookup(label)

	return id
}

// ShortestPath runs Dijkstra from source to target. Unknown labels give a
// NotFound outcome, disconnected nodes NoPath; in both cases Cost is
// dijkstra.Infinity.
func (e *Engine) ShortestPath(source, target string) dijkstra.Result {
	res := dijkstra.ShortestPath(e.g, e.lookup(source), e.lookup(target))
	e.log.Debug("shortest path", "source", source, "target", target, "outcome", res.Outcome, "cost", res.Cost)

	return res
}

// MinimumSpanningForest returns Prim's minimum spanning forest, one tree per
// connected component, and its total weight. An empty graph yields no edges.
func (e *Engine) MinimumSpanningForest() ([]core.Edge, int64) {
	edges, total, _ := prim_kruskal.Prim(e.g, core.NodeID{})
	e.log.Debug("spanning forest", "edges", len(edges), "total", total)

	return edges, total
}

// SpanningForest is MinimumSpanningForest with an explicit algorithm
// (prim_kruskal.MethodPrim or MethodKruskal).
func (e *Engine) SpanningForest(method string) ([]core.Edge, int64, error) {
	edges, total, err := prim_kruskal.Compute(e.g, prim_kruskal.WithMethod(method))
	if err != nil {
		return nil, 0, err
	}
	e.log.Debug("spanning forest", "method", method, "edges", len(edges), "total", total)

	return edges, total, nil
}

// BFSEdges lists breadth-first discovery edges from source; empty when
// source is absent.
func (e *Engine) BFSEdges(source string) []core.Pair {
	out := bfs.Edges(e.g, e.lookup(source))
	e.log.Debug("bfs", "source", source, "edges", len(out))

	return out
}

// DFSEdges lists depth-first discovery edges from source; empty when
// source is absent.
func (e *Engine) DFSEdges(source string) []core.Pair {
	out := dfs.Edges(e.g, e.lookup(source))
	e.log.Debug("dfs", "source", source, "edges", len(out))

	return out
}

// GreedyColor returns a fresh largest-first coloring.
func (e *Engine) GreedyColor() coloring.Coloring {
	c := coloring.Greedy(e.g)
	e.log.Debug("coloring", "colors", coloring.Count(c))

	return c
}

// Summary returns the structural metrics of the graph.
func (e *Engine) Summary() metrics.Summary { return metrics.Compute(e.g) }

// SummaryMetrics renders Summary as text.
func (e *Engine) SummaryMetrics() string {
	e.log.Debug("metrics")

	return e.Summary().Text()
}

// AdjacencyMatrixText renders the adjacency matrix over display order;
// empty for an empty graph.
func (e *Engine) AdjacencyMatrixText() string {
	am, err := matrix.NewAdjacencyMatrix(e.g)
	if err != nil {
		return ""
	}
	e.log.Debug("adjacency matrix", "size", am.VertexCount())

	return am.Render(e.textOpts...)
}
