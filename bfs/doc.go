// Package bfs provides breadth-first search over a core.Graph, returning
// discovery edges, hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex,
//     covering only the start vertex's connected component.
//   - Edges(g, source) returns the (discoverer, discovered) pairs in the order
//     they were first found; an absent source yields an empty slice.
//   - BFS(g, source, opts...) returns a BFSResult with Order, Depth, Parent
//     and Edges, or ErrStartVertexNotFound for an absent source.
//   - Hooks: OnEnqueue and OnVisit (the latter may abort with an error).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds the search.
//
// Determinism
//
//	core.Graph.Neighbors returns nodes in display order ("8, 9, 10", then text
//	labels), and BFS enqueues in that order, so every run is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d) (neighbor lists are sorted per expansion)
//   - Memory: O(V)
//
// Usage
//
//	pairs := bfs.Edges(g, core.MustNodeID("A"))
//
//	res, err := bfs.BFS(g, core.MustNodeID("A"),
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	)
package bfs
