// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// undirected, integer-weighted core.Graph.
//
// Overview:
//
//   - Dijkstra computes distances from one source to every vertex in
//     O((V + E) log V) using a lazy decrease-key min-heap.
//   - ShortestPath answers a single source→target query and reports the
//     outcome as data: Found, NotFound (an endpoint is missing) or NoPath
//     (endpoints in different components). Failed queries carry
//     Cost == Infinity.
//
// Determinism:
//
//   - Heap ties on equal distance are broken by node display order, and
//     neighbors are relaxed in display order, so equal-cost alternatives
//     always resolve the same way.
//
// Precondition:
//
//   - Weights must be non-negative. The store does not validate sign and this
//     package does not scan for negative weights; with negative weights the
//     result is unspecified.
//
// Options:
//
//	Source(id)              required starting vertex
//	WithReturnPath()        also return the predecessor map
//	WithMaxDistance(d)      settle only vertices within distance d
//	WithInfEdgeThreshold(t) edges with weight ≥ t are impassable
//
// Errors (Dijkstra only): ErrEmptySource, ErrNilGraph, ErrVertexNotFound.
// Option constructors panic with ErrBadMaxDistance / ErrBadInfThreshold text
// on invalid arguments.
//
// Thread safety: reads the graph without locks; callers serialize mutations.
package dijkstra
