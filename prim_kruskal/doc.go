// Package prim_kruskal computes the minimum spanning FOREST of an undirected,
// weighted *core.Graph with Prim's or Kruskal's algorithm.
//
// What & Why
//
//   - A minimum spanning forest is a minimum-weight acyclic edge subset that
//     connects every connected component internally: one tree per component.
//   - Disconnected input is a normal case, not an error. Both algorithms
//     return the union of the per-component trees, so a graph with k
//     components and V nodes yields V − k edges.
//
// Algorithms Provided
//
//   - Prim(g, root) ([]core.Edge, int64, error)
//     Grows a tree from a seed with a min-heap of frontier edges, then reseeds
//     from the smallest unvisited node until every component is covered.
//     O(E log E) time, O(V + E) space.
//
//   - Kruskal(g) ([]core.Edge, int64, error)
//     Stable-sorts all edges by weight and merges components with union-find.
//     O(E log E + α(V)·E) time. Used as an independent cross-check of Prim and
//     selectable via Compute(g, WithMethod(MethodKruskal)).
//
// Both produce forests of equal total weight; the chosen edges coincide
// whenever edge weights are distinct.
//
// Determinism
//
//   - Prim seeds in display order and breaks heap ties by (weight, reached
//     node, tree node).
//   - Kruskal breaks weight ties by canonical (U, V) order.
//
// Error Conditions
//
//   - ErrInvalidGraph: nil graph.
//   - core.ErrNodeNotFound: Prim root given but absent.
//   - ErrUnknownMethod: Compute called with an unknown method name.
//
// An empty graph yields an empty forest and total weight 0.
package prim_kruskal
