// Package dfs implements depth-first search traversal on a core.Graph.
//
// What:
//
//   - Edges(g, source): the (discoverer, discovered) pairs of a depth-first
//     search from source in preorder discovery order, limited to source's
//     component. An absent source yields an empty slice.
//   - DFS(g, source, opts...): the full traversal record:
//   - Preorder and post-order (Order) sequences
//   - Depth and Parent maps, tree Edges
//   - Roots: one entry per DFS tree; with WithFullTraversal this is one
//     root per connected component
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook; error aborts traversal.
//   - WithOnExit(fn)            post-order hook; error aborts traversal.
//   - WithMaxDepth(limit)       stops recursion beyond the given depth (>=0).
//   - WithFilterNeighbor(fn)    return false to skip a neighbor.
//   - WithFullTraversal()       restart from every unvisited vertex.
//
// Determinism:
//
//	Neighbors are explored in display order (integers numerically, then text
//	labels), and forest roots are taken in the same order.
//
// Complexity:
//
//   - Time:   O(V + E log d)
//   - Memory: O(V) (recursion stack and metadata maps)
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound, context errors, hook errors.
package dfs
