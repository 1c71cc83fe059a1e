// Package matrix offers an adjacency-matrix view of a core.Graph.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 grid with bounds-checked At/Set.
//   - AdjacencyMatrix, an N×N snapshot over the graph's display order with
//     O(1) weight lookups and O(V²) memory.
//   - Text/Render, the aligned table shown to users ("8 9 10" headers, a
//     dash rule, one row per node).
//
// Matrices are a read-only view: build one, query or render it, discard it.
// Rebuild after the graph changes.
//
//	am, _ := matrix.NewAdjacencyMatrix(g)
//	fmt.Println(am.Text())
package matrix
