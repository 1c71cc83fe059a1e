// Package coloring assigns colors to the nodes of a core.Graph so that no
// edge joins two nodes of the same color.
//
// Greedy implements the largest-first heuristic: nodes are visited by
// descending degree (ties in insertion order) and each takes the lowest color
// index unused among its already-colored neighbors. The result is always a
// proper coloring with at most maxDegree+1 colors; it is not guaranteed to
// reach the chromatic number.
//
//	c := coloring.Greedy(g)
//	fmt.Println(coloring.Count(c)) // colors used
//	err := coloring.Validate(g, c) // nil for every Greedy result
package coloring
