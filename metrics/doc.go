// Package metrics derives structural facts from a core.Graph: size, density,
// connectivity, component count and, for connected graphs, whether an
// Eulerian circuit exists.
//
// Compute returns a Summary value; Summary.Text renders the plain-text
// report shown to users, one "• Label: value" line per fact.
//
//	s := metrics.Compute(g)
//	fmt.Println(s.Text())
//
// Boundary policy:
//   - Density is 0 for graphs with fewer than two nodes.
//   - An empty graph reports "Empty graph." and nothing else.
//   - Eulerian is only defined for a single component; a lone node without
//     edges is Eulerian (the empty closed walk).
package metrics
