// Package graphcore is an in-memory engine for weighted undirected graphs:
// build a graph edge by edge, run the classic algorithms over it, and keep it
// in a networkx-compatible node-link file.
//
// What is in the box?
//
//	core/         - Graph store: nodes, weighted edges, upsert, clear, display order
//	dijkstra/     - shortest path with Found / NotFound / NoPath outcomes
//	prim_kruskal/ - minimum spanning forest (one tree per component)
//	bfs/, dfs/    - discovery edges of breadth- and depth-first traversal
//	coloring/     - largest-first greedy vertex coloring
//	metrics/      - node/edge counts, density, connectivity, Eulerian check
//	matrix/       - adjacency matrix and its aligned text table
//	nodelink/     - node-link JSON/YAML records and files
//	builder/      - deterministic fixtures and the random-edge generator
//	engine/       - one facade over all of the above, with activity logging
//	cmd/graphcore - command-line front end
//
// Node ids are labels. Numeric labels ("8", "9", "10") display in numeric
// order, everything else after them in lexicographic order.
//
// Quick example:
//
//	e := engine.New()
//	e.UpsertEdge("A", "B", 1)
//	e.UpsertEdge("B", "C", 1)
//	e.UpsertEdge("A", "C", 5)
//	res := e.ShortestPath("A", "C") // [A B C], cost 2
//
//	    A───B
//	     ╲  │
//	      ╲ │
//	        C
//
// All algorithms recompute from scratch on every call, and nothing is
// safe for concurrent mutation.
//
//	go install github.com/katalvlaran/graphcore/cmd/graphcore@latest
package graphcore
