// Package dijkstra_test provides runnable examples for the dijkstra package.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphcore/core"
	"github.com/katalvlaran/graphcore/dijkstra"
)

// ExampleDijkstra demonstrates single-source distances on a triangle.
func ExampleDijkstra() {
	g := core.NewGraph()
	_, _ = g.UpsertEdge("A", "B", 1)
	_, _ = g.UpsertEdge("B", "C", 2)
	_, _ = g.UpsertEdge("A", "C", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(core.MustNodeID("A")))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n",
		dist[core.MustNodeID("A")], dist[core.MustNodeID("B")], dist[core.MustNodeID("C")])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleShortestPath shows a found path and a NoPath outcome.
func ExampleShortestPath() {
	g := core.NewGraph()
	_, _ = g.UpsertEdge("A", "B", 1)
	_, _ = g.UpsertEdge("B", "C", 1)
	_, _ = g.UpsertEdge("A", "C", 5)
	_, _ = g.UpsertEdge("X", "Y", 2)

	res := dijkstra.ShortestPath(g, core.MustNodeID("A"), core.MustNodeID("C"))
	fmt.Println(res.Path, res.Cost)

	res = dijkstra.ShortestPath(g, core.MustNodeID("A"), core.MustNodeID("Y"))
	fmt.Println(res.Outcome, res.Cost == dijkstra.Infinity)

	// Output:
	// [A B C] 2
	// no path true
}
