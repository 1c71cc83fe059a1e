package engine_test

import (
	"fmt"

	"github.com/katalvlaran/graphcore/engine"
)

func ExampleEngine() {
	e := engine.New()
	_, _ = e.UpsertEdge("A", "B", 1)
	_, _ = e.UpsertEdge("B", "C", 1)
	_, _ = e.UpsertEdge("A", "C", 5)

	res := e.ShortestPath("A", "C")
	fmt.Println(res.Path, res.Cost)

	forest, total := e.MinimumSpanningForest()
	fmt.Println(len(forest), total)

	fmt.Println(e.ShortestPath("A", "Z").Outcome)
	// Output:
	// [A B C] 2
	// 2 2
	// not found
}
