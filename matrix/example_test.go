package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/graphcore/core"
	"github.com/katalvlaran/graphcore/matrix"
)

// ExampleAdjacencyMatrix_Text renders a triangle whose labels were inserted
// out of numeric order; rows and columns still read 8, 9, 10.
func ExampleAdjacencyMatrix_Text() {
	g := core.NewGraph()
	_, _ = g.UpsertEdge("10", "8", 7)
	_, _ = g.UpsertEdge("9", "8", 3)
	_, _ = g.UpsertEdge("9", "10", 12)

	am, _ := matrix.NewAdjacencyMatrix(g)
	fmt.Println("nodes:", am.Nodes)
	fmt.Println(am.Text())
	// Output:
	// nodes: [8 9 10]
	//          8     9    10
	// ----------------------
	//    8 |    0     3     7
	//    9 |    3     0    12
	//   10 |    7    12     0
}
