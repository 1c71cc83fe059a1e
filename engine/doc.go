// Package engine is the caller-facing surface of graphcore: one Engine owns
// the current graph and exposes mutation, the algorithms, the derived text
// views and persistence as plain method calls.
//
//	e := engine.New(engine.WithLogger(logger))
//	_, _ = e.UpsertEdge("A", "B", 1)
//	_, _ = e.UpsertEdge("B", "C", 1)
//	res := e.ShortestPath("A", "C") // res.Path = [A B C], res.Cost = 2
//	fmt.Println(e.SummaryMetrics())
//
// Failure policy:
//   - "No result" conditions (unknown node, no path) are returned as data:
//     a dijkstra.Result outcome or an empty edge list.
//   - Invalid input (non-integer weight, empty id, self-loop) is returned as
//     an error and leaves the graph untouched.
//   - A rejected document on FromPersisted or Load keeps the previous graph.
//
// An Engine is not safe for concurrent use; hosts serialize calls. Each
// action is logged at debug level on the configured charmbracelet logger,
// which discards output by default.
package engine
