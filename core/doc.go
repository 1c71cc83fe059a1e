// Package core provides the in-memory graph store used by every algorithm
// package: a simple, undirected graph with signed integer edge weights.
//
// The Graph G = (V,E) guarantees:
//
//   - Undirected edges: {u,v} and {v,u} are the same edge; the store never
//     exposes a direction.
//   - Simple graph: at most one edge per unordered pair. Inserting an existing
//     pair replaces its weight (upsert) instead of adding a parallel edge.
//   - No self-loops: UpsertEdge(v, v, w) returns ErrSelfLoop and leaves the
//     graph untouched.
//   - Weights are int64 and are not sign-checked; algorithms that need
//     non-negative weights (dijkstra) document it as a precondition.
//
// Node identity
//
// NodeID is a tagged value decided once at parse time: an integer when the
// whole label parses as base-10 int64, otherwise opaque text. Display order
// (NodeID.Compare) sorts integers numerically ("8, 9, 10"), then text
// lexicographically, so rendering never has to sniff types.
//
// Core methods:
//
//	// Mutation
//	UpsertEdge(u, v string, w int64) (string, error) // O(1)
//	SetEdge(u, v NodeID, w int64) error              // O(1)
//	AddNode(label string) error                      // O(1)
//	Clear()                                          // O(1)
//
//	// Query
//	NodeCount(), EdgeCount() int                     // O(1)
//	HasNode(id), HasEdge(u, v) bool                  // O(1)
//	Weight(u, v) (int64, bool)                       // O(1)
//	Nodes() []NodeID                                 // insertion order
//	NodesSortedForDisplay() []NodeID                 // display order
//	Neighbors(id) ([]NodeID, error)                  // display order
//	Edges() []Edge                                   // canonical, sorted
//	Degree(id) int
//
//	// Snapshot
//	Clone() *Graph                                   // O(V+E)
//
// Concurrency
//
// Graph takes no locks. A host that shares one Graph between goroutines must
// serialize mutations and algorithm runs itself (single writer, or an external
// mutex).
package core
