// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and Pair declarations, sentinel errors and the NewGraph constructor.
// Policy:
//   - The Graph is a simple, undirected, integer-weighted graph.
//   - No locks: callers serialize mutations and reads (single-writer discipline).

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an empty label was supplied as a node identifier.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge whose two endpoints are the same node.
	// Self-loops are rejected before the graph is touched.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Edge is a weighted connection between two distinct nodes.
//
// The pair {U,V} is unordered: Edge{U:a,V:b} and Edge{U:b,V:a} describe the
// same connection. Graph.Edges returns edges in canonical form (U before V in
// display order); algorithm results may orient U→V in discovery order.
type Edge struct {
	// U is one endpoint.
	U NodeID

	// V is the other endpoint.
	V NodeID

	// Weight is the signed integer cost of the edge.
	Weight int64
}

// Canonical returns e with its endpoints swapped, if needed, so that U sorts
// before V in display order.
func (e Edge) Canonical() Edge {
	if e.V.Compare(e.U) < 0 {
		e.U, e.V = e.V, e.U
	}

	return e
}

// Pair is an unweighted, oriented node pair produced by traversals:
// From is the already-discovered node, To the node discovered through it.
type Pair struct {
	From NodeID
	To   NodeID
}

// Graph is the in-memory store: a node catalog plus a mirrored adjacency map
// adjacency[u][v] = weight, maintained so that adjacency[u][v] == adjacency[v][u].
//
// Graph is NOT safe for concurrent use. All reads done by the algorithm
// packages take no locks; hosts that share one Graph across goroutines
// must serialize access themselves.
type Graph struct {
	// nodes maps a node label to its catalog entry.
	nodes map[string]*nodeEntry

	// order lists nodes in insertion order (first appearance).
	order []NodeID

	// adjacency[u.label][v.label] = weight; always mirrored.
	adjacency map[string]map[string]int64

	// edgeCount is the number of unordered pairs stored in adjacency.
	edgeCount int
}

// nodeEntry is the catalog record of a node.
type nodeEntry struct {
	id  NodeID // parsed identity
	seq int    // insertion sequence, 0-based
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*nodeEntry),
		adjacency: make(map[string]map[string]int64),
	}
}
