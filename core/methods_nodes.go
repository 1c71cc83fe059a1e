// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/Lookup/Nodes/NodesSortedForDisplay/
//       NodeCount/Neighbors/Degree/InsertionIndex.
// Determinism:
//   - Nodes() returns insertion order.
//   - NodesSortedForDisplay() and Neighbors() return display order (NodeID.Compare).

package core

import (
	"slices"
	"strings"
)

// AddNode inserts an isolated node with the given label.
// Adding an existing node is a no-op (idempotent).
// Returns ErrEmptyNodeID for an empty label.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label string) error {
	id, err := ParseNodeID(label)
	if err != nil {
		return err
	}
	g.ensureNode(id)

	return nil
}

// ensureNode registers id in the catalog if absent.
func (g *Graph) ensureNode(id NodeID) {
	if _, ok := g.nodes[id.label]; ok {
		return
	}
	g.nodes[id.label] = &nodeEntry{id: id, seq: len(g.order)}
	g.order = append(g.order, id)
	g.adjacency[id.label] = make(map[string]int64)
}

// HasNode reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id.label]

	return ok
}

// Lookup resolves a raw label to the stored NodeID; surrounding white space
// is ignored as in ParseNodeID. The boolean is false when no node carries
// that label.
// Complexity: O(len(label)).
func (g *Graph) Lookup(label string) (NodeID, bool) {
	e, ok := g.nodes[strings.TrimSpace(label)]
	if !ok {
		return NodeID{}, false
	}

	return e.id, true
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.order) }

// Nodes returns all nodes in insertion order. The slice is a fresh copy.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID { return slices.Clone(g.order) }

// NodesSortedForDisplay returns all nodes in display order: numeric when every
// identifier is an integer, lexicographic for text, integers before text when mixed.
// Complexity: O(V log V).
func (g *Graph) NodesSortedForDisplay() []NodeID {
	out := slices.Clone(g.order)
	slices.SortFunc(out, NodeID.Compare)

	return out
}

// InsertionIndex returns the 0-based insertion sequence of id,
// or -1 when id is absent. Used as a stable secondary sort key.
// Complexity: O(1).
func (g *Graph) InsertionIndex(id NodeID) int {
	e, ok := g.nodes[id.label]
	if !ok {
		return -1
	}

	return e.seq
}

// Neighbors returns the nodes adjacent to id in display order.
// Returns ErrNodeNotFound when id is absent.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	row, ok := g.adjacency[id.label]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]NodeID, 0, len(row))
	for label := range row {
		out = append(out, g.nodes[label].id)
	}
	slices.SortFunc(out, NodeID.Compare)

	return out, nil
}

// Degree returns the number of edges incident to id (0 for an absent node).
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) int { return len(g.adjacency[id.label]) }
