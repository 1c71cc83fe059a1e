// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: UpsertEdge/SetEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns canonical edges sorted by (U, V) in display order.
// Invariants:
//   - adjacency[u][v] == adjacency[v][u] for every stored pair.
//   - At most one edge per unordered pair: a second insert replaces the weight.

package core

import (
	"fmt"
	"slices"
)

// UpsertEdge parses both labels, inserts any absent endpoint and inserts or
// updates the edge {u,v} with weight w. It returns a human-readable
// description of the connection for activity logs.
//
// Steps:
//  1. Parse labels (ErrEmptyNodeID).
//  2. Reject u == v (ErrSelfLoop).
//  3. Delegate to SetEdge.
//
// No mutation happens when an error is returned.
// Complexity: O(1) amortized.
func (g *Graph) UpsertEdge(u, v string, w int64) (string, error) {
	uid, err := ParseNodeID(u)
	if err != nil {
		return "", err
	}
	vid, err := ParseNodeID(v)
	if err != nil {
		return "", err
	}
	if err = g.SetEdge(uid, vid, w); err != nil {
		return "", err
	}

	return fmt.Sprintf("Connection: [%s] --(%d)--> [%s]", uid, w, vid), nil
}

// SetEdge inserts or replaces the weight of {u,v}, creating endpoints as needed.
// Returns ErrEmptyNodeID for a zero NodeID and ErrSelfLoop when u == v.
// Complexity: O(1) amortized.
func (g *Graph) SetEdge(u, v NodeID, w int64) error {
	if u.IsZero() || v.IsZero() {
		return ErrEmptyNodeID
	}
	if u.label == v.label {
		return fmt.Errorf("%w: %q", ErrSelfLoop, u.label)
	}
	g.ensureNode(u)
	g.ensureNode(v)
	if _, exists := g.adjacency[u.label][v.label]; !exists {
		g.edgeCount++
	}
	g.adjacency[u.label][v.label] = w
	g.adjacency[v.label][u.label] = w

	return nil
}

// HasEdge reports whether {u,v} exists; argument order is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v NodeID) bool {
	_, ok := g.adjacency[u.label][v.label]

	return ok
}

// Weight returns the weight of {u,v} and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v NodeID) (int64, bool) {
	w, ok := g.adjacency[u.label][v.label]

	return w, ok
}

// EdgeCount returns the number of unordered pairs.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Edges returns every edge once, in canonical form, sorted by (U, V).
// Complexity: O(V log V + E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, u := range g.order {
		for vl, w := range g.adjacency[u.label] {
			v := g.nodes[vl].id
			if u.Compare(v) < 0 {
				out = append(out, Edge{U: u, V: v, Weight: w})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if c := a.U.Compare(b.U); c != 0 {
			return c
		}

		return a.V.Compare(b.V)
	})

	return out
}
