// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves insertion order, so tie-breaks based on InsertionIndex
//     give the same answers on the clone as on the source.

package core

import "maps"

// Clone returns an independent deep copy: catalog, insertion order and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	for _, id := range g.order {
		clone.ensureNode(id)
		clone.adjacency[id.label] = maps.Clone(g.adjacency[id.label])
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear resets the graph to the empty state.
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.nodes = make(map[string]*nodeEntry)
	g.order = nil
	g.adjacency = make(map[string]map[string]int64)
	g.edgeCount = 0
}
