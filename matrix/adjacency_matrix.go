// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/graphcore/core"
)

// AdjacencyMatrix holds a fixed-size, 2D snapshot of a core.Graph.
//
// Description:
//
//	Data.At(i, j) holds the weight of the edge between Nodes[i] and
//	Nodes[j], or zero if no edge exists. Rows and columns follow the
//	graph's display order, so numeric labels come out as 8, 9, 10 rather
//	than in insertion order. The graph is undirected, so Data is symmetric.
//
// Algorithm AdjacencyMatrix construction:
//  1. Nodes = g.NodesSortedForDisplay(); Index maps each node to its row.
//  2. Allocate Data as an N×N zero-filled Dense.
//  3. For each edge {u,v,w}: Data[i][j] = Data[j][i] = w.
//
// A zero weight is indistinguishable from "no edge" in the cells; use
// HasEdge for structural queries.
//
// Time complexity:
//   - construction: O(V² + E)
//   - Weight/HasEdge: O(1)
//   - Neighbors: O(V)
//
// Memory: O(V²).
type AdjacencyMatrix struct {
	// Index maps node → row/column index in Data.
	Index map[core.NodeID]int
	// Nodes lists nodes in row order (display order).
	Nodes []core.NodeID
	// Data is the N×N weight grid.
	Data *Dense

	edges map[[2]int]struct{} // structural presence, upper triangle i<j
}

// NewAdjacencyMatrix builds an AdjacencyMatrix from g.
// Returns ErrGraphNil for a nil graph. An empty graph yields a 0×0 matrix.
//
// Complexity: O(V² + E).
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	nodes := g.NodesSortedForDisplay()
	n := len(nodes)
	idx := make(map[core.NodeID]int, n)
	for i, v := range nodes {
		idx[v] = i
	}

	data, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	edges := make(map[[2]int]struct{}, g.EdgeCount())
	for _, e := range g.Edges() {
		i, j := idx[e.U], idx[e.V]
		// indices come from idx, so Set cannot fail
		_ = data.Set(i, j, e.Weight)
		_ = data.Set(j, i, e.Weight)
		edges[pairKey(i, j)] = struct{}{}
	}

	return &AdjacencyMatrix{Index: idx, Nodes: nodes, Data: data, edges: edges}, nil
}

// VertexCount returns the number of rows (= columns).
func (m *AdjacencyMatrix) VertexCount() int { return len(m.Nodes) }

// EdgeCount returns the number of undirected edges captured in the matrix.
func (m *AdjacencyMatrix) EdgeCount() int { return len(m.edges) }

// At returns the cell (i, j); ErrOutOfRange on bad indices.
func (m *AdjacencyMatrix) At(i, j int) (int64, error) { return m.Data.At(i, j) }

// Weight returns the cell for the node pair (u, v). The value is 0 when no
// edge joins them. Returns ErrUnknownVertex if either node is absent.
// Complexity: O(1).
func (m *AdjacencyMatrix) Weight(u, v core.NodeID) (int64, error) {
	i, j, err := m.checkVertices(u, v)
	if err != nil {
		return 0, err
	}

	return m.Data.At(i, j)
}

// HasEdge reports whether an edge joins u and v, including zero-weight edges.
func (m *AdjacencyMatrix) HasEdge(u, v core.NodeID) bool {
	i, j, err := m.checkVertices(u, v)
	if err != nil {
		return false
	}
	_, ok := m.edges[pairKey(i, j)]

	return ok
}

// Neighbors returns, in display order, every node joined to id by an edge.
// Returns ErrUnknownVertex if id is not in the matrix.
// Complexity: O(V).
func (m *AdjacencyMatrix) Neighbors(id core.NodeID) ([]core.NodeID, error) {
	i, ok := m.Index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	var out []core.NodeID
	for j, v := range m.Nodes {
		if _, ok := m.edges[pairKey(i, j)]; ok {
			out = append(out, v)
		}
	}

	return out, nil
}

// Symmetric reports whether cell (i,j) equals cell (j,i) for every pair.
// Always true for a matrix built from a core.Graph.
func (m *AdjacencyMatrix) Symmetric() bool { return m.Data.IsSymmetric() }

// ToGraph reconstructs a *core.Graph holding the same nodes and edges.
// Nodes are inserted in display order.
// Complexity: O(V + E).
func (m *AdjacencyMatrix) ToGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, v := range m.Nodes {
		if err := g.AddNode(v.String()); err != nil {
			return nil, err
		}
	}
	for k := range m.edges {
		w, _ := m.Data.At(k[0], k[1])
		if err := g.SetEdge(m.Nodes[k[0]], m.Nodes[k[1]], w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// checkVertices returns the matrix indices for u and v,
// or an error if either node is not in the matrix.
func (m *AdjacencyMatrix) checkVertices(u, v core.NodeID) (i, j int, err error) {
	var ok bool
	i, ok = m.Index[u]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownVertex, u)
	}
	j, ok = m.Index[v]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownVertex, v)
	}

	return i, j, nil
}

// pairKey normalizes (i,j) into {min,max} so an undirected edge has one key.
func pairKey(i, j int) [2]int {
	if j < i {
		i, j = j, i
	}

	return [2]int{i, j}
}
