// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Summary computation and its text rendering.
// Determinism:
//   - Components are counted by a full-forest DFS in display order.
//   - Text lines have a fixed order; Eulerian is printed only when connected.

package metrics

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphcore/core"
	"github.com/katalvlaran/graphcore/dfs"
)

// EmptyText is the whole report for a graph without nodes.
const EmptyText = "Empty graph."

// Summary holds the structural facts of one graph snapshot.
type Summary struct {
	// Nodes and Edges are the catalog sizes.
	Nodes int
	Edges int

	// Density is 2|E| / (|N|(|N|-1)), or 0 when |N| < 2.
	Density float64

	// Components is the number of connected components (0 for an empty graph).
	Components int

	// Connected is true iff Components == 1.
	Connected bool

	// Eulerian is nil unless Connected; then it reports whether every node
	// has even degree.
	Eulerian *bool

	// Empty is true for a graph with no nodes.
	Empty bool
}

// Compute gathers a Summary for g. A nil graph is treated as empty.
// Complexity: O(V log V + E).
func Compute(g *core.Graph) Summary {
	if g == nil || g.NodeCount() == 0 {
		return Summary{Empty: true}
	}

	s := Summary{
		Nodes:   g.NodeCount(),
		Edges:   g.EdgeCount(),
		Density: Density(g.NodeCount(), g.EdgeCount()),
	}
	s.Components = Components(g)
	s.Connected = s.Components == 1
	if s.Connected {
		e := isEulerian(g)
		s.Eulerian = &e
	}

	return s
}

// Density returns 2m / (n(n-1)) for an undirected simple graph with n nodes
// and m edges, and 0 when n < 2.
func Density(n, m int) float64 {
	if n < 2 {
		return 0
	}

	return 2 * float64(m) / (float64(n) * float64(n-1))
}

// Components counts connected components by running one DFS tree per
// unvisited node. Returns 0 for a nil or empty graph.
// Complexity: O(V log V + E).
func Components(g *core.Graph) int {
	if g == nil {
		return 0
	}
	res, err := dfs.DFS(g, core.NodeID{}, dfs.WithFullTraversal())
	if err != nil {
		return 0
	}

	return len(res.Roots)
}

// isEulerian assumes g is connected: true iff every degree is even. A lone
// node has the empty closed walk.
func isEulerian(g *core.Graph) bool {
	for _, n := range g.Nodes() {
		if g.Degree(n)%2 != 0 {
			return false
		}
	}

	return true
}

// Text renders the report: one "• Label: value" line per fact joined by
// "\n", without a trailing newline.
func (s Summary) Text() string {
	if s.Empty {
		return EmptyText
	}
	conn := "disconnected"
	if s.Connected {
		conn = "connected"
	}
	lines := []string{
		fmt.Sprintf("• Total nodes: %d", s.Nodes),
		fmt.Sprintf("• Total edges: %d", s.Edges),
		fmt.Sprintf("• Density: %.4f", s.Density),
		"• Connectivity: " + conn,
		fmt.Sprintf("• Components: %d", s.Components),
	}
	if s.Eulerian != nil {
		lines = append(lines, "• Eulerian: "+yesNo(*s.Eulerian))
	}

	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer.
func (s Summary) String() string { return s.Text() }

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
