// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Coloring type, sentinel errors and helpers.

package coloring

import (
	"errors"

	"github.com/katalvlaran/graphcore/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Validate.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrConflict indicates two adjacent nodes share a color.
	ErrConflict = errors.New("coloring: adjacent nodes share a color")

	// ErrUncolored indicates a node of the graph has no color assigned.
	ErrUncolored = errors.New("coloring: node has no color")
)

// Coloring maps each node to a non-negative color index. It is produced
// fresh by Greedy and never stored in the graph.
type Coloring map[core.NodeID]int

// Count returns the number of distinct colors used.
func Count(c Coloring) int {
	seen := make(map[int]struct{}, len(c))
	for _, col := range c {
		seen[col] = struct{}{}
	}

	return len(seen)
}

// Classes groups nodes by color: Classes(c)[k] lists the nodes with color k
// in display order. Useful for legend rendering.
func Classes(c Coloring) [][]core.NodeID {
	out := make([][]core.NodeID, Count(c))
	for _, n := range sortedKeys(c) {
		col := c[n]
		if col >= len(out) {
			grown := make([][]core.NodeID, col+1)
			copy(grown, out)
			out = grown
		}
		out[col] = append(out[col], n)
	}

	return out
}
