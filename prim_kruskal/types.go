// Package prim_kruskal defines configuration options and sentinel errors for
// minimum spanning forest computation. It supports selecting between Prim and
// Kruskal via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphcore/core"
)

// ErrInvalidGraph indicates that a nil graph was passed.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow each tree with a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which algorithm Compute runs, and for Prim, which
// vertex seeds the first tree.
//
// Fields:
//
//	Method string       - one of MethodPrim or MethodKruskal.
//	Root   core.NodeID  - optional first seed for Prim; zero means "smallest
//	                      node in display order". Ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   core.NodeID
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the vertex Prim grows its first tree from.
func WithRoot(root core.NodeID) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Prim with no explicit root.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodPrim}
}

// Compute selects and runs the algorithm named by the options.
//
// Returns the forest edges, their total weight, and an error for a nil graph,
// an unknown method, or a Prim root that is not in the graph.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, cfg.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []core.Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
