// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, functional options and result types for the
//       single-source runner (Dijkstra) and the point-to-point query
//       (ShortestPath).

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/graphcore/core"
)

// Infinity is the distance sentinel for unreachable nodes and for the cost of
// a failed ShortestPath query. Callers compare against it; they never add to it.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no Source option was given.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the single-source runner.
//
// Source           – starting vertex (must be non-zero and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – vertices farther than this are not settled. Default Infinity.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable. Default Infinity.
type Options struct {
	Source           core.NodeID
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Must be supplied.
func Source(id core.NodeID) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration: vertices whose shortest distance exceeds
// max stay at Infinity. Panics on a negative value (programmer error).
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics on zero or negative threshold (programmer error).
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for source with no distance cap and no walls.
func DefaultOptions(source core.NodeID) Options {
	return Options{
		Source:           source,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// Outcome classifies a ShortestPath answer. NotFound and NoPath are expected
// results returned as data, not errors.
type Outcome int

const (
	// Found means a path exists; Result.Path and Result.Cost are valid.
	Found Outcome = iota

	// NotFound means the source or the target is not in the graph.
	NotFound

	// NoPath means both endpoints exist but lie in different components.
	NoPath
)

// String returns a lowercase name for o.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case NoPath:
		return "no path"
	default:
		return "unknown"
	}
}

// Result is the answer to a point-to-point query.
type Result struct {
	// Path lists nodes from source to target inclusive; nil unless Found.
	Path []core.NodeID

	// Cost is the sum of edge weights along Path, or Infinity unless Found.
	Cost int64

	// Outcome classifies the answer.
	Outcome Outcome
}

// OK reports whether a path was found.
func (r Result) OK() bool { return r.Outcome == Found }
