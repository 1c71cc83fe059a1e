// SPDX-License-Identifier: MIT
//
// File: record.go
// Role: Record types and the Graph <-> Record conversion.
// Determinism:
//   - ToRecord lists nodes in insertion order and links in canonical edge order.
//   - FromRecord inserts nodes in document order, then links in document order.

package nodelink

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphcore/core"
)

var (
	// ErrMalformed indicates a persisted document that cannot describe a
	// simple undirected weighted graph.
	ErrMalformed = errors.New("nodelink: malformed record")

	// ErrUnsupportedFormat indicates a file extension with no codec.
	ErrUnsupportedFormat = errors.New("nodelink: unsupported file format")
)

// Record is the persisted form of a graph.
type Record struct {
	Directed   bool           `json:"directed" yaml:"directed"`
	Multigraph bool           `json:"multigraph" yaml:"multigraph"`
	Graph      map[string]any `json:"graph" yaml:"graph"`
	Nodes      []Node         `json:"nodes" yaml:"nodes"`
	Links      []Link         `json:"links" yaml:"links"`
}

// Node is one entry of Record.Nodes.
type Node struct {
	ID ID `json:"id" yaml:"id"`
}

// Link is one undirected weighted edge of Record.Links.
// Weight is a pointer so that a missing weight can be told apart from 0.
type Link struct {
	Source ID     `json:"source" yaml:"source"`
	Target ID     `json:"target" yaml:"target"`
	Weight *int64 `json:"weight" yaml:"weight"`
}

// ToRecord captures g. A nil graph yields an empty record.
// Complexity: O(V + E log E).
func ToRecord(g *core.Graph) Record {
	rec := Record{
		Graph: map[string]any{},
		Nodes: []Node{},
		Links: []Link{},
	}
	if g == nil {
		return rec
	}
	for _, n := range g.Nodes() {
		rec.Nodes = append(rec.Nodes, Node{ID: ID(n.String())})
	}
	for _, e := range g.Edges() {
		w := e.Weight
		rec.Links = append(rec.Links, Link{Source: ID(e.U.String()), Target: ID(e.V.String()), Weight: &w})
	}

	return rec
}

// FromRecord builds a new graph from rec.
//
// Rejected with ErrMalformed:
//   - directed or multigraph set;
//   - an empty or duplicate node id;
//   - a link whose endpoint is not declared in Nodes;
//   - a link without weight, a self-loop, or a second link for the same pair.
//
// Complexity: O(V + E).
func FromRecord(rec Record) (*core.Graph, error) {
	if rec.Directed {
		return nil, fmt.Errorf("%w: directed graphs are not supported", ErrMalformed)
	}
	if rec.Multigraph {
		return nil, fmt.Errorf("%w: multigraphs are not supported", ErrMalformed)
	}

	g := core.NewGraph()
	for i, n := range rec.Nodes {
		nid, err := core.ParseNodeID(string(n.ID))
		if err != nil {
			return nil, fmt.Errorf("%w: node %d: %w", ErrMalformed, i, err)
		}
		if g.HasNode(nid) {
			return nil, fmt.Errorf("%w: node %d: duplicate id %q", ErrMalformed, i, nid)
		}
		if err = g.AddNode(nid.String()); err != nil {
			return nil, fmt.Errorf("%w: node %d: %w", ErrMalformed, i, err)
		}
	}

	for i, l := range rec.Links {
		u, okU := g.Lookup(string(l.Source))
		v, okV := g.Lookup(string(l.Target))
		switch {
		case !okU:
			return nil, fmt.Errorf("%w: link %d: undeclared source %q", ErrMalformed, i, l.Source)
		case !okV:
			return nil, fmt.Errorf("%w: link %d: undeclared target %q", ErrMalformed, i, l.Target)
		case l.Weight == nil:
			return nil, fmt.Errorf("%w: link %d (%s-%s): missing weight", ErrMalformed, i, u, v)
		case g.HasEdge(u, v):
			return nil, fmt.Errorf("%w: link %d (%s-%s): duplicate pair", ErrMalformed, i, u, v)
		}
		if err := g.SetEdge(u, v, *l.Weight); err != nil {
			return nil, fmt.Errorf("%w: link %d: %w", ErrMalformed, i, err)
		}
	}

	return g, nil
}
