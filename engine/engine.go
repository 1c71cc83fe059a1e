// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Engine construction, mutation and persistence.

package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/graphcore/builder"
	"github.com/katalvlaran/graphcore/core"
	"github.com/katalvlaran/graphcore/matrix"
	"github.com/katalvlaran/graphcore/nodelink"
)

// ErrInvalidWeight indicates a weight that is not a base-10 integer.
var ErrInvalidWeight = errors.New("engine: weight must be an integer")

// Engine owns the current graph. The zero value is not usable; call New.
type Engine struct {
	g          *core.Graph
	log        *log.Logger
	rng        *rand.Rand
	randomOpts []builder.BuilderOption
	textOpts   []matrix.TextOption
}

// New returns an Engine holding an empty graph.
func New(opts ...Option) *Engine {
	e := &Engine{
		g:   core.NewGraph(),
		log: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return e
}

// Graph returns an independent snapshot of the current graph.
func (e *Engine) Graph() *core.Graph { return e.g.Clone() }

// NodeCount returns the number of nodes.
func (e *Engine) NodeCount() int { return e.g.NodeCount() }

// EdgeCount returns the number of edges.
func (e *Engine) EdgeCount() int { return e.g.EdgeCount() }

// HasNode reports whether label names a node of the graph.
func (e *Engine) HasNode(label string) bool {
	_, ok := e.g.Lookup(label)

	return ok
}

// UpsertEdge inserts or re-weights {u,v} and returns the connection
// description. Empty ids and self-loops are rejected before any mutation.
func (e *Engine) UpsertEdge(u, v string, w int64) (string, error) {
	desc, err := e.g.UpsertEdge(u, v, w)
	if err != nil {
		e.log.Debug("upsert rejected", "u", u, "v", v, "weight", w, "err", err)

		return "", err
	}
	e.log.Debug(desc)

	return desc, nil
}

// UpsertEdgeText is UpsertEdge for raw text input: weight must be a base-10
// integer (surrounding spaces allowed), otherwise ErrInvalidWeight is
// returned and the graph is untouched.
func (e *Engine) UpsertEdgeText(u, v, weight string) (string, error) {
	w, err := strconv.ParseInt(strings.TrimSpace(weight), 10, 64)
	if err != nil {
		e.log.Debug("upsert rejected", "u", u, "v", v, "weight", weight)

		return "", fmt.Errorf("%w: %q", ErrInvalidWeight, weight)
	}

	return e.UpsertEdge(u, v, w)
}

// AddNode inserts an isolated node; existing nodes are left as they are.
func (e *Engine) AddNode(label string) error {
	if err := e.g.AddNode(label); err != nil {
		return err
	}
	e.log.Debug("node added", "id", label)

	return nil
}

// RandomEdge upserts one random edge (ids 8..16, weight 1..20 unless
// configured with WithRandomOptions) and returns its description.
func (e *Engine) RandomEdge() (string, error) {
	u, v, w, err := builder.RandomEdge(e.rng, e.randomOpts...)
	if err != nil {
		return "", err
	}

	return e.UpsertEdge(u, v, w)
}

// Clear empties the graph.
func (e *Engine) Clear() {
	e.g.Clear()
	e.log.Debug("graph cleared")
}

// ToPersisted captures the current graph as a node-link record.
func (e *Engine) ToPersisted() nodelink.Record { return nodelink.ToRecord(e.g) }

// FromPersisted replaces the graph with the one described by rec. On error
// (wrapping nodelink.ErrMalformed) the previous graph is kept.
func (e *Engine) FromPersisted(rec nodelink.Record) error {
	g, err := nodelink.FromRecord(rec)
	if err != nil {
		e.log.Debug("load rejected", "err", err)

		return err
	}
	e.replace(g)

	return nil
}

// Save writes the graph to path; the codec follows the extension.
func (e *Engine) Save(path string) error {
	if err := nodelink.Save(path, e.g); err != nil {
		return err
	}
	e.log.Debug("graph saved", "path", path, "nodes", e.g.NodeCount(), "edges", e.g.EdgeCount())

	return nil
}

// Load replaces the graph with the one stored at path. On error the
// previous graph is kept.
func (e *Engine) Load(path string) error {
	g, err := nodelink.Load(path)
	if err != nil {
		e.log.Debug("load rejected", "path", path, "err", err)

		return err
	}
	e.replace(g)
	e.log.Debug("graph loaded", "path", path)

	return nil
}

func (e *Engine) replace(g *core.Graph) {
	e.g = g
	e.log.Debug("graph replaced", "nodes", g.NodeCount(), "edges", g.EdgeCount())
}
