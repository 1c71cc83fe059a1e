// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// api.go - the BuildGraph orchestrator and shared constructor plumbing.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors, and emit nodes and edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts the labels in order.
func addNodes(g *core.Graph, method string, ids []string) error {
	for _, id := range ids {
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}

// addEdge upserts {u,v} with weight w.
func addEdge(g *core.Graph, method, u, v string, w int64) error {
	if _, err := g.UpsertEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: UpsertEdge(%s-%s, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}

// makeIDs renders n labels with cfg.idFn.
func makeIDs(cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
	}

	return ids
}
