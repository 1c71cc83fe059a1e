// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/graphcore/builder"
	"github.com/katalvlaran/graphcore/matrix"
)

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger sets the activity logger. A nil logger keeps the default,
// which discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRand sets the RNG used by RandomEdge. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("engine: WithRand(nil)")
	}

	return func(e *Engine) { e.rng = r }
}

// WithRandomOptions passes range options (builder.WithIDRange,
// builder.WithWeightRange) to every RandomEdge draw.
func WithRandomOptions(opts ...builder.BuilderOption) Option {
	return func(e *Engine) { e.randomOpts = append(e.randomOpts, opts...) }
}

// WithCellWidth sets the minimum cell width of AdjacencyMatrixText.
// Panics if w < 1.
func WithCellWidth(w int) Option {
	if w < 1 {
		panic(fmt.Sprintf("engine: WithCellWidth(%d): width must be >= 1", w))
	}

	return func(e *Engine) { e.textOpts = append(e.textOpts, matrix.WithCellWidth(w)) }
}
