package cli

import (
	"context"
	"errors"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/katalvlaran/graphcore/builder"
	"github.com/katalvlaran/graphcore/engine"
)

// openEngine builds an engine from the loaded config and fills it from the
// graph document, if one exists. seed 0 picks a time-based seed.
func (c *CLI) openEngine(ctx context.Context, seed int64) (*engine.Engine, error) {
	logger := loggerFromContext(ctx)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := c.cfg.Random
	e := engine.New(
		engine.WithLogger(logger),
		engine.WithRand(rand.New(rand.NewSource(seed))),
		engine.WithCellWidth(c.cfg.Matrix.CellWidth),
		engine.WithRandomOptions(
			builder.WithIDRange(rc.IDMin, rc.IDMax),
			builder.WithWeightRange(rc.WeightMin, rc.WeightMax),
		),
	)

	if _, err := os.Stat(c.file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no graph document yet, starting empty", "file", c.file)
			return e, nil
		}
		return nil, err
	}
	if err := e.Load(c.file); err != nil {
		return nil, err
	}

	return e, nil
}

// save writes the engine's graph back to the document.
func (c *CLI) save(e *engine.Engine) error {
	return e.Save(c.file)
}
