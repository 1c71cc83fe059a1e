// Package config loads the optional graphcore.toml file.
//
// Every field has a default, so a missing file is not an error when the
// path was not given explicitly. Unknown keys are rejected to catch typos.
//
//	[graph]
//	file = "graph.json"
//
//	[random]
//	count = 1
//	seed = 0          # 0 picks a time-based seed
//	id_min = 8
//	id_max = 16
//	weight_min = 1
//	weight_max = 20
//
//	[matrix]
//	cell_width = 4
//
//	[log]
//	level = "info"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "graphcore.toml"

// ErrInvalid indicates a config value out of range or an unknown key.
var ErrInvalid = errors.New("config: invalid value")

// Config is the decoded file.
type Config struct {
	Graph  Graph  `toml:"graph"`
	Random Random `toml:"random"`
	Matrix Matrix `toml:"matrix"`
	Log    Log    `toml:"log"`
}

// Graph selects the persisted graph document.
type Graph struct {
	File string `toml:"file"`
}

// Random configures the random-edge action.
type Random struct {
	Count     int   `toml:"count"`
	Seed      int64 `toml:"seed"`
	IDMin     int   `toml:"id_min"`
	IDMax     int   `toml:"id_max"`
	WeightMin int64 `toml:"weight_min"`
	WeightMax int64 `toml:"weight_max"`
}

// Matrix configures adjacency-matrix rendering.
type Matrix struct {
	CellWidth int `toml:"cell_width"`
}

// Log configures the activity logger.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Graph: Graph{File: "graph.json"},
		Random: Random{
			Count:     1,
			IDMin:     8,
			IDMax:     16,
			WeightMin: 1,
			WeightMax: 20,
		},
		Matrix: Matrix{CellWidth: 4},
		Log:    Log{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path means DefaultFile,
// which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges. Errors wrap ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Graph.File == "":
		return fmt.Errorf("%w: graph.file is empty", ErrInvalid)
	case c.Random.Count < 0:
		return fmt.Errorf("%w: random.count=%d < 0", ErrInvalid, c.Random.Count)
	case c.Random.IDMin < 0 || c.Random.IDMin >= c.Random.IDMax:
		return fmt.Errorf("%w: random ids need 0 <= id_min < id_max, got %d..%d",
			ErrInvalid, c.Random.IDMin, c.Random.IDMax)
	case c.Random.WeightMin < 0 || c.Random.WeightMax < c.Random.WeightMin:
		return fmt.Errorf("%w: random weights need 0 <= weight_min <= weight_max, got %d..%d",
			ErrInvalid, c.Random.WeightMin, c.Random.WeightMax)
	case c.Matrix.CellWidth < 1:
		return fmt.Errorf("%w: matrix.cell_width=%d < 1", ErrInvalid, c.Matrix.CellWidth)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// LogLevel parses Log.Level ("debug", "info", "warn", "error", "fatal").
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	return lvl, nil
}
