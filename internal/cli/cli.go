// Package cli implements the graphcore command-line interface.
//
// Every command opens the graph document named by --file (or graph.file in
// graphcore.toml), runs one engine action and, for editing commands, writes
// the document back. A missing document starts an empty graph.
//
// # Commands
//
//   - add-edge, add-node, random, clear: edit the graph and save it
//   - path, mst, bfs, dfs, color: run an algorithm
//   - metrics, matrix: print the text views
//   - export: re-encode the document as JSON or YAML
//
// # Logging
//
// Engine activity is logged at debug level; --verbose (-v) or log.level in
// the config file turns it on. The logger travels on the command context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphcore/internal/config"
)

const appName = "graphcore"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version, set via SetVersion
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds state shared by all commands of one invocation.
type CLI struct {
	Logger *log.Logger

	file       string
	configPath string
	verbose    bool
	cfg        config.Config
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), cfg: config.Default()}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "graphcore edits and analyzes weighted undirected graphs",
		Long:              `graphcore keeps a weighted undirected graph in a node-link JSON or YAML file and runs shortest paths, spanning forests, traversals, coloring and summary metrics over it.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate(appName + " {{.Version}}\ncommit: " + commit + "\nbuilt: " + date + "\n")

	flags := root.PersistentFlags()
	flags.StringVar(&c.file, "file", c.cfg.Graph.File, "graph document (.json, .yaml or .yml)")
	flags.StringVar(&c.configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.addEdgeCommand())
	root.AddCommand(c.addNodeCommand())
	root.AddCommand(c.randomCommand())
	root.AddCommand(c.clearCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.mstCommand())
	root.AddCommand(c.traversalCommand("bfs", "Breadth-first discovery edges from SOURCE"))
	root.AddCommand(c.traversalCommand("dfs", "Depth-first discovery edges from SOURCE"))
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.metricsCommand())
	root.AddCommand(c.matrixCommand())

	return root
}

// setup loads the config, applies flag overrides and attaches the logger
// to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("file") {
		c.file = cfg.Graph.File
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.Logger.SetLevel(level)
	c.cfg = cfg

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("config loaded", "file", c.file, "config", c.configPath)

	return nil
}
