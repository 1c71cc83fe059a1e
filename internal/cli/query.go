package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphcore/coloring"
	"github.com/katalvlaran/graphcore/core"
	"github.com/katalvlaran/graphcore/dijkstra"
	"github.com/katalvlaran/graphcore/metrics"
	"github.com/katalvlaran/graphcore/prim_kruskal"
)

// noPathText is shown for both dijkstra.NotFound and dijkstra.NoPath.
const noPathText = "No path available"

func (c *CLI) pathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path SOURCE TARGET",
		Short: "Shortest path between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.openEngine(cmd.Context(), c.cfg.Random.Seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			res := e.ShortestPath(args[0], args[1])
			if res.Outcome != dijkstra.Found {
				printInfo(out, "%s (%s)", noPathText, res.Outcome)
				return nil
			}
			printTitle(out, "Shortest path")
			printLine(out, "%s", joinNodes(res.Path, " "+iconArrow+" "))
			printKeyValue(out, "Cost", StyleNumber.Render(strconv.FormatInt(res.Cost, 10)))

			return nil
		},
	}
}

func (c *CLI) mstCommand() *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning forest",
		Long:  `Minimum spanning forest: one tree per connected component, listed in discovery order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := c.openEngine(cmd.Context(), c.cfg.Random.Seed)
			if err != nil {
				return err
			}
			edges, total, err := e.SpanningForest(method)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printTitle(out, "Minimum spanning forest")
			for _, ed := range edges {
				printLine(out, "%s - %s (%d)", ed.U, ed.V, ed.Weight)
			}
			printKeyValue(out, "Total weight", StyleNumber.Render(strconv.FormatInt(total, 10)))

			return nil
		},
	}
	cmd.Flags().StringVar(&method, "algorithm", prim_kruskal.MethodPrim, "prim or kruskal")

	return cmd
}

func (c *CLI) traversalCommand(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " SOURCE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.openEngine(cmd.Context(), c.cfg.Random.Seed)
			if err != nil {
				return err
			}
			walk := e.BFSEdges
			if name == "dfs" {
				walk = e.DFSEdges
			}
			pairs := walk(args[0])
			out := cmd.OutOrStdout()
			if len(pairs) == 0 {
				printInfo(out, "No edges discovered from %s", args[0])
				return nil
			}
			printTitle(out, strings.ToUpper(name)+" from "+args[0])
			for _, p := range pairs {
				printLine(out, "%s %s %s", p.From, iconArrow, p.To)
			}

			return nil
		},
	}
}

func (c *CLI) colorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "color",
		Short: "Greedy vertex coloring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := c.openEngine(cmd.Context(), c.cfg.Random.Seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if e.NodeCount() == 0 {
				printInfo(out, "%s", metrics.EmptyText)
				return nil
			}
			colors := e.GreedyColor()
			printTitle(out, "Greedy coloring")
			for _, n := range e.Graph().NodesSortedForDisplay() {
				printLine(out, "%s: %d", n, colors[n])
			}
			printKeyValue(out, "Colors", StyleNumber.Render(strconv.Itoa(coloring.Count(colors))))

			return nil
		},
	}
}

func (c *CLI) metricsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Graph summary metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := c.openEngine(cmd.Context(), c.cfg.Random.Seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printTitle(out, "Graph metrics")
			fmt.Fprintln(out, e.SummaryMetrics())

			return nil
		},
	}
}

func (c *CLI) matrixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Adjacency matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := c.openEngine(cmd.Context(), c.cfg.Random.Seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			text := e.AdjacencyMatrixText()
			if text == "" {
				printInfo(out, "%s", metrics.EmptyText)
				return nil
			}
			fmt.Fprintln(out, text)

			return nil
		},
	}
}

// joinNodes renders ids separated by sep.
func joinNodes(ids []core.NodeID, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, sep)
}
