package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) addEdgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-edge U V WEIGHT",
		Short: "Insert or update the edge U-V and save",
		Long:  `Insert or update the undirected edge U-V with an integer weight. Missing nodes are created; an existing edge gets the new weight.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.openEngine(cmd.Context(), c.cfg.Random.Seed)
			if err != nil {
				return err
			}
			msg, err := e.UpsertEdgeText(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if err = c.save(e); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "%s", msg)

			return nil
		},
	}
}

func (c *CLI) addNodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-node ID",
		Short: "Insert an isolated node and save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.openEngine(cmd.Context(), c.cfg.Random.Seed)
			if err != nil {
				return err
			}
			if err = e.AddNode(args[0]); err != nil {
				return err
			}
			if err = c.save(e); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Node: [%s]", args[0])

			return nil
		},
	}
}

func (c *CLI) randomCommand() *cobra.Command {
	var (
		count int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Insert random edges and save",
		Long:  `Insert random edges between distinct integer ids. The id range and weight range come from the [random] config section.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("count") {
				count = c.cfg.Random.Count
			}
			if !cmd.Flags().Changed("seed") {
				seed = c.cfg.Random.Seed
			}
			e, err := c.openEngine(cmd.Context(), seed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			msgs := make([]string, 0, count)
			for range count {
				msg, err := e.RandomEdge()
				if err != nil {
					return err
				}
				msgs = append(msgs, msg)
			}
			if err = c.save(e); err != nil {
				return err
			}
			for _, msg := range msgs {
				printSuccess(out, "%s", msg)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of edges")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")

	return cmd
}

func (c *CLI) clearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every node and edge and save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := c.openEngine(cmd.Context(), c.cfg.Random.Seed)
			if err != nil {
				return err
			}
			e.Clear()
			if err = c.save(e); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Graph cleared")

			return nil
		},
	}
}

func (c *CLI) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export OUT",
		Short: "Write the graph to OUT (.json, .yaml or .yml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.openEngine(cmd.Context(), c.cfg.Random.Seed)
			if err != nil {
				return err
			}
			if err = e.Save(args[0]); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Exported %d nodes, %d edges", e.NodeCount(), e.EdgeCount())
			printFile(out, args[0])

			return nil
		},
	}
}
