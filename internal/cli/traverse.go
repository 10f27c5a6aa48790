package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newBFSCmd creates the bfs command.
func newBFSCmd(cfg *Config) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "bfs <edgelist> <start>",
		Short: "Breadth-first traversal from a start node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseNodeArg(args[1], "start")
			if err != nil {
				return err
			}
			g, err := loadGraph(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}

			visits := g.BFS(start, maxDepth)
			if len(visits) == 0 {
				printInfo("node %d is not in the graph", start)
				return nil
			}
			for _, v := range visits {
				fmt.Println(StyleNumber.Render(fmt.Sprintf("%8d", v.Node)) + StyleDim.Render(fmt.Sprintf("  depth %d", v.Depth)))
			}
			printInfo("%d nodes visited", len(visits))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "depth limit (negative means unbounded)")
	return cmd
}

// newDFSCmd creates the dfs command.
func newDFSCmd(cfg *Config) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "dfs <edgelist> <start>",
		Short: "Depth-first traversal from a start node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseNodeArg(args[1], "start")
			if err != nil {
				return err
			}
			g, err := loadGraph(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}

			order := g.DFS(start, maxDepth)
			if len(order) == 0 {
				printInfo("node %d is not in the graph", start)
				return nil
			}
			fmt.Println(formatNodes(order))
			printInfo("%d nodes visited", len(order))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "depth limit (negative means unbounded)")
	return cmd
}

// newPathCmd creates the path command.
func newPathCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "path <edgelist> <from> <to>",
		Short: "Shortest hop path between two nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseNodeArg(args[1], "from")
			if err != nil {
				return err
			}
			to, err := parseNodeArg(args[2], "to")
			if err != nil {
				return err
			}
			g, err := loadGraph(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}

			path := g.ShortestPath(from, to)
			if len(path) == 0 {
				printError("no path from %d to %d", from, to)
				return nil
			}
			for i, node := range path {
				if i > 0 {
					fmt.Print(StyleDim.Render(" " + iconArrow + " "))
				}
				fmt.Print(StyleNumber.Render(fmt.Sprintf("%d", node)))
			}
			fmt.Println()
			printInfo("%d hops", len(path)-1)
			return nil
		},
	}
}
