package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newDegreeCmd creates the degree command.
func newDegreeCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "degree <edgelist> <node>",
		Short: "Print the out- and in-degree of a node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := parseNodeArg(args[1], "node")
			if err != nil {
				return err
			}
			g, err := loadGraph(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}

			printKeyValue("Node", fmt.Sprintf("%d", node))
			printKeyValue("Out-degree", fmt.Sprintf("%d", g.OutDegree(node)))
			printKeyValue("In-degree", fmt.Sprintf("%d", g.InDegree(node)))
			return nil
		},
	}
}

// newNeighborsCmd creates the neighbors command.
func newNeighborsCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <edgelist> <node>",
		Short: "List the destinations of a node's outgoing edges",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := parseNodeArg(args[1], "node")
			if err != nil {
				return err
			}
			g, err := loadGraph(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}

			nbrs := g.Neighbors(node)
			if len(nbrs) == 0 {
				printInfo("node %d has no outgoing edges", node)
				return nil
			}
			fmt.Println(StyleNumber.Render(fmt.Sprintf("%d", node)) + " " + StyleDim.Render(iconArrow) + " " + formatNodes(nbrs))
			return nil
		},
	}
}

// newEdgeCmd creates the edge command.
func newEdgeCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "edge <edgelist> <from> <to>",
		Short: "Test whether a directed edge exists",
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

			if g.HasEdge(from, to) {
				printSuccess("edge %d %s %d exists", from, iconArrow, to)
			} else {
				printError("edge %d %s %d does not exist", from, iconArrow, to)
			}
			return nil
		},
	}
}

// formatNodes renders a node id list as a space-separated string.
func formatNodes(nodes []uint32) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return StyleValue.Render(strings.Join(parts, " "))
}
