package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newStatsCmd creates the stats command.
func newStatsCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <edgelist>",
		Short: "Load an edge list and print graph statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}

			best := g.MaxDegreeNode()
			density := 0.0
			if g.NodeCount() > 0 {
				density = float64(g.EdgeCount()) / (float64(g.NodeCount()) * float64(g.NodeCount())) * 100
			}

			fmt.Println(StyleTitle.Render("Graph statistics"))
			printKeyValue("Nodes", fmt.Sprintf("%d", g.NodeCount()))
			printKeyValue("Edges", fmt.Sprintf("%d", g.EdgeCount()))
			printKeyValue("Density", fmt.Sprintf("%.2f%%", density))
			printKeyValue("Memory", fmt.Sprintf("%.2f MB", float64(g.MemoryUsage())/(1024*1024)))
			printKeyValue("Max degree", fmt.Sprintf("node %d (degree %d)", best.Node, best.Degree))
			return nil
		},
	}
}
