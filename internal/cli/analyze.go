package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newTopCmd creates the top command.
func newTopCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "top <edgelist> <k>",
		Short: "Top-K nodes ranked by out-degree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[1])
			if err != nil || k < 0 {
				return fmt.Errorf("k must be a non-negative integer, got %q", args[1])
			}
			g, err := loadGraph(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}

			ranked := g.TopK(k)
			if len(ranked) == 0 {
				printInfo("no nodes with outgoing edges")
				return nil
			}
			for i, d := range ranked {
				fmt.Println(StyleDim.Render(fmt.Sprintf("%3d.", i+1)) +
					StyleNumber.Render(fmt.Sprintf(" %8d", d.Node)) +
					StyleDim.Render(fmt.Sprintf("  degree %d", d.Degree)))
			}
			return nil
		},
	}
}

// newSampleCmd creates the sample command.
func newSampleCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sample <edgelist> <n>",
		Short: "Draw a uniform random sample of node ids",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil || n <= 0 {
				return fmt.Errorf("n must be a positive integer, got %q", args[1])
			}
			g, err := loadGraph(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}

			sample := g.Sample(n)
			fmt.Println(formatNodes(sample))
			printInfo("%d of %d nodes", len(sample), g.NodeCount())
			return nil
		},
	}
}
