package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/neurograph/neurograph/pkg/buildinfo"
)

// Execute runs the neurograph CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, loads the optional TOML config named
// by --config, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
		cfg        = defaultConfig()
	)

	root := &cobra.Command{
		Use:          "neurograph",
		Short:        "NeuroGraph answers structural queries over large directed graphs",
		Long:         `NeuroGraph loads plain-text edge lists into a compressed sparse row layout and answers degree, adjacency, traversal, and ranking queries over the frozen graph.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))

			loaded, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")

	root.AddCommand(newStatsCmd(&cfg))
	root.AddCommand(newDegreeCmd(&cfg))
	root.AddCommand(newNeighborsCmd(&cfg))
	root.AddCommand(newEdgeCmd(&cfg))
	root.AddCommand(newBFSCmd(&cfg))
	root.AddCommand(newDFSCmd(&cfg))
	root.AddCommand(newPathCmd(&cfg))
	root.AddCommand(newTopCmd(&cfg))
	root.AddCommand(newSampleCmd(&cfg))
	root.AddCommand(newExportCmd(&cfg))
	root.AddCommand(newServeCmd(&cfg))

	return root.ExecuteContext(ctx)
}
