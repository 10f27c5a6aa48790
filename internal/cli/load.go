package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/neurograph/neurograph/pkg/graph/csr"
)

// loadGraph reads the edge list at path into a fresh CSR graph, showing a
// spinner on stderr while the file is parsed. The engine's progress output
// goes to the context logger at debug level so it stays quiet unless
// --verbose is set.
func loadGraph(ctx context.Context, cfg *Config, path string) (*csr.Graph, error) {
	logger := loggerFromContext(ctx)

	g := csr.New(
		csr.WithLogger(logger.Debugf),
		csr.WithProgressInterval(cfg.Load.ProgressEvery),
	)

	sp := newSpinnerWithContext(ctx, fmt.Sprintf("Loading %s", path))
	sp.Start()
	track := newProgress(logger)
	err := g.Load(path)
	sp.Stop()

	if err != nil {
		return nil, err
	}
	if sp.Cancelled() {
		return nil, context.Canceled
	}

	track.done(fmt.Sprintf("Loaded %d nodes, %d edges", g.NodeCount(), g.EdgeCount()))
	return g, nil
}

// parseNodeArg converts a positional argument into a node id.
func parseNodeArg(arg, name string) (uint32, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be an unsigned node id, got %q", name, arg)
	}
	return uint32(id), nil
}
