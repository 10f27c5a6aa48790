package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/neurograph/neurograph/pkg/cache"
	"github.com/neurograph/neurograph/pkg/render"
)

// newExportCmd creates the export command.
func newExportCmd(cfg *Config) *cobra.Command {
	var (
		nodesFlag  string
		sampleSize int
		format     string
		output     string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "export <edgelist>",
		Short: "Visualize an induced subgraph as DOT or SVG",
		Long: `Export extracts the subgraph induced by a node subset and writes it as
Graphviz DOT or rendered SVG. The subset comes from --nodes or from a
uniform random sample (--sample). SVG artifacts are cached by graph
fingerprint and node set, so re-exporting an unchanged selection is free.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "dot" && format != "svg" {
				return fmt.Errorf("format must be dot or svg, got %q", format)
			}
			if nodesFlag == "" && sampleSize <= 0 {
				return fmt.Errorf("either --nodes or --sample is required")
			}

			g, err := loadGraph(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}

			var nodes []uint32
			if nodesFlag != "" {
				nodes, err = parseNodeList(nodesFlag)
				if err != nil {
					return err
				}
			} else {
				nodes = g.Sample(sampleSize)
			}

			edges := g.SubgraphEdges(nodes)
			degrees := make(map[uint32]int, len(nodes))
			for _, n := range nodes {
				degrees[n] = g.OutDegree(n)
			}

			dot := render.ToDOT(edges, render.Options{
				Degrees: degrees,
				Label:   fmt.Sprintf("%d nodes, %d edges", len(nodes), len(edges)),
			})

			if format == "dot" {
				if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				printSuccess("exported %d edges", len(edges))
				printGraphLine(len(nodes), len(edges), false)
				printFile(output)
				return nil
			}

			svg, cached, err := renderCached(cmd.Context(), cfg, args[0], nodes, dot, noCache)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, svg, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("exported %d edges", len(edges))
			printGraphLine(len(nodes), len(edges), cached)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVar(&nodesFlag, "nodes", "", "comma-separated node ids to include")
	cmd.Flags().IntVar(&sampleSize, "sample", 0, "sample this many random nodes instead of --nodes")
	cmd.Flags().StringVar(&format, "format", "svg", "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "graph.svg", "output file path")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the artifact cache")
	return cmd
}

// renderCached renders dot to SVG, consulting the artifact cache keyed by
// the edge-list fingerprint and node subset. Returns whether the artifact
// came from cache.
func renderCached(ctx context.Context, cfg *Config, edgelistPath string, nodes []uint32, dot string, noCache bool) ([]byte, bool, error) {
	store := newArtifactCache(cfg, noCache)
	defer store.Close()

	key := cache.ArtifactKey(fingerprint(edgelistPath), cache.ArtifactKeyOpts{
		Nodes:  nodes,
		Format: "svg",
	})

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	svg, err := render.RenderSVG(dot)
	if err != nil {
		return nil, false, err
	}
	_ = store.Set(ctx, key, svg, time.Duration(cfg.Export.CacheTTL))
	return svg, false, nil
}

// newArtifactCache picks the cache backend from config; failures to set
// up the directory degrade to no caching rather than failing the export.
func newArtifactCache(cfg *Config, noCache bool) cache.Cache {
	if noCache || cfg.Export.CacheDir == "" {
		return cache.NewNullCache()
	}
	store, err := cache.NewFileCache(cfg.Export.CacheDir)
	if err != nil {
		return cache.NewNullCache()
	}
	return store
}

// fingerprint identifies an edge-list file by its path, size, and
// modification time. Re-exports hit the cache until the file changes.
func fingerprint(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return cache.Hash([]byte(path))
	}
	return cache.Hash([]byte(fmt.Sprintf("%s|%d|%d", filepath.Clean(path), info.Size(), info.ModTime().UnixNano())))
}

// parseNodeList parses a comma-separated node id list.
func parseNodeList(s string) ([]uint32, error) {
	parts := strings.Split(s, ",")
	nodes := make([]uint32, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid node id %q in --nodes", part)
		}
		nodes = append(nodes, uint32(id))
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("--nodes must name at least one node")
	}
	return nodes, nil
}
