// Package render turns induced subgraphs into Graphviz DOT and SVG.
//
// The engine itself never draws anything; this package is the
// visualization collaborator that takes an edge set extracted with
// SubgraphEdges (typically over a random sample of a large graph) and
// produces something a human can look at.
package render

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/goccy/go-graphviz"

	"github.com/neurograph/neurograph/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Degrees, when non-nil, maps node ids to out-degrees; nodes are
	// shaded darker the better connected they are, mirroring how large
	// hubs stand out in the graph.
	Degrees map[uint32]int

	// Label is the graph-level caption. Empty means no caption.
	Label string
}

// ToDOT renders an induced subgraph as Graphviz DOT. Node statements
// come out sorted by id and edge statements in input order, so output is
// deterministic for identical inputs. Nodes that only appear as isolated
// members of the subset are not drawn; the edge set defines the picture.
func ToDOT(edges []graph.Edge, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph neurograph {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	if opts.Label != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Label)
	}
	buf.WriteString("\n")

	maxDegree := 0
	for _, d := range opts.Degrees {
		if d > maxDegree {
			maxDegree = d
		}
	}

	for _, n := range nodeIDs(edges) {
		attrs := fmt.Sprintf("label=\"%d\"", n)
		if d, ok := opts.Degrees[n]; ok && maxDegree > 0 {
			attrs += fmt.Sprintf(", fillcolor=\"%s\"", degreeColor(d, maxDegree))
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", n, attrs)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %d -> %d;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeIDs collects the distinct endpoints of edges in ascending order.
func nodeIDs(edges []graph.Edge) []uint32 {
	seen := make(map[uint32]struct{}, len(edges)*2)
	for _, e := range edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}
	ids := make([]uint32, 0, len(seen))
	for n := range seen {
		ids = append(ids, n)
	}
	slices.Sort(ids)
	return ids
}

// degreeColor maps a degree onto a white→red ramp relative to the
// highest degree in the picture.
func degreeColor(degree, maxDegree int) string {
	t := float64(degree) / float64(maxDegree)
	r := 255
	gb := int(255 * (1 - t*0.75))
	return fmt.Sprintf("#%02x%02x%02x", r, gb, gb)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
