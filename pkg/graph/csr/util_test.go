package csr

import (
	"slices"
	"strings"
	"testing"

	"github.com/neurograph/neurograph/pkg/graph"
)

// ladder builds a 10-node chain for the sampling and range tests.
func ladder(t *testing.T) *Graph {
	t.Helper()
	var edges []graph.Edge
	for i := uint32(0); i < 9; i++ {
		edges = append(edges, graph.Edge{From: i, To: i + 1})
	}
	return build(t, edges)
}

func TestSample(t *testing.T) {
	g := ladder(t)

	t.Run("SizedDraw", func(t *testing.T) {
		sample := g.Sample(4)
		if len(sample) != 4 {
			t.Fatalf("Sample(4) returned %d nodes", len(sample))
		}
		if !slices.IsSorted(sample) {
			t.Errorf("Sample not sorted: %v", sample)
		}
		seen := map[uint32]bool{}
		for _, n := range sample {
			if int(n) >= g.NodeCount() {
				t.Errorf("sampled id %d out of range", n)
			}
			if seen[n] {
				t.Errorf("duplicate id %d in sample", n)
			}
			seen[n] = true
		}
	})

	t.Run("WholeGraph", func(t *testing.T) {
		want := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		if got := g.Sample(10); !slices.Equal(got, want) {
			t.Errorf("Sample(nodeCount) = %v, want all nodes", got)
		}
		if got := g.Sample(1000); !slices.Equal(got, want) {
			t.Errorf("Sample(>nodeCount) = %v, want all nodes", got)
		}
	})

	t.Run("NonPositive", func(t *testing.T) {
		if got := g.Sample(0); len(got) != 0 {
			t.Errorf("Sample(0) = %v, want empty", got)
		}
	})
}

func TestNodesInRange(t *testing.T) {
	g := ladder(t)

	tests := []struct {
		name       string
		start, end uint32
		want       []uint32
	}{
		{name: "Inner", start: 2, end: 5, want: []uint32{2, 3, 4}},
		{name: "ClampedEnd", start: 8, end: 100, want: []uint32{8, 9}},
		{name: "StartPastEnd", start: 7, end: 3, want: []uint32{}},
		{name: "FullyOutOfRange", start: 50, end: 60, want: []uint32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.NodesInRange(tt.start, tt.end)
			if !slices.Equal(got, tt.want) {
				t.Errorf("NodesInRange(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestStats(t *testing.T) {
	g := build(t, []graph.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2}, {From: 2, To: 0}})

	stats := g.Stats()
	for _, want := range []string{
		"Nodes: 3",
		"Edges: 4",
		"Density: 44.44%",
		"Max degree: node 0 (degree 2)",
	} {
		if !strings.Contains(stats, want) {
			t.Errorf("Stats() missing %q:\n%s", want, stats)
		}
	}
}
