package csr

import (
	"slices"
	"testing"

	"github.com/neurograph/neurograph/pkg/graph"
)

// diamond: 0→{1,2}, 1→3, 2→3, 3→4.
var diamond = []graph.Edge{
	{From: 0, To: 1}, {From: 0, To: 2},
	{From: 1, To: 3}, {From: 2, To: 3},
	{From: 3, To: 4},
}

func TestBFS(t *testing.T) {
	scenario := []graph.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2}, {From: 2, To: 0}}

	tests := []struct {
		name     string
		edges    []graph.Edge
		start    uint32
		maxDepth int
		want     []graph.Visit
	}{
		{
			name:     "Scenario",
			edges:    scenario,
			start:    0,
			maxDepth: -1,
			want:     []graph.Visit{{Node: 0, Depth: 0}, {Node: 1, Depth: 1}, {Node: 2, Depth: 1}},
		},
		{
			name:     "Diamond",
			edges:    diamond,
			start:    0,
			maxDepth: -1,
			want: []graph.Visit{
				{Node: 0, Depth: 0}, {Node: 1, Depth: 1}, {Node: 2, Depth: 1},
				{Node: 3, Depth: 2}, {Node: 4, Depth: 3},
			},
		},
		{
			name:     "DepthZeroOnlyStart",
			edges:    diamond,
			start:    0,
			maxDepth: 0,
			want:     []graph.Visit{{Node: 0, Depth: 0}},
		},
		{
			name:     "DepthLimitEmitsButDoesNotExpand",
			edges:    diamond,
			start:    0,
			maxDepth: 1,
			want:     []graph.Visit{{Node: 0, Depth: 0}, {Node: 1, Depth: 1}, {Node: 2, Depth: 1}},
		},
		{
			name:     "StartOutOfRange",
			edges:    diamond,
			start:    999,
			maxDepth: -1,
			want:     nil,
		},
		{
			name:     "IsolatedTail",
			edges:    []graph.Edge{{From: 0, To: 1}, {From: 2, To: 3}},
			start:    0,
			maxDepth: -1,
			want:     []graph.Visit{{Node: 0, Depth: 0}, {Node: 1, Depth: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.edges)
			got := g.BFS(tt.start, tt.maxDepth)
			if !slices.Equal(got, tt.want) {
				t.Errorf("BFS(%d, %d) = %v, want %v", tt.start, tt.maxDepth, got, tt.want)
			}
		})
	}
}

func TestBFSVisitsReachableOnce(t *testing.T) {
	// Two routes into every node; nothing may be reported twice.
	g := build(t, []graph.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2},
		{From: 2, To: 3}, {From: 1, To: 3}, {From: 3, To: 0},
	})

	seen := map[uint32]int{}
	for _, v := range g.BFS(0, -1) {
		seen[v.Node]++
	}
	for node, count := range seen {
		if count != 1 {
			t.Errorf("node %d visited %d times", node, count)
		}
	}
	if len(seen) != 4 {
		t.Errorf("visited %d nodes, want 4", len(seen))
	}
}

func TestDFS(t *testing.T) {
	tests := []struct {
		name     string
		edges    []graph.Edge
		start    uint32
		maxDepth int
		want     []uint32
	}{
		{
			// Ascending expansion: the smallest neighbor is explored to
			// exhaustion before its siblings.
			name:     "AscendingExpansion",
			edges:    diamond,
			start:    0,
			maxDepth: -1,
			want:     []uint32{0, 1, 3, 4, 2},
		},
		{
			name:     "DepthZeroOnlyStart",
			edges:    diamond,
			start:    0,
			maxDepth: 0,
			want:     []uint32{0},
		},
		{
			name:     "DepthLimited",
			edges:    diamond,
			start:    0,
			maxDepth: 1,
			want:     []uint32{0, 1, 2},
		},
		{
			name:     "StartOutOfRange",
			edges:    diamond,
			start:    42,
			maxDepth: -1,
			want:     nil,
		},
		{
			name:     "Cycle",
			edges:    []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}},
			start:    1,
			maxDepth: -1,
			want:     []uint32{1, 2, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.edges)
			got := g.DFS(tt.start, tt.maxDepth)
			if !slices.Equal(got, tt.want) {
				t.Errorf("DFS(%d, %d) = %v, want %v", tt.start, tt.maxDepth, got, tt.want)
			}
		})
	}
}

func TestShortestPath(t *testing.T) {
	scenario := []graph.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2}, {From: 2, To: 0}}

	tests := []struct {
		name  string
		edges []graph.Edge
		from  uint32
		to    uint32
		want  []uint32
	}{
		{
			name:  "Scenario",
			edges: scenario,
			from:  1,
			to:    0,
			want:  []uint32{1, 2, 0},
		},
		{
			name:  "SameNode",
			edges: scenario,
			from:  2,
			to:    2,
			want:  []uint32{2},
		},
		{
			name:  "DirectEdge",
			edges: scenario,
			from:  0,
			to:    2,
			want:  []uint32{0, 2},
		},
		{
			name:  "Unreachable",
			edges: []graph.Edge{{From: 0, To: 1}, {From: 2, To: 3}},
			from:  0,
			to:    3,
			want:  nil,
		},
		{
			name:  "FromOutOfRange",
			edges: scenario,
			from:  99,
			to:    0,
			want:  nil,
		},
		{
			name:  "ToOutOfRange",
			edges: scenario,
			from:  0,
			to:    99,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.edges)
			got := g.ShortestPath(tt.from, tt.to)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ShortestPath(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestShortestPathMatchesBFSDepth(t *testing.T) {
	// Deterministic mesh: every node links to (i+1)%n and (i*2+1)%n.
	const n = 50
	var edges []graph.Edge
	for i := uint32(0); i < n; i++ {
		edges = append(edges, graph.Edge{From: i, To: (i + 1) % n})
		edges = append(edges, graph.Edge{From: i, To: (i*2 + 1) % n})
	}
	g := build(t, edges)

	for _, v := range g.BFS(0, -1) {
		path := g.ShortestPath(0, v.Node)
		if len(path) == 0 {
			t.Fatalf("ShortestPath(0, %d) empty for BFS-reachable node", v.Node)
		}
		if hops := len(path) - 1; hops != v.Depth {
			t.Errorf("path length to %d = %d hops, BFS depth = %d", v.Node, hops, v.Depth)
		}
		// The path must follow actual edges.
		for i := 0; i+1 < len(path); i++ {
			if !g.HasEdge(path[i], path[i+1]) {
				t.Errorf("path to %d uses missing edge %d→%d", v.Node, path[i], path[i+1])
			}
		}
	}
}
