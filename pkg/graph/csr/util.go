package csr

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Sample returns n distinct node ids drawn uniformly at random, sorted
// ascending. When n is at least the node count, every node is returned.
// This exists for visualizing manageable slices of very large graphs.
func (g *Graph) Sample(n int) []uint32 {
	if n <= 0 || g.nodeCount == 0 {
		return nil
	}
	if n >= g.nodeCount {
		all := make([]uint32, g.nodeCount)
		for i := range all {
			all[i] = uint32(i)
		}
		return all
	}

	picked := make(map[uint32]struct{}, n)
	for len(picked) < n {
		picked[rand.Uint32N(uint32(g.nodeCount))] = struct{}{}
	}

	sample := make([]uint32, 0, n)
	for node := range picked {
		sample = append(sample, node)
	}
	slices.Sort(sample)
	return sample
}

// NodesInRange returns the node ids in the half-open interval
// [start, end), clamped to the id space.
func (g *Graph) NodesInRange(start, end uint32) []uint32 {
	if end > uint32(g.nodeCount) {
		end = uint32(g.nodeCount)
	}
	if start > end {
		start = end
	}

	nodes := make([]uint32, 0, end-start)
	for i := start; i < end; i++ {
		nodes = append(nodes, i)
	}
	return nodes
}

// Stats returns a human-readable multi-line summary of the loaded graph:
// counts, density, memory footprint, and the best-connected node.
func (g *Graph) Stats() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Nodes: %d\n", g.nodeCount)
	fmt.Fprintf(&b, "Edges: %d\n", g.edgeCount)

	density := 0.0
	if g.nodeCount > 0 {
		density = float64(g.edgeCount) / (float64(g.nodeCount) * float64(g.nodeCount)) * 100
	}
	fmt.Fprintf(&b, "Density: %.2f%%\n", density)
	fmt.Fprintf(&b, "Memory: %.2f MB\n", float64(g.MemoryUsage())/(1024*1024))

	if g.nodeCount > 0 {
		best := g.MaxDegreeNode()
		fmt.Fprintf(&b, "Max degree: node %d (degree %d)\n", best.Node, best.Degree)
	}
	return b.String()
}
