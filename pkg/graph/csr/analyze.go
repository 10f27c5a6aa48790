package csr

import (
	"cmp"
	"slices"

	"github.com/neurograph/neurograph/pkg/graph"
)

// MaxDegreeNode returns the node with the highest out-degree. The scan
// uses a strict comparison, so ties resolve to the lowest node id. An
// empty graph yields the zero Degree.
func (g *Graph) MaxDegreeNode() graph.Degree {
	var best graph.Degree
	for i := 0; i < g.nodeCount; i++ {
		if d := int(g.rowOffsets[i+1] - g.rowOffsets[i]); d > best.Degree {
			best = graph.Degree{Node: uint32(i), Degree: d}
		}
	}
	return best
}

// TopK returns up to k nodes ranked by out-degree descending. Only nodes
// with at least one outgoing edge qualify; fewer than k entries come back
// when fewer qualify. Equal degrees order by ascending node id, so the
// result is deterministic.
func (g *Graph) TopK(k int) []graph.Degree {
	if k <= 0 {
		return nil
	}

	var ranked []graph.Degree
	for i := 0; i < g.nodeCount; i++ {
		if d := int(g.rowOffsets[i+1] - g.rowOffsets[i]); d > 0 {
			ranked = append(ranked, graph.Degree{Node: uint32(i), Degree: d})
		}
	}

	slices.SortFunc(ranked, func(a, b graph.Degree) int {
		if c := cmp.Compare(b.Degree, a.Degree); c != 0 {
			return c
		}
		return cmp.Compare(a.Node, b.Node)
	})

	if k < len(ranked) {
		ranked = ranked[:k:k]
	}
	return ranked
}

// SubgraphEdges returns every edge of the subgraph induced by nodes: the
// pairs (origin, neighbor) where both endpoints belong to the subset.
// Membership testing uses a set built from the subset. Out-of-range ids
// are silently skipped, and duplicate ids in the input do not duplicate
// output edges. Edges appear grouped by origin in input order, neighbors
// ascending within each origin.
func (g *Graph) SubgraphEdges(nodes []uint32) []graph.Edge {
	members := make(map[uint32]struct{}, len(nodes))
	for _, n := range nodes {
		if int(n) < g.nodeCount {
			members[n] = struct{}{}
		}
	}

	var edges []graph.Edge
	seen := make(map[uint32]struct{}, len(members))
	for _, n := range nodes {
		if int(n) >= g.nodeCount {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}

		for _, nbr := range g.row(n) {
			if _, ok := members[nbr]; ok {
				edges = append(edges, graph.Edge{From: n, To: nbr})
			}
		}
	}
	return edges
}
