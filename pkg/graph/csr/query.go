package csr

import "slices"

// OutDegree returns the number of edges leaving node, 0 if absent.
func (g *Graph) OutDegree(node uint32) int {
	if int(node) >= g.nodeCount {
		return 0
	}
	return int(g.rowOffsets[node+1] - g.rowOffsets[node])
}

// InDegree returns the number of edges entering node, 0 if absent.
func (g *Graph) InDegree(node uint32) int {
	if int(node) >= g.nodeCount {
		return 0
	}
	return int(g.inDegree[node])
}

// Neighbors returns node's destinations in ascending order. The result is
// a fresh slice; it never aliases the internal arrays. Absent and
// isolated nodes both yield an empty slice.
func (g *Graph) Neighbors(node uint32) []uint32 {
	if int(node) >= g.nodeCount {
		return nil
	}
	return slices.Clone(g.row(node))
}

// HasEdge reports whether the directed edge from→to exists, by binary
// search over from's sorted destination slice.
func (g *Graph) HasEdge(from, to uint32) bool {
	if int(from) >= g.nodeCount || int(to) >= g.nodeCount {
		return false
	}
	_, found := slices.BinarySearch(g.row(from), to)
	return found
}

// row returns the internal destination slice for node, which must be in
// range. Callers must not retain or mutate it.
func (g *Graph) row(node uint32) []uint32 {
	return g.columnIndices[g.rowOffsets[node]:g.rowOffsets[node+1]]
}
