package graph

// Edge is a directed connection between two node ids. Duplicates and
// self-loops are legal and preserved by implementations.
type Edge struct {
	From uint32 `json:"from"`
	To   uint32 `json:"to"`
}

// Visit pairs a node with the depth at which a breadth-first traversal
// first reached it. The start node has depth 0.
type Visit struct {
	Node  uint32 `json:"node"`
	Depth int    `json:"depth"`
}

// Degree pairs a node with its out-degree, as reported by degree-ranking
// queries such as [Graph.MaxDegreeNode] and [Graph.TopK].
type Degree struct {
	Node   uint32 `json:"node"`
	Degree int    `json:"degree"`
}

// Graph is the capability set every graph engine exposes.
//
// Out-of-range node arguments are never errors: queries report absence
// (zero, empty, false) and traversals return empty results. Load is the
// only operation with a failure outcome; on failure the previously loaded
// state, if any, is left untouched.
type Graph interface {
	// Load reads a plain-text edge list from path and replaces the graph
	// contents with it. The file holds one "from to" pair per line; blank
	// lines and lines starting with '#' are skipped, malformed lines are
	// skipped and counted. Load fails if the file cannot be opened or it
	// yields no valid edges.
	Load(path string) error

	// NodeCount returns the size of the id space: highest id observed + 1.
	NodeCount() int
	// EdgeCount returns the number of directed edges loaded.
	EdgeCount() int

	// OutDegree returns the number of edges leaving node, 0 if absent.
	OutDegree(node uint32) int
	// InDegree returns the number of edges entering node, 0 if absent.
	InDegree(node uint32) int
	// Neighbors returns node's destinations in ascending order. The slice
	// is freshly allocated; callers may keep or modify it.
	Neighbors(node uint32) []uint32
	// HasEdge reports whether the directed edge from→to exists.
	HasEdge(from, to uint32) bool

	// BFS walks breadth-first from start and returns nodes in first-seen
	// order with their depths. Nodes at maxDepth are reported but not
	// expanded; a negative maxDepth means no limit. An absent start node
	// yields an empty result.
	BFS(start uint32, maxDepth int) []Visit
	// DFS walks depth-first from start and returns the visit order.
	// Neighbor expansion is in ascending id order; depth limiting and
	// absent-start behavior match BFS.
	DFS(start uint32, maxDepth int) []uint32
	// ShortestPath returns a minimum-hop path from→to inclusive, the
	// single-element path when from == to, and an empty slice when either
	// id is absent or the destination is unreachable.
	ShortestPath(from, to uint32) []uint32

	// MaxDegreeNode returns the node with the highest out-degree; ties go
	// to the lowest id. The zero Degree is returned for an empty graph.
	MaxDegreeNode() Degree
	// TopK returns up to k nodes with out-degree > 0, ordered by degree
	// descending, equal degrees by ascending node id.
	TopK(k int) []Degree
	// SubgraphEdges returns the edges of the subgraph induced by nodes.
	// Out-of-range ids in the subset are skipped; duplicate ids are
	// harmless.
	SubgraphEdges(nodes []uint32) []Edge

	// MemoryUsage reports the bytes held by the engine's internal arrays,
	// counting allocated capacity rather than logical length, plus fixed
	// metadata.
	MemoryUsage() uint64
	// Reset releases all arrays and zeroes metadata, returning the engine
	// to its freshly constructed state so it may be loaded again.
	Reset()
}
