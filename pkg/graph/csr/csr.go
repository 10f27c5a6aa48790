package csr

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/neurograph/neurograph/pkg/edgelist"
	"github.com/neurograph/neurograph/pkg/graph"
	"github.com/neurograph/neurograph/pkg/observability"
)

// ErrNoEdges is returned by [Graph.LoadEdges] when the edge list is empty.
// A graph with no edges has no observable id space, so building one is
// treated as a caller error rather than producing an empty structure.
var ErrNoEdges = errors.New("csr: edge list is empty")

// Graph is the CSR implementation of [graph.Graph].
//
// The zero value is an empty, loadable graph; New only exists to attach
// options. All exported methods follow the contract's absence policy:
// out-of-range ids produce empty results, never errors.
type Graph struct {
	rowOffsets    []uint64 // len nodeCount+1, non-decreasing, [0]=0
	columnIndices []uint32 // len edgeCount, ascending per node
	inDegree      []uint32 // len nodeCount

	nodeCount int
	edgeCount int
	maxNodeID uint32

	logf          func(format string, args ...any)
	progressEvery int
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithLogger attaches a logging sink for load and traversal progress.
// The engine reports through it and never prints directly; correctness
// does not depend on the sink's behavior.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(g *Graph) { g.logf = logf }
}

// WithProgressInterval sets how many parsed edges separate load progress
// reports. Zero or negative keeps the edgelist default.
func WithProgressInterval(every int) Option {
	return func(g *Graph) { g.progressEvery = every }
}

// New creates an empty graph with the given options applied.
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// log writes to the attached sink, if any.
func (g *Graph) log(format string, args ...any) {
	if g.logf != nil {
		g.logf(format, args...)
	}
}

// Load reads the edge list at path and builds the CSR structure from it.
// On any failure — unopenable file, no valid edges — the graph keeps
// whatever state it had before the call.
func (g *Graph) Load(path string) error {
	start := time.Now()
	observability.Graph().OnLoadStart(path)
	g.log("loading edge list %s", path)

	res, err := edgelist.ReadFile(path, edgelist.Options{
		Progress: func(parsed int) { g.log("parsed %d edges...", parsed) },
		Every:    g.progressEvery,
	})
	if err != nil {
		observability.Graph().OnLoadComplete(path, 0, time.Since(start), err)
		return fmt.Errorf("csr: load %s: %w", path, err)
	}
	g.log("parsed %d edges (%d lines skipped)", len(res.Edges), res.Skipped)

	if err := g.LoadEdges(res.Edges); err != nil {
		observability.Graph().OnLoadComplete(path, 0, time.Since(start), err)
		return err
	}

	observability.Graph().OnLoadComplete(path, g.edgeCount, time.Since(start), nil)
	g.log("load complete: %d nodes, %d edges, %.2f MB in %s",
		g.nodeCount, g.edgeCount, float64(g.MemoryUsage())/(1024*1024),
		time.Since(start).Round(time.Millisecond))
	return nil
}

// LoadEdges builds the CSR structure from an in-memory edge list,
// replacing any previously loaded contents. The input order does not
// matter; per-node destinations end up sorted ascending. Returns
// ErrNoEdges for an empty list, leaving existing state untouched.
func (g *Graph) LoadEdges(edges []graph.Edge) error {
	if len(edges) == 0 {
		return ErrNoEdges
	}

	start := time.Now()
	g.log("building CSR structure...")

	// Pass 1: size the id space.
	var maxID uint32
	for _, e := range edges {
		if e.From > maxID {
			maxID = e.From
		}
		if e.To > maxID {
			maxID = e.To
		}
	}
	nodeCount := int(maxID) + 1

	rowOffsets := make([]uint64, nodeCount+1)
	columnIndices := make([]uint32, len(edges))
	inDegree := make([]uint32, nodeCount)

	// Pass 2: bucket counts per origin, in-degrees per destination.
	for _, e := range edges {
		rowOffsets[e.From+1]++
		inDegree[e.To]++
	}

	// Pass 3: prefix sums turn counts into start offsets.
	for i := 1; i <= nodeCount; i++ {
		rowOffsets[i] += rowOffsets[i-1]
	}

	// Pass 4: scatter destinations using a write-cursor copy of the
	// offsets. The copy is scratch; it never aliases the final offsets.
	cursors := make([]uint64, nodeCount+1)
	copy(cursors, rowOffsets)
	for _, e := range edges {
		columnIndices[cursors[e.From]] = e.To
		cursors[e.From]++
	}

	// Pass 5: sort each node's destination slice for binary search and
	// deterministic traversal order.
	for i := 0; i < nodeCount; i++ {
		slices.Sort(columnIndices[rowOffsets[i]:rowOffsets[i+1]])
	}

	g.rowOffsets = rowOffsets
	g.columnIndices = columnIndices
	g.inDegree = inDegree
	g.nodeCount = nodeCount
	g.edgeCount = len(edges)
	g.maxNodeID = maxID

	g.log("CSR structure built in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

// NodeCount returns the size of the node id space.
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of directed edges loaded.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// MemoryUsage reports the bytes held by the internal arrays. It counts
// allocated capacity rather than logical length, plus the fixed metadata
// fields, so allocator headroom shows up in the number.
func (g *Graph) MemoryUsage() uint64 {
	const (
		offsetSize = 8 // uint64
		indexSize  = 4 // uint32
		metaSize   = 8 + 8 + 4 // nodeCount, edgeCount, maxNodeID
	)
	return uint64(cap(g.rowOffsets))*offsetSize +
		uint64(cap(g.columnIndices))*indexSize +
		uint64(cap(g.inDegree))*indexSize +
		metaSize
}

// Reset releases every internal array and zeroes the metadata. The graph
// is afterward indistinguishable from a freshly constructed one and may
// be loaded again.
func (g *Graph) Reset() {
	g.rowOffsets = nil
	g.columnIndices = nil
	g.inDegree = nil
	g.nodeCount = 0
	g.edgeCount = 0
	g.maxNodeID = 0
	g.log("graph cleared")
}

// Ensure Graph implements the contract.
var _ graph.Graph = (*Graph)(nil)
