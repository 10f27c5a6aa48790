// Package csr implements the graph contract on a Compressed Sparse Row
// layout, built for holding millions of directed edges with minimal
// overhead.
//
// # Layout
//
// The whole adjacency structure lives in two flat arrays plus an
// in-degree table:
//
//   - rowOffsets, length NodeCount+1: rowOffsets[i] is the index into
//     columnIndices where node i's destinations begin, so node i's
//     out-degree is rowOffsets[i+1]-rowOffsets[i].
//   - columnIndices, length EdgeCount: the flattened destination lists,
//     kept ascending per node to allow binary-search adjacency tests and
//     deterministic traversal order.
//   - inDegree, length NodeCount: per-node incoming edge counts,
//     maintained during construction.
//
// For the edge list 0→1, 0→2, 1→2, 2→0:
//
//	rowOffsets:    [0, 2, 3, 4]
//	columnIndices: [1, 2, 2, 0]
//
// Node 0's neighbors are columnIndices[0:2] = [1,2], node 1's are
// columnIndices[2:3] = [2], node 2's are columnIndices[3:4] = [0].
//
// # Lifecycle
//
// A Graph is populated in one shot by [Graph.Load] or [Graph.LoadEdges]
// and is read-only afterward; [Graph.Reset] releases everything so the
// same instance can be loaded again. There is no incremental mutation.
// Concurrent reads are safe once a load completes, but a load or reset
// must never overlap any other call.
package csr
