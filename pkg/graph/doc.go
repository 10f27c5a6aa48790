// Package graph defines the capability contract for directed-graph engines
// and the value types shared by every implementation.
//
// The [Graph] interface describes a bulk-load-then-freeze engine: an
// implementation is populated exactly once from an edge list, answers
// structural queries and traversals from that point on, and can be wiped
// with Reset for reloading. The reference implementation lives in
// [github.com/neurograph/neurograph/pkg/graph/csr]; alternative layouts
// (dense adjacency matrix, plain adjacency lists) can implement the same
// contract without callers changing.
//
// # Node identifiers
//
// Node ids are dense, zero-based uint32 values. The id space spans
// 0..NodeCount()-1; ids at or above NodeCount are not errors but simply
// absent: zero degrees, no neighbors, false adjacency, empty traversals.
//
// # Concurrency
//
// Implementations are single-writer: Load and Reset must not run
// concurrently with anything else. Once loaded, all query, traversal, and
// analysis methods are safe for concurrent readers.
package graph
