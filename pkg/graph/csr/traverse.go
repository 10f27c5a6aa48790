package csr

import (
	"slices"
	"time"

	"github.com/neurograph/neurograph/pkg/graph"
	"github.com/neurograph/neurograph/pkg/observability"
)

// BFS walks the graph breadth-first from start and returns every reached
// node with the depth at which it was first seen, in visitation order.
// Nodes are marked visited when enqueued, so each appears exactly once
// and its depth is its true minimum hop count. Nodes at maxDepth are
// reported but not expanded; a negative maxDepth means no limit.
//
// Because per-node destinations are sorted, the output is fully
// deterministic for a given graph and parameters. An absent start node
// yields an empty result.
func (g *Graph) BFS(start uint32, maxDepth int) []graph.Visit {
	if int(start) >= g.nodeCount {
		return nil
	}

	began := time.Now()
	observability.Graph().OnTraverseStart("bfs", start)

	visited := make([]bool, g.nodeCount)
	queue := []graph.Visit{{Node: start, Depth: 0}}
	visited[start] = true

	var order []graph.Visit
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		order = append(order, cur)

		if maxDepth >= 0 && cur.Depth >= maxDepth {
			continue
		}
		for _, nbr := range g.row(cur.Node) {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, graph.Visit{Node: nbr, Depth: cur.Depth + 1})
			}
		}
	}

	observability.Graph().OnTraverseComplete("bfs", start, len(order), time.Since(began))
	g.log("bfs from %d: %d nodes in %s", start, len(order), time.Since(began).Round(time.Microsecond))
	return order
}

// dfsFrame pairs a stacked node with the depth it would be visited at.
type dfsFrame struct {
	node  uint32
	depth int
}

// DFS walks the graph depth-first from start and returns the visitation
// order. The traversal is iterative — an explicit stack instead of
// recursion, so call-stack depth never limits graph size. Neighbors are
// pushed in reverse sorted order so popping expands them ascending. A
// node may sit on the stack more than once; the visited check at pop
// time deduplicates. Depth limiting and absent-start behavior match BFS.
func (g *Graph) DFS(start uint32, maxDepth int) []uint32 {
	if int(start) >= g.nodeCount {
		return nil
	}

	began := time.Now()
	observability.Graph().OnTraverseStart("dfs", start)

	visited := make([]bool, g.nodeCount)
	stack := []dfsFrame{{node: start, depth: 0}}

	var order []uint32
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[cur.node] {
			continue
		}
		visited[cur.node] = true
		order = append(order, cur.node)

		if maxDepth >= 0 && cur.depth >= maxDepth {
			continue
		}
		row := g.row(cur.node)
		for i := len(row) - 1; i >= 0; i-- {
			if !visited[row[i]] {
				stack = append(stack, dfsFrame{node: row[i], depth: cur.depth + 1})
			}
		}
	}

	observability.Graph().OnTraverseComplete("dfs", start, len(order), time.Since(began))
	g.log("dfs from %d: %d nodes in %s", start, len(order), time.Since(began).Round(time.Microsecond))
	return order
}

// ShortestPath returns a minimum-hop path from→to, both endpoints
// included. It runs BFS with parent tracking and stops the moment the
// destination is first discovered, then reconstructs by walking parent
// links backward. Ties between equal-length paths resolve to whichever
// the sorted-neighbor order discovers first. The result is empty when
// either id is absent or the destination is unreachable, and the single
// node [from] when from == to.
func (g *Graph) ShortestPath(from, to uint32) []uint32 {
	if int(from) >= g.nodeCount || int(to) >= g.nodeCount {
		return nil
	}
	if from == to {
		return []uint32{from}
	}

	began := time.Now()
	observability.Graph().OnTraverseStart("path", from)

	visited := make([]bool, g.nodeCount)
	parent := make([]uint32, g.nodeCount)

	queue := []uint32{from}
	visited[from] = true
	found := false

	for head := 0; head < len(queue) && !found; head++ {
		cur := queue[head]
		for _, nbr := range g.row(cur) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			parent[nbr] = cur
			if nbr == to {
				found = true
				break
			}
			queue = append(queue, nbr)
		}
	}

	if !found {
		observability.Graph().OnTraverseComplete("path", from, 0, time.Since(began))
		g.log("no path from %d to %d", from, to)
		return nil
	}

	path := []uint32{to}
	for cur := to; cur != from; {
		cur = parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	observability.Graph().OnTraverseComplete("path", from, len(path), time.Since(began))
	g.log("path from %d to %d: %d hops in %s", from, to, len(path)-1, time.Since(began).Round(time.Microsecond))
	return path
}
