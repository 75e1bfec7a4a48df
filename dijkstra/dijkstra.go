// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// unweighted topology graphs of package core.
//
// It processes nodes in order of increasing hop distance using a min-heap
// priority queue keyed by (distance, node index), relaxing links and updating
// distances accordingly.
//
// Notes on implementation choices:
//
//   - Every link has unit cost; the heap is kept (rather than plain BFS) so
//     that exclusion sets, hop caps and early exit share one code path with
//     the lowest-index tie-break.
//   - A predecessor is recorded only on strict improvement. Nodes are
//     finalized in (distance, index) order, so the predecessor of v is the
//     lowest-index node among those at distance dist[v]-1 adjacent to v.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
//   - The graph is only read; concurrent queries on one graph are safe.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/dcntopo/core"
)

// Dijkstra computes hop distances from source to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrNodeNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source core.NodeID, opts ...Option) (*Result, error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return nil, err
	}
	if err = r.process(None); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// ShortestPath returns the minimum-hop path source → sink as a node
// sequence, stopping as soon as sink is finalized.
//
// Returns:
//
//   - [source] when source == sink.
//   - nil (and a nil error) when sink is unreachable under the exclusions;
//     an empty result is a valid outcome, not a failure.
//
// Errors: ErrNilGraph, ErrNodeNotFound (source or sink).
//
// Complexity: O((V + E) log V) worst case.
func ShortestPath(g *core.Graph, source, sink core.NodeID, opts ...Option) ([]core.NodeID, error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(sink) {
		return nil, fmt.Errorf("%w: sink %d", ErrNodeNotFound, sink)
	}
	if source == sink {
		return []core.NodeID{source}, nil
	}
	if err = r.process(sink); err != nil {
		return nil, err
	}

	return r.result().PathTo(sink), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph   // The input graph; read-only within Dijkstra.
	options Options       // Exclusions and hop cap.
	source  core.NodeID   // Search root.
	dist    []int         // NodeID → current best distance, Unreachable if none.
	prev    []core.NodeID // NodeID → predecessor on the shortest path.
	visited []bool        // Tracks if a node's distance is finalized.
	pq      nodePQ        // Min-heap of nodeItem for lazy priority queue.
}

// newRunner validates inputs, resolves options and seeds the heap with source.
func newRunner(g *core.Graph, source core.NodeID, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %d", ErrNodeNotFound, source)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make([]int, n),
		prev:    make([]core.NodeID, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = None
	}
	r.dist[source] = 0
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})

	return r, nil
}

// process is the core loop. It repeatedly extracts the node with the
// smallest (distance, index) and relaxes its links, stopping early once
// stop (if not None) is finalized.
func (r *runner) process(stop core.NodeID) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Skip stale heap entry.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == stop {
			return nil
		}
		if item.dist >= r.options.MaxHops {
			continue
		}
		if err := r.relax(u, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every link of u and improves the distances of its neighbors.
// Assumes dist[u] == d is final.
func (r *runner) relax(u core.NodeID, d int) error {
	next := d + 1
	err := r.g.EachNeighbor(u, func(v core.NodeID) bool {
		if r.visited[v] || r.options.ExcludedEdges.Has(u, v) {
			return true
		}
		if _, banned := r.options.ExcludedNodes[v]; banned && v != r.source {
			return true
		}
		if r.dist[v] != Unreachable && next >= r.dist[v] {
			return true
		}
		r.dist[v] = next
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: next})

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	return nil
}

// result freezes the runner state into a Result. Tentative distances of
// nodes that were never finalized (early exit) are dropped.
func (r *runner) result() *Result {
	for v, done := range r.visited {
		if !done {
			r.dist[v] = Unreachable
			r.prev[v] = None
		}
	}

	return &Result{Source: r.source, Dist: r.dist, Prev: r.prev}
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id) ascending.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by node index for deterministic ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
