// File: methods_edges.go
// Role: Edge lifecycle & queries: Connect/Disconnect/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (U, V) ascending.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
// Failure policy:
//   - Every precondition is checked before the first write, so a failing
//     Connect/Disconnect leaves the graph untouched (no half edge).

package core

import "sort"

// Connect links a and b with an undirected edge, consuming one port on each.
//
// Steps:
//  1. Reject sealed graphs and a == b.
//  2. Validate both handles.
//  3. Reject existing neighbors, then endpoints without a free port.
//  4. Insert b into a's sorted list and a into b's; decrement both counters.
//
// Errors (first failing check wins):
//
//	ErrSealed, ErrSelfLoop, ErrNodeNotFound, ErrDuplicateEdge, ErrCapacityExceeded.
//
// Complexity: O(d) for the sorted insertions, d = max degree of a, b.
func (g *Graph) Connect(a, b NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return ErrSealed
	}
	if a == b {
		return ErrSelfLoop
	}
	if !g.valid(a) || !g.valid(b) {
		return ErrNodeNotFound
	}
	ra, rb := &g.nodes[a], &g.nodes[b]
	if _, found := searchNeighbor(ra.nbrs, b); found {
		return ErrDuplicateEdge
	}
	if ra.free == 0 || rb.free == 0 {
		return ErrCapacityExceeded
	}

	ra.nbrs = insertNeighbor(ra.nbrs, b)
	rb.nbrs = insertNeighbor(rb.nbrs, a)
	ra.free--
	rb.free--
	g.edges++

	return nil
}

// Disconnect removes the edge a-b and returns one port to each endpoint.
//
// Errors (first failing check wins):
//
//	ErrSealed, ErrNodeNotFound, ErrNotConnected.
//
// Complexity: O(d).
func (g *Graph) Disconnect(a, b NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return ErrSealed
	}
	if !g.valid(a) || !g.valid(b) {
		return ErrNodeNotFound
	}
	if a == b {
		return ErrNotConnected
	}
	ra, rb := &g.nodes[a], &g.nodes[b]
	ia, found := searchNeighbor(ra.nbrs, b)
	if !found {
		return ErrNotConnected
	}
	ib, _ := searchNeighbor(rb.nbrs, a) // symmetric by invariant

	ra.nbrs = removeNeighborAt(ra.nbrs, ia)
	rb.nbrs = removeNeighborAt(rb.nbrs, ib)
	ra.free++
	rb.free++
	g.edges--

	return nil
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every edge once, normalized, sorted by (U, V).
//
// Because each adjacency list is already ascending, emitting only v > u
// while walking u in order yields the sorted result directly; the final
// sort is a cheap guard for that ordering contract.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for u := range g.nodes {
		for _, v := range g.nodes[u].nbrs {
			if v > NodeID(u) {
				out = append(out, Edge{U: NodeID(u), V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}
