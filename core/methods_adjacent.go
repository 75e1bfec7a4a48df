// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, IsNeighbor, EachNeighbor) and the
//       sorted-slice helpers used by mutating code.
// Determinism:
//   - Neighbors() and EachNeighbor() walk handles in ascending order.
// Concurrency:
//   - Read operations hold the read lock.
//   - Helpers are called only under the write lock by mutators.

package core

import "sort"

// Neighbors returns a copy of the sorted neighbor handles of id.
//
// Errors:
//   - ErrNodeNotFound: id is outside the arena.
//
// Complexity: O(d).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return nil, ErrNodeNotFound
	}
	src := g.nodes[id].nbrs
	out := make([]NodeID, len(src))
	copy(out, src)

	return out, nil
}

// IsNeighbor reports whether a and b share an edge. Unknown handles and
// a == b yield false.
// Complexity: O(log d).
func (g *Graph) IsNeighbor(a, b NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(a) || !g.valid(b) || a == b {
		return false
	}
	_, found := searchNeighbor(g.nodes[a].nbrs, b)

	return found
}

// EachNeighbor calls fn for every neighbor of id in ascending order without
// copying the adjacency list, stopping early when fn returns false.
// fn must not call mutating methods of g.
//
// Errors:
//   - ErrNodeNotFound: id is outside the arena.
//
// Complexity: O(d).
func (g *Graph) EachNeighbor(id NodeID, fn func(NodeID) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return ErrNodeNotFound
	}
	for _, v := range g.nodes[id].nbrs {
		if !fn(v) {
			break
		}
	}

	return nil
}

// searchNeighbor returns the insertion index of id in the sorted list and
// whether id is already present.
func searchNeighbor(list []NodeID, id NodeID) (int, bool) {
	i := sort.Search(len(list), func(k int) bool { return list[k] >= id })

	return i, i < len(list) && list[i] == id
}

// insertNeighbor inserts id keeping the list sorted. id must be absent.
func insertNeighbor(list []NodeID, id NodeID) []NodeID {
	i, _ := searchNeighbor(list, id)
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = id

	return list
}

// removeNeighborAt deletes the element at index i preserving order.
func removeNeighborAt(list []NodeID, i int) []NodeID {
	copy(list[i:], list[i+1:])

	return list[:len(list)-1]
}
