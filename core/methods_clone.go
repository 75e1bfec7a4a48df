// File: methods_clone.go
// Role: Deep copy and freezing of a Graph.
// Concurrency:
//   - Clone holds the read lock of the source while copying.
//   - Seal takes the write lock once.

package core

// Clone returns a deep, unsealed copy of g. Handles, labels and adjacency
// are identical, so handles taken from g remain valid on the copy.
//
// Complexity: O(V + E) time and space.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cp := &Graph{
		nodes:     make([]nodeRecord, len(g.nodes)),
		byLabel:   make(map[string]NodeID, len(g.byLabel)),
		edges:     g.edges,
		switchSeq: g.switchSeq,
		serverSeq: g.serverSeq,
	}
	for i, rec := range g.nodes {
		nb := make([]NodeID, len(rec.nbrs))
		copy(nb, rec.nbrs)
		rec.nbrs = nb
		cp.nodes[i] = rec
	}
	for label, id := range g.byLabel {
		cp.byLabel[label] = id
	}

	return cp
}

// Seal freezes g: every later AddNode, Connect or Disconnect fails with
// ErrSealed. Sealing is idempotent and cannot be undone; use Clone to get a
// mutable copy.
//
// Complexity: O(1).
func (g *Graph) Seal() {
	g.mu.Lock()
	g.sealed = true
	g.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sealed
}
