// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (links) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual links via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Components and Connected partition a topology by reachability.
//
// Determinism
//
//	core.Graph keeps every adjacency list sorted by handle and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Links|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start)
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// ErrNeighbors, or a wrapped hook error
//	}
//
//	res, err = bfs.BFS(
//		g, start,
//		bfs.WithContext(ctx),
//		bfs.WithMaxDepth(3),
//		bfs.WithFilterNeighbor(func(curr, nbr core.NodeID) bool { return nbr != blocked }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip links for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a node is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a node.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails for any node.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
