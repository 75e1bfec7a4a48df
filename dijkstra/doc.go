// Package dijkstra provides a deterministic implementation of Dijkstra's
// shortest-path algorithm on unweighted data-center topologies.
//
// Overview:
//
//   - Dijkstra computes the hop distance from a single source node to all
//     reachable nodes in O((V + E) log V) time.
//   - ShortestPath answers one source/sink query and stops once the sink is
//     finalized; it is the spur-path primitive of package yen.
//   - The heap is ordered by (distance, node index), so among equal-length
//     paths the one through lower-index predecessors is returned.
//
// Key features:
//
//   - WithExcludedEdges: links to treat as absent (Yen's "removed" edges).
//   - WithExcludedNodes: nodes to treat as absent, keeping spur paths loop-less.
//   - WithMaxHops:       bound the exploration radius.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:     the graph pointer is nil.
//   - ErrNodeNotFound: the source or sink is not a node of the graph.
//   - ErrBadMaxHops:   raised (via panic) by WithMaxHops on a negative value.
//
// An unreachable sink is not an error: ShortestPath returns a nil path and a
// nil error, Result.Dist holds Unreachable.
//
// Thread safety:
//
//   - Queries only take core.Graph read locks; any number of them may run in
//     parallel on one graph. Builders seal their graphs, so the topology
//     cannot change underneath a query.
//
// See also:
//
//   - yen.KShortestPaths: k loop-less shortest paths on top of ShortestPath.
//   - bfs.BFS: plain breadth-first distances used as a cross-check.
package dijkstra
