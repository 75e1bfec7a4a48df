// Package yen implements Yen's algorithm for the k shortest loop-less paths
// between two nodes of an unweighted topology.
//
// Paths are returned in non-decreasing hop count. Equal-length candidates
// keep the order in which they were discovered, so results are fully
// deterministic for a given graph. Fewer than k paths is a valid outcome.
//
// Complexity:
//
//   - Time:  O(k · L · (V + E) log V) where L is the longest accepted path.
//   - Space: O(k · L) for accepted and candidate paths.
//
// The graph is only read; concurrent queries on one graph are safe.
package yen

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/dcntopo/core"
	"github.com/katalvlaran/dcntopo/dijkstra"
)

// KShortestPaths returns up to k distinct loop-less paths source → sink.
//
// Implementation:
//   - Stage 1: accept the plain shortest path (empty result if none).
//   - Stage 2: for every node of the most recently accepted path, treat it
//     as the spur node: ban the next link of every accepted path sharing
//     the same root, ban the root nodes before the spur node, and search a
//     spur path to sink. root + spur becomes a candidate unless already seen.
//   - Stage 3: accept the candidate with the fewest hops (earliest discovered
//     on ties); stop at k paths or when no candidate is left.
//
// Errors: ErrBadK, ErrNilGraph, ErrNodeNotFound.
func KShortestPaths(g *core.Graph, source, sink core.NodeID, k int) ([]Path, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadK, k)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) || !g.HasNode(sink) {
		return nil, fmt.Errorf("%w: %d → %d", ErrNodeNotFound, source, sink)
	}

	first, err := spur(g, source, sink, nil, nil)
	if err != nil {
		return nil, err
	}
	if first == nil {
		return []Path{}, nil
	}

	accepted := []Path{first}
	seen := map[string]struct{}{first.Key(): {}}
	pool := &candidates{}
	seq := 0

	for len(accepted) < k {
		last := accepted[len(accepted)-1]
		for i := 0; i < len(last)-1; i++ {
			root := last[:i+1]

			banned := make(core.EdgeSet)
			for _, p := range accepted {
				if len(p) > i+1 && p.hasPrefix(root) {
					banned.Add(p[i], p[i+1])
				}
			}

			tail, err := spur(g, last[i], sink, banned, root[:i])
			if err != nil {
				return nil, err
			}
			if tail == nil {
				continue
			}

			cand := make(Path, 0, i+len(tail))
			cand = append(cand, root[:i]...)
			cand = append(cand, tail...)
			key := cand.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			heap.Push(pool, candidate{path: cand, seq: seq})
			seq++
		}

		if pool.Len() == 0 {
			break
		}
		accepted = append(accepted, heap.Pop(pool).(candidate).path)
	}

	return accepted, nil
}

// spur runs one restricted shortest-path search and maps dijkstra errors to
// this package's sentinels.
func spur(g *core.Graph, from, to core.NodeID, banned core.EdgeSet, blocked []core.NodeID) (Path, error) {
	opts := []dijkstra.Option{dijkstra.WithExcludedEdges(banned)}
	if len(blocked) > 0 {
		opts = append(opts, dijkstra.WithExcludedNodes(blocked...))
	}
	p, err := dijkstra.ShortestPath(g, from, to, opts...)
	switch {
	case errors.Is(err, dijkstra.ErrNodeNotFound):
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, err)
	case err != nil:
		return nil, fmt.Errorf("yen: spur search %d → %d: %w", from, to, err)
	}

	return p, nil
}

// candidate is a not-yet-accepted path with its discovery sequence number.
type candidate struct {
	path Path
	seq  int
}

// candidates is a min-heap ordered by (hops, seq).
type candidates []candidate

func (c candidates) Len() int { return len(c) }

func (c candidates) Less(i, j int) bool {
	if hi, hj := c[i].path.Hops(), c[j].path.Hops(); hi != hj {
		return hi < hj
	}

	return c[i].seq < c[j].seq
}

func (c candidates) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

func (c *candidates) Push(x interface{}) { *c = append(*c, x.(candidate)) }

func (c *candidates) Pop() interface{} {
	old := *c
	n := len(old)
	item := old[n-1]
	*c = old[:n-1]

	return item
}
