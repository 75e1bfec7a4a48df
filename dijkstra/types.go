// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on unweighted switch fabrics.
//
// Every link counts as one hop, so distance equals hop count. Paths are made
// deterministic by ordering the priority queue on (distance, node index):
// among equal-length paths the one through lower-index nodes wins.
//
// Complexity:
//
//	- Time:  O((V + E) log V)   where V = |nodes|, E = |edges|
//	   • Each node is extracted from the priority queue at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to E pushes).
//	- Space: O(V + E)
//	   • O(V) for the distance and predecessor slices.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	- WithExcludedEdges: links that must not be traversed.
//	- WithExcludedNodes: nodes that must not be entered (the source is exempt).
//	- WithMaxHops:       optional cap on explored distance.
//
// Errors (sentinel):
//
//	- ErrNilGraph     if the provided graph pointer is nil.
//	- ErrNodeNotFound if the source or sink is not a node of the graph.
//
// Example usage:
//
//	path, err := dijkstra.ShortestPath(g, a, d, dijkstra.WithExcludedEdges(banned))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if path == nil {
//	    // d is unreachable without the banned links
//	}
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/dcntopo/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source or sink does not exist in the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrBadMaxHops indicates that WithMaxHops received a negative value.
	ErrBadMaxHops = errors.New("dijkstra: MaxHops must be non-negative")
)

const (
	// Unreachable marks Result.Dist entries of nodes the search never reached.
	Unreachable = -1

	// None marks Result.Prev entries without a predecessor (source, unreachable).
	None core.NodeID = -1
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ExcludedEdges - links skipped during relaxation; nil means none.
// ExcludedNodes - nodes never entered; the source itself is always allowed.
// MaxHops       - nodes farther than this are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
type Options struct {
	ExcludedEdges core.EdgeSet
	ExcludedNodes map[core.NodeID]struct{}
	MaxHops       int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithExcludedEdges forbids traversal of every link in set. The set is read,
// never modified, so one set may be shared by concurrent queries.
func WithExcludedEdges(set core.EdgeSet) Option {
	return func(o *Options) {
		o.ExcludedEdges = set
	}
}

// WithExcludedNodes forbids entering the given nodes.
// Calls accumulate; the source of a query is never excluded.
func WithExcludedNodes(ids ...core.NodeID) Option {
	return func(o *Options) {
		if o.ExcludedNodes == nil {
			o.ExcludedNodes = make(map[core.NodeID]struct{}, len(ids))
		}
		for _, id := range ids {
			o.ExcludedNodes[id] = struct{}{}
		}
	}
}

// WithMaxHops caps the explored distance. Nodes whose shortest distance
// exceeds max are reported as unreachable.
// Panics on negative values to signal invalid configuration early.
func WithMaxHops(max int) Option {
	if max < 0 {
		panic(ErrBadMaxHops.Error())
	}
	return func(o *Options) {
		o.MaxHops = max
	}
}

// DefaultOptions returns an Options struct with no exclusions and no hop cap.
func DefaultOptions() Options {
	return Options{MaxHops: math.MaxInt}
}

// Result holds the single-source shortest-path tree.
//
// Dist[v] is the hop distance from Source to v, or Unreachable.
// Prev[v] is v's predecessor on the chosen shortest path, or None.
// Both slices are indexed by core.NodeID.
type Result struct {
	Source core.NodeID
	Dist   []int
	Prev   []core.NodeID
}

// Reachable reports whether sink was reached from Source.
func (r *Result) Reachable(sink core.NodeID) bool {
	return sink >= 0 && int(sink) < len(r.Dist) && r.Dist[sink] != Unreachable
}

// PathTo reconstructs the node sequence Source → sink.
// Returns nil if sink is unreachable and [Source] if sink == Source.
// Complexity: O(path length).
func (r *Result) PathTo(sink core.NodeID) []core.NodeID {
	if !r.Reachable(sink) {
		return nil
	}
	path := make([]core.NodeID, r.Dist[sink]+1)
	for i, v := len(path)-1, sink; i >= 0; i-- {
		path[i] = v
		v = r.Prev[v]
	}

	return path
}
