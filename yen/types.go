// Package yen defines the Path type and sentinel errors of the
// k-shortest loop-less path finder.
package yen

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/dcntopo/core"
)

// Sentinel errors returned by KShortestPaths.
var (
	// ErrBadK indicates k < 1.
	ErrBadK = errors.New("yen: k must be at least 1")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("yen: graph is nil")

	// ErrNodeNotFound indicates that the source or sink does not exist in the graph.
	ErrNodeNotFound = errors.New("yen: node not found in graph")
)

// Path is a loop-less node sequence from source to sink.
type Path []core.NodeID

// Hops returns the number of links on the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Key renders the node sequence as "0-4-7"; two paths share a key exactly
// when they visit the same nodes in the same order.
func (p Path) Key() string {
	var sb strings.Builder
	for i, id := range p {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.Itoa(int(id)))
	}

	return sb.String()
}

// Edges returns the normalized links traversed by p, in order.
func (p Path) Edges() []core.Edge {
	if len(p) < 2 {
		return nil
	}
	out := make([]core.Edge, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = core.MakeEdge(p[i-1], p[i])
	}

	return out
}

// hasPrefix reports whether p starts with root.
func (p Path) hasPrefix(root Path) bool {
	if len(p) < len(root) {
		return false
	}
	for i := range root {
		if p[i] != root[i] {
			return false
		}
	}

	return true
}
