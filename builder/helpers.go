// Package builder provides internal helper functions used by Constructor
// implementations to inspect and mutate the switch fabric.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: core errors are wrapped with the calling method.
//   - Determinism: every list is produced in ascending handle order, so the
//     only source of variation is the configured RNG.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dcntopo/core"
)

// freeOf returns the free-port count of a handle known to be valid.
func freeOf(g *core.Graph, id core.NodeID) int {
	n, _ := g.FreePorts(id)

	return n
}

// freeSwitches lists switches that still have at least `min` free ports.
// Complexity: O(V).
func freeSwitches(g *core.Graph, min int) []core.NodeID {
	return g.Filter(func(n core.Node) bool {
		return n.Role == core.RoleSwitch && n.FreePorts >= min
	})
}

// fullSwitches lists switches with no free port left.
// Complexity: O(V).
func fullSwitches(g *core.Graph) []core.NodeID {
	return g.Filter(func(n core.Node) bool {
		return n.Role == core.RoleSwitch && n.FreePorts == 0
	})
}

// switchNeighbors returns the switch-role neighbors of id, ascending.
// Complexity: O(d).
func switchNeighbors(g *core.Graph, id core.NodeID) []core.NodeID {
	nbrs, _ := g.Neighbors(id)
	out := nbrs[:0]
	for _, v := range nbrs {
		if n, err := g.Node(v); err == nil && n.Role == core.RoleSwitch {
			out = append(out, v)
		}
	}

	return out
}

// residualPorts sums the free ports of every switch.
// Complexity: O(V).
func residualPorts(g *core.Graph) int {
	return g.Stats().FreePorts
}

// fullLinks lists switch-switch links whose ends both have no free port,
// in Edges order.
// Complexity: O(V + E).
func fullLinks(g *core.Graph) []core.Edge {
	var out []core.Edge
	for _, e := range g.Edges() {
		a, errA := g.Node(e.U)
		b, errB := g.Node(e.V)
		if errA != nil || errB != nil {
			continue
		}
		if a.Role == core.RoleSwitch && b.Role == core.RoleSwitch && a.FreePorts == 0 && b.FreePorts == 0 {
			out = append(out, e)
		}
	}

	return out
}

// pick draws one element uniformly from a non-empty list.
func pick(rng *rand.Rand, ids []core.NodeID) core.NodeID {
	return ids[rng.Intn(len(ids))]
}

// connect wraps core.Connect with the method context.
func connect(method string, g *core.Graph, a, b core.NodeID) error {
	if err := g.Connect(a, b); err != nil {
		return fmt.Errorf("%s: Connect(%d,%d): %v: %w", method, a, b, err, ErrConstructFailed)
	}

	return nil
}

// disconnect wraps core.Disconnect with the method context.
func disconnect(method string, g *core.Graph, a, b core.NodeID) error {
	if err := g.Disconnect(a, b); err != nil {
		return fmt.Errorf("%s: Disconnect(%d,%d): %v: %w", method, a, b, err, ErrConstructFailed)
	}

	return nil
}
