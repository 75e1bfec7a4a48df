// File: api.go
// Role: Read-only facade: Stats snapshot and the structural Validate check.
// Policy:
//   - No mutation here.
//   - Both functions scan the arena once under the read lock.

package core

import "fmt"

// GraphStats is an immutable-by-convention summary of a Graph.
type GraphStats struct {
	Switches     int // number of switch nodes
	Servers      int // number of server nodes
	Edges        int // all undirected edges
	SwitchLinks  int // edges with two switch endpoints
	FreePorts    int // unused ports summed over switches
	FreeSwitches int // switches with at least one unused port
	MaxFreePorts int // largest unused port count of a single switch
	Sealed       bool
}

// Stats produces a deterministic snapshot of node counts, edge counts and
// the free-port budget.
//
// Complexity: Time O(V + E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{Edges: g.edges, Sealed: g.sealed}
	for u := range g.nodes {
		rec := &g.nodes[u]
		if rec.role == RoleServer {
			st.Servers++
			continue
		}
		st.Switches++
		st.FreePorts += rec.free
		if rec.free > 0 {
			st.FreeSwitches++
		}
		if rec.free > st.MaxFreePorts {
			st.MaxFreePorts = rec.free
		}
		for _, v := range rec.nbrs {
			if v > NodeID(u) && g.nodes[v].role == RoleSwitch {
				st.SwitchLinks++
			}
		}
	}

	return st
}

// Validate re-derives every structural invariant from the arena:
//   - neighbor lists strictly ascending (no duplicates) and loop-free;
//   - adjacency symmetric with a consistent edge counter;
//   - free == ports - degree, and degree never above capacity;
//   - every server has exactly one incident edge.
//
// The server rule only holds on finished topologies, so callers run Validate
// after a builder terminates rather than mid-construction.
//
// Errors:
//   - ErrInvariant wrapped with the first offending node.
//
// Complexity: O(V + E log d).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	half := 0
	for u := range g.nodes {
		rec := &g.nodes[u]
		id := NodeID(u)
		deg := len(rec.nbrs)
		if deg > rec.ports {
			return fmt.Errorf("%w: %s degree %d exceeds %d ports", ErrInvariant, rec.label, deg, rec.ports)
		}
		if rec.free != rec.ports-deg {
			return fmt.Errorf("%w: %s free=%d, ports=%d, degree=%d", ErrInvariant, rec.label, rec.free, rec.ports, deg)
		}
		if rec.role == RoleServer && deg != 1 {
			return fmt.Errorf("%w: server %s has degree %d", ErrInvariant, rec.label, deg)
		}
		for i, v := range rec.nbrs {
			if v == id {
				return fmt.Errorf("%w: %s has a self-loop", ErrInvariant, rec.label)
			}
			if i > 0 && rec.nbrs[i-1] >= v {
				return fmt.Errorf("%w: %s neighbor list not strictly ascending", ErrInvariant, rec.label)
			}
			if !g.valid(v) {
				return fmt.Errorf("%w: %s references unknown node %d", ErrInvariant, rec.label, v)
			}
			if _, back := searchNeighbor(g.nodes[v].nbrs, id); !back {
				return fmt.Errorf("%w: edge %s-%s is not symmetric", ErrInvariant, rec.label, g.nodes[v].label)
			}
		}
		half += deg
	}
	if half != 2*g.edges {
		return fmt.Errorf("%w: edge counter %d, adjacency holds %d", ErrInvariant, g.edges, half/2)
	}

	return nil
}
