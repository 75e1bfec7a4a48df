// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/AddSwitch/AddServer, lookups,
//       role partitions, degree and free-port counters.
//
// Determinism:
//   - Nodes(), Switches(), Servers() and Filter() enumerate in handle order.
//   - Default labels are "sw<k>" / "sv<k>" with a per-role ordinal k.
//
// Concurrency:
//   - AddNode takes the write lock; every query takes the read lock.
package core

import "strconv"

// Default label prefixes for nodes created without WithLabel.
const (
	switchLabelPrefix = "sw"
	serverLabelPrefix = "sv"
	serverPorts       = 1
)

// AddNode appends a node to the arena and returns its immutable handle.
//
// Implementation:
//   - Stage 1: Validate capacity (servers are forced to a single port).
//   - Stage 2: Under the write lock, build the record, apply options and
//     reserve the label.
//
// Inputs:
//   - role:  RoleSwitch or RoleServer.
//   - ports: port capacity of a switch; ignored for servers.
//   - opts:  WithLabel, WithTier, WithAddr.
//
// Errors:
//   - ErrSealed:         the graph has been frozen.
//   - ErrBadCapacity:    role == RoleSwitch and ports < 1.
//   - ErrDuplicateLabel: the resolved label is already taken.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(role Role, ports int, opts ...NodeOption) (NodeID, error) {
	if role == RoleServer {
		ports = serverPorts
	}
	if ports < 1 {
		return -1, ErrBadCapacity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return -1, ErrSealed
	}

	rec := nodeRecord{role: role, ports: ports, free: ports}
	for _, opt := range opts {
		opt(&rec)
	}
	// Resolve the default label only after options so WithLabel wins.
	if rec.label == "" {
		if role == RoleServer {
			rec.label = serverLabelPrefix + strconv.Itoa(g.serverSeq)
		} else {
			rec.label = switchLabelPrefix + strconv.Itoa(g.switchSeq)
		}
	}
	if _, taken := g.byLabel[rec.label]; taken {
		return -1, ErrDuplicateLabel
	}

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, rec)
	g.byLabel[rec.label] = id
	if role == RoleServer {
		g.serverSeq++
	} else {
		g.switchSeq++
	}

	return id, nil
}

// AddSwitch is AddNode(RoleSwitch, ports, opts...).
func (g *Graph) AddSwitch(ports int, opts ...NodeOption) (NodeID, error) {
	return g.AddNode(RoleSwitch, ports, opts...)
}

// AddServer is AddNode(RoleServer, 1, opts...).
func (g *Graph) AddServer(opts ...NodeOption) (NodeID, error) {
	return g.AddNode(RoleServer, serverPorts, opts...)
}

// HasNode reports whether id names a node of g.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.valid(id)
}

// Node returns a snapshot of the node behind id.
//
// Errors:
//   - ErrNodeNotFound: id is outside the arena.
//
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return Node{}, ErrNodeNotFound
	}

	return g.snapshot(id), nil
}

// Lookup resolves a label to its handle.
// Complexity: O(1).
func (g *Graph) Lookup(label string) (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.byLabel[label]

	return id, ok
}

// Degree returns the number of incident edges of id.
//
// Errors:
//   - ErrNodeNotFound: id is outside the arena.
//
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return 0, ErrNodeNotFound
	}

	return len(g.nodes[id].nbrs), nil
}

// FreePorts returns the unused port capacity of id.
//
// Errors:
//   - ErrNodeNotFound: id is outside the arena.
//
// Complexity: O(1).
func (g *Graph) FreePorts(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return 0, ErrNodeNotFound
	}

	return g.nodes[id].free, nil
}

// NodeCount returns the number of nodes in the arena.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Nodes returns every handle in ascending order.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, len(g.nodes))
	for i := range g.nodes {
		out[i] = NodeID(i)
	}

	return out
}

// Switches returns the handles of all switches in ascending order.
// Complexity: O(V).
func (g *Graph) Switches() []NodeID {
	return g.Filter(func(n Node) bool { return n.Role == RoleSwitch })
}

// Servers returns the handles of all servers in ascending order.
// Complexity: O(V).
func (g *Graph) Servers() []NodeID {
	return g.Filter(func(n Node) bool { return n.Role == RoleServer })
}

// Filter returns, in ascending handle order, every node for which pred
// holds. The predicate sees a snapshot and must not call back into g.
//
// Partitions such as "switches with free ports" are derived through Filter
// on demand instead of being tracked in live lists.
//
// Complexity: O(V) predicate calls.
func (g *Graph) Filter(pred func(Node) bool) []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []NodeID
	for i := range g.nodes {
		if pred(g.snapshot(NodeID(i))) {
			out = append(out, NodeID(i))
		}
	}

	return out
}
