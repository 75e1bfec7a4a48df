// Package core provides the thread-safe in-memory Graph used to describe
// data-center topologies: switches with a fixed port budget, servers that
// attach through exactly one port, and undirected links between them.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, simple: no self-loops, no parallel edges.
//   - Nodes live in an arena; a NodeID is the arena index, assigned once
//     and never reused, so handles are cheap, comparable and stable.
//   - Adjacency is a sorted []NodeID per node; there are no node↔edge
//     back-references to keep in sync.
//   - Every node carries its port capacity and a free-port counter; the
//     "switches with free ports" partition is a Filter over the arena, not a
//     live list.
//   - One sync.RWMutex: read-only path queries run concurrently, mutations
//     are exclusive. Seal freezes a finished topology.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(role Role, ports int, opts ...NodeOption) (NodeID, error) // O(1)
//	AddSwitch(ports int, opts ...NodeOption) (NodeID, error)          // O(1)
//	AddServer(opts ...NodeOption) (NodeID, error)                     // O(1)
//
//	// Edge lifecycle
//	Connect(a, b NodeID) error     // O(d)
//	Disconnect(a, b NodeID) error  // O(d)
//
//	// Query
//	Neighbors(id NodeID) ([]NodeID, error) // O(d), ascending copy
//	IsNeighbor(a, b NodeID) bool           // O(log d)
//	Degree(id NodeID) (int, error)         // O(1)
//	FreePorts(id NodeID) (int, error)      // O(1)
//	Switches() / Servers() / Filter(pred)  // O(V), ascending
//	Edges() []Edge                         // O(V+E), sorted
//
//	// Maintenance
//	Clone() *Graph     // O(V+E), unsealed deep copy
//	Seal()             // O(1), freeze
//	Stats() GraphStats // O(V+E)
//	Validate() error   // O(V+E log d)
//
// Errors:
//
//	ErrNodeNotFound     - unknown handle
//	ErrBadCapacity      - switch with fewer than one port
//	ErrDuplicateLabel   - label already in use
//	ErrSelfLoop         - Connect(a, a)
//	ErrDuplicateEdge    - Connect on existing neighbors
//	ErrCapacityExceeded - endpoint without a free port
//	ErrNotConnected     - Disconnect on a missing edge
//	ErrSealed           - mutation after Seal
//	ErrInvariant        - Validate failure
//
// The Capacity/Duplicate/SelfLoop/NotConnected family signals a caller bug;
// a correct builder never lets them escape.
package core
