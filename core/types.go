// Package core defines the central Graph, Node, and Edge types of a
// data-center topology, and provides thread-safe primitives for building,
// querying, and cloning such graphs.
//
// All core APIs share one sync.RWMutex: readers (path finders, statistics)
// may run concurrently with each other, mutators are exclusive.
//
// This file declares Role, Tier, NodeID, Node, Edge, EdgeSet, NodeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound      - handle does not name a node of this graph.
//	ErrBadCapacity       - switch created with fewer than one port.
//	ErrDuplicateLabel    - AddNode with a label already in use.
//	ErrSelfLoop          - Connect(a, a).
//	ErrDuplicateEdge     - Connect on an existing neighbor pair.
//	ErrCapacityExceeded  - an endpoint has no free port left.
//	ErrNotConnected      - Disconnect on a pair that is not linked.
//	ErrSealed            - mutation attempted after Seal.
//	ErrInvariant         - Validate found a broken structural invariant.
package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node handle.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadCapacity indicates a switch was declared with fewer than one port.
	ErrBadCapacity = errors.New("core: port capacity must be positive")

	// ErrDuplicateLabel indicates AddNode was given a label that is already taken.
	ErrDuplicateLabel = errors.New("core: duplicate node label")

	// ErrSelfLoop indicates Connect was called with identical endpoints.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the two endpoints are already neighbors.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrCapacityExceeded indicates an endpoint has no free port left.
	ErrCapacityExceeded = errors.New("core: port capacity exceeded")

	// ErrNotConnected indicates Disconnect on a pair without an edge.
	ErrNotConnected = errors.New("core: nodes not connected")

	// ErrSealed indicates a mutation on a graph that was sealed after construction.
	ErrSealed = errors.New("core: graph is sealed")

	// ErrInvariant indicates Validate detected a structural inconsistency.
	ErrInvariant = errors.New("core: invariant violated")
)

// Role tags a node as a switching element or an end-host.
type Role uint8

const (
	// RoleSwitch is a switching element with a fixed port budget.
	RoleSwitch Role = iota
	// RoleServer is an end-host; it owns exactly one port.
	RoleServer
)

// String returns "switch" or "server".
func (r Role) String() string {
	switch r {
	case RoleSwitch:
		return "switch"
	case RoleServer:
		return "server"
	default:
		return "role(" + strconv.Itoa(int(r)) + ")"
	}
}

// Tier places a switch inside a layered (fat-tree) topology.
// Randomized topologies leave every node at TierNone.
type Tier uint8

const (
	TierNone Tier = iota
	TierCore
	TierAggregation
	TierEdge
)

// String returns the lower-case tier name.
func (t Tier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierCore:
		return "core"
	case TierAggregation:
		return "aggregation"
	case TierEdge:
		return "edge"
	default:
		return "tier(" + strconv.Itoa(int(t)) + ")"
	}
}

// NodeID is the immutable handle of a node: its index in the graph arena.
// Handles are assigned in creation order starting at 0 and are never reused.
type NodeID int

// Node is a read-only snapshot of one arena record.
//
// ID, Role, Tier, Label, Addr and Ports never change after creation.
// FreePorts reflects the state at the moment the snapshot was taken.
type Node struct {
	ID        NodeID
	Role      Role
	Tier      Tier
	Label     string // human-readable name, unique per graph ("sw0", "sv3", "c1", ...)
	Addr      string // optional address, e.g. fat-tree 10.pod.switch.id
	Ports     int    // port capacity (1 for servers)
	FreePorts int
}

// Edge is an unordered pair of node handles stored in normalized form U < V.
type Edge struct {
	U NodeID
	V NodeID
}

// MakeEdge returns the normalized edge between a and b.
// Complexity: O(1).
func MakeEdge(a, b NodeID) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Other returns the endpoint opposite to id. The result is meaningless
// when id is not an endpoint of e.
func (e Edge) Other(id NodeID) NodeID {
	if e.U == id {
		return e.V
	}

	return e.U
}

// EdgeSet is a set of undirected edges keyed by their normalized form.
// The zero value is not usable; create one with make or NewEdgeSet.
type EdgeSet map[Edge]struct{}

// NewEdgeSet returns a set holding the given edges.
func NewEdgeSet(edges ...Edge) EdgeSet {
	s := make(EdgeSet, len(edges))
	for _, e := range edges {
		s[MakeEdge(e.U, e.V)] = struct{}{}
	}

	return s
}

// Add inserts the edge a-b; orientation is irrelevant.
func (s EdgeSet) Add(a, b NodeID) { s[MakeEdge(a, b)] = struct{}{} }

// Has reports whether the edge a-b is in the set; a nil set holds nothing.
func (s EdgeSet) Has(a, b NodeID) bool {
	if s == nil {
		return false
	}
	_, ok := s[MakeEdge(a, b)]

	return ok
}

// Len returns the number of edges in the set.
func (s EdgeSet) Len() int { return len(s) }

// NodeOption configures the immutable attributes of a node at creation time.
type NodeOption func(*nodeRecord)

// WithLabel overrides the default per-role label ("sw<k>" / "sv<k>").
// An empty label keeps the default.
func WithLabel(label string) NodeOption {
	return func(r *nodeRecord) {
		if label != "" {
			r.label = label
		}
	}
}

// WithTier records the layered-topology tier of a switch.
func WithTier(t Tier) NodeOption {
	return func(r *nodeRecord) { r.tier = t }
}

// WithAddr attaches an address string to the node.
func WithAddr(addr string) NodeOption {
	return func(r *nodeRecord) { r.addr = addr }
}

// nodeRecord is one arena slot. nbrs is kept sorted ascending and holds each
// neighbor exactly once; free == ports - len(nbrs) at all times.
type nodeRecord struct {
	role  Role
	tier  Tier
	label string
	addr  string
	ports int
	free  int
	nbrs  []NodeID
}

// Graph is an undirected simple graph of switches and servers.
//
// Nodes live in an arena indexed by NodeID; adjacency is a sorted handle
// list per node, so there are no node↔edge back-references. Invariants
// holding after every public call:
//   - no self-loops and no duplicate edges;
//   - a node's degree never exceeds its port capacity;
//   - adjacency is symmetric.
//
// A server reaches exactly one incident edge once its builder finishes;
// Validate checks that property on finished graphs.
type Graph struct {
	mu sync.RWMutex // guards every field below

	nodes   []nodeRecord      // arena, index == NodeID
	byLabel map[string]NodeID // label → handle
	edges   int               // number of undirected edges
	sealed  bool              // true once the graph has been frozen

	// per-role ordinal counters for default labels
	switchSeq int
	serverSeq int
}

// NewGraph creates an empty, unsealed Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:   make([]nodeRecord, 0),
		byLabel: make(map[string]NodeID),
	}
}

// valid reports whether id names an arena slot. Caller holds g.mu.
func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// snapshot converts a record into its public Node form. Caller holds g.mu.
func (g *Graph) snapshot(id NodeID) Node {
	r := &g.nodes[id]

	return Node{
		ID:        id,
		Role:      r.role,
		Tier:      r.tier,
		Label:     r.label,
		Addr:      r.addr,
		Ports:     r.ports,
		FreePorts: r.free,
	}
}
