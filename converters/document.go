package converters

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dcntopo/core"
)

// ErrBadDocument is returned when a Document cannot describe a valid graph.
var ErrBadDocument = errors.New("converters: invalid topology document")

// Document is the serialized form of a topology.
type Document struct {
	Name  string    `yaml:"name,omitempty" json:"name,omitempty"`
	Nodes []NodeDoc `yaml:"nodes" json:"nodes"`
	Links []LinkDoc `yaml:"links" json:"links"`
}

// NodeDoc describes one node. ID must equal the node's position in
// Document.Nodes.
type NodeDoc struct {
	ID    int    `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
	Role  string `yaml:"role" json:"role"`
	Tier  string `yaml:"tier,omitempty" json:"tier,omitempty"`
	Addr  string `yaml:"addr,omitempty" json:"addr,omitempty"`
	Ports int    `yaml:"ports" json:"ports"`
}

// LinkDoc is one undirected link between two node labels.
type LinkDoc struct {
	A string `yaml:"a" json:"a"`
	B string `yaml:"b" json:"b"`
}

// ToDocument snapshots g. Nodes are listed by handle, links in Edges order.
func ToDocument(g *core.Graph, name string) (*Document, error) {
	doc := &Document{Name: name}
	labels := make([]string, g.NodeCount())
	for _, id := range g.Nodes() {
		n, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		labels[id] = n.Label
		nd := NodeDoc{ID: int(n.ID), Label: n.Label, Role: n.Role.String(), Addr: n.Addr, Ports: n.Ports}
		if n.Tier != core.TierNone {
			nd.Tier = n.Tier.String()
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	for _, e := range g.Edges() {
		doc.Links = append(doc.Links, LinkDoc{A: labels[e.U], B: labels[e.V]})
	}

	return doc, nil
}

// FromDocument rebuilds and seals the graph described by doc.
//
// Errors: ErrBadDocument wrapping the first offending entry or a failed
// graph validation, or the core error raised while replaying an entry.
func FromDocument(doc *Document) (*core.Graph, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrBadDocument)
	}
	g := core.NewGraph()
	for i, nd := range doc.Nodes {
		if nd.ID != i {
			return nil, fmt.Errorf("%w: node %q has id %d at position %d", ErrBadDocument, nd.Label, nd.ID, i)
		}
		role, err := parseRole(nd.Role)
		if err != nil {
			return nil, err
		}
		tier, err := parseTier(nd.Tier)
		if err != nil {
			return nil, err
		}
		opts := []core.NodeOption{core.WithTier(tier)}
		if nd.Label != "" {
			opts = append(opts, core.WithLabel(nd.Label))
		}
		if nd.Addr != "" {
			opts = append(opts, core.WithAddr(nd.Addr))
		}
		if _, err = g.AddNode(role, nd.Ports, opts...); err != nil {
			return nil, fmt.Errorf("converters: node %q: %w", nd.Label, err)
		}
	}
	for _, l := range doc.Links {
		a, okA := g.Lookup(l.A)
		b, okB := g.Lookup(l.B)
		if !okA || !okB {
			return nil, fmt.Errorf("%w: link %s-%s names an unknown node", ErrBadDocument, l.A, l.B)
		}
		if err := g.Connect(a, b); err != nil {
			return nil, fmt.Errorf("converters: link %s-%s: %w", l.A, l.B, err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	g.Seal()

	return g, nil
}

func parseRole(s string) (core.Role, error) {
	switch s {
	case core.RoleSwitch.String():
		return core.RoleSwitch, nil
	case core.RoleServer.String():
		return core.RoleServer, nil
	}

	return 0, fmt.Errorf("%w: unknown role %q", ErrBadDocument, s)
}

func parseTier(s string) (core.Tier, error) {
	for _, t := range []core.Tier{core.TierNone, core.TierCore, core.TierAggregation, core.TierEdge} {
		if s == t.String() {
			return t, nil
		}
	}
	if s == "" {
		return core.TierNone, nil
	}

	return 0, fmt.Errorf("%w: unknown tier %q", ErrBadDocument, s)
}
