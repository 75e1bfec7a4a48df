package converters

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/dcntopo/core"
)

// ToGonum copies g into a gonum undirected graph. Node i of g becomes
// simple.Node(i); isolated nodes are kept.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for _, id := range g.Nodes() {
		ug.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(ug.NewEdge(simple.Node(e.U), simple.Node(e.V)))
	}

	return ug
}

// GonumDistances returns the hop distance from source to every node using
// gonum's Dijkstra with unit weights; unreachable nodes get -1.
func GonumDistances(g *core.Graph, source core.NodeID) []int {
	ug := ToGonum(g)
	tree := path.DijkstraFrom(simple.Node(source), ug)

	dist := make([]int, g.NodeCount())
	for v := range dist {
		w := tree.WeightTo(int64(v))
		if math.IsInf(w, 1) {
			dist[v] = -1
			continue
		}
		dist[v] = int(w)
	}

	return dist
}
