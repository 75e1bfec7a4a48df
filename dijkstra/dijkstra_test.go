// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input errors, tie-breaking, exclusion sets, hop caps
// and agreement with an independent gonum implementation.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/dcntopo/builder"
	"github.com/katalvlaran/dcntopo/core"
	"github.com/katalvlaran/dcntopo/dijkstra"
)

// diamond builds A-B-C-D plus A-C and returns the four handles.
func diamond(t *testing.T) (*core.Graph, [4]core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	var ids [4]core.NodeID
	for i, label := range []string{"A", "B", "C", "D"} {
		id, err := g.AddSwitch(4, core.WithLabel(label))
		require.NoError(t, err)
		ids[i] = id
	}
	a, b, c, d := ids[0], ids[1], ids[2], ids[3]
	require.NoError(t, g.Connect(a, b))
	require.NoError(t, g.Connect(b, c))
	require.NoError(t, g.Connect(c, d))
	require.NoError(t, g.Connect(a, c))

	return g, ids
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPath(nil, 0, 1)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_NodeNotFound(t *testing.T) {
	g, ids := diamond(t)

	_, err := dijkstra.Dijkstra(g, 17)
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	_, err = dijkstra.ShortestPath(g, ids[0], 17)
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	_, err = dijkstra.ShortestPath(g, -3, ids[0])
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

func TestWithMaxHops_Panics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxHops(-1) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestShortestPath_Diamond(t *testing.T) {
	g, ids := diamond(t)
	a, b, c, d := ids[0], ids[1], ids[2], ids[3]

	p, err := dijkstra.ShortestPath(g, a, d)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{a, c, d}, p)

	// Removing A-C forces the long way round.
	p, err = dijkstra.ShortestPath(g, a, d, dijkstra.WithExcludedEdges(core.NewEdgeSet(core.MakeEdge(c, a))))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{a, b, c, d}, p)

	// Excluding C disconnects D.
	p, err = dijkstra.ShortestPath(g, a, d, dijkstra.WithExcludedNodes(c))
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestShortestPath_SameNode(t *testing.T) {
	g, ids := diamond(t)

	p, err := dijkstra.ShortestPath(g, ids[2], ids[2])
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{ids[2]}, p)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g, ids := diamond(t)
	lone, err := g.AddSwitch(1)
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(g, ids[0], lone)
	require.NoError(t, err, "unreachable is a value, not an error")
	require.Nil(t, p)

	res, err := dijkstra.Dijkstra(g, ids[0])
	require.NoError(t, err)
	require.False(t, res.Reachable(lone))
	require.Equal(t, dijkstra.Unreachable, res.Dist[lone])
	require.Equal(t, dijkstra.None, res.Prev[lone])
	require.Nil(t, res.PathTo(lone))
}

func TestDijkstra_LowestIndexTieBreak(t *testing.T) {
	// 0 connects to 3 and 1; both reach 4 in two hops. Predecessor of 4 must be 1.
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		_, err := g.AddSwitch(4)
		require.NoError(t, err)
	}
	require.NoError(t, g.Connect(0, 3))
	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.Connect(3, 4))
	require.NoError(t, g.Connect(1, 4))
	require.NoError(t, g.Connect(0, 2))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 1, 1, 2}, res.Dist)
	require.Equal(t, core.NodeID(1), res.Prev[4])
	require.Equal(t, []core.NodeID{0, 1, 4}, res.PathTo(4))

	// The answer must not depend on insertion order of links.
	p, err := dijkstra.ShortestPath(g, 4, 0)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{4, 1, 0}, p)
}

func TestDijkstra_MaxHops(t *testing.T) {
	g, ids := diamond(t)
	a, d := ids[0], ids[3]

	res, err := dijkstra.Dijkstra(g, a, dijkstra.WithMaxHops(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 1, dijkstra.Unreachable}, res.Dist)

	p, err := dijkstra.ShortestPath(g, a, d, dijkstra.WithMaxHops(1))
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestDijkstra_SourceNeverExcluded(t *testing.T) {
	g, ids := diamond(t)
	a, d := ids[0], ids[3]

	p, err := dijkstra.ShortestPath(g, a, d, dijkstra.WithExcludedNodes(a))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{a, ids[2], d}, p)
}

// ------------------------------------------------------------------------
// 3. Cross-checks on generated fabrics
// ------------------------------------------------------------------------

func TestDijkstra_MatchesGonum(t *testing.T) {
	g, err := builder.NewJellyfish(30, 15, 6, builder.WithSeed(9))
	require.NoError(t, err)

	ug := simple.NewUndirectedGraph()
	for _, id := range g.Nodes() {
		ug.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(ug.NewEdge(simple.Node(e.U), simple.Node(e.V)))
	}

	for _, src := range []core.NodeID{0, 3, 14, 20} {
		res, err := dijkstra.Dijkstra(g, src)
		require.NoError(t, err)

		tree := path.DijkstraFrom(simple.Node(src), ug)
		for _, v := range g.Nodes() {
			w := tree.WeightTo(int64(v))
			if math.IsInf(w, 1) {
				require.Equal(t, dijkstra.Unreachable, res.Dist[v])
				continue
			}
			require.Equal(t, int(w), res.Dist[v], "src=%d v=%d", src, v)
			require.Len(t, res.PathTo(v), res.Dist[v]+1)
		}
	}
}

func TestDijkstra_PathsAreWalks(t *testing.T) {
	g, err := builder.NewFatTree(4)
	require.NoError(t, err)

	servers := g.Servers()
	for _, dst := range servers[1:] {
		p, err := dijkstra.ShortestPath(g, servers[0], dst)
		require.NoError(t, err)
		require.NotNil(t, p)
		require.Equal(t, servers[0], p[0])
		require.Equal(t, dst, p[len(p)-1])
		for i := 1; i < len(p); i++ {
			require.True(t, g.IsNeighbor(p[i-1], p[i]))
		}
		// fat-tree server pairs sit 2, 4 or 6 hops apart
		require.Contains(t, []int{2, 4, 6}, len(p)-1)
	}
}
