package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcntopo/builder"
	"github.com/katalvlaran/dcntopo/core"
)

func TestFatTree_Counts(t *testing.T) {
	t.Parallel()

	for _, k := range []int{2, 4, 6, 8} {
		k := k
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			var rep builder.Report
			g, err := builder.NewFatTree(k, builder.WithObserver(func(r builder.Report) { rep = r }))
			require.NoError(t, err)
			require.NoError(t, g.Validate())

			half := k / 2
			cores := g.Filter(func(n core.Node) bool { return n.Tier == core.TierCore })
			aggs := g.Filter(func(n core.Node) bool { return n.Tier == core.TierAggregation })
			edges := g.Filter(func(n core.Node) bool { return n.Tier == core.TierEdge })
			require.Len(t, cores, half*half)
			require.Len(t, aggs, k*half)
			require.Len(t, edges, k*half)
			require.Len(t, g.Servers(), k*k*k/4)

			st := g.Stats()
			require.Zero(t, st.FreePorts, "every switch port is used")
			// hosts + core↔agg + agg↔edge
			require.Equal(t, k*k*k/4+half*half*k+k*half*half, st.Edges)

			require.NoError(t, rep.Err)
			require.Equal(t, builder.TopologyFatTree, rep.Topology)
			require.Equal(t, st.Switches, rep.Switches)
			require.Equal(t, st.Servers, rep.Servers)
		})
	}
}

func TestFatTree_WiringAndAddresses(t *testing.T) {
	t.Parallel()

	g, err := builder.NewFatTree(4)
	require.NoError(t, err)

	node := func(label string) core.Node {
		id, ok := g.Lookup(label)
		require.True(t, ok, label)
		n, err := g.Node(id)
		require.NoError(t, err)
		return n
	}
	labels := func(id core.NodeID) []string {
		nbrs, err := g.Neighbors(id)
		require.NoError(t, err)
		out := make([]string, len(nbrs))
		for i, v := range nbrs {
			n, _ := g.Node(v)
			out[i] = n.Label
		}
		return out
	}

	c0 := node("c0")
	require.Equal(t, "10.4.1.1", c0.Addr)
	require.Equal(t, []string{"a0", "a2", "a4", "a6"}, labels(c0.ID))

	c3 := node("c3")
	require.Equal(t, "10.4.2.2", c3.Addr)
	require.Equal(t, []string{"a1", "a3", "a5", "a7"}, labels(c3.ID))

	require.Equal(t, "10.1.2.1", node("a2").Addr)
	require.Equal(t, "10.1.1.1", node("e3").Addr)
	require.Equal(t, "10.0.0.2", node("h0").Addr)
	require.Equal(t, "10.0.1.3", node("h3").Addr)

	// pod 0 edge switch e0: aggregation a0, a1 and hosts h0, h1
	require.Equal(t, []string{"a0", "a1", "h0", "h1"}, labels(node("e0").ID))
}

func TestFatTree_BadK(t *testing.T) {
	t.Parallel()

	for _, k := range []int{-2, 0, 1, 3, 7} {
		_, err := builder.NewFatTree(k)
		require.ErrorIs(t, err, builder.ErrConfiguration, "k=%d", k)
	}
}
