// File: builder_test.go
// Package builder_test contains functional tests for the Jellyfish and
// FatTree constructors, verifying counts, port accounting, determinism and
// sentinel errors.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcntopo/builder"
	"github.com/katalvlaran/dcntopo/core"
)

// requireTerminal asserts the Jellyfish terminal state: no free switch port,
// or a single switch with a single free port.
func requireTerminal(t *testing.T, g *core.Graph) {
	t.Helper()
	st := g.Stats()
	switch st.FreeSwitches {
	case 0:
		require.Zero(t, st.FreePorts)
	case 1:
		require.Equal(t, 1, st.FreePorts)
	default:
		t.Fatalf("not terminal: %d switches with %d free ports", st.FreeSwitches, st.FreePorts)
	}
}

func TestJellyfish_OddResidual(t *testing.T) {
	t.Parallel()

	var rep builder.Report
	g, err := builder.NewJellyfish(3, 3, 2,
		builder.WithSeed(7),
		builder.WithObserver(func(r builder.Report) { rep = r }))
	require.NoError(t, err)
	require.True(t, g.Sealed())
	require.NoError(t, g.Validate())

	st := g.Stats()
	require.Equal(t, 3, st.Switches)
	require.Equal(t, 3, st.Servers)
	require.Equal(t, 1, st.SwitchLinks)
	require.Equal(t, 1, st.FreeSwitches)
	require.Equal(t, 1, st.FreePorts)

	// one server per switch, attached in index order
	for i, sw := range g.Switches() {
		nbrs, err := g.Neighbors(sw)
		require.NoError(t, err)
		var servers int
		for _, v := range nbrs {
			n, _ := g.Node(v)
			if n.Role == core.RoleServer {
				servers++
			}
		}
		require.Equal(t, 1, servers, "switch %d", i)
	}

	require.NoError(t, rep.Err)
	require.Equal(t, builder.TopologyJellyfish, rep.Topology)
	require.Equal(t, 1, rep.ResidualFreePorts)
	require.Zero(t, rep.Repairs)
}

func TestJellyfish_RegularFabric(t *testing.T) {
	t.Parallel()

	g, err := builder.NewJellyfish(40, 20, 6, builder.WithSeed(42))
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	requireTerminal(t, g)

	st := g.Stats()
	require.Equal(t, 20, st.Switches)
	require.Equal(t, 40, st.Servers)
	// 20 switches × 4 spare ports ⇒ 40 switch links when fully paired
	require.Equal(t, 40, st.SwitchLinks)
	for _, sv := range g.Servers() {
		deg, err := g.Degree(sv)
		require.NoError(t, err)
		require.Equal(t, 1, deg)
	}
}

func TestJellyfish_TailSwitchesGetFewerServers(t *testing.T) {
	t.Parallel()

	// ceil(5/3) = 2 ⇒ 2, 2, 1
	g, err := builder.NewJellyfish(5, 3, 4, builder.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, g.Servers(), 5)

	want := []int{2, 2, 1}
	for i, sw := range g.Switches() {
		nbrs, _ := g.Neighbors(sw)
		var servers int
		for _, v := range nbrs {
			if n, _ := g.Node(v); n.Role == core.RoleServer {
				servers++
			}
		}
		assert.Equal(t, want[i], servers, "switch %d", i)
	}
}

func TestJellyfish_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() []core.Edge {
		g, err := builder.NewJellyfish(24, 12, 5, builder.WithSeed(2024))
		require.NoError(t, err)
		return g.Edges()
	}
	require.Equal(t, build(), build())
}

func TestJellyfish_Labels(t *testing.T) {
	t.Parallel()

	g, err := builder.NewJellyfish(2, 2, 2,
		builder.WithSeed(1),
		builder.WithSwitchIDs(builder.ExcelColumnIDFn),
		builder.WithServerIDs(builder.SymbolNumberIDFn("host-")))
	require.NoError(t, err)

	_, ok := g.Lookup("A")
	require.True(t, ok)
	_, ok = g.Lookup("B")
	require.True(t, ok)
	_, ok = g.Lookup("host-1")
	require.True(t, ok)
}

func TestJellyfish_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		servers, switches, ports int
	}{
		{"no switches", 0, 0, 4},
		{"no ports", 0, 4, 0},
		{"negative servers", -1, 4, 4},
		{"port budget", 7, 2, 3},
		{"port budget single port", 4, 3, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var rep builder.Report
			_, err := builder.NewJellyfish(tc.servers, tc.switches, tc.ports,
				builder.WithSeed(1),
				builder.WithObserver(func(r builder.Report) { rep = r }))
			require.ErrorIs(t, err, builder.ErrConfiguration)
			require.ErrorIs(t, rep.Err, builder.ErrConfiguration)
		})
	}
}

func TestJellyfish_NeedsRand(t *testing.T) {
	t.Parallel()

	_, err := builder.NewJellyfish(2, 2, 2)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestJellyfish_Stalled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		servers, switches, ports int
	}{
		// two switches, three ports each: one link, then nothing to rewire
		{"pair", 0, 2, 3},
		// a lone switch cannot use two spare ports
		{"lone switch", 1, 1, 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewJellyfish(tc.servers, tc.switches, tc.ports, builder.WithSeed(5))
			require.ErrorIs(t, err, builder.ErrGenerationStalled)
		})
	}
}

func TestJellyfish_LoneSwitchResidual(t *testing.T) {
	t.Parallel()

	g, err := builder.NewJellyfish(1, 1, 2, builder.WithSeed(5))
	require.NoError(t, err)
	require.Equal(t, 1, g.Stats().FreePorts)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMaxRepairs(0) })
	assert.Panics(t, func() { builder.WithObserver(nil) })
	assert.Panics(t, func() { builder.WithSwitchIDs(nil) })
	assert.Panics(t, func() { builder.WithServerIDs(nil) })
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestIDFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AB", builder.ExcelColumnIDFn(27))
	assert.Equal(t, "sff", builder.HexIDFn("s")(255))
	assert.Equal(t, "tor3", builder.SymbolNumberIDFn("tor")(3))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}
