package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcntopo/bfs"
	"github.com/katalvlaran/dcntopo/builder"
	"github.com/katalvlaran/dcntopo/core"
	"github.com/katalvlaran/dcntopo/dijkstra"
)

// chain builds n switches joined 0-1-2-…-(n-1).
func chain(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if _, err := g.AddSwitch(2); err != nil {
			t.Fatalf("AddSwitch: %v", err)
		}
	}
	for i := 0; i+1 < n; i++ {
		if err := g.Connect(core.NodeID(i), core.NodeID(i+1)); err != nil {
			t.Fatalf("Connect: %v", err)
		}
	}

	return g
}

// cycle closes a 4-switch ring 0-1-2-3-0.
func cycle(t testing.TB) *core.Graph {
	t.Helper()
	g := chain(t, 4)
	if err := g.Connect(3, 0); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 0); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g = chain(t, 1)
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-node graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := chain(t, 1)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.NodeID{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[0]; d != 0 {
		t.Errorf("Depth[0] = %d; want 0", d)
	}
	if _, ok := res.Parent[0]; ok {
		t.Errorf("root must have no parent")
	}
}

// TestCycleAndDepths checks order, depths and parents on a ring.
func TestCycleAndDepths(t *testing.T) {
	g := cycle(t)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	require.Equal(t, []core.NodeID{0, 1, 3, 2}, res.Order)
	require.Equal(t, map[core.NodeID]int{0: 0, 1: 1, 3: 1, 2: 2}, res.Depth)
	require.Equal(t, map[core.NodeID]core.NodeID{1: 0, 3: 0, 2: 1}, res.Parent)

	p, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1, 2}, p)
}

func TestPathTo_Unreached(t *testing.T) {
	g := chain(t, 2)
	_, err := g.AddSwitch(1)
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	_, err = res.PathTo(2)
	require.Error(t, err)

	p, err := res.PathTo(0)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0}, p)
}

// TestMaxDepth ensures nodes beyond the limit are never enqueued.
func TestMaxDepth(t *testing.T) {
	g := chain(t, 6)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1, 2}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Len(t, res.Order, 6)
}

func TestFilterNeighbor(t *testing.T) {
	g := cycle(t)
	res, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(curr, nbr core.NodeID) bool {
		return !(curr == 0 && nbr == 3)
	}))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1, 2, 3}, res.Order)
	require.Equal(t, 3, res.Depth[3])
}

func TestHooks(t *testing.T) {
	g := chain(t, 3)
	var enq, deq, vis []core.NodeID
	res, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(id core.NodeID, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id core.NodeID, _ int) { deq = append(deq, id) }),
		bfs.WithOnVisit(func(id core.NodeID, _ int) error {
			vis = append(vis, id)
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, res.Order, enq)
	require.Equal(t, res.Order, deq)
	require.Equal(t, res.Order, vis)
}

func TestOnVisitAbort(t *testing.T) {
	g := chain(t, 5)
	stop := errors.New("stop")
	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id core.NodeID, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []core.NodeID{0, 1, 2}, res.Order)
}

func TestContextCancel(t *testing.T) {
	g := chain(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := chain(t, 3)
	lone, err := g.AddSwitch(1)
	require.NoError(t, err)
	x, err := g.AddSwitch(1)
	require.NoError(t, err)
	y, err := g.AddServer()
	require.NoError(t, err)
	require.NoError(t, g.Connect(x, y))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	require.Equal(t, [][]core.NodeID{{0, 1, 2}, {lone}, {x, y}}, comps)

	ok, err := bfs.Connected(g)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.Connected(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	ok, err = bfs.Connected(core.NewGraph())
	require.NoError(t, err)
	require.True(t, ok)
}

// TestDepthMatchesDijkstra cross-checks hop depths on a generated fabric.
func TestDepthMatchesDijkstra(t *testing.T) {
	g, err := builder.NewFatTree(4)
	require.NoError(t, err)

	ok, err := bfs.Connected(g)
	require.NoError(t, err)
	require.True(t, ok)

	for _, src := range []core.NodeID{0, 5, 20, 35} {
		res, err := bfs.BFS(g, src)
		require.NoError(t, err)
		dr, err := dijkstra.Dijkstra(g, src)
		require.NoError(t, err)
		for v, d := range dr.Dist {
			require.Equal(t, d, res.Depth[core.NodeID(v)], "src %d node %d", src, v)
		}
	}
}
