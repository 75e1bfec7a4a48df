// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcntopo/core"
)

// TestConcurrentConnect attaches many servers to one switch in parallel;
// exactly the port budget must succeed.
func TestConcurrentConnect(t *testing.T) {
	const ports = 64
	const servers = 200

	g := core.NewGraph()
	hub, err := g.AddSwitch(ports)
	require.NoError(t, err)

	ids := make([]core.NodeID, servers)
	for i := range ids {
		ids[i], err = g.AddServer()
		require.NoError(t, err)
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	wg.Add(servers)
	for _, id := range ids {
		go func(id core.NodeID) {
			defer wg.Done()
			if g.Connect(hub, id) == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	require.Equal(t, ports, ok)
	deg, err := g.Degree(hub)
	require.NoError(t, err)
	require.Equal(t, ports, deg)
	require.Equal(t, ports, g.EdgeCount())
}

// TestConcurrentReadersWriters mixes Connect/Disconnect with neighbor queries
// to surface races under -race.
func TestConcurrentReadersWriters(t *testing.T) {
	g := core.NewGraph()
	const n = 16
	for i := 0; i < n; i++ {
		_, err := g.AddSwitch(n)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(u core.NodeID) {
			defer wg.Done()
			for v := core.NodeID(0); v < n; v++ {
				_ = g.Connect(u, v)
				_ = g.Disconnect(u, (v+1)%n)
			}
		}(core.NodeID(i))
		go func(u core.NodeID) {
			defer wg.Done()
			for k := 0; k < n; k++ {
				_, _ = g.Neighbors(u)
				_ = g.IsNeighbor(u, core.NodeID(k))
				_ = g.Stats()
			}
		}(core.NodeID(i))
	}
	wg.Wait()

	require.NoError(t, g.Validate())
}
