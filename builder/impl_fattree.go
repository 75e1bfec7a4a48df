// SPDX-License-Identifier: MIT
// Package: dcntopo/builder
//
// impl_fattree.go - implementation of FatTree(k) constructor.
//
// Canonical model (three-tier k-ary fat-tree, k even):
//   • (k/2)² core switches     c0..,  addr 10.k.j.i   (j,i ∈ [1,k/2]).
//   • k pods, each with k/2 aggregation switches a.., addr 10.pod.(k/2+i).1
//     and k/2 edge switches e.., addr 10.pod.i.1.
//   • k/2 hosts h.. per edge switch, addr 10.pod.edge.(port+2).
//   • Core c links to aggregation switch pod·(k/2) + c/(k/2) of every pod;
//     aggregation and edge switches of a pod form a complete bipartite graph.
//
// Contract:
//   • k ≥ MinFatTreePorts and even (else ErrConfiguration).
//   • Every switch has k ports and ends up with all of them in use.
//   • Labels are fixed (c/a/e/h + global index); the ID schemes of
//     WithSwitchIDs/WithServerIDs do not apply.
//
// Complexity:
//   • O(k³) nodes and edges; O(k²) extra space for the handle tables.
//
// Determinism:
//   • Creation order is cores, aggregation, edge switches, then hosts pod by
//     pod; edges are emitted in the same order. No RNG is used.

package builder

import (
	"fmt"
	"strconv"
	"time"

	"github.com/katalvlaran/dcntopo/core"
)

// FatTree returns a Constructor that builds the k-ary fat-tree.
func FatTree(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		start := time.Now()
		rep := Report{Topology: TopologyFatTree, Ports: k}
		finish := func(err error) error {
			rep.Duration = time.Since(start)
			rep.Err = err
			cfg.emit(rep)

			return err
		}

		if err := validateMin(MethodFatTree, "k", k, MinFatTreePorts); err != nil {
			return finish(err)
		}
		if err := validateEven(MethodFatTree, "k", k); err != nil {
			return finish(err)
		}

		half := k / 2
		pods := k

		// 1) Core layer on a (k/2)×(k/2) grid.
		cores := make([]core.NodeID, half*half)
		for c := range cores {
			addr := fatTreeAddr(k, c/half+1, c%half+1)
			id, err := g.AddSwitch(k,
				core.WithLabel(fatTreeCorePrefix+strconv.Itoa(c)),
				core.WithTier(core.TierCore),
				core.WithAddr(addr))
			if err != nil {
				return finish(builderErrorf(MethodFatTree, ErrConstructFailed, "core %d: %v", c, err))
			}
			cores[c] = id
		}

		// 2) Aggregation and edge layers, pod by pod.
		aggs := make([]core.NodeID, pods*half)
		edges := make([]core.NodeID, pods*half)
		for p := 0; p < pods; p++ {
			for i := 0; i < half; i++ {
				idx := p*half + i
				id, err := g.AddSwitch(k,
					core.WithLabel(fatTreeAggPrefix+strconv.Itoa(idx)),
					core.WithTier(core.TierAggregation),
					core.WithAddr(fatTreeAddr(p, half+i, 1)))
				if err != nil {
					return finish(builderErrorf(MethodFatTree, ErrConstructFailed, "aggregation %d: %v", idx, err))
				}
				aggs[idx] = id
			}
		}
		for p := 0; p < pods; p++ {
			for i := 0; i < half; i++ {
				idx := p*half + i
				id, err := g.AddSwitch(k,
					core.WithLabel(fatTreeEdgePrefix+strconv.Itoa(idx)),
					core.WithTier(core.TierEdge),
					core.WithAddr(fatTreeAddr(p, i, 1)))
				if err != nil {
					return finish(builderErrorf(MethodFatTree, ErrConstructFailed, "edge %d: %v", idx, err))
				}
				edges[idx] = id
			}
		}

		// 3) Hosts: k/2 per edge switch.
		hosts := 0
		for p := 0; p < pods; p++ {
			for e := 0; e < half; e++ {
				sw := edges[p*half+e]
				for port := 0; port < half; port++ {
					h, err := g.AddServer(
						core.WithLabel(fatTreeHostPrefix+strconv.Itoa(hosts)),
						core.WithAddr(fatTreeAddr(p, e, port+fatTreeHostOffset)))
					if err != nil {
						return finish(builderErrorf(MethodFatTree, ErrConstructFailed, "host %d: %v", hosts, err))
					}
					if err = connect(MethodFatTree, g, sw, h); err != nil {
						return finish(err)
					}
					hosts++
				}
			}
		}

		// 4) Core ↔ aggregation: core c serves aggregation slot c/(k/2) of every pod.
		for c, cid := range cores {
			for p := 0; p < pods; p++ {
				if err := connect(MethodFatTree, g, cid, aggs[p*half+c/half]); err != nil {
					return finish(err)
				}
			}
		}

		// 5) Aggregation ↔ edge: complete bipartite inside each pod.
		for p := 0; p < pods; p++ {
			for i := 0; i < half; i++ {
				for e := 0; e < half; e++ {
					if err := connect(MethodFatTree, g, aggs[p*half+i], edges[p*half+e]); err != nil {
						return finish(err)
					}
				}
			}
		}

		rep.Switches = len(cores) + len(aggs) + len(edges)
		rep.Servers = hosts
		rep.ResidualFreePorts = residualPorts(g)

		cfg.logger.Info().
			Int("k", k).
			Int("switches", rep.Switches).
			Int("hosts", hosts).
			Msg("fat-tree built")

		return finish(nil)
	}
}

// fatTreeAddr renders 10.x.y.z.
func fatTreeAddr(x, y, z int) string {
	return fmt.Sprintf("%d.%d.%d.%d", fatTreeNet, x, y, z)
}
