// SPDX-License-Identifier: MIT
// Package: dcntopo/builder
//
// impl_jellyfish.go - implementation of Jellyfish(numServers, numSwitches, numPorts).
//
// Canonical model:
//   • numSwitches switches with numPorts ports each; numServers single-port
//     servers attached ceil(numServers/numSwitches) per switch in index order.
//   • Remaining switch ports are paired at random into a simple graph.
//   • Dead ends are resolved by a rewiring repair: for a switch s1 with two
//     free ports, drop a link s2-s3 between full switches that are both
//     non-neighbors of s1 and add s1-s2, s1-s3. A switch with one free port
//     first releases a switch link; when no move exists at all, a random
//     full-full link is dropped and the connection passes resume.
//
// Contract:
//   • numSwitches ≥ 1, numPorts ≥ 1, numServers ≥ 0, and the port budget
//     must cover the servers (else ErrConfiguration).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Terminates when no switch has a free port, or when exactly one switch
//     is left with exactly one free port.
//   • At most cfg.repairBudget(S, P) repairs (else ErrGenerationStalled).
//
// Determinism:
//   • All candidate lists are index ordered; randomness comes only from
//     cfg.rng, so a fixed seed reproduces the edge set exactly.

package builder

import (
	"time"

	"github.com/katalvlaran/dcntopo/core"
)

// Jellyfish returns a Constructor that builds a random regular data-center
// fabric with servers attached to its switches.
//
// Exactly numServers servers are created. Switches in index order receive
// ceil(numServers/numSwitches) each until the count is reached, so tail
// switches may carry fewer; the count is not rounded up to a multiple of
// numSwitches.
//
// Implementation:
//   - Stage 1: Validate sizes and the port budget; require an RNG.
//   - Stage 2: Create switches, then attach servers in switch index order.
//   - Stage 3: Random connection passes until a pass adds nothing.
//   - Stage 4: Terminal check; otherwise one rewiring repair and back to 3.
//   - Stage 5: Validate the finished graph.
//
// Complexity:
//   - Time O(R·(V + S·P)) for R passes/repairs, Space O(V + E).
func Jellyfish(numServers, numSwitches, numPorts int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		start := time.Now()
		rep := Report{
			Topology: TopologyJellyfish,
			Switches: numSwitches,
			Servers:  numServers,
			Ports:    numPorts,
		}
		finish := func(err error) error {
			rep.Duration = time.Since(start)
			rep.ResidualFreePorts = residualPorts(g)
			rep.Err = err
			cfg.emit(rep)

			return err
		}

		if err := validateMin(MethodJellyfish, "switches", numSwitches, MinSwitches); err != nil {
			return finish(err)
		}
		if err := validateMin(MethodJellyfish, "ports", numPorts, MinPorts); err != nil {
			return finish(err)
		}
		if err := validateMin(MethodJellyfish, "servers", numServers, 0); err != nil {
			return finish(err)
		}
		if err := validatePortBudget(MethodJellyfish, numServers, numSwitches, numPorts); err != nil {
			return finish(err)
		}
		if cfg.rng == nil {
			return finish(builderErrorf(MethodJellyfish, ErrNeedRandSource, "seed or rand source not set"))
		}

		if err := attachServers(g, cfg, numServers, numSwitches, numPorts); err != nil {
			return finish(err)
		}

		j := &jellyfish{g: g, cfg: cfg, budget: cfg.repairBudget(numSwitches, numPorts)}
		if err := j.run(); err != nil {
			rep.Rounds, rep.Repairs = j.rounds, j.repairs
			cfg.logger.Warn().
				Err(err).
				Int("rounds", j.rounds).
				Int("repairs", j.repairs).
				Int("budget", j.budget).
				Msg("jellyfish generation stalled")

			return finish(err)
		}
		rep.Rounds, rep.Repairs = j.rounds, j.repairs

		if err := g.Validate(); err != nil {
			return finish(builderErrorf(MethodJellyfish, ErrConstructFailed, "%v", err))
		}

		cfg.logger.Info().
			Int("switches", numSwitches).
			Int("servers", numServers).
			Int("ports", numPorts).
			Int("rounds", j.rounds).
			Int("repairs", j.repairs).
			Int("residual", residualPorts(g)).
			Msg("jellyfish generated")

		return finish(nil)
	}
}

// attachServers creates every switch, then hangs ceil(numServers/numSwitches)
// servers off each switch in index order until numServers exist.
// Complexity: O(S + N).
func attachServers(g *core.Graph, cfg builderConfig, numServers, numSwitches, numPorts int) error {
	switches := make([]core.NodeID, numSwitches)
	for i := range switches {
		id, err := g.AddSwitch(numPorts, core.WithLabel(cfg.switchID(i)))
		if err != nil {
			return builderErrorf(MethodJellyfish, ErrConstructFailed, "AddSwitch(%d): %v", i, err)
		}
		switches[i] = id
	}

	per := serversPerSwitch(numServers, numSwitches)
	created := 0
	for _, sw := range switches {
		for k := 0; k < per && created < numServers; k++ {
			h, err := g.AddServer(core.WithLabel(cfg.serverID(created)))
			if err != nil {
				return builderErrorf(MethodJellyfish, ErrConstructFailed, "AddServer(%d): %v", created, err)
			}
			if err = connect(MethodJellyfish, g, sw, h); err != nil {
				return err
			}
			created++
		}
	}

	return nil
}

// jellyfish carries the mutable state of one generation run.
type jellyfish struct {
	g       *core.Graph
	cfg     builderConfig
	budget  int
	rounds  int
	repairs int
}

// run alternates connection passes and repairs until a terminal state.
func (j *jellyfish) run() error {
	for {
		for {
			added, err := j.connectPass()
			if err != nil {
				return err
			}
			j.rounds++
			if added == 0 {
				break
			}
		}

		if j.terminal() {
			return nil
		}
		if j.repairs >= j.budget {
			return builderErrorf(MethodJellyfish, ErrGenerationStalled,
				"repair budget %d exhausted with %d free ports left", j.budget, residualPorts(j.g))
		}
		if err := j.repair(); err != nil {
			return err
		}
		j.repairs++
	}
}

// connectPass visits free switches in random order and, for each, tries the
// other free switches in a fresh random order, linking every pair that still
// has free ports on both ends and is not yet adjacent.
// Returns the number of links added.
// Complexity: O(F² log d) for F free switches.
func (j *jellyfish) connectPass() (int, error) {
	free := freeSwitches(j.g, 1)
	added := 0
	for _, i := range j.cfg.rng.Perm(len(free)) {
		u := free[i]
		for _, k := range j.cfg.rng.Perm(len(free)) {
			if freeOf(j.g, u) == 0 {
				break
			}
			v := free[k]
			if v == u || freeOf(j.g, v) == 0 || j.g.IsNeighbor(u, v) {
				continue
			}
			if err := connect(MethodJellyfish, j.g, u, v); err != nil {
				return added, err
			}
			added++
		}
	}

	return added, nil
}

// terminal reports whether generation is complete: no free switch at all,
// or a single switch holding a single free port.
func (j *jellyfish) terminal() bool {
	free := freeSwitches(j.g, 1)
	switch len(free) {
	case 0:
		return true
	case 1:
		return freeOf(j.g, free[0]) == 1
	default:
		return false
	}
}

// repair performs one step towards a terminal state. It tries, in order:
//   - a direct move: a switch with two free ports links to both ends of a
//     dropped full-full link;
//   - a release move: a free switch drops one of its switch links so that it
//     owns two free ports, then makes a direct move; the release is undone
//     when no move follows;
//   - a shake: a random link between two full switches is dropped and the
//     next connection pass reuses the freed ports.
//
// Every (switch, released link) pair is tried before shaking, so the step
// fails only when no link between full switches is left to drop.
func (j *jellyfish) repair() error {
	rng := j.cfg.rng

	candidates := freeSwitches(j.g, 2)
	for _, i := range rng.Perm(len(candidates)) {
		ok, err := j.rewire(candidates[i], -1)
		if err != nil || ok {
			return err
		}
	}

	free := freeSwitches(j.g, 1)
	for _, i := range rng.Perm(len(free)) {
		s1 := free[i]
		nbrs := switchNeighbors(j.g, s1)
		for _, k := range rng.Perm(len(nbrs)) {
			dropped := nbrs[k]
			if err := disconnect(MethodJellyfish, j.g, s1, dropped); err != nil {
				return err
			}
			ok, err := j.rewire(s1, dropped)
			if err != nil || ok {
				return err
			}
			if err = connect(MethodJellyfish, j.g, s1, dropped); err != nil {
				return err
			}
		}
	}

	links := fullLinks(j.g)
	if len(links) == 0 {
		return builderErrorf(MethodJellyfish, ErrGenerationStalled,
			"no rewiring move among %d free switches", len(free))
	}
	e := links[rng.Intn(len(links))]
	if err := disconnect(MethodJellyfish, j.g, e.U, e.V); err != nil {
		return err
	}
	j.cfg.logger.Debug().
		Int("repair", j.repairs+1).
		Int("switch2", int(e.U)).
		Int("switch3", int(e.V)).
		Msg("shaken")

	return nil
}

// rewire makes the direct move for s1 when findPair admits one. released is
// the switch s1 let go of beforehand, or -1.
func (j *jellyfish) rewire(s1, released core.NodeID) (bool, error) {
	s2, s3, ok := j.findPair(s1)
	if !ok {
		return false, nil
	}
	if err := disconnect(MethodJellyfish, j.g, s2, s3); err != nil {
		return false, err
	}
	if err := connect(MethodJellyfish, j.g, s1, s2); err != nil {
		return false, err
	}
	if err := connect(MethodJellyfish, j.g, s1, s3); err != nil {
		return false, err
	}
	j.cfg.logger.Debug().
		Int("repair", j.repairs+1).
		Int("switch1", int(s1)).
		Int("switch2", int(s2)).
		Int("switch3", int(s3)).
		Int("released", int(released)).
		Msg("rewired")

	return true, nil
}

// findPair picks switch2 (full, not adjacent to s1) and switch3 (full,
// adjacent to switch2, not adjacent to s1), trying switch2 candidates in
// random order and drawing switch3 uniformly among the admissible ones.
func (j *jellyfish) findPair(s1 core.NodeID) (core.NodeID, core.NodeID, bool) {
	rng := j.cfg.rng
	var s2s []core.NodeID
	for _, v := range fullSwitches(j.g) {
		if v != s1 && !j.g.IsNeighbor(s1, v) {
			s2s = append(s2s, v)
		}
	}

	for _, i := range rng.Perm(len(s2s)) {
		s2 := s2s[i]
		var s3s []core.NodeID
		for _, w := range switchNeighbors(j.g, s2) {
			if w != s1 && freeOf(j.g, w) == 0 && !j.g.IsNeighbor(s1, w) {
				s3s = append(s3s, w)
			}
		}
		if len(s3s) > 0 {
			return s2, pick(rng, s3s), true
		}
	}

	return 0, 0, false
}
