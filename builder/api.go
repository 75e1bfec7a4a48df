// SPDX-License-Identifier: MIT
// Package: dcntopo/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order, seals g.
//   - Public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"time"

	"github.com/katalvlaran/dcntopo/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Leave the graph structurally valid when they return nil.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Report summarizes one constructor run. It is delivered to the WithObserver
// callback on success and on failure (Err != nil).
type Report struct {
	Topology string // TopologyJellyfish or TopologyFatTree
	Switches int
	Servers  int
	Ports    int // per-switch port count

	Rounds            int // connection passes (Jellyfish)
	Repairs           int // rewiring steps performed (Jellyfish)
	ResidualFreePorts int // unused switch ports at termination

	Duration time.Duration
	Err      error
}

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, applies all constructors in order and seals the result, so the
// returned topology is read-only.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrConfiguration, ErrGenerationStalled, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}
	g.Seal()

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Jellyfish builds a random regular switch fabric with servers attached.
// Requires cfg.rng != nil. See impl_jellyfish.go.
//func Jellyfish(numServers, numSwitches, numPorts int) Constructor
//
// FatTree builds the deterministic three-tier k-ary fat-tree.
// See impl_fattree.go.
//func FatTree(k int) Constructor

// NewJellyfish is a thin helper: BuildGraph(opts, Jellyfish(...)).
// Complexity: see Jellyfish.
func NewJellyfish(numServers, numSwitches, numPorts int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(opts, Jellyfish(numServers, numSwitches, numPorts))
}

// NewFatTree is a thin helper: BuildGraph(opts, FatTree(k)).
// Complexity: O(k³).
func NewFatTree(k int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(opts, FatTree(k))
}
