// SPDX-License-Identifier: MIT
// Package: dcntopo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng        = nil               (randomized builders fail with ErrNeedRandSource)
//   • maxRepairs = 0                 (resolved per run to RepairBudgetFactor·S·P)
//   • switchID   = "sw0","sw1",...
//   • serverID   = "sv0","sv1",...
//   • logger     = zerolog.Nop()
//   • observer   = nil               (no report delivery)

package builder

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Upper bound on rewiring repairs; 0 means "derive from the topology size".
	maxRepairs int

	// Label schemes for Jellyfish nodes.
	switchID IDFn
	serverID IDFn

	logger   zerolog.Logger
	observer func(Report)
}

// Default label prefixes; identical to core's own defaults so that labels
// remain stable whether or not a scheme is configured.
const (
	defaultSwitchPrefix = "sw"
	defaultServerPrefix = "sv"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		switchID: SymbolNumberIDFn(defaultSwitchPrefix),
		serverID: SymbolNumberIDFn(defaultServerPrefix),
		logger:   zerolog.Nop(),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// repairBudget resolves the repair ceiling for a run over numSwitches
// switches of numPorts ports each.
func (c builderConfig) repairBudget(numSwitches, numPorts int) int {
	if c.maxRepairs > 0 {
		return c.maxRepairs
	}

	return RepairBudgetFactor * numSwitches * numPorts
}

// emit delivers rep to the observer, if any.
func (c builderConfig) emit(rep Report) {
	if c.observer != nil {
		c.observer(rep)
	}
}
