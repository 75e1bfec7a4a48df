// SPDX-License-Identifier: MIT
// Package: dcntopo/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for randomized builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// The generator draws from r without locking; never share r between
// concurrent builds.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Identical seed and parameters reproduce an identical edge set.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxRepairs bounds the number of rewiring repairs a Jellyfish run may
// perform before failing with ErrGenerationStalled. Panics if n < 1.
// Complexity: O(1) time, O(1) space.
func WithMaxRepairs(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxRepairs(n<1)")
	}
	return func(c *builderConfig) {
		c.maxRepairs = n
	}
}

// WithLogger routes construction progress to l. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) BuilderOption {
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithObserver registers fn to receive one Report per constructor run,
// on success and on failure. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithObserver(fn func(Report)) BuilderOption {
	if fn == nil {
		panic("builder: WithObserver(nil)")
	}
	return func(c *builderConfig) {
		c.observer = fn
	}
}
