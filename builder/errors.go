// SPDX-License-Identifier: MIT
// Package: dcntopo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` and a method prefix.
//   • Algorithms never panic at runtime; validation panics are confined to
//     option constructors (WithX...).
//
// Priority when several validations fail:
//   • ErrConfiguration     - parameter domain checks first.
//   • ErrNeedRandSource    - then RNG presence for the randomized generator.
//   • ErrGenerationStalled - repair loop ran out of moves or budget.
//   • ErrConstructFailed   - core rejected a mutation or the finished graph
//     failed Validate; indicates a bug, not bad input.

package builder

import (
	"errors"
	"fmt"
)

// ErrConfiguration indicates invalid or infeasible input parameters, detected
// before any node is created (e.g. more servers than the port budget allows).
// Usage: if errors.Is(err, ErrConfiguration) { /* fix the parameters */ }.
var ErrConfiguration = errors.New("builder: invalid configuration")

// ErrNeedRandSource indicates that a randomized constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrGenerationStalled indicates the rewiring repair loop exceeded its
// iteration bound, or found no admissible move, before reaching a terminal
// state. It is retryable: run again with a different seed.
var ErrGenerationStalled = errors.New("builder: generation stalled")

// ErrConstructFailed indicates the builder could not produce a topology
// without breaking a core invariant.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf formats an inner message with method context while keeping
// the wrapped sentinel visible to errors.Is:
//
//	builderErrorf(methodJellyfish, ErrConfiguration, "ports=%d", p)
//	→ "Jellyfish: ports=0: builder: invalid configuration"
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
