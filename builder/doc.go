// Package builder synthesizes data-center topologies on top of core.Graph
// using a "functional-options" configuration layer.
//
// The package offers the following key components:
//
//   - Orchestration:
//     - Constructor:       func(g *core.Graph, cfg builderConfig) error.
//     - BuildGraph:        new graph, resolve options, run constructors, Seal.
//     - NewJellyfish / NewFatTree: single-constructor shortcuts.
//   - Topologies:
//     - Jellyfish(servers, switches, ports): random regular switch fabric
//       with a bounded rewiring repair loop.
//     - FatTree(k): deterministic core/aggregation/edge/host tiers.
//   - Configuration primitives (BuilderOption):
//     - WithSeed / WithRand:   the random source of Jellyfish.
//     - WithMaxRepairs:        repair ceiling (default 2·S·P).
//     - WithSwitchIDs / WithServerIDs: label schemes (IDFn).
//     - WithLogger:            zerolog progress logging.
//     - WithObserver:          per-run Report delivery (metrics hook).
//   - Sentinel errors:
//     - ErrConfiguration, ErrNeedRandSource, ErrGenerationStalled, ErrConstructFailed.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping sentinels for errors.Is.
//   - Returned graphs are sealed and pass core.Graph.Validate.
//   - Identical seed and parameters reproduce an identical edge set.
//
// Example:
//
//	g, err := builder.NewJellyfish(686, 245, 14, builder.WithSeed(1))
//	if errors.Is(err, builder.ErrGenerationStalled) {
//		// retry with another seed
//	}
package builder
