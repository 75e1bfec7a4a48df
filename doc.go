// Package dcntopo synthesizes data-center network topologies and analyzes
// their path diversity.
//
// Two families of fabric are built into the same graph model:
//
//   - Jellyfish: switches joined by a random regular graph, repaired by
//     link rewiring until no usable port pair is left;
//   - fat-tree: the deterministic core / aggregation / edge layering derived
//     from a single port count k.
//
// On top of those, path queries answer the usual comparison questions: how
// many hops separate server pairs, how many loop-less alternatives exist
// between two hosts, and how evenly k-shortest or ECMP routing would load
// the links.
//
// Packages:
//
//	core/       arena graph of switches and servers with port budgets
//	builder/    BuildGraph orchestrator, Jellyfish and FatTree constructors
//	dijkstra/   unweighted shortest paths with link and node exclusions
//	yen/        k shortest loop-less paths
//	bfs/        hop layers and connected components
//	pathstats/  hop histograms, routing selections, link usage ranks
//	converters/ gonum adapter and YAML/JSON topology documents
//	config/     experiment configuration (YAML, TOML, JSON)
//	logging/    zerolog setup
//	metrics/    Prometheus instrumentation
//	sampling/   concurrent experiments over many topologies
//	cmd/dcntopo command line front end
//
// Quick start:
//
//	g, err := builder.NewJellyfish(686, 245, 14, builder.WithSeed(1))
//	if err != nil {
//		// builder.ErrConfiguration or builder.ErrGenerationStalled
//	}
//	paths, _ := yen.KShortestPaths(g, g.Servers()[0], g.Servers()[1], 8)
package dcntopo
