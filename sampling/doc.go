// Package sampling runs the topology comparison experiments.
//
// PathLengths generates many randomized topologies concurrently and
// aggregates the hop distance of every server pair, optionally next to a
// fat-tree baseline. LinkDiversity measures how evenly k-shortest and ECMP
// routing spread paths over the links of one topology.
//
// Work is spread over a panjf2000/ants pool. Every topology sample owns
// its random source (seed + sample index), so results depend only on
// Params, never on scheduling. Each run is tagged with a UUID that appears
// in every log event it emits.
package sampling
