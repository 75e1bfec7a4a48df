// Package pathstats turns path queries into the distributions used to
// compare topologies.
//
// Histogram buckets hop counts starting at 1 and reports per-bucket and
// cumulative fractions of the sample total. ServerPairLengths feeds it with
// the hop distance of every server pair of a topology.
//
// For path diversity, KShortestRouting and ECMPRouting select the paths a
// routing scheme would use out of a yen.KShortestPaths result, LinkUsage
// counts the distinct paths on every link, and RankLinks orders those
// counts across all links of the graph.
package pathstats
