package pathstats

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/dcntopo/core"
	"github.com/katalvlaran/dcntopo/yen"
)

// KShortestRouting keeps the first k of paths, which must already be in
// non-decreasing hop order (as yen.KShortestPaths returns them).
func KShortestRouting(paths []yen.Path, k int) []yen.Path {
	if k < 0 {
		k = 0
	}
	if k > len(paths) {
		k = len(paths)
	}

	return paths[:k:k]
}

// ECMPRouting keeps the leading run of equal-length paths, at most k of
// them: the set a k-way equal-cost multipath scheme would spread flows over.
func ECMPRouting(paths []yen.Path, k int) []yen.Path {
	if len(paths) == 0 || k < 1 {
		return paths[:0:0]
	}
	n := 1
	for n < k && n < len(paths) && paths[n].Hops() == paths[0].Hops() {
		n++
	}

	return paths[:n:n]
}

// LinkUsage counts, for every link, how many distinct paths traverse it.
// Paths with the same node sequence are counted once.
func LinkUsage(paths []yen.Path) map[core.Edge]int {
	usage := make(map[core.Edge]int)
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		key := p.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		for _, e := range p.Edges() {
			usage[e]++
		}
	}

	return usage
}

// RankLinks returns the per-link path counts of every link in g sorted
// ascending; links absent from usage count 0. Index i is the "rank" of a
// link, the value is the number of distinct paths it carries.
func RankLinks(g *core.Graph, usage map[core.Edge]int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	edges := g.Edges()
	ranks := make([]int, len(edges))
	for i, e := range edges {
		ranks[i] = usage[e]
	}
	slices.Sort(ranks)

	return ranks, nil
}
