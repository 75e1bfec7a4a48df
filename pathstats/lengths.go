package pathstats

import (
	"fmt"

	"github.com/katalvlaran/dcntopo/core"
	"github.com/katalvlaran/dcntopo/dijkstra"
)

// ServerPairLengths returns the hop distance of every unordered pair of
// distinct servers in g, computed with one single-source search per server.
// Pairs with no connecting path are not part of lengths; their number is
// returned as unreachable.
//
// Order: pairs (a, b) with a < b in ascending handle order.
// Complexity: O(S · (V + E) log V) for S servers.
func ServerPairLengths(g *core.Graph) (lengths []int, unreachable int, err error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	servers := g.Servers()
	if len(servers) > 1 {
		lengths = make([]int, 0, len(servers)*(len(servers)-1)/2)
	}

	for i, src := range servers[:max(len(servers)-1, 0)] {
		res, err := dijkstra.Dijkstra(g, src)
		if err != nil {
			return nil, 0, fmt.Errorf("pathstats: distances from %d: %w", src, err)
		}
		for _, dst := range servers[i+1:] {
			if !res.Reachable(dst) {
				unreachable++
				continue
			}
			lengths = append(lengths, res.Dist[dst])
		}
	}

	return lengths, unreachable, nil
}
