package sampling

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/dcntopo/bfs"
	"github.com/katalvlaran/dcntopo/core"
	"github.com/katalvlaran/dcntopo/metrics"
	"github.com/katalvlaran/dcntopo/pathstats"
	"github.com/katalvlaran/dcntopo/yen"
)

// Curve is the link rank curve of one routing scheme: Ranks[i] is the
// number of distinct paths carried by the i-th least used link.
type Curve struct {
	Name  string
	Ranks []int
}

// Used counts links carrying at least one path.
func (c Curve) Used() int {
	n := 0
	for _, r := range c.Ranks {
		if r > 0 {
			n++
		}
	}

	return n
}

// Max is the load of the busiest link.
func (c Curve) Max() int {
	if len(c.Ranks) == 0 {
		return 0
	}

	return c.Ranks[len(c.Ranks)-1]
}

// Quantile returns the q-quantile (0..1) of the per-link counts.
func (c Curve) Quantile(q float64) float64 {
	if len(c.Ranks) == 0 {
		return 0
	}
	x := make([]float64, len(c.Ranks))
	for i, r := range c.Ranks {
		x[i] = float64(r)
	}

	return stat.Quantile(q, stat.Empirical, x, nil)
}

// DiversityReport is the outcome of LinkDiversity.
type DiversityReport struct {
	RunID     string
	Stats     core.GraphStats
	Connected bool
	Pairs     [][2]core.NodeID
	Curves    []Curve // k-shortest first, then one per ECMP width
	Duration  time.Duration
}

// LinkDiversity generates one jellyfish topology, draws p.Pairs distinct
// server pairs from a source seeded p.Seed, computes the k shortest paths
// of every pair on a worker pool and derives one link rank curve for
// k-shortest routing and one per ECMP width.
func LinkDiversity(ctx context.Context, p Params) (*DiversityReport, error) {
	if p.Pairs < 1 || p.KPaths < 1 {
		return nil, fmt.Errorf("%w: pairs and k_paths must be >= 1, got %d and %d", ErrBadParams, p.Pairs, p.KPaths)
	}
	rep := &DiversityReport{RunID: uuid.NewString()}
	log := p.Logger.With().Str("run", rep.RunID).Logger()
	start := time.Now()

	g, err := p.jellyfish(0)
	if err != nil {
		return nil, fmt.Errorf("sampling: generate: %w", err)
	}
	rep.Stats = g.Stats()
	if rep.Connected, err = bfs.Connected(g); err != nil {
		return nil, err
	}

	servers := g.Servers()
	if len(servers) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewServers, len(servers))
	}
	rng := rand.New(rand.NewSource(p.Seed))
	rep.Pairs = make([][2]core.NodeID, p.Pairs)
	for i := range rep.Pairs {
		a := servers[rng.Intn(len(servers))]
		b := servers[rng.Intn(len(servers))]
		for a == b {
			b = servers[rng.Intn(len(servers))]
		}
		rep.Pairs[i] = [2]core.NodeID{a, b}
	}

	k := p.widest()
	log.Info().
		Int("pairs", p.Pairs).
		Int("k", k).
		Bool("connected", rep.Connected).
		Msg("link diversity sampling started")

	// Slots are written by index, so no lock is needed.
	found := make([][]yen.Path, p.Pairs)
	err = runPool(ctx, p.workers(), p.Pairs, func(i int) error {
		t0 := time.Now()
		paths, err := yen.KShortestPaths(g, rep.Pairs[i][0], rep.Pairs[i][1], k)
		if err != nil {
			return fmt.Errorf("sampling: pair %d: %w", i, err)
		}
		if p.Metrics != nil {
			hops := make([]int, len(paths))
			for j, path := range paths {
				hops[j] = path.Hops()
			}
			p.Metrics.ObservePath(metrics.KindKShortest, time.Since(t0), hops...)
		}
		found[i] = paths
		return nil
	})
	if err != nil {
		return nil, err
	}

	curve := func(name string, pick func([]yen.Path) []yen.Path) (Curve, error) {
		var all []yen.Path
		for _, paths := range found {
			all = append(all, pick(paths)...)
		}
		ranks, err := pathstats.RankLinks(g, pathstats.LinkUsage(all))

		return Curve{Name: name, Ranks: ranks}, err
	}

	c, err := curve(strconv.Itoa(p.KPaths)+" shortest paths", func(ps []yen.Path) []yen.Path {
		return pathstats.KShortestRouting(ps, p.KPaths)
	})
	if err != nil {
		return nil, err
	}
	rep.Curves = append(rep.Curves, c)
	for _, w := range p.ECMPWays {
		w := w
		c, err = curve(strconv.Itoa(w)+"-way ECMP", func(ps []yen.Path) []yen.Path {
			return pathstats.ECMPRouting(ps, w)
		})
		if err != nil {
			return nil, err
		}
		rep.Curves = append(rep.Curves, c)
	}

	rep.Duration = time.Since(start)
	log.Info().Int("curves", len(rep.Curves)).Dur("took", rep.Duration).Msg("link diversity sampling finished")

	return rep, nil
}
