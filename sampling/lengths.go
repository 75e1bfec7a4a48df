package sampling

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/dcntopo/builder"
	"github.com/katalvlaran/dcntopo/core"
	"github.com/katalvlaran/dcntopo/metrics"
	"github.com/katalvlaran/dcntopo/pathstats"
)

// LengthReport is the outcome of PathLengths.
type LengthReport struct {
	RunID string

	Jellyfish   *pathstats.Histogram // server-pair hop counts over all samples
	FatTree     *pathstats.Histogram // nil unless Params.FatTreeK > 0
	Generated   int                  // samples that produced a topology
	Stalled     int                  // samples whose generator stalled
	Unreachable int                  // jellyfish server pairs without a path
	Duration    time.Duration
}

// PathLengths generates p.Samples jellyfish topologies on a worker pool,
// sample i drawing from its own source seeded p.Seed+i, and buckets the hop
// distance of every server pair of every topology. A stalled sample is
// counted and skipped; the run fails with ErrAllStalled only if no sample
// succeeds.
func PathLengths(ctx context.Context, p Params) (*LengthReport, error) {
	if p.Samples < 1 {
		return nil, fmt.Errorf("%w: samples must be >= 1, got %d", ErrBadParams, p.Samples)
	}
	rep := &LengthReport{RunID: uuid.NewString()}
	log := p.Logger.With().Str("run", rep.RunID).Logger()
	start := time.Now()

	log.Info().
		Int("samples", p.Samples).
		Int("servers", p.Servers).
		Int("switches", p.Switches).
		Int("ports", p.Ports).
		Msg("path length sampling started")

	var (
		mu      sync.Mutex
		lengths []int
	)
	err := runPool(ctx, p.workers(), p.Samples, func(i int) error {
		g, err := p.jellyfish(i)
		if errors.Is(err, builder.ErrGenerationStalled) {
			log.Warn().Int("sample", i).Err(err).Msg("sample stalled")
			mu.Lock()
			rep.Stalled++
			mu.Unlock()
			return nil
		}
		if err != nil {
			return fmt.Errorf("sampling: sample %d: %w", i, err)
		}

		l, unreachable, err := p.pairLengths(g)
		if err != nil {
			return fmt.Errorf("sampling: sample %d: %w", i, err)
		}
		log.Debug().Int("sample", i).Int("pairs", len(l)).Int("unreachable", unreachable).Msg("sample done")

		mu.Lock()
		lengths = append(lengths, l...)
		rep.Unreachable += unreachable
		rep.Generated++
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rep.Generated == 0 {
		return nil, fmt.Errorf("%w: %d samples", ErrAllStalled, rep.Stalled)
	}
	if rep.Jellyfish, err = pathstats.NewHistogram(lengths); err != nil {
		return nil, fmt.Errorf("sampling: jellyfish histogram: %w", err)
	}

	if p.FatTreeK > 0 {
		ft, err := builder.NewFatTree(p.FatTreeK, p.builderOptions(p.Logger)...)
		if err != nil {
			return nil, fmt.Errorf("sampling: fat-tree baseline: %w", err)
		}
		l, _, err := p.pairLengths(ft)
		if err != nil {
			return nil, fmt.Errorf("sampling: fat-tree baseline: %w", err)
		}
		if rep.FatTree, err = pathstats.NewHistogram(l); err != nil {
			return nil, fmt.Errorf("sampling: fat-tree histogram: %w", err)
		}
	}

	rep.Duration = time.Since(start)
	log.Info().
		Int("generated", rep.Generated).
		Int("stalled", rep.Stalled).
		Float64("mean_hops", rep.Jellyfish.Mean()).
		Dur("took", rep.Duration).
		Msg("path length sampling finished")

	return rep, nil
}

// jellyfish generates sample i with its own random source.
func (p Params) jellyfish(i int) (*core.Graph, error) {
	rng := rand.New(rand.NewSource(p.Seed + int64(i)))
	sub := p.Logger.With().Int("sample", i).Logger()
	opts := append(p.builderOptions(sub), builder.WithRand(rng))

	return builder.NewJellyfish(p.Servers, p.Switches, p.Ports, opts...)
}

// builderOptions wires the logger, repair budget and metrics observer.
func (p Params) builderOptions(log zerolog.Logger) []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithLogger(log)}
	if p.MaxRepairs > 0 {
		opts = append(opts, builder.WithMaxRepairs(p.MaxRepairs))
	}
	if p.Metrics != nil {
		opts = append(opts, builder.WithObserver(p.Metrics.ObserveGeneration))
	}

	return opts
}

// pairLengths wraps pathstats.ServerPairLengths with query metrics.
func (p Params) pairLengths(g *core.Graph) ([]int, int, error) {
	start := time.Now()
	l, unreachable, err := pathstats.ServerPairLengths(g)
	if err == nil && p.Metrics != nil {
		p.Metrics.ObservePath(metrics.KindDistances, time.Since(start))
	}

	return l, unreachable, err
}
