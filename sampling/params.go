package sampling

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/dcntopo/config"
	"github.com/katalvlaran/dcntopo/metrics"
)

var (
	// ErrBadParams is returned when Params cannot drive an experiment.
	ErrBadParams = errors.New("sampling: invalid parameters")

	// ErrAllStalled is returned when no topology sample could be generated.
	ErrAllStalled = errors.New("sampling: every topology sample stalled")

	// ErrTooFewServers is returned when fewer than two servers exist to pair.
	ErrTooFewServers = errors.New("sampling: need at least two servers")
)

// Params configures PathLengths and LinkDiversity.
type Params struct {
	// Jellyfish shape and randomness.
	Servers, Switches, Ports int
	Seed                     int64
	MaxRepairs               int // 0 keeps the builder default

	Samples  int   // topologies generated by PathLengths
	Workers  int   // pool size
	FatTreeK int   // fat-tree baseline for PathLengths; 0 disables it
	Pairs    int   // server pairs sampled by LinkDiversity
	KPaths   int   // k of the k-shortest routing curve
	ECMPWays []int // widths of the ECMP routing curves

	Logger  zerolog.Logger
	Metrics *metrics.Registry // optional
}

// ParamsFrom maps a validated configuration onto Params. The logger and
// registry are left for the caller to set.
func ParamsFrom(cfg *config.Config) Params {
	t, s := cfg.Topology, cfg.Sampling

	return Params{
		Servers:    t.Servers,
		Switches:   t.Switches,
		Ports:      t.Ports,
		Seed:       t.Seed,
		MaxRepairs: t.MaxRepairs,
		Samples:    s.Samples,
		Workers:    s.Workers,
		FatTreeK:   s.FatTreeK,
		Pairs:      s.Pairs,
		KPaths:     s.KPaths,
		ECMPWays:   append([]int(nil), s.ECMPWays...),
		Logger:     zerolog.Nop(),
	}
}

// widest returns the largest path count any routing curve needs.
func (p Params) widest() int {
	k := p.KPaths
	for _, w := range p.ECMPWays {
		k = max(k, w)
	}

	return k
}

func (p Params) workers() int {
	if p.Workers < 1 {
		return 1
	}

	return p.Workers
}
