package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dcntopo/builder"
	"github.com/katalvlaran/dcntopo/config"
	"github.com/katalvlaran/dcntopo/converters"
	"github.com/katalvlaran/dcntopo/core"
)

// topoFlags are the per-command overrides of the topology section.
type topoFlags struct {
	kind       string
	servers    int
	switches   int
	ports      int
	seed       int64
	maxRepairs int
	in         string
}

func (f *topoFlags) register(cmd *cobra.Command, withInput bool) {
	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "", "topology kind: jellyfish or fattree")
	fl.IntVar(&f.servers, "servers", 0, "number of servers (jellyfish)")
	fl.IntVar(&f.switches, "switches", 0, "number of switches (jellyfish)")
	fl.IntVar(&f.ports, "ports", 0, "ports per switch (the k of a fat-tree)")
	fl.Int64Var(&f.seed, "seed", 0, "random seed")
	fl.IntVar(&f.maxRepairs, "max-repairs", 0, "rewiring budget (jellyfish)")
	if withInput {
		fl.StringVar(&f.in, "in", "", "load the topology from a document instead of generating it")
	}
}

// apply copies every flag the user set onto cfg and revalidates it.
func (f *topoFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	t := &cfg.Topology
	if fl.Changed("kind") {
		t.Kind = f.kind
	}
	if fl.Changed("servers") {
		t.Servers = f.servers
	}
	if fl.Changed("switches") {
		t.Switches = f.switches
	}
	if fl.Changed("ports") {
		t.Ports = f.ports
	}
	if fl.Changed("seed") {
		t.Seed = f.seed
	}
	if fl.Changed("max-repairs") {
		t.MaxRepairs = f.maxRepairs
	}

	return cfg.Validate()
}

// topology loads --in or builds the configured topology.
func (a *app) topology(cmd *cobra.Command, f *topoFlags) (*core.Graph, error) {
	if f.in != "" {
		a.log.Info().Str("file", f.in).Msg("loading topology")
		return converters.ReadFile(f.in)
	}
	if err := f.apply(cmd, a.cfg); err != nil {
		return nil, err
	}

	return a.cfg.Topology.Build(
		builder.WithLogger(a.log),
		builder.WithObserver(a.reg.ObserveGeneration),
	)
}
