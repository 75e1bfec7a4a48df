package config

import (
	"github.com/katalvlaran/dcntopo/builder"
	"github.com/katalvlaran/dcntopo/core"
)

// Constructor returns the builder constructor the section describes.
func (t TopologyConfig) Constructor() builder.Constructor {
	if t.Kind == builder.TopologyFatTree {
		return builder.FatTree(t.Ports)
	}

	return builder.Jellyfish(t.Servers, t.Switches, t.Ports)
}

// Options returns the seed and repair budget as builder options, followed
// by extra.
func (t TopologyConfig) Options(extra ...builder.BuilderOption) []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithSeed(t.Seed)}
	if t.MaxRepairs > 0 {
		opts = append(opts, builder.WithMaxRepairs(t.MaxRepairs))
	}

	return append(opts, extra...)
}

// Build generates the configured topology.
func (t TopologyConfig) Build(extra ...builder.BuilderOption) (*core.Graph, error) {
	return builder.BuildGraph(t.Options(extra...), t.Constructor())
}
